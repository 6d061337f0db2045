// Package gameplay wires the core subsystems into one session and exposes
// the per-tick operations the renderers drive: moves, room actions and the
// camera update. All state transitions complete within the tick that
// triggers them.
package gameplay

import (
	"math/rand"
	"time"

	"github.com/leonelquinteros/gotext"

	"wanderer/pkg/engine/input"
	"wanderer/pkg/engine/world"
	"wanderer/pkg/game/actions"
	"wanderer/pkg/game/config"
	"wanderer/pkg/game/content"
	"wanderer/pkg/game/procgen"
	"wanderer/pkg/game/state"
	"wanderer/pkg/game/trail"
	"wanderer/pkg/game/view"
)

// Session owns the game context and its collaborators for one play session.
type Session struct {
	Game     *state.Game
	Gen      *procgen.Generator
	Resolver *actions.Resolver
	Cfg      *config.Config

	quit bool
}

// NewSession builds a session over the given catalog and random source and
// seeds the trail with the starting cell at the origin.
func NewSession(cfg *config.Config, catalog *content.Catalog, rng *rand.Rand) *Session {
	gen := procgen.New(catalog, cfg, rng)
	s := &Session{
		Game:     state.NewGame(cfg),
		Gen:      gen,
		Resolver: actions.NewResolver(gen, cfg, rng),
		Cfg:      cfg,
	}

	s.Game.Trail.Move(world.Position{}, s.newEntry)
	s.Game.AddMessage(gotext.Get("You wake in an unfamiliar place."))

	// Land the camera on its first target so the session doesn't open with
	// a pan in from the screen corner.
	s.Tick(time.Now(), cfg.GameWidth(), cfg.ScreenHeight)
	s.Game.Camera.Snap()

	return s
}

// newEntry generates a trail entry for a newly visited position.
func (s *Session) newEntry(pos world.Position) *trail.Entry {
	room := s.Gen.GenerateRoom()
	return &trail.Entry{
		Pos:  pos,
		Room: room,
		Loot: s.Gen.GenerateLoot(room),
	}
}

// HandleIntent routes one high-level input intent into the session.
func (s *Session) HandleIntent(in input.Intent, now time.Time) {
	switch in.Action {
	case input.ActionMoveNorth:
		s.Move(world.North, now)
	case input.ActionMoveSouth:
		s.Move(world.South, now)
	case input.ActionMoveWest:
		s.Move(world.West, now)
	case input.ActionMoveEast:
		s.Move(world.East, now)
	case input.ActionSlot:
		s.PerformSlot(in.Slot, now)
	case input.ActionQuit:
		s.quit = true
	}
}

// Move steps the player one cell in the given direction. Moves inside the
// cooldown window are dropped, not queued. Returns whether the move was
// accepted.
func (s *Session) Move(dir world.Direction, now time.Time) bool {
	if !dir.IsValid() || !s.Game.CanMove(now) {
		return false
	}

	target := s.Game.PlayerPos.Step(dir)
	entry, revisit := s.Game.Trail.Move(target, s.newEntry)
	s.Game.PlayerPos = target
	s.Game.LastMove = now
	s.Game.ClearActionMessage()

	if revisit {
		s.Game.AddMessage(gotext.Get("You return to %s.", entry.Room.Name))
	} else {
		s.Game.AddMessage(gotext.Get("You enter %s.", entry.Room.Name))
	}
	return true
}

// PerformSlot runs the current room's numbered action slot (1-based).
func (s *Session) PerformSlot(slot int, now time.Time) {
	entry := s.Game.Trail.Current()
	if entry == nil || slot < 1 || slot > content.ActionSlots {
		return
	}

	raw := entry.Room.Actions[slot-1]
	msg := s.Resolver.Resolve(raw, entry, s.Game.Backpack)
	s.Game.SetActionMessage(msg, now)
}

// Tick advances the per-frame state: expires the action message, refits the
// viewport to the trail's extent and eases the camera toward its target.
// Returns the fitted bounds and tile size for the renderer.
func (s *Session) Tick(now time.Time, displayWidth, displayHeight int) (view.Bounds, int) {
	s.Game.ExpireActionMessage(now)

	bounds := view.BoundsOf(s.Game.Trail.Positions(), s.Cfg.BufferTiles)
	tileSize := view.FitTileSize(bounds, displayWidth, displayHeight)
	s.Game.Camera.Retarget(bounds, tileSize, displayWidth, displayHeight)
	s.Game.Camera.Step(s.Cfg.PanSmoothing)

	return bounds, tileSize
}

// Quit reports whether the player asked to end the session.
func (s *Session) Quit() bool {
	return s.quit
}
