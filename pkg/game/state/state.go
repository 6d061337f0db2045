// Package state holds the session's mutable game context: the trail, the
// backpack, the camera and the transient HUD messages. One Game value is
// created at session start and mutated only by the tick handler.
package state

import (
	"time"

	"wanderer/pkg/engine/world"
	"wanderer/pkg/game/config"
	"wanderer/pkg/game/trail"
	"wanderer/pkg/game/view"
)

// Game is the single game-state context for a session.
type Game struct {
	Config *config.Config

	Trail     *trail.Trail
	Backpack  *Backpack
	PlayerPos world.Position

	Camera view.Camera

	// LastMove is when the last accepted move happened; moves inside the
	// cooldown window are dropped.
	LastMove time.Time

	// ActionMessage is the transient HUD message from the last room action.
	ActionMessage  string
	messageExpires time.Time

	Messages []string
}

// NewGame creates a fresh game context. The trail starts empty; the caller
// seeds it with the starting cell.
func NewGame(cfg *config.Config) *Game {
	return &Game{
		Config:   cfg,
		Trail:    trail.New(cfg.MemoryLimit),
		Backpack: NewBackpack(cfg.BackpackCapacity),
		Messages: make([]string, 0),
	}
}

// AddMessage adds a message to the game's bounded message log.
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages.
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// SetActionMessage shows an action result on the HUD until it expires.
func (g *Game) SetActionMessage(msg string, now time.Time) {
	g.ActionMessage = msg
	g.messageExpires = now.Add(g.Config.MessageDuration())
}

// ClearActionMessage removes the HUD action message immediately.
func (g *Game) ClearActionMessage() {
	g.ActionMessage = ""
	g.messageExpires = time.Time{}
}

// ExpireActionMessage clears the action message once its lifetime has
// passed. Called every tick.
func (g *Game) ExpireActionMessage(now time.Time) {
	if g.ActionMessage != "" && now.After(g.messageExpires) {
		g.ClearActionMessage()
	}
}

// CanMove reports whether the move cooldown has elapsed.
func (g *Game) CanMove(now time.Time) bool {
	return now.Sub(g.LastMove) >= g.Config.MoveCooldown()
}
