package gameplay

import (
	"math/rand"
	"testing"
	"time"

	"wanderer/pkg/engine/input"
	"wanderer/pkg/engine/world"
	"wanderer/pkg/game/config"
	"wanderer/pkg/game/content"
)

func testCatalog() *content.Catalog {
	rooms := []content.Record{{
		"type":        "room",
		"name":        "Test Hall",
		"probability": "1",
		"max_loot":    "2",
		"action1":     "search",
		"action2":     "take loot",
		"action3":     "leave",
	}}
	items := []content.Record{{
		"name":        "trinket",
		"probability": "1",
	}}
	return content.NewCatalog(rooms, items)
}

func newTestSession(seed int64) *Session {
	return NewSession(config.Default(), testCatalog(), rand.New(rand.NewSource(seed)))
}

func TestNewSessionStartsAtOrigin(t *testing.T) {
	s := newTestSession(1)

	if s.Game.PlayerPos != (world.Position{}) {
		t.Fatalf("player starts at %v, want origin", s.Game.PlayerPos)
	}
	entry := s.Game.Trail.Current()
	if entry == nil {
		t.Fatal("trail has no starting cell")
	}
	if entry.Pos != (world.Position{}) {
		t.Fatalf("starting cell at %v, want origin", entry.Pos)
	}
	if entry.Room.Name != "Test Hall" {
		t.Fatalf("starting room %q, want Test Hall", entry.Room.Name)
	}
}

func TestMoveRespectsCooldown(t *testing.T) {
	s := newTestSession(2)
	now := time.Now()

	if !s.Move(world.East, now) {
		t.Fatal("first move rejected")
	}
	if s.Move(world.East, now.Add(50*time.Millisecond)) {
		t.Fatal("move inside cooldown accepted")
	}
	if s.Game.PlayerPos != (world.Position{X: 1}) {
		t.Fatalf("player at %v after dropped move, want (1,0)", s.Game.PlayerPos)
	}
	if !s.Move(world.East, now.Add(s.Cfg.MoveCooldown())) {
		t.Fatal("move after cooldown rejected")
	}
	if s.Game.PlayerPos != (world.Position{X: 2}) {
		t.Fatalf("player at %v, want (2,0)", s.Game.PlayerPos)
	}
}

func TestMoveClearsActionMessage(t *testing.T) {
	s := newTestSession(3)
	now := time.Now()

	s.Game.SetActionMessage("You inspect the area carefully.", now)
	if !s.Move(world.North, now) {
		t.Fatal("move rejected")
	}
	if s.Game.ActionMessage != "" {
		t.Fatalf("action message %q survived a move", s.Game.ActionMessage)
	}
}

func TestPerformSlotSetsActionMessage(t *testing.T) {
	s := newTestSession(4)
	now := time.Now()

	// Slot 3 is the "leave" action, whose message is fixed.
	s.PerformSlot(3, now)
	if s.Game.ActionMessage != "You decide to leave." {
		t.Fatalf("slot 3 message %q, want leave message", s.Game.ActionMessage)
	}

	// Unbound slots report there is nothing to do.
	s.Game.ClearActionMessage()
	s.PerformSlot(5, now)
	if s.Game.ActionMessage != "No action available." {
		t.Fatalf("empty slot message %q, want no-action message", s.Game.ActionMessage)
	}

	// Out-of-range slots are ignored outright.
	s.Game.ClearActionMessage()
	s.PerformSlot(0, now)
	s.PerformSlot(6, now)
	if s.Game.ActionMessage != "" {
		t.Fatal("out-of-range slot produced a message")
	}
}

func TestTickExpiresActionMessage(t *testing.T) {
	s := newTestSession(5)
	now := time.Now()

	s.Game.SetActionMessage("You decide to leave.", now)
	s.Tick(now.Add(time.Second), s.Cfg.GameWidth(), s.Cfg.ScreenHeight)
	if s.Game.ActionMessage == "" {
		t.Fatal("action message expired early")
	}
	s.Tick(now.Add(s.Cfg.MessageDuration()+time.Millisecond), s.Cfg.GameWidth(), s.Cfg.ScreenHeight)
	if s.Game.ActionMessage != "" {
		t.Fatalf("action message %q not expired", s.Game.ActionMessage)
	}
}

func TestTickFitsViewportToTrail(t *testing.T) {
	s := newTestSession(6)
	now := time.Now()

	s.Move(world.East, now)
	s.Move(world.East, now.Add(s.Cfg.MoveCooldown()))

	bounds, tileSize := s.Tick(now, s.Cfg.GameWidth(), s.Cfg.ScreenHeight)
	if got := bounds.Width(); got != 5 {
		t.Fatalf("bounds width %d, want 5", got)
	}
	if got := bounds.Height(); got != 3 {
		t.Fatalf("bounds height %d, want 3", got)
	}
	if tileSize <= 0 {
		t.Fatalf("tile size %d, want positive", tileSize)
	}
}

func TestHandleIntentQuit(t *testing.T) {
	s := newTestSession(7)

	if s.Quit() {
		t.Fatal("fresh session already quitting")
	}
	s.HandleIntent(input.Intent{Action: input.ActionQuit}, time.Now())
	if !s.Quit() {
		t.Fatal("quit intent ignored")
	}
}

func TestHandleIntentMoves(t *testing.T) {
	s := newTestSession(8)

	s.HandleIntent(input.Intent{Action: input.ActionMoveSouth}, time.Now())
	if s.Game.PlayerPos != (world.Position{Y: 1}) {
		t.Fatalf("player at %v after south move, want (0,1)", s.Game.PlayerPos)
	}
}

func TestRevisitKeepsRoomAndLoot(t *testing.T) {
	s := newTestSession(9)
	now := time.Now()

	s.Move(world.East, now)
	first := s.Game.Trail.Current()
	wantLoot := len(first.Loot)

	now = now.Add(s.Cfg.MoveCooldown())
	s.Move(world.West, now)
	now = now.Add(s.Cfg.MoveCooldown())
	s.Move(world.East, now)

	again := s.Game.Trail.Current()
	if again != first {
		t.Fatal("revisit produced a new entry")
	}
	if len(again.Loot) != wantLoot {
		t.Fatalf("revisit changed loot count %d -> %d", wantLoot, len(again.Loot))
	}
}
