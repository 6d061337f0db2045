package input

import (
	"testing"
	"time"
)

func intentFor(code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{
		Device:    DeviceTerminal,
		Code:      code,
		Timestamp: time.Now(),
	}))
}

func TestMapToIntentMovement(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveNorth},
		{"w", ActionMoveNorth},
		{"k", ActionMoveNorth},
		{"north", ActionMoveNorth},
		{"arrow_down", ActionMoveSouth},
		{"j", ActionMoveSouth},
		{"arrow_left", ActionMoveWest},
		{"h", ActionMoveWest},
		{"west", ActionMoveWest},
		{"arrow_right", ActionMoveEast},
		{"l", ActionMoveEast},
		{"q", ActionQuit},
		{"quit", ActionQuit},
		{"escape", ActionQuit},
		{"=", ActionZoomIn},
		{"+", ActionZoomIn},
		{"-", ActionZoomOut},
		{"xyzzy", ActionNone},
		{"", ActionNone},
	}

	for _, tc := range tests {
		if got := intentFor(tc.code); got.Action != tc.want {
			t.Errorf("MapToIntent(%q).Action = %v, want %v", tc.code, ActionName(got.Action), ActionName(tc.want))
		}
	}
}

func TestMapToIntentSlots(t *testing.T) {
	for slot := 1; slot <= 5; slot++ {
		got := intentFor(string(rune('0' + slot)))
		if got.Action != ActionSlot || got.Slot != slot {
			t.Errorf("digit %d mapped to %v slot %d", slot, ActionName(got.Action), got.Slot)
		}
	}

	for _, code := range []string{"0", "6", "9", "12"} {
		if got := intentFor(code); got.Action == ActionSlot {
			t.Errorf("code %q mapped to a slot", code)
		}
	}
}

func TestGetBindingsByAction(t *testing.T) {
	byAction := GetBindingsByAction()

	north := byAction[ActionMoveNorth]
	if len(north) != 4 {
		t.Fatalf("north has %d bindings, want 4: %v", len(north), north)
	}
	for i := 1; i < len(north); i++ {
		if north[i-1] >= north[i] {
			t.Fatalf("bindings not sorted: %v", north)
		}
	}
}
