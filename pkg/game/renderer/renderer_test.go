package renderer

import (
	"reflect"
	"testing"

	"github.com/gookit/color"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"", 10, nil},
		{"short", 10, []string{"short"}},
		{"a bare stone chamber", 10, []string{"a bare", "stone", "chamber"}},
		{"word fits exactly here", 11, []string{"word fits", "exactly", "here"}},
		{"supercalifragilistic word", 5, []string{"supercalifragilistic", "word"}},
	}

	for _, tc := range tests {
		got := WrapText(tc.text, tc.width)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("WrapText(%q, %d) = %v, want %v", tc.text, tc.width, got, tc.want)
		}
	}
}

func TestWrapTextZeroWidth(t *testing.T) {
	got := WrapText("anything at all", 0)
	if len(got) != 1 || got[0] != "anything at all" {
		t.Fatalf("WrapText with width 0 = %v, want passthrough", got)
	}
}

func TestFormatString(t *testing.T) {
	color.Disable()
	InitColors()

	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"found ITEM{copper coin}!", "found copper coin!"},
		{"you are in ROOM{Treasure Room}", "you are in Treasure Room"},
		{"press ACTION{search}", "press search"},
		{"GT{You decide to leave.}", "You decide to leave."},
	}

	for _, tc := range tests {
		if got := FormatString(tc.in); got != tc.want {
			t.Errorf("FormatString(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTrailStyleClamps(t *testing.T) {
	color.Disable()
	InitColors()

	last := TrailStyles[len(TrailStyles)-1]
	for _, age := range []int{len(TrailStyles), 50} {
		if got := TrailStyle(age); !reflect.DeepEqual(got, last) {
			t.Errorf("TrailStyle(%d) = %v, want oldest style", age, got)
		}
	}
	if got := TrailStyle(0); !reflect.DeepEqual(got, TrailStyles[0]) {
		t.Error("TrailStyle(0) is not the newest style")
	}
}
