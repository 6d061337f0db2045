// Package tui is the terminal renderer: a turn-based loop that redraws the
// trail map and side information after every keypress.
package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"

	"wanderer/pkg/engine/input"
	"wanderer/pkg/engine/terminal"
	"wanderer/pkg/engine/world"
	"wanderer/pkg/game/gameplay"
	"wanderer/pkg/game/renderer"
	"wanderer/pkg/game/trail"
	"wanderer/pkg/game/view"
)

// Icon constants for the trail map
const (
	PlayerIcon  = "@"
	IconVisited = "○"
	IconLoot    = "?"
	IconVoid    = " "
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct{}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() error {
	renderer.InitColors()
	return nil
}

// Run drives the turn-based loop: draw, read one input token, apply it.
func (t *TUIRenderer) Run(s *gameplay.Session) error {
	for !s.Quit() {
		now := time.Now()
		s.Game.ExpireActionMessage(now)

		t.Clear()
		t.renderFrame(s)

		code := input.GetInputWithArrows()
		if code == "" {
			continue
		}

		in := input.MapToIntent(input.NewDebouncedInput(input.RawInput{
			Device:    input.DeviceTerminal,
			Code:      code,
			Timestamp: time.Now(),
		}))
		s.HandleIntent(in, time.Now())
	}

	fmt.Println(gotext.Get("Goodbye."))
	return nil
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// renderFrame draws the map, the current room panel, the message log and the
// input prompt.
func (t *TUIRenderer) renderFrame(s *gameplay.Session) {
	t.printMap(s)
	t.printRoomPanel(s)
	t.printBackpack(s)
	t.printMessagesPane(s)

	if s.Game.ActionMessage != "" {
		fmt.Println(renderer.ColorMessage.Sprint(s.Game.ActionMessage))
		fmt.Println()
	}

	renderer.TrailStyles[0].Print("> ")
}

// printMap renders the remembered trail as a character grid, centered on the
// terminal. Older cells fade toward the background.
func (t *TUIRenderer) printMap(s *gameplay.Session) {
	bounds := view.BoundsOf(s.Game.Trail.Positions(), s.Cfg.BufferTiles)
	termWidth, _ := terminal.GetSize()

	// Two columns per cell keeps the map roughly square on screen.
	indent := (termWidth - bounds.Width()*2) / 2
	if indent < 0 {
		indent = 0
	}

	ages := make(map[world.Position]int)
	s.Game.Trail.Each(func(age int, e *trail.Entry) {
		ages[e.Pos] = age
	})

	fmt.Println()
	for y := bounds.MinY; y <= bounds.MaxY; y++ {
		fmt.Print(strings.Repeat(" ", indent))
		for x := bounds.MinX; x <= bounds.MaxX; x++ {
			pos := world.Position{X: x, Y: y}
			fmt.Print(t.renderCell(s, pos, ages) + " ")
		}
		fmt.Println()
	}
	fmt.Println()
}

// renderCell returns the icon for one map position.
func (t *TUIRenderer) renderCell(s *gameplay.Session, pos world.Position, ages map[world.Position]int) string {
	if pos == s.Game.PlayerPos {
		return renderer.ColorPlayer.Sprint(PlayerIcon)
	}

	entry := s.Game.Trail.At(pos)
	if entry == nil {
		return IconVoid
	}

	style := renderer.TrailStyle(ages[pos])
	if len(entry.Loot) > 0 && !entry.Looted {
		return style.Sprint(IconLoot)
	}
	return style.Sprint(IconVisited)
}

// printRoomPanel shows the current room's name, flavor text and action slots.
func (t *TUIRenderer) printRoomPanel(s *gameplay.Session) {
	entry := s.Game.Trail.Current()
	if entry == nil {
		return
	}

	termWidth, _ := terminal.GetSize()

	fmt.Println(renderer.FormatString("ROOM{%s}", entry.Room.Name))
	for _, line := range renderer.WrapText(entry.Room.Flavor, termWidth-2) {
		fmt.Println(renderer.ColorSubtle.Sprint("  " + line))
	}
	fmt.Println()

	for i, action := range entry.Room.Actions {
		if action == "" {
			continue
		}
		fmt.Println(renderer.FormatString("  %d) ACTION{%s}", i+1, action))
	}

	if n := len(entry.Loot); n > 0 && !entry.Looted {
		fmt.Println(renderer.FormatString("  "+gotext.Get("Something glints here: ITEM{%d items} on the ground."), n))
	}
	fmt.Println()
}

// printBackpack shows the backpack's contents in first-pickup order.
func (t *TUIRenderer) printBackpack(s *gameplay.Session) {
	pack := s.Game.Backpack

	fmt.Print(renderer.ColorSubtle.Sprintf("Backpack (%d/%d): ", pack.Count(), pack.Capacity()))
	if pack.Count() == 0 {
		fmt.Println(renderer.ColorSubtle.Sprint(gotext.Get("(empty)")))
		return
	}

	items := []string{}
	pack.Each(func(name string, count int) {
		if count > 1 {
			items = append(items, renderer.ColorItem.Sprintf("%s x%d", name, count))
		} else {
			items = append(items, renderer.ColorItem.Sprint(name))
		}
	})
	fmt.Println(strings.Join(items, renderer.ColorSubtle.Sprint(", ")))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(s *gameplay.Session) {
	width, _ := terminal.GetSize()

	label := " Messages "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	rightLen := width - sideLen - len(label)
	if rightLen < 1 {
		rightLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", rightLen)

	fmt.Println()
	fmt.Println(renderer.ColorSubtle.Sprint(leftDashes + label + rightDashes))

	if len(s.Game.Messages) == 0 {
		fmt.Println(renderer.ColorSubtle.Sprint("  " + gotext.Get("(no messages)")))
	} else {
		for _, msg := range s.Game.Messages {
			fmt.Printf("  %s\n", msg)
		}
	}

	fmt.Println(renderer.ColorSubtle.Sprint(strings.Repeat("─", width)))
}
