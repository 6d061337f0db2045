package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

var (
	ColorRoom        color.Style
	ColorRoomText    color.Style
	ColorAction      color.Style
	ColorActionShort color.Style
	ColorItem        color.Style
	ColorSubtle      color.Style
	ColorPlayer      color.Style
	ColorMessage     color.Style

	// TrailStyles is ordered newest to oldest; entries past the end of the
	// slice render with the last style.
	TrailStyles []color.Style

	regexpStringFunctions *regexp.Regexp
)

// InitColors initializes the color styles
func InitColors() {
	ColorRoom = color.Style{color.FgCyan}
	ColorRoomText = color.Style{color.FgBlue}
	ColorAction = color.Style{color.FgMagenta}
	ColorActionShort = color.Style{color.FgMagenta, color.OpBold}
	ColorItem = color.Style{color.FgGreen, color.OpBold}
	ColorSubtle = color.Style{color.FgGray}
	ColorPlayer = color.Style{color.FgYellow, color.OpBold}
	ColorMessage = color.Style{color.FgWhite}

	TrailStyles = []color.Style{
		{color.FgWhite, color.OpBold},
		{color.FgWhite},
		{color.FgGray},
		{color.FgGray, color.OpFuzzy},
	}

	regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:'!+.-]+)}`)
}

// TrailStyle returns the style for a trail entry of the given age
// (0 = current cell).
func TrailStyle(age int) color.Style {
	if age >= len(TrailStyles) {
		return TrailStyles[len(TrailStyles)-1]
	}
	return TrailStyles[age]
}

// FormatString formats a string with special markup: GT{...} translates,
// ITEM{...} and ROOM{...} colorize, ACTION{...} highlights the first letter
// as the key to press.
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		val := ""

		switch function {
		case "GT":
			val = gotext.Get(operand)
		case "ITEM":
			val = ColorItem.Sprint(operand)
		case "ROOM":
			val = ColorRoom.Sprint(operand)
		case "ACTION":
			val = ColorActionShort.Sprint(operand[0:1]) + ColorAction.Sprint(operand[1:])
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// WrapText breaks text into lines of at most width characters, splitting on
// word boundaries. Words longer than width get a line of their own.
func WrapText(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}

	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
