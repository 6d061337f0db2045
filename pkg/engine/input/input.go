package input

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow direction string if successful, empty string otherwise.
func tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte()
	if err != nil {
		return ""
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 == '[' || b2 == 'O' {
		b3, err := readByte()
		if err != nil {
			return ""
		}

		switch b3 {
		case 'A':
			return "arrow_up"
		case 'B':
			return "arrow_down"
		case 'C':
			return "arrow_right"
		case 'D':
			return "arrow_left"
		}
	}

	// Unknown escape sequence - discard it
	return ""
}

// GetInputWithArrows reads one input token from the terminal. Arrow keys and
// single bound keys (hjkl, digits 1-5, q) return immediately without Enter;
// anything else collects characters until Enter as a command word, so words
// like "west" stay typeable.
func GetInputWithArrows() string {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b1, err := readByte()
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	if arrowKey := tryReadArrowKey(b1); arrowKey != "" {
		fmt.Println()
		return arrowKey
	}

	// Ctrl+C
	if b1 == 3 {
		fmt.Println()
		return "quit"
	}

	if b1 == '\n' || b1 == '\r' {
		return ""
	}

	// Single-key commands fire immediately.
	if isImmediateKey(b1) {
		fmt.Println(string(b1))
		return string(b1)
	}

	// For other characters, collect input until Enter.
	var input []byte
	if b1 >= 32 && b1 < 127 {
		input = append(input, b1)
		fmt.Print(string(b1))
	}

	for {
		b, err := readByte()
		if err != nil {
			break
		}

		if b == 0x1b {
			// Arrow key pressed during text entry - discard the sequence.
			tryReadArrowKey(b)
			continue
		}

		// Backspace
		if b == 127 || b == 8 {
			if len(input) > 0 {
				input = input[:len(input)-1]
				fmt.Print("\b \b")
			}
			continue
		}

		if b == '\n' || b == '\r' {
			fmt.Println()
			break
		}

		if b == 3 {
			fmt.Println()
			return "quit"
		}

		if b >= 32 && b < 127 {
			input = append(input, b)
			fmt.Print(string(b))
		}
	}

	return string(input)
}

// isImmediateKey reports whether a single keypress is a complete command.
func isImmediateKey(b byte) bool {
	switch b {
	case 'h', 'j', 'k', 'l', 'q':
		return true
	case '1', '2', '3', '4', '5':
		return true
	case '=', '+', '-':
		return true
	}
	return false
}
