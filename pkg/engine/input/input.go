// Package input reads raw terminal keys and maps them to game actions.
// The layering mirrors how the graphical backend works with its engine:
// raw device codes first, bindings second, high-level intents last.
package input

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode.
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence after
// an ESC byte. Handles both CSI (ESC [) and SS3 (ESC O) sequences.
func tryReadArrowKey() string {
	b2, err := readByte()
	if err != nil {
		return ""
	}
	if b2 != '[' && b2 != 'O' {
		return ""
	}

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
	return ""
}

// ReadKey blocks for a single keypress and returns its code: a letter
// like "w", "arrow_left" for arrows, "enter", "escape" or "ctrl_c".
// The terminal is in raw mode only for the duration of the read.
func ReadKey() (string, error) {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("input: cannot enter raw mode: %w", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b, err := readByte()
	if err != nil {
		return "", fmt.Errorf("input: cannot read stdin: %w", err)
	}

	switch {
	case b == 0x1b:
		if arrow := tryReadArrowKey(); arrow != "" {
			return arrow, nil
		}
		return "escape", nil
	case b == 3:
		return "ctrl_c", nil
	case b == '\n' || b == '\r':
		return "enter", nil
	case b >= 'A' && b <= 'Z':
		// Case-insensitive bindings.
		return string(b + 32), nil
	case b >= 32 && b < 127:
		return string(b), nil
	}
	return "", nil
}
