package engine

import "unicode/utf8"

const (
	// ConsoleLines is how many messages the console keeps.
	ConsoleLines = 8
	// MaxInputLen bounds the typed input line in bytes.
	MaxInputLen = 255
)

// Console is the scrolling message box under the map. New messages push
// older ones up; the oldest falls off once ConsoleLines are held.
type Console struct {
	lines []string
	input []byte
}

// Print adds a message at the bottom of the console.
func (c *Console) Print(msg string) {
	if len(c.lines) == ConsoleLines {
		copy(c.lines, c.lines[1:])
		c.lines = c.lines[:ConsoleLines-1]
	}
	c.lines = append(c.lines, msg)
}

// Lines returns the held messages, oldest first.
func (c *Console) Lines() []string {
	return c.lines
}

// Input is the line being typed.
func (c *Console) Input() string { return string(c.input) }

// Type appends s to the input line. Text that would push the line past
// MaxInputLen is dropped whole.
func (c *Console) Type(s string) bool {
	if len(c.input)+len(s) > MaxInputLen {
		return false
	}
	c.input = append(c.input, s...)
	return true
}

// Backspace removes the last character of the input line.
func (c *Console) Backspace() {
	if len(c.input) == 0 {
		return
	}
	_, size := utf8.DecodeLastRune(c.input)
	c.input = c.input[:len(c.input)-size]
}

// Submit clears the input line and prints it. Empty input prints nothing.
func (c *Console) Submit() string {
	line := string(c.input)
	c.input = c.input[:0]
	if line != "" {
		c.Print(line)
	}
	return line
}
