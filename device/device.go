// Package device provides the I/O collaborators consumed by the LC-3
// execution engine: a keyboard that supports both a non-blocking poll
// (for the memory-mapped status register) and a blocking read (for the
// GETC and IN traps), and a display with an explicit flush (for the
// OUT, PUTS and PUTSP traps).
//
// Console attaches these to a real terminal; Keys replays a recorded
// byte sequence for deterministic runs. Terminal switches a TTY into
// the raw input mode the keyboard traps expect.
package device

import (
	"io"
)

// Keyboard is a byte-oriented input source.
type Keyboard interface {
	// Poll returns the next available byte without blocking.
	Poll() (byte, bool)
	// Read blocks until a byte is available.
	Read() (byte, error)
}

// Display is a byte-oriented output sink with an explicit flush.
type Display interface {
	io.Writer
	// Flush pushes any buffered output to the underlying sink.
	Flush() error
}
