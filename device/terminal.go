package device

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal switches a TTY into raw (unbuffered, unechoed) input mode
// and restores the original settings afterwards. Restore is safe to
// call more than once and from a signal handler path.
type Terminal struct {
	fd    uintptr
	saved unix.Termios
	raw   bool
}

// NewTerminal wraps an open TTY, normally os.Stdin.
func NewTerminal(tty *os.File) *Terminal {
	return &Terminal{fd: tty.Fd()}
}

// Raw saves the current terminal settings and disables canonical mode
// and echo.
func (t *Terminal) Raw() (err error) {
	err = termios.Tcgetattr(t.fd, &t.saved)
	if err != nil {
		return
	}

	raw := t.saved
	raw.Lflag &^= unix.ICANON | unix.ECHO
	err = termios.Tcsetattr(t.fd, termios.TCSANOW, &raw)
	if err != nil {
		return
	}

	t.raw = true

	return
}

// Restore reinstates the settings saved by Raw.
func (t *Terminal) Restore() (err error) {
	if !t.raw {
		return
	}
	t.raw = false

	return termios.Tcsetattr(t.fd, termios.TCSANOW, &t.saved)
}
