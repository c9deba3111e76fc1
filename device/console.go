package device

import (
	"io"
)

// Console pumps keystrokes from an io.Reader (usually a raw-mode
// terminal) into a one-byte buffer on a background goroutine, so that
// the same key source can serve both the non-blocking status poll and
// the blocking trap reads.
type Console struct {
	keys chan byte
}

var _ Keyboard = (*Console)(nil)

// NewConsole starts pumping keystrokes from the reader.
func NewConsole(r io.Reader) (con *Console) {
	con = &Console{
		keys: make(chan byte, 1),
	}
	go con.pump(r)

	return
}

func (con *Console) pump(r io.Reader) {
	var one [1]byte
	for {
		n, err := r.Read(one[:])
		if err != nil {
			close(con.keys)
			return
		}
		if n == 0 {
			continue
		}
		con.keys <- one[0]
	}
}

// Poll returns a pending keystroke, if any, without blocking.
func (con *Console) Poll() (key byte, ok bool) {
	select {
	case key, ok = <-con.keys:
	default:
	}

	return
}

// Read blocks until a keystroke arrives.
func (con *Console) Read() (key byte, err error) {
	key, ok := <-con.keys
	if !ok {
		err = ErrKeyboardClosed
	}

	return
}
