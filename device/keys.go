package device

// Keys replays a fixed byte sequence as keyboard input, for
// deterministic runs and tests.
type Keys struct {
	Data []byte

	next int
}

var _ Keyboard = (*Keys)(nil)

// Poll returns the next recorded byte, if any remain.
func (k *Keys) Poll() (key byte, ok bool) {
	if k.next >= len(k.Data) {
		return
	}

	key = k.Data[k.next]
	k.next++
	ok = true

	return
}

// Read returns the next recorded byte, or ErrNoInput once the
// recording is exhausted.
func (k *Keys) Read() (key byte, err error) {
	key, ok := k.Poll()
	if !ok {
		err = ErrNoInput
	}

	return
}

// Rewind restarts the recording from the beginning.
func (k *Keys) Rewind() {
	k.next = 0
}
