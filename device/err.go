package device

import (
	"errors"

	"github.com/ezrec/lc3/translate"
)

var f = translate.From

var (
	// Keyboard errors
	ErrKeyboardClosed = errors.New(f("keyboard closed"))
	ErrNoInput        = errors.New(f("input exhausted"))
)
