package cpu

import (
	"errors"

	"github.com/ezrec/lc3/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrReserved   = errors.New(f("reserved instruction"))
	ErrNoKeyboard = errors.New(f("no keyboard attached"))
	ErrNoDisplay  = errors.New(f("no display attached"))
)

// ErrInstruction wraps an execution error with the instruction word
// that raised it.
type ErrInstruction Instruction

func (ei ErrInstruction) Error() string {
	return f("instruction 0x%04x %v", uint16(ei), Instruction(ei))
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}

// ErrTrap wraps a trap routine error with its vector.
type ErrTrap TrapVector

func (et ErrTrap) Error() string {
	return f("trap %v", TrapVector(et))
}

func (et ErrTrap) Is(err error) (ok bool) {
	_, ok = err.(ErrTrap)
	return
}
