package cpu

import (
	"iter"

	"github.com/ezrec/lc3/device"
)

const (
	MemorySize = 1 << 16 // Words in the flat address space.
)

// Memory-mapped register addresses.
const (
	MR_KBSR = uint16(0xFE00) // Keyboard status register.
	MR_KBDR = uint16(0xFE02) // Keyboard data register.
)

// KB_READY is the value of the keyboard status register when a key is
// latched in the data register.
const KB_READY = uint16(1 << 15)

// Memory is the 65536-word address space. Every read of the keyboard
// status register polls the attached Keyboard as a side effect: a
// pending key sets the ready bit and latches the key into the data
// register, otherwise the ready bit is cleared. This happens on any
// read of that address, including operand fetches, so reads of the
// reserved range are not referentially transparent.
type Memory struct {
	Keyboard device.Keyboard // Key source for the status poll; may be nil.

	cells [MemorySize]uint16
}

// NewMemory creates a zeroed address space with no keyboard attached.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns the word at addr, polling the keyboard first when addr
// is the keyboard status register.
func (mem *Memory) Read(addr uint16) uint16 {
	if addr == MR_KBSR {
		mem.pollKeyboard()
	}

	return mem.cells[addr]
}

// Write stores value at addr.
func (mem *Memory) Write(addr, value uint16) {
	mem.cells[addr] = value
}

// Scan yields consecutive words starting at addr up to, and not
// including, the first zero word: the terminator the PUTS and PUTSP
// traps stop at. A full wrap of the address space without a terminator
// ends the scan.
func (mem *Memory) Scan(addr uint16) iter.Seq[uint16] {
	return func(yield func(word uint16) bool) {
		for range MemorySize {
			word := mem.Read(addr)
			if word == 0 {
				return
			}
			if !yield(word) {
				return
			}
			addr++
		}
	}
}

func (mem *Memory) pollKeyboard() {
	if mem.Keyboard == nil {
		mem.cells[MR_KBSR] = 0
		return
	}

	key, ok := mem.Keyboard.Poll()
	if ok {
		mem.cells[MR_KBSR] = KB_READY
		mem.cells[MR_KBDR] = uint16(key)
	} else {
		mem.cells[MR_KBSR] = 0
	}
}
