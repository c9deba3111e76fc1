// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"encoding/binary"
	"errors"
	"os"

	"github.com/ezrec/lc3/cpu"
	"github.com/ezrec/lc3/device"
)

// Status is the fetch-execute loop state.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	RUNNING = Status(0) // running
	HALTED  = Status(1) // halted
	ABORTED = Status(2) // aborted
)

// Emulator wires the execution engine to its I/O devices, loads image
// files, and drives the fetch-execute loop to a terminal state.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the machine simulation.

	Status Status // Loop state; terminal once HALTED or ABORTED.
}

// New creates an emulator over a fresh machine with no devices
// attached.
func New() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.New(cpu.NewMemory()),
	}

	return
}

// SetKeyboard attaches a key source to both trap input and the
// memory-mapped status register poll.
func (emu *Emulator) SetKeyboard(kb device.Keyboard) {
	emu.Cpu.Keyboard = kb
	emu.Cpu.Mem.Keyboard = kb
}

// SetDisplay attaches the output sink the trap routines write to.
func (emu *Emulator) SetDisplay(disp device.Display) {
	emu.Cpu.Display = disp
}

// LoadImageFile loads one image binary into memory. Multiple images
// may be loaded in sequence, each potentially overwriting a prior
// load.
func (emu *Emulator) LoadImageFile(path string) (err error) {
	defer func() {
		if err != nil {
			err = &ErrImage{Path: path, Err: err}
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return emu.LoadImage(data)
}

// LoadImage loads an image binary: a big-endian origin word followed
// by big-endian data words, placed verbatim into memory starting at
// the origin. Loading stops at end of data or at the end of the
// address space; a trailing odd byte is ignored.
func (emu *Emulator) LoadImage(data []byte) (err error) {
	if len(data) < 2 {
		err = ErrImageShort
		return
	}

	origin := binary.BigEndian.Uint16(data[:2])

	addr := uint32(origin)
	for ofs := 2; ofs+1 < len(data) && addr < cpu.MemorySize; ofs += 2 {
		emu.Mem.Write(uint16(addr), binary.BigEndian.Uint16(data[ofs:ofs+2]))
		addr++
	}

	return
}

// Reset restores the machine to power-on state and the loop to
// RUNNING. Loaded images stay in memory.
func (emu *Emulator) Reset() {
	emu.Cpu.Reset()
	emu.Status = RUNNING
}

// Step executes a single instruction. A HALT trap moves the loop to
// HALTED; a reserved instruction or failed trap moves it to ABORTED
// and returns the error with the faulting PC attached.
func (emu *Emulator) Step() (err error) {
	if emu.Status != RUNNING {
		err = ErrNotRunning
		return
	}

	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.PC
	halted, err := emu.Cpu.Step()
	if err != nil {
		emu.Status = ABORTED
		err = &ErrRuntime{PC: pc, Err: err}
		return
	}

	if halted {
		emu.Status = HALTED
	}

	return
}

// Run drives the loop until it reaches a terminal state.
func (emu *Emulator) Run() (err error) {
	for emu.Status == RUNNING {
		err = emu.Step()
		if err != nil {
			return
		}
	}

	return
}

// Aborted reports whether err is the reserved-instruction abort path
// rather than an I/O failure.
func Aborted(err error) bool {
	return errors.Is(err, cpu.ErrReserved)
}
