package cpu

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lc3/device"
)

// trapWord builds a TRAP instruction for the vector.
func trapWord(vec TrapVector) Instruction {
	return Instruction(uint16(OP_TRAP)<<12 | uint16(vec))
}

// newTrapCpu attaches a buffered display and returns its backing
// buffer. The trap routines flush, so output lands in the buffer.
func newTrapCpu() (cpu *Cpu, output *bytes.Buffer) {
	cpu = New(NewMemory())
	output = &bytes.Buffer{}
	cpu.Display = bufio.NewWriter(output)

	return
}

func TestTrapOut(t *testing.T) {
	assert := assert.New(t)

	cpu, output := newTrapCpu()
	cpu.Reg[R0] = 'Q'

	halted, err := execOne(cpu, trapWord(TRAP_OUT))
	assert.NoError(err)
	assert.False(halted)
	assert.Equal("Q", output.String())
}

func TestTrapGetc(t *testing.T) {
	assert := assert.New(t)

	cpu, output := newTrapCpu()
	cpu.Keyboard = &device.Keys{Data: []byte{'x'}}

	halted, err := execOne(cpu, trapWord(TRAP_GETC))
	assert.NoError(err)
	assert.False(halted)
	assert.Equal(uint16('x'), cpu.Reg[R0])
	assert.Empty(output.String(), "getc does not echo")
}

func TestTrapIn(t *testing.T) {
	assert := assert.New(t)

	cpu, output := newTrapCpu()
	cpu.Keyboard = &device.Keys{Data: []byte{'y'}}

	halted, err := execOne(cpu, trapWord(TRAP_IN))
	assert.NoError(err)
	assert.False(halted)
	assert.Equal(uint16('y'), cpu.Reg[R0])
	assert.Equal("Enter a character: y", output.String())
}

func TestTrapPuts(t *testing.T) {
	assert := assert.New(t)

	cpu, output := newTrapCpu()
	for n, word := range []uint16{'H', 'e', 'l', 'l', 'o', 0, 'X'} {
		cpu.Mem.Write(0x4000+uint16(n), word)
	}
	cpu.Reg[R0] = 0x4000

	halted, err := execOne(cpu, trapWord(TRAP_PUTS))
	assert.NoError(err)
	assert.False(halted)
	assert.Equal("Hello", output.String(), "stops exactly at the zero word")
}

func TestTrapPutsp(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		words []uint16
		want  string
	}){
		{"even", []uint16{'a' | 'b'<<8, 'c' | 'd'<<8, 0}, "abcd"},
		{"odd", []uint16{'a' | 'b'<<8, 'c', 0}, "abc"},
		{"empty", []uint16{0}, ""},
	}

	for _, entry := range table {
		cpu, output := newTrapCpu()
		for n, word := range entry.words {
			cpu.Mem.Write(0x4000+uint16(n), word)
		}
		cpu.Reg[R0] = 0x4000

		_, err := execOne(cpu, trapWord(TRAP_PUTSP))
		assert.NoError(err, entry.name)
		assert.Equal(entry.want, output.String(), entry.name)
	}
}

func TestTrapHalt(t *testing.T) {
	assert := assert.New(t)

	cpu, output := newTrapCpu()

	halted, err := execOne(cpu, trapWord(TRAP_HALT))
	assert.NoError(err)
	assert.True(halted)
	assert.Equal("HALT\n", output.String())
}

func TestTrapUnknownVector(t *testing.T) {
	assert := assert.New(t)

	cpu, output := newTrapCpu()

	halted, err := execOne(cpu, Instruction(0xF000))
	assert.NoError(err, "unmapped vectors are a no-op")
	assert.False(halted)
	assert.Empty(output.String())
	assert.Equal(1, cpu.Ticks)
}

func TestTrapNoDevices(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		vec  TrapVector
		want error
	}){
		{"getc", TRAP_GETC, ErrNoKeyboard},
		{"out", TRAP_OUT, ErrNoDisplay},
		{"puts", TRAP_PUTS, ErrNoDisplay},
	}

	for _, entry := range table {
		cpu := New(NewMemory())

		_, err := execOne(cpu, trapWord(entry.vec))
		assert.ErrorIs(err, entry.want, entry.name)
		assert.ErrorIs(err, ErrTrap(0), entry.name)
	}
}
