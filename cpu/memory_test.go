package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lc3/device"
)

func TestMemoryReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()

	for _, addr := range []uint16{0x0000, 0x3000, 0xFDFF, 0xFFFF} {
		assert.Equal(uint16(0), mem.Read(addr))
		mem.Write(addr, 0xA5A5)
		assert.Equal(uint16(0xA5A5), mem.Read(addr), "addr %#04x", addr)
	}
}

func TestKeyboardStatus(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()
	mem.Keyboard = &device.Keys{Data: []byte{'a'}}

	// A pending key is latched by the status read.
	assert.Equal(KB_READY, mem.Read(MR_KBSR))
	assert.Equal(uint16('a'), mem.Read(MR_KBDR))

	// Exhausted input clears the ready bit; the latched key stays.
	assert.Equal(uint16(0), mem.Read(MR_KBSR))
	assert.Equal(uint16('a'), mem.Read(MR_KBDR))
}

func TestKeyboardStatusNoKeyboard(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()

	mem.Write(MR_KBSR, 0xFFFF)
	assert.Equal(uint16(0), mem.Read(MR_KBSR), "status poll overrides stored value")
}

func TestOperandFetchPolls(t *testing.T) {
	assert := assert.New(t)

	cpu := New(NewMemory())
	cpu.Mem.Keyboard = &device.Keys{Data: []byte{'z'}}

	// ldr r0, r1, #0 with r1 at the keyboard status register: the
	// operand fetch itself triggers the device poll.
	cpu.Reg[R1] = MR_KBSR
	_, err := execOne(cpu, Instruction(uint16(OP_LDR)<<12|R0<<9|R1<<6))
	assert.NoError(err)
	assert.Equal(KB_READY, cpu.Reg[R0])
	assert.Equal(FL_NEG, cpu.Cond)
	assert.Equal(uint16('z'), cpu.Mem.Read(MR_KBDR))
}

func TestScan(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()
	for n, word := range []uint16{'H', 'i', 0, '!'} {
		mem.Write(0x3000+uint16(n), word)
	}

	var words []uint16
	for word := range mem.Scan(0x3000) {
		words = append(words, word)
	}
	assert.Equal([]uint16{'H', 'i'}, words, "stops at the first zero word")

	words = nil
	for word := range mem.Scan(0x3002) {
		words = append(words, word)
	}
	assert.Empty(words, "terminator at the start yields nothing")
}
