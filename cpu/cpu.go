package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/lc3/device"
)

// General purpose register indexes.
const (
	R0 = uint16(iota)
	R1
	R2
	R3
	R4
	R5
	R6
	R7 // Link register: holds the return address across JSR/JSRR.
)

// NumRegs is the number of general purpose registers.
const NumRegs = 8

// PC_START is the power-on program counter.
const PC_START = uint16(0x3000)

// Cpu is the LC-3 execution engine: the register file plus the opcode
// handlers that mutate it and Memory. It owns its state exclusively;
// nothing here is safe for concurrent use.
type Cpu struct {
	Verbose bool // Set to enable per-instruction trace logging.

	Mem *Memory // The flat 64K-word address space.

	Reg  [NumRegs]uint16 // General purpose registers.
	PC   uint16          // Program counter.
	Cond Flag            // Condition flags.

	Keyboard device.Keyboard // Blocking key source for the GETC and IN traps.
	Display  device.Display  // Output sink for the OUT, PUTS, PUTSP and HALT traps.

	Ticks int // Instructions executed since the last reset.
}

// New creates a CPU at power-on state over the given memory.
func New(mem *Memory) (cpu *Cpu) {
	cpu = &Cpu{
		Mem: mem,
	}
	cpu.Reset()

	return
}

// Reset restores power-on state: registers cleared, condition flags
// zero, PC at the start of user space. Memory contents are untouched.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Reg[:])
	cpu.PC = PC_START
	cpu.Cond = FL_ZRO
	cpu.Ticks = 0
}

// String returns the current register file as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("   pc: 0x%04X\n cond: %v\n", cpu.PC, cpu.Cond)
	for n, val := range cpu.Reg {
		text += fmt.Sprintf("   r%d: 0x%04X\n", n, val)
	}

	return
}

// Step fetches and executes a single instruction. It returns halted
// when the HALT trap has been serviced, and an error for a reserved
// instruction or a failed I/O trap; either way the machine must not be
// stepped further.
func (cpu *Cpu) Step() (halted bool, err error) {
	pc := cpu.PC
	in := Instruction(cpu.Mem.Read(pc))
	cpu.PC++

	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(in), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%04x: %v", pc, in)
	}

	halted, err = cpu.execute(in)
	if err == nil {
		cpu.Ticks++
	}

	return
}

// execute dispatches a fetched instruction to its opcode handler.
func (cpu *Cpu) execute(in Instruction) (halted bool, err error) {
	switch in.Opcode() {
	case OP_ADD:
		var operand uint16
		if in.Imm() {
			operand = in.Imm5()
		} else {
			operand = cpu.Reg[in.SR2()]
		}
		cpu.Reg[in.DR()] = cpu.Reg[in.SR1()] + operand
		cpu.setCC(cpu.Reg[in.DR()])

	case OP_AND:
		var operand uint16
		if in.Imm() {
			operand = in.Imm5()
		} else {
			operand = cpu.Reg[in.SR2()]
		}
		cpu.Reg[in.DR()] = cpu.Reg[in.SR1()] & operand
		cpu.setCC(cpu.Reg[in.DR()])

	case OP_NOT:
		cpu.Reg[in.DR()] = ^cpu.Reg[in.SR1()]
		cpu.setCC(cpu.Reg[in.DR()])

	case OP_BR:
		if in.CondMask()&cpu.Cond != 0 {
			cpu.PC += in.Offset9()
		}

	case OP_JMP:
		cpu.PC = cpu.Reg[in.BaseR()]

	case OP_JSR:
		cpu.Reg[R7] = cpu.PC
		if in.Long() {
			cpu.PC += in.Offset11()
		} else {
			cpu.PC = cpu.Reg[in.BaseR()]
		}

	case OP_LD:
		cpu.Reg[in.DR()] = cpu.Mem.Read(cpu.PC + in.Offset9())
		cpu.setCC(cpu.Reg[in.DR()])

	case OP_LDI:
		cpu.Reg[in.DR()] = cpu.Mem.Read(cpu.Mem.Read(cpu.PC + in.Offset9()))
		cpu.setCC(cpu.Reg[in.DR()])

	case OP_LDR:
		cpu.Reg[in.DR()] = cpu.Mem.Read(cpu.Reg[in.BaseR()] + in.Offset6())
		cpu.setCC(cpu.Reg[in.DR()])

	case OP_LEA:
		cpu.Reg[in.DR()] = cpu.PC + in.Offset9()
		cpu.setCC(cpu.Reg[in.DR()])

	case OP_ST:
		cpu.Mem.Write(cpu.PC+in.Offset9(), cpu.Reg[in.DR()])

	case OP_STI:
		cpu.Mem.Write(cpu.Mem.Read(cpu.PC+in.Offset9()), cpu.Reg[in.DR()])

	case OP_STR:
		cpu.Mem.Write(cpu.Reg[in.BaseR()]+in.Offset6(), cpu.Reg[in.DR()])

	case OP_TRAP:
		halted, err = cpu.trap(in.Vector())

	case OP_RES, OP_RTI:
		err = ErrReserved
	}

	return
}

// setCC recomputes the condition flags from a value just written to a
// destination register. The negative test must check bit 15 itself; a
// shifted-out or unrelated bit is a known failure mode.
func (cpu *Cpu) setCC(value uint16) {
	if value == 0 {
		cpu.Cond = FL_ZRO
	} else if value>>15 != 0 {
		cpu.Cond = FL_NEG
	} else {
		cpu.Cond = FL_POS
	}
}

// signExtend reinterprets the low 'bits' bits of x as two's-complement
// and extends the sign through bit 15.
func signExtend(x, bits uint16) uint16 {
	if (x>>(bits-1))&1 != 0 {
		x |= 0xFFFF << bits
	}

	return x
}
