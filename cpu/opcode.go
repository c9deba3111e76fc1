package cpu

import (
	"fmt"
)

// Opcode is the 4-bit operation selector in the top nibble of an
// instruction word.
type Opcode uint16

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_BR   = Opcode(0)  // br
	OP_ADD  = Opcode(1)  // add
	OP_LD   = Opcode(2)  // ld
	OP_ST   = Opcode(3)  // st
	OP_JSR  = Opcode(4)  // jsr
	OP_AND  = Opcode(5)  // and
	OP_LDR  = Opcode(6)  // ldr
	OP_STR  = Opcode(7)  // str
	OP_RTI  = Opcode(8)  // rti
	OP_NOT  = Opcode(9)  // not
	OP_LDI  = Opcode(10) // ldi
	OP_STI  = Opcode(11) // sti
	OP_JMP  = Opcode(12) // jmp
	OP_RES  = Opcode(13) // res
	OP_LEA  = Opcode(14) // lea
	OP_TRAP = Opcode(15) // trap
)

// TrapVector selects one of the built-in I/O service routines.
type TrapVector uint16

//go:generate go tool stringer -linecomment -type=TrapVector
const (
	TRAP_GETC  = TrapVector(0x20) // getc
	TRAP_OUT   = TrapVector(0x21) // out
	TRAP_PUTS  = TrapVector(0x22) // puts
	TRAP_IN    = TrapVector(0x23) // in
	TRAP_PUTSP = TrapVector(0x24) // putsp
	TRAP_HALT  = TrapVector(0x25) // halt
)

// Flag is the tri-state condition code set by register-defining
// instructions and consulted by conditional branch.
type Flag uint16

const (
	FL_POS = Flag(1 << 0)
	FL_ZRO = Flag(1 << 1)
	FL_NEG = Flag(1 << 2)
)

// String returns the conventional n/z/p letters for the set flags.
func (fl Flag) String() (out string) {
	if fl&FL_NEG != 0 {
		out += "n"
	}
	if fl&FL_ZRO != 0 {
		out += "z"
	}
	if fl&FL_POS != 0 {
		out += "p"
	}
	if out == "" {
		out = fmt.Sprintf("Flag(%d)", uint16(fl))
	}

	return
}

// Instruction is a single 16-bit LC-3 instruction word. Its bit fields
// are interpreted differently per opcode; the decode methods below
// extract the fields each handler consumes.
type Instruction uint16

// Opcode returns the operation selector in bits 15-12.
func (in Instruction) Opcode() Opcode {
	return Opcode(in >> 12)
}

// DR returns the destination (or, for stores, source) register in
// bits 11-9.
func (in Instruction) DR() uint16 {
	return uint16(in>>9) & 0x7
}

// SR1 returns the first source register in bits 8-6.
func (in Instruction) SR1() uint16 {
	return uint16(in>>6) & 0x7
}

// SR2 returns the second source register in bits 2-0.
func (in Instruction) SR2() uint16 {
	return uint16(in) & 0x7
}

// BaseR returns the base register in bits 8-6.
func (in Instruction) BaseR() uint16 {
	return uint16(in>>6) & 0x7
}

// Imm reports whether bit 5, the immediate mode flag of ADD and AND,
// is set.
func (in Instruction) Imm() bool {
	return in&(1<<5) != 0
}

// Imm5 returns the sign-extended 5-bit immediate in bits 4-0.
func (in Instruction) Imm5() uint16 {
	return signExtend(uint16(in)&0x1F, 5)
}

// Offset6 returns the sign-extended 6-bit offset in bits 5-0.
func (in Instruction) Offset6() uint16 {
	return signExtend(uint16(in)&0x3F, 6)
}

// Offset9 returns the sign-extended 9-bit PC-relative offset in
// bits 8-0.
func (in Instruction) Offset9() uint16 {
	return signExtend(uint16(in)&0x1FF, 9)
}

// Offset11 returns the sign-extended 11-bit PC-relative offset in
// bits 10-0.
func (in Instruction) Offset11() uint16 {
	return signExtend(uint16(in)&0x7FF, 11)
}

// CondMask returns the n/z/p branch condition mask in bits 11-9.
func (in Instruction) CondMask() Flag {
	return Flag(uint16(in>>9) & 0x7)
}

// Long reports whether bit 11, the JSR link bit selecting the 11-bit
// offset form over the base register form, is set.
func (in Instruction) Long() bool {
	return in&(1<<11) != 0
}

// Vector returns the trap vector in the low 8 bits.
func (in Instruction) Vector() TrapVector {
	return TrapVector(in & 0xFF)
}

// String returns the assembly language representation of the
// instruction word.
func (in Instruction) String() (out string) {
	op := in.Opcode()

	switch op {
	case OP_ADD, OP_AND:
		if in.Imm() {
			out = fmt.Sprintf("%v r%d, r%d, #%d", op, in.DR(), in.SR1(), int16(in.Imm5()))
		} else {
			out = fmt.Sprintf("%v r%d, r%d, r%d", op, in.DR(), in.SR1(), in.SR2())
		}
	case OP_NOT:
		out = fmt.Sprintf("%v r%d, r%d", op, in.DR(), in.SR1())
	case OP_BR:
		out = fmt.Sprintf("%v%v #%d", op, in.CondMask(), int16(in.Offset9()))
	case OP_JMP:
		if in.BaseR() == R7 {
			out = "ret"
		} else {
			out = fmt.Sprintf("%v r%d", op, in.BaseR())
		}
	case OP_JSR:
		if in.Long() {
			out = fmt.Sprintf("%v #%d", op, int16(in.Offset11()))
		} else {
			out = fmt.Sprintf("jsrr r%d", in.BaseR())
		}
	case OP_LD, OP_LDI, OP_LEA, OP_ST, OP_STI:
		out = fmt.Sprintf("%v r%d, #%d", op, in.DR(), int16(in.Offset9()))
	case OP_LDR, OP_STR:
		out = fmt.Sprintf("%v r%d, r%d, #%d", op, in.DR(), in.BaseR(), int16(in.Offset6()))
	case OP_TRAP:
		out = fmt.Sprintf("%v %v", op, in.Vector())
	default:
		out = op.String()
	}

	return
}
