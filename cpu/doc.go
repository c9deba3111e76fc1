// Package cpu implements the LC-3 execution engine.
//
// The machine has a flat 64K-word address space, eight 16-bit general
// purpose registers, a program counter, and a three-way condition flag
// register. Sixteen opcodes cover arithmetic, bitwise logic, control
// flow, memory indirection, and a software trap mechanism that
// provides character I/O through six built-in routines.
//
// Two addresses in the reserved range model a memory-mapped keyboard:
// reading the status register polls the attached key source and
// latches the next key into the data register before the read
// completes. The keyboard and display are injected interfaces, so the
// engine runs deterministically against recorded input in tests.
package cpu
