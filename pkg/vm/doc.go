// Package vm implements the UM-32 Universal Machine: a 14-instruction
// register machine over 32-bit unsigned words with dynamically
// allocated memory segments.
//
// Registers
//
// Eight 32-bit general purpose registers, numbered 0 through 7. There
// is no dedicated stack or status register; all arithmetic is modulo
// 2^32.
//
// Instruction format
//
// Every instruction is a single 32-bit word. For opcodes 0 through 12:
//
//	<Opcode:4><Unused:19><A:3><B:3><C:3>
//
// For opcode 13 (Load Value):
//
//	<Opcode:4><A:3><Value:25>
//
// Segments
//
// Memory is a table of independently sized word segments, each named
// by a 32-bit identifier. Segment 0 holds the executing program and is
// always mapped. Identifiers are issued densely and reused LIFO: the
// most recently unmapped identifier is the next one a Map Segment
// instruction returns.
//
// Termination
//
// The Halt instruction is the only successful termination. Division by
// zero, an out-of-range Output value, an invalid segment access, or an
// unrecognized opcode all abort the run.
package vm
