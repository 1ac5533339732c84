// Package cpu implements the register machine and assembler for the regvm system.
//
// The CPU has six signed 32-bit registers (ax-fx), with fx holding the result
// of the most recent comparison. Programs are byte streams of variable width
// instructions: one opcode byte followed by register or constant operands.
// Execution ends normally when the instruction pointer runs off the end of the
// program.
//
// The assembler translates whitespace separated mnemonics into a program,
// resolving '.label' jump targets to byte offsets in two passes.
package cpu
