package cpu

import (
	"errors"
	"iter"
	"strings"
)

// Instruction is a decoded opcode with its operands.
type Instruction struct {
	Opcode   Opcode
	Operands []Operand
	Width    uint32 // Encoded size in bytes.
}

// MakeInstruction creates an instruction, computing its encoded width.
func MakeInstruction(op Opcode, args ...Operand) (inst Instruction) {
	inst = Instruction{Opcode: op, Operands: args, Width: 1}
	for _, arg := range args {
		inst.Width += uint32(arg.Width())
	}

	return
}

// AppendTo appends the encoded instruction to code.
func (inst Instruction) AppendTo(code []byte) []byte {
	code = append(code, byte(inst.Opcode))
	for _, arg := range inst.Operands {
		code = arg.AppendTo(code)
	}

	return code
}

// String returns the assembly language representation of this instruction.
func (inst Instruction) String() string {
	words := []string{inst.Opcode.String()}
	for _, arg := range inst.Operands {
		words = append(words, arg.String())
	}

	return strings.Join(words, " ")
}

// Decode decodes the instruction at ip in code.
func Decode(code []byte, ip uint32) (inst Instruction, err error) {
	if int(ip) >= len(code) {
		err = ErrTruncated
		return
	}

	op := Opcode(code[ip])
	if !op.Valid() {
		err = ErrOpcodeUnknown(code[ip])
		return
	}

	inst = Instruction{
		Opcode:   op,
		Operands: make([]Operand, 0, op.Arity()),
		Width:    1,
	}

	for n := range op.Arity() {
		var arg Operand
		var width uint32
		arg, width, err = DecodeOperand(code, ip+inst.Width)
		if err != nil {
			err = errors.Join(ErrOpcode(op), opcodeArg[n], err)
			return
		}
		inst.Operands = append(inst.Operands, arg)
		inst.Width += width
	}

	return
}

// Disassemble iterates over the instructions in code, keyed by offset.
// Iteration stops at the first instruction that cannot be decoded.
func Disassemble(code []byte) iter.Seq2[uint32, Instruction] {
	return func(yield func(ip uint32, inst Instruction) bool) {
		var ip uint32
		for int(ip) < len(code) {
			inst, err := Decode(code, ip)
			if err != nil {
				return
			}
			if !yield(ip, inst) {
				return
			}
			ip += inst.Width
		}
	}
}
