package cpu

// Opcode is an instruction operation code.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD = Opcode(1)  // add
	OP_SUB = Opcode(2)  // sub
	OP_MUL = Opcode(3)  // mul
	OP_DIV = Opcode(4)  // div
	OP_CND = Opcode(5)  // cnd
	OP_JMP = Opcode(6)  // jmp
	OP_JEQ = Opcode(7)  // jeq
	OP_JNE = Opcode(8)  // jne
	OP_JGT = Opcode(9)  // jgt
	OP_JLT = Opcode(10) // jlt
	OP_JGE = Opcode(11) // jge
	OP_JLE = Opcode(12) // jle
	OP_MOV = Opcode(13) // mov
)

// Register is a register identifier.
type Register uint8

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_AX = Register(1) // ax
	REG_BX = Register(2) // bx
	REG_CX = Register(3) // cx
	REG_DX = Register(4) // dx
	REG_EX = Register(5) // ex
	REG_FX = Register(6) // fx
)

// REG_FLAG is the register written by OP_CND and tested by conditional jumps.
const REG_FLAG = REG_FX

// Valid returns true if the register exists in the register file.
func (reg Register) Valid() bool {
	return reg >= REG_AX && reg <= REG_FX
}

// opcodeArity is the number of operands that follow each opcode.
var opcodeArity = [...]int{
	OP_ADD: 3, // a, b, dst
	OP_SUB: 3,
	OP_MUL: 3,
	OP_DIV: 3,
	OP_CND: 2, // a, b
	OP_JMP: 1, // target
	OP_JEQ: 1,
	OP_JNE: 1,
	OP_JGT: 1,
	OP_JLT: 1,
	OP_JGE: 1,
	OP_JLE: 1,
	OP_MOV: 2, // value, dst
}

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() bool {
	return op >= OP_ADD && op <= OP_MOV
}

// Arity returns the number of operands encoded after the opcode.
func (op Opcode) Arity() int {
	if !op.Valid() {
		return 0
	}
	return opcodeArity[op]
}

// IsJump returns true for the unconditional and conditional jumps.
func (op Opcode) IsJump() bool {
	return op >= OP_JMP && op <= OP_JLE
}

// Taken returns true if a jump opcode transfers control for the given flag value.
func (op Opcode) Taken(flag int32) bool {
	switch op {
	case OP_JMP:
		return true
	case OP_JEQ:
		return flag == 0
	case OP_JNE:
		return flag != 0
	case OP_JGT:
		return flag > 0
	case OP_JLT:
		return flag < 0
	case OP_JGE:
		return flag >= 0
	case OP_JLE:
		return flag <= 0
	}

	return false
}
