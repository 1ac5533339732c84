package cpu

import (
	"encoding/binary"
	"fmt"
)

// OperandKind is the type tag that precedes every encoded operand.
type OperandKind uint8

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_REGISTER = OperandKind(1) // register
	OPERAND_CONSTANT = OperandKind(2) // constant
)

// Encoded operand widths, including the type tag.
const (
	REGISTER_WIDTH = 2
	CONSTANT_WIDTH = 5
)

// Operand is either a register reference or a 32-bit constant.
type Operand struct {
	Kind     OperandKind
	Register Register // Valid when Kind is OPERAND_REGISTER.
	Value    int32    // Valid when Kind is OPERAND_CONSTANT.
}

// RegisterOperand creates a register operand.
func RegisterOperand(reg Register) Operand {
	return Operand{Kind: OPERAND_REGISTER, Register: reg}
}

// ConstantOperand creates a constant operand.
func ConstantOperand(value int32) Operand {
	return Operand{Kind: OPERAND_CONSTANT, Value: value}
}

// Width returns the encoded size of the operand in bytes.
func (arg Operand) Width() int {
	if arg.Kind == OPERAND_REGISTER {
		return REGISTER_WIDTH
	}
	return CONSTANT_WIDTH
}

// AppendTo appends the encoded operand to code.
// Constants are stored most significant byte first.
func (arg Operand) AppendTo(code []byte) []byte {
	switch arg.Kind {
	case OPERAND_REGISTER:
		return append(code, byte(OPERAND_REGISTER), byte(arg.Register))
	default:
		code = append(code, byte(OPERAND_CONSTANT))
		return binary.BigEndian.AppendUint32(code, uint32(arg.Value))
	}
}

// String returns the assembly language spelling of the operand.
func (arg Operand) String() string {
	switch arg.Kind {
	case OPERAND_REGISTER:
		return arg.Register.String()
	case OPERAND_CONSTANT:
		return fmt.Sprintf("%d", arg.Value)
	}

	return arg.Kind.String()
}

// DecodeOperand decodes the operand at offset in code, returning it and its
// encoded width.
func DecodeOperand(code []byte, offset uint32) (arg Operand, width uint32, err error) {
	at := int(offset)
	if at >= len(code) {
		err = ErrTruncated
		return
	}

	kind := OperandKind(code[at])
	switch kind {
	case OPERAND_REGISTER:
		if at+REGISTER_WIDTH > len(code) {
			err = ErrTruncated
			return
		}
		arg = RegisterOperand(Register(code[at+1]))
		width = REGISTER_WIDTH
	case OPERAND_CONSTANT:
		if at+CONSTANT_WIDTH > len(code) {
			err = ErrTruncated
			return
		}
		arg = ConstantOperand(int32(binary.BigEndian.Uint32(code[at+1 : at+CONSTANT_WIDTH])))
		width = CONSTANT_WIDTH
	default:
		err = ErrOperandUnknown(kind)
	}

	return
}
