package cpu

import (
	"errors"

	"github.com/ezrec/regvm/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrIpEmpty            = errors.New(f("ip empty"))
	ErrStepLimit          = errors.New(f("step limit exceeded"))
	ErrTruncated          = errors.New(f("instruction truncated"))
	ErrOperandCount       = errors.New(f("operand count"))
	ErrDestinationInvalid = errors.New(f("destination is not a register"))
	ErrDivideByZero       = errors.New(f("division by zero"))
	ErrJumpTargetInvalid  = errors.New(f("jump target is a register"))

	// Operand positions
	ErrOpcodeArg1 = errors.New(f("arg1"))
	ErrOpcodeArg2 = errors.New(f("arg2"))
	ErrOpcodeArg3 = errors.New(f("arg3"))

	// Assembler errors
	ErrLabelDuplicate = errors.New(f("label duplicated"))
	ErrTargetMissing  = errors.New(f("target missing"))
	ErrOperandMissing = errors.New(f("operand missing"))
)

// opcodeArg maps operand index to its position error.
var opcodeArg = [...]error{ErrOpcodeArg1, ErrOpcodeArg2, ErrOpcodeArg3}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrTokenUnexpected string

func (err ErrTokenUnexpected) Error() string {
	return f("'%v' unexpected", string(err))
}

// ErrOpcode annotates an error with the opcode that caused it.
type ErrOpcode Opcode

func (eo ErrOpcode) Error() string {
	return f("opcode %v", Opcode(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrOpcodeUnknown byte

func (eo ErrOpcodeUnknown) Error() string {
	return f("unknown opcode 0x%02x", byte(eo))
}

func (eo ErrOpcodeUnknown) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcodeUnknown)
	return
}

type ErrRegisterUnknown byte

func (er ErrRegisterUnknown) Error() string {
	return f("unknown register 0x%02x", byte(er))
}

func (er ErrRegisterUnknown) Is(err error) (ok bool) {
	_, ok = err.(ErrRegisterUnknown)
	return
}

type ErrOperandUnknown byte

func (eo ErrOperandUnknown) Error() string {
	return f("unknown operand type 0x%02x", byte(eo))
}

func (eo ErrOperandUnknown) Is(err error) (ok bool) {
	_, ok = err.(ErrOperandUnknown)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
