package cpu

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"
	"strings"
)

// State is the execution state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
	STATE_FAULTED = State(2) // faulted
)

var _cpu_defines = map[string]string{
	"REG_AX": fmt.Sprintf("%d", REG_AX),
	"REG_BX": fmt.Sprintf("%d", REG_BX),
	"REG_CX": fmt.Sprintf("%d", REG_CX),
	"REG_DX": fmt.Sprintf("%d", REG_DX),
	"REG_EX": fmt.Sprintf("%d", REG_EX),
	"REG_FX": fmt.Sprintf("%d", REG_FX),
}

// Cpu is the simulation context for the register machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.
	Limit   int  // Maximum instructions per run, or 0 for no limit.

	Ip       uint32    // Current instruction pointer.
	Register Registers // Register bank.
	State    State     // Current execution state.
	Fault    error     // Error that faulted the CPU.

	Ticks int // Instructions executed since Load.

	code []byte
}

// NewCpu creates a new CPU with an empty program.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Load installs a program and resets the CPU.
func (cpu *Cpu) Load(code []byte) {
	cpu.code = slices.Clone(code)
	cpu.Reset()
}

// Code returns the loaded program.
func (cpu *Cpu) Code() []byte {
	return cpu.code
}

// Reset the CPU state.
// - Clears the registers.
// - Zeros the instruction pointer and tick counter.
// - Returns to the running state.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset, %d byte program", len(cpu.code))
	}

	clear(cpu.Register[:])
	cpu.Ip = 0
	cpu.Ticks = 0
	cpu.State = STATE_RUNNING
	cpu.Fault = nil
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "% 5s: %04x\n", "ip", cpu.Ip)
	fmt.Fprintf(&sb, "% 5s: %v\n", "state", cpu.State)
	for reg, value := range cpu.Register.All() {
		fmt.Fprintf(&sb, "% 5s: %08X (%d)\n", reg, uint32(value), value)
	}

	return sb.String()
}

// Fetch decodes the instruction at the instruction pointer.
// Returns ErrIpEmpty once the instruction pointer is past the program.
func (cpu *Cpu) Fetch() (inst Instruction, err error) {
	if int(cpu.Ip) >= len(cpu.code) {
		err = ErrIpEmpty
		return
	}

	return Decode(cpu.code, cpu.Ip)
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	switch cpu.State {
	case STATE_HALTED:
		return ErrIpEmpty
	case STATE_FAULTED:
		return cpu.Fault
	}

	defer func() {
		switch {
		case err == nil:
		case errors.Is(err, ErrIpEmpty):
			cpu.State = STATE_HALTED
		default:
			cpu.State = STATE_FAULTED
			cpu.Fault = err
		}
	}()

	if cpu.Limit > 0 && cpu.Ticks >= cpu.Limit {
		err = ErrStepLimit
		return
	}

	inst, err := cpu.Fetch()
	if err != nil {
		return
	}

	err = cpu.Execute(inst)

	return
}

// Execute executes a single decoded instruction.
// A failing instruction leaves the registers and instruction pointer unchanged.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	defer func() {
		if err != nil && !errors.Is(err, ErrOpcode(0)) {
			err = errors.Join(ErrOpcode(inst.Opcode), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%04x: %v", cpu.Ip, inst)
	}

	op := inst.Opcode
	if !op.Valid() {
		err = ErrOpcodeUnknown(op)
		return
	}

	args := inst.Operands
	if len(args) != op.Arity() {
		err = ErrOperandCount
		return
	}

	next_ip := cpu.Ip + inst.Width

	switch op {
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV:
		var a, b int32
		var dst Register
		a, err = cpu.getValue(args[0])
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		b, err = cpu.getValue(args[1])
		if err != nil {
			err = errors.Join(ErrOpcodeArg2, err)
			return
		}
		dst, err = cpu.getTarget(args[2])
		if err != nil {
			err = errors.Join(ErrOpcodeArg3, err)
			return
		}
		var output int32
		switch op {
		case OP_ADD:
			output = a + b
		case OP_SUB:
			output = a - b
		case OP_MUL:
			output = a * b
		case OP_DIV:
			if b == 0 {
				err = ErrDivideByZero
				return
			}
			// MinInt32 / -1 wraps to MinInt32, remainder 0.
			output = a / b
			_ = cpu.Register.Set(dst, output)
			output = a % b
			dst = REG_AX
		}
		_ = cpu.Register.Set(dst, output)
	case OP_MOV:
		var value int32
		var dst Register
		value, err = cpu.getValue(args[0])
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		dst, err = cpu.getTarget(args[1])
		if err != nil {
			err = errors.Join(ErrOpcodeArg2, err)
			return
		}
		_ = cpu.Register.Set(dst, value)
	case OP_CND:
		var a, b int32
		a, err = cpu.getValue(args[0])
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		b, err = cpu.getValue(args[1])
		if err != nil {
			err = errors.Join(ErrOpcodeArg2, err)
			return
		}
		_ = cpu.Register.Set(REG_FLAG, int32(cmp.Compare(a, b)))
	case OP_JMP, OP_JEQ, OP_JNE, OP_JGT, OP_JLT, OP_JGE, OP_JLE:
		var target int32
		target, err = cpu.getJump(args[0])
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		flag, _ := cpu.Register.Get(REG_FLAG)
		if op.Taken(flag) {
			next_ip = uint32(target)
		}
	default:
		err = ErrOpcodeUnknown(op)
		return
	}

	cpu.Ip = next_ip
	cpu.Ticks += 1

	return
}

// Run loads code and executes it until it runs off the end of the program,
// returning the final register file.
func (cpu *Cpu) Run(code []byte) (regs Registers, err error) {
	cpu.Load(code)

	for {
		err = cpu.Tick()
		if errors.Is(err, ErrIpEmpty) {
			err = nil
			break
		}
		if err != nil {
			return
		}
	}

	regs = cpu.Register

	return
}

// getValue gets the value of a register or constant operand.
func (cpu *Cpu) getValue(arg Operand) (value int32, err error) {
	switch arg.Kind {
	case OPERAND_REGISTER:
		value, err = cpu.Register.Get(arg.Register)
	case OPERAND_CONSTANT:
		value = arg.Value
	default:
		err = ErrOperandUnknown(arg.Kind)
	}

	return
}

// getTarget gets the destination register of an operand.
func (cpu *Cpu) getTarget(arg Operand) (reg Register, err error) {
	if arg.Kind != OPERAND_REGISTER {
		err = ErrDestinationInvalid
		return
	}
	if !arg.Register.Valid() {
		err = ErrRegisterUnknown(arg.Register)
		return
	}

	reg = arg.Register
	return
}

// getJump gets the target address of a jump operand.
func (cpu *Cpu) getJump(arg Operand) (target int32, err error) {
	switch arg.Kind {
	case OPERAND_CONSTANT:
		target = arg.Value
	case OPERAND_REGISTER:
		err = ErrJumpTargetInvalid
	default:
		err = ErrOperandUnknown(arg.Kind)
	}

	return
}
