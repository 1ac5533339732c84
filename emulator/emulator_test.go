package emulator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/regvm/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.Equal(STEP_LIMIT, emu.Cpu.Limit)

	regs, err := emu.Run()
	assert.NoError(err)
	assert.Equal(cpu.Registers{}, regs)
}

func TestEmulatorDefines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	var names []string
	defines := map[string]string{}
	for name, value := range emu.Defines() {
		names = append(names, name)
		defines[name] = value
	}

	assert.Equal([]string{"REG_AX", "REG_BX", "REG_CX", "REG_DX", "REG_EX", "REG_FX", "STEP_LIMIT"}, names)
	assert.Equal("1000000", defines["STEP_LIMIT"])
	assert.Equal("6", defines["REG_FX"])
}

func doAssemble(program []string, t *testing.T) (prog *cpu.Program) {
	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatalf("%v", err)
	}

	return
}

func TestEmulatorTick(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"mov 2 cx",
		".loop",
		"sub cx 1 cx",
		"cnd cx 0",
		"jne .loop",
	}

	emu := NewEmulator()
	emu.Program = doAssemble(program, t)
	assert.NoError(emu.Reset())

	// Source line of every executed instruction, in order.
	expected := []int{1, 3, 4, 5, 3, 4, 5}
	for n, lineno := range expected {
		assert.Equal(lineno, emu.LineNo(), "step %d", n)
		done, err := emu.Tick()
		assert.NoError(err)
		assert.False(done)
	}

	assert.Equal(0, emu.LineNo())
	assert.Equal(len(expected), emu.Ticks())
	assert.Equal(emu.Program.Len(), emu.Ip())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = doAssemble([]string{
		"mov 5 ax",
		"mov 3 bx",
		"add ax bx cx",
	}, t)

	regs, err := emu.Run()
	assert.NoError(err)
	assert.Equal(cpu.Registers{5, 3, 8, 0, 0, 0}, regs)

	// Runs are repeatable.
	regs, err = emu.Run()
	assert.NoError(err)
	assert.Equal(cpu.Registers{5, 3, 8, 0, 0, 0}, regs)
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = doAssemble([]string{
		"mov 7 ax",
		"; divide by bx",
		"div ax bx cx",
	}, t)

	_, err := emu.Run()
	assert.ErrorIs(err, cpu.ErrDivideByZero)

	var runtime *ErrRuntime
	if assert.True(errors.As(err, &runtime)) {
		assert.Equal(3, runtime.LineNo)
	}
	assert.Equal(cpu.Registers{7}, emu.Cpu.Register)
}

func TestEmulatorStepLimit(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Cpu.Limit = 100
	emu.Program = doAssemble([]string{
		".L",
		"jmp .L",
	}, t)

	_, err := emu.Run()
	assert.ErrorIs(err, cpu.ErrStepLimit)
	assert.Equal(100, emu.Ticks())
}
