package cpu

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisters(t *testing.T) {
	assert := assert.New(t)

	var regs Registers

	for n, reg := range []Register{REG_AX, REG_BX, REG_CX, REG_DX, REG_EX, REG_FX} {
		value := int32(n*1000 - 2500)
		err := regs.Set(reg, value)
		assert.NoError(err, reg.String())
		got, err := regs.Get(reg)
		assert.NoError(err, reg.String())
		assert.Equal(value, got, reg.String())
	}

	assert.NoError(regs.Set(REG_CX, math.MinInt32))
	got, _ := regs.Get(REG_CX)
	assert.Equal(int32(math.MinInt32), got)
}

func TestRegistersUnknown(t *testing.T) {
	assert := assert.New(t)

	regs := Registers{1, 2, 3, 4, 5, 6}

	for _, reg := range []Register{0, 7, 0x80, 0xff} {
		before := regs

		err := regs.Set(reg, 99)
		assert.True(errors.Is(err, ErrRegisterUnknown(0)), reg.String())
		assert.Equal(ErrRegisterUnknown(reg), err)
		assert.Equal(before, regs)

		_, err = regs.Get(reg)
		assert.True(errors.Is(err, ErrRegisterUnknown(0)), reg.String())
	}
}

func TestRegistersString(t *testing.T) {
	assert := assert.New(t)

	regs := Registers{5, 3, 8, 0, 0, -1}
	assert.Equal("[AX: 5, BX: 3, CX: 8, DX: 0, EX: 0, FX: -1]", regs.String())

	var order []Register
	for reg := range regs.All() {
		order = append(order, reg)
		if reg == REG_CX {
			break
		}
	}
	assert.Equal([]Register{REG_AX, REG_BX, REG_CX}, order)
}
