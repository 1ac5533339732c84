package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Registers is the register file, indexed by Register - REG_AX.
type Registers [6]int32

// Get returns the value of a register.
func (regs *Registers) Get(reg Register) (value int32, err error) {
	if !reg.Valid() {
		err = ErrRegisterUnknown(reg)
		return
	}

	value = regs[reg-REG_AX]
	return
}

// Set sets the value of a register.
// An unknown register leaves the register file untouched.
func (regs *Registers) Set(reg Register, value int32) (err error) {
	if !reg.Valid() {
		err = ErrRegisterUnknown(reg)
		return
	}

	regs[reg-REG_AX] = value
	return
}

// All iterates over the registers in identifier order.
func (regs Registers) All() iter.Seq2[Register, int32] {
	return func(yield func(reg Register, value int32) bool) {
		for n, value := range regs {
			if !yield(REG_AX+Register(n), value) {
				return
			}
		}
	}
}

// String returns the register file as "[AX: 0, BX: 0, ...]".
func (regs Registers) String() string {
	var parts []string
	for reg, value := range regs.All() {
		parts = append(parts, fmt.Sprintf("%v: %d", strings.ToUpper(reg.String()), value))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
