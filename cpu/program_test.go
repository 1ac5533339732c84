package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog, err := Assemble(strings.Join([]string{
		"mov 1 ax",     // 0..8
		".again",       // 8
		"add ax ax ax", // 8..15
		"jmp .again",   // 15..21
	}, "\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	table := [](struct {
		ip     uint32
		lineno int
	}){
		{0, 1},
		{7, 1},
		{8, 3},
		{14, 3},
		{15, 4},
		{20, 4},
	}

	for _, entry := range table {
		dbg := prog.Debug(entry.ip)
		if assert.NotNil(dbg.Statement, "ip %d", entry.ip) {
			assert.Equal(entry.lineno, dbg.LineNo, "ip %d", entry.ip)
		}
	}

	dbg := prog.Debug(21)
	assert.Nil(dbg.Statement)
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Statements: []Statement{
			{LineNo: 1, Ip: 0, Words: []string{"cnd", "ax", "bx"}, Code: encode(MakeInstruction(OP_CND, ax, bx))},
			{LineNo: 2, Ip: 5, Words: []string{"jeq", ".x"}, Code: encode(MakeInstruction(OP_JEQ, imm(0))), LinkLabel: ".x"},
		},
	}

	assert.Equal(11, prog.Len())
	assert.Equal([]byte{5, 1, 1, 1, 2, 7, 2, 0, 0, 0, 0}, prog.Binary())

	var text []string
	for _, inst := range prog.Instructions() {
		text = append(text, inst.String())
	}
	assert.Equal([]string{"cnd ax bx", "jeq 0"}, text)
}
