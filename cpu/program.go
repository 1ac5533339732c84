package cpu

import (
	"iter"
)

// Statement is a single assembled instruction with its source location.
type Statement struct {
	LineNo    int      // Source line of the mnemonic.
	Ip        int      // Byte offset of the instruction in the program.
	Words     []string // Source words of the instruction.
	Code      []byte   // Encoded instruction.
	LinkLabel string   // Jump label, resolved to Ip by the second pass.
}

// Program is an assembled program listing.
type Program struct {
	Statements []Statement
}

type Debug struct {
	*Statement
}

// Debug finds the statement containing the byte offset ip.
func (prog *Program) Debug(ip uint32) (dbg Debug) {
	for n, stmt := range prog.Statements {
		if int(ip) >= stmt.Ip && int(ip) < stmt.Ip+len(stmt.Code) {
			dbg = Debug{
				Statement: &prog.Statements[n],
			}
			break
		}
	}

	return
}

// Len returns the size of the program in bytes.
func (prog *Program) Len() (size int) {
	for _, stmt := range prog.Statements {
		size += len(stmt.Code)
	}

	return
}

// Binary returns the byte encoded program.
func (prog *Program) Binary() (code []byte) {
	code = make([]byte, 0, prog.Len())
	for _, stmt := range prog.Statements {
		code = append(code, stmt.Code...)
	}

	return
}

// Instructions iterates over the decoded program, keyed by offset.
func (prog *Program) Instructions() iter.Seq2[uint32, Instruction] {
	return Disassemble(prog.Binary())
}
