// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"math"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// LABEL_PREFIX starts every label definition word.
const LABEL_PREFIX = "."

// Predefined system equates
var sysEquate = map[string]string{
	"INT32_MIN": fmt.Sprintf("%d", math.MinInt32),
	"INT32_MAX": fmt.Sprintf("%d", math.MaxInt32),
}

// Assembler is a two pass assembler for the regvm system.
type Assembler struct {
	Verbose bool           // If set, verbosely logs the assembler actions.
	Label   map[string]int // Map of jump labels to byte offsets.

	predefine map[string]string // Predefines
	equate    map[string]string // Equates in effect during Parse.
}

// Predefine defines a new equate or redefines an existing equate.
// Equates substitute for operand words, and are visible to $(...)
// expressions.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// Assemble assembles source text with a default assembler.
func Assemble(text string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(text))
}

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = map[string]Opcode{
	"add": OP_ADD,
	"sub": OP_SUB,
	"mul": OP_MUL,
	"div": OP_DIV,
	"mov": OP_MOV,
	"cnd": OP_CND,
	"jmp": OP_JMP,
	"jeq": OP_JEQ,
	"jne": OP_JNE,
	"jgt": OP_JGT,
	"jlt": OP_JLT,
	"jge": OP_JGE,
	"jle": OP_JLE,
}

// registerMap maps register names to registers.
var registerMap = map[string]Register{
	"ax": REG_AX,
	"bx": REG_BX,
	"cx": REG_CX,
	"dx": REG_DX,
	"ex": REG_EX,
	"fx": REG_FX,
}

// token is a single source word and its location.
type token struct {
	LineNo int
	Line   string
	Word   string
}

func (tok token) errorf(err error) error {
	return &ErrSyntax{LineNo: tok.LineNo, Line: tok.Line, Err: err}
}

// isLabel returns true if the word is a label definition.
func isLabel(word string) bool {
	return strings.HasPrefix(word, LABEL_PREFIX)
}

// valueOf returns the value of a numeric literal.
// Values from INT32_MIN to 0xffffffff are accepted; unsigned values
// wrap to their two's complement.
func valueOf(word string) (value int32, err error) {
	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil || v64 > math.MaxUint32 || v64 < math.MinInt32 {
		err = ErrParseNumber(word)
		return
	}

	value = int32(uint32(v64))
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int32, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.equate {
		var value32 int32
		value32, err = valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 > math.MaxUint32 || st_int64 < math.MinInt32 {
		err = ErrParseExpression(expr)
		return
	}
	value = int32(uint32(st_int64))
	return
}

// operandOf parses a word as a register or constant operand.
func (asm *Assembler) operandOf(word string) (arg Operand, err error) {
	equate, ok := asm.equate[word]
	if ok {
		word = equate
	}

	reg, ok := registerMap[word]
	if ok {
		arg = RegisterOperand(reg)
		return
	}

	_, is_op := opcodeMap[word]
	if is_op || isLabel(word) {
		err = ErrTokenUnexpected(word)
		return
	}

	var value int32
	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		value, err = asm.parenEval(word[2 : len(word)-1])
	} else {
		value, err = valueOf(word)
	}
	if err != nil {
		return
	}

	arg = ConstantOperand(value)
	return
}

// scan splits the input into words. Text after a ';' is a comment.
func (asm *Assembler) scan(input io.Reader) (tokens []token, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line := strings.TrimSpace(text_comment[0])
		for _, word := range strings.Fields(line) {
			tokens = append(tokens, token{LineNo: lineno, Line: line, Word: word})
		}
	}

	err = scanner.Err()
	return
}

// measure is the first pass. It encodes every instruction with its exact
// width, leaving jump targets as placeholders, and records the byte offset
// of each label.
func (asm *Assembler) measure(tokens []token) (stmts []Statement, labels map[string]int, err error) {
	labels = make(map[string]int, 16)

	ip := 0
	for n := 0; n < len(tokens); {
		tok := tokens[n]
		n++

		if isLabel(tok.Word) {
			_, ok := labels[tok.Word]
			if ok {
				err = tok.errorf(ErrLabelDuplicate)
				return
			}
			labels[tok.Word] = ip
			continue
		}

		op, ok := opcodeMap[tok.Word]
		if !ok {
			err = tok.errorf(ErrTokenUnexpected(tok.Word))
			return
		}

		stmt := Statement{LineNo: tok.LineNo, Ip: ip, Words: []string{tok.Word}}
		var inst Instruction
		if op.IsJump() {
			if n >= len(tokens) {
				err = tok.errorf(ErrTargetMissing)
				return
			}
			target := tokens[n]
			n++
			stmt.Words = append(stmt.Words, target.Word)
			stmt.LinkLabel = target.Word
			inst = MakeInstruction(op, ConstantOperand(0))
		} else {
			var args []Operand
			for range op.Arity() {
				if n >= len(tokens) {
					err = tok.errorf(ErrOperandMissing)
					return
				}
				word := tokens[n]
				n++
				var arg Operand
				arg, err = asm.operandOf(word.Word)
				if err != nil {
					err = word.errorf(err)
					return
				}
				stmt.Words = append(stmt.Words, word.Word)
				args = append(args, arg)
			}
			inst = MakeInstruction(op, args...)
		}

		stmt.Code = inst.AppendTo(nil)
		ip += len(stmt.Code)
		stmts = append(stmts, stmt)
	}

	return
}

// emit is the second pass. It resolves jump targets from the label offsets
// found by the first pass.
func (asm *Assembler) emit(stmts []Statement, labels map[string]int) (err error) {
	for n := range stmts {
		stmt := &stmts[n]

		if len(stmt.LinkLabel) == 0 {
			continue
		}
		label := stmt.LinkLabel
		ip, ok := labels[label]
		if !ok {
			err = &ErrSyntax{LineNo: stmt.LineNo, Line: strings.Join(stmt.Words, " "), Err: ErrLabelMissing(label)}
			return
		}
		if asm.Verbose {
			log.Printf("%v: link %v => %04x", stmt.LineNo, label, ip)
		}
		stmt.Code = ConstantOperand(int32(ip)).AppendTo(stmt.Code[:1])
	}

	return
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	asm.equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.equate[attr] = val
	}

	tokens, err := asm.scan(input)
	if err != nil {
		return
	}

	stmts, labels, err := asm.measure(tokens)
	if err != nil {
		return
	}

	err = asm.emit(stmts, labels)
	if err != nil {
		return
	}

	asm.Label = labels
	prog = &Program{
		Statements: stmts,
	}

	return
}
