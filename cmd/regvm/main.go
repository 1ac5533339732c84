// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/regvm/cpu"
	"github.com/ezrec/regvm/emulator"
	"github.com/ezrec/regvm/examples"
)

func fatalf(format string, args ...any) {
	log.Printf(format, args...)
	atexit.Exit(1)
}

func main() {
	var compile string
	var example string
	var limit int
	var listing bool
	var verbose bool

	defines := map[string]string{}

	flag.StringVar(&compile, "c", "", ".asm file to assemble and run")
	flag.StringVar(&example, "e", "", fmt.Sprintf("bundled example to run (%v)", strings.Join(examples.Names(), ", ")))
	flag.IntVar(&limit, "n", emulator.STEP_LIMIT, "Instruction limit, 0 for none")
	flag.BoolVar(&listing, "l", false, "Print the assembled listing, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Func("D", "Predefine NAME=VALUE", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("expected NAME=VALUE, got %q", arg)
		}
		defines[name] = value
		return nil
	})

	flag.Parse()

	if flag.NArg() != 0 {
		fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Cpu.Limit = limit

	atexit.Register(func() {
		if verbose {
			log.Printf("%v: %d instructions\n%v", os.Args[0], emu.Ticks(), emu.Cpu.String())
		}
	})

	var source string
	var name string
	switch {
	case len(compile) != 0 && len(example) != 0:
		fatalf("%v: -c and -e are exclusive", os.Args[0])
	case len(compile) != 0:
		data, err := os.ReadFile(compile)
		if err != nil {
			fatalf("%v: %v", compile, err)
		}
		source = string(data)
		name = compile
	case len(example) != 0:
		text, err := examples.Source(example)
		if err != nil {
			fatalf("%v: %v", example, err)
		}
		source = text
		name = example
	default:
		flag.Usage()
		atexit.Exit(2)
	}

	asm := &cpu.Assembler{Verbose: verbose}
	for define, value := range emu.Defines() {
		asm.Predefine(define, value)
	}
	for define, value := range defines {
		asm.Predefine(define, value)
	}

	prog, err := asm.Parse(strings.NewReader(source))
	if err != nil {
		fatalf("%v: %v", name, err)
	}

	if listing {
		for ip, inst := range prog.Instructions() {
			dbg := prog.Debug(ip)
			fmt.Printf("%04x  %-24v ; %d: %v\n", ip, inst, dbg.LineNo, strings.Join(dbg.Words, " "))
		}
		atexit.Exit(0)
	}

	emu.Program = prog
	regs, err := emu.Run()
	if err != nil {
		fatalf("%v: %v", name, err)
	}

	fmt.Println(regs)

	atexit.Exit(0)
}
