// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/ias/asm"
	"github.com/ezrec/ias/emulator"
)

func main() {
	var compile string
	var memory string
	var limit int
	var save bool
	var output string
	var dump bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".ias assembly file to compile")
	flag.StringVar(&memory, "m", "", "memory map file to load")
	flag.IntVar(&limit, "n", emulator.MAX_TICKS, "Tick limit, 0 for none")
	flag.BoolVar(&save, "s", false, "Save memory map, do not execute")
	flag.StringVar(&output, "o", "-", "Memory map output")
	flag.BoolVar(&dump, "d", false, "Dump CPU state when done")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	if len(memory) != 0 {
		err := emu.LoadFile(memory)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Compile a new program.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		assembler := &asm.Assembler{Verbose: verbose}
		assembler.PredefineAll(emu.Defines())
		emu.Program, err = assembler.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	if !save {
		ticks, err := emu.Run(limit)
		if dump {
			fmt.Fprint(os.Stderr, emu.Cpu.DumpCPU())
		}
		if err != nil {
			log.Fatal(err)
		}
		if verbose {
			log.Printf("%v: halted after %d ticks", os.Args[0], ticks)
		}
	}

	if output == "-" {
		err = emu.Cpu.WriteRAM(os.Stdout)
	} else {
		err = emu.SaveFile(output)
	}
	if err != nil {
		log.Fatal(err)
	}
}
