// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/io"
)

// patchList collects repeated -p flags.
type patchList []string

func (pl *patchList) String() string {
	return strings.Join(*pl, " ")
}

func (pl *patchList) Set(value string) error {
	*pl = append(*pl, value)
	return nil
}

func main() {
	log.SetPrefix("intcode: ")
	log.SetFlags(0)

	var config string
	var dialect string
	var input string
	var patches patchList
	var strict bool
	var limit int
	var memory bool
	var search int
	var trace bool
	var verbose bool
	var listing bool

	flag.StringVar(&config, "c", "", ".yaml run configuration")
	flag.StringVar(&dialect, "d", "", "Dialect: arithmetic, minimal or extended")
	flag.StringVar(&input, "i", "", "Comma separated input values, or '-' to read them from stdin")
	flag.Var(&patches, "p", "Patch memory with address=value (repeatable)")
	flag.BoolVar(&strict, "strict", false, "Fault on any instruction but halt after a non-zero output")
	flag.IntVar(&limit, "l", 0, "Step limit, 0 for none")
	flag.BoolVar(&memory, "m", false, "Print the final memory")
	flag.IntVar(&search, "s", -1, "Search for the noun and verb producing this value")
	flag.BoolVar(&trace, "t", false, "Print the instruction trace")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&listing, "x", false, "List the program, do not execute")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <program.txt | ->\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
	}

	cfg := &emulator.Config{}
	if len(config) != 0 {
		var err error
		cfg, err = emulator.LoadConfig(config)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Flags override the configuration.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "d":
			cfg.Dialect = dialect
		case "strict":
			cfg.Strict = &strict
		case "l":
			cfg.StepLimit = limit
		case "t":
			cfg.Trace = trace
		case "v":
			cfg.Verbose = verbose
		}
	})
	cfg.Patch = append(cfg.Patch, patches...)

	stream := input == "-"
	if stream && flag.Arg(0) == "-" {
		log.Fatal("-i -: program is already read from stdin")
	}

	if len(input) != 0 && !stream {
		values, err := io.ParseImage(input)
		if err != nil {
			log.Fatalf("-i: %v", err)
		}
		cfg.Input = values
	}

	emu, err := cfg.Emulator()
	if err != nil {
		log.Fatal(err)
	}

	image, err := readProgram(flag.Arg(0))
	if err != nil {
		log.Fatalf("%v: %v", flag.Arg(0), err)
	}

	if listing {
		for _, line := range intcode.Listing(image, emu.Dialect) {
			fmt.Println(line)
		}
		return
	}

	labelled := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	if search >= 0 {
		noun, verb, err := emu.Search(image, search)
		if err != nil {
			log.Fatal(err)
		}
		if labelled {
			fmt.Printf("noun %d verb %d: %d\n", noun, verb, 100*noun+verb)
		} else {
			fmt.Println(100*noun + verb)
		}
		return
	}

	out := &io.Tape{Output: os.Stdout}
	if !labelled {
		emu.Writer = out
	}

	err = emu.Execute(image, inputReader(stream, cfg.Input, os.Stdin))

	var output []int
	if emu.Machine != nil {
		output = emu.Output
	}

	if labelled {
		for _, value := range output {
			fmt.Printf("output: %d\n", value)
		}
	}
	if cfg.Trace && emu.Machine != nil {
		fmt.Fprintf(os.Stderr, "trace: %v\n", emu.Trace)
	}
	if err != nil {
		if cfg.Verbose && emu.Machine != nil {
			fmt.Fprint(os.Stderr, emu.Machine.String())
		}
		log.Fatal(err)
	}

	if memory {
		if labelled {
			fmt.Printf("memory: %v\n", io.FormatImage(emu.Memory))
		} else {
			fmt.Println(io.FormatImage(emu.Memory))
		}
	}
}

// inputReader supplies the store input instruction, either by streaming
// values from stdin or from the configured list.
func inputReader(stream bool, values []int, stdin *os.File) intcode.Reader {
	if stream {
		return &io.Tape{Input: stdin}
	}

	return emulator.Input(values...)
}

// readProgram reads a program image from a file, or stdin for '-'.
func readProgram(path string) (image []int, err error) {
	if path == "-" {
		return io.ReadImage(os.Stdin)
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	image, err = io.ReadImage(inf)
	return
}
