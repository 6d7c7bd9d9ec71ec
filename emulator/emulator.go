// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"
	"maps"

	"github.com/ezrec/intcode/intcode"
)

const (
	NOUN_ADDRESS = 1   // Address patched with the noun by Search.
	VERB_ADDRESS = 2   // Address patched with the verb by Search.
	SEARCH_LIMIT = 100 // Nouns and verbs are searched from 0 to SEARCH_LIMIT-1.
)

// Emulator runs Intcode programs, one machine per run.
type Emulator struct {
	Verbose   bool            // If set, enables verbose logging.
	Tracing   bool            // If set, records the instruction trace.
	Strict    bool            // If set, only halt may follow a non-zero output.
	Dialect   intcode.Dialect // Instruction set of the machine.
	StepLimit int             // Maximum steps per run, 0 for no limit.

	Patch   []string       // Memory patches applied before every run.
	Defines map[string]int // Names available to patch expressions.
	Writer  intcode.Writer // Optional sink for emitted values.

	*intcode.Machine // Machine of the most recent run.
}

// NewEmulator creates a new emulator for a dialect.
func NewEmulator(dialect intcode.Dialect) (emu *Emulator) {
	emu = &Emulator{
		Dialect: dialect,
		Strict:  dialect == intcode.DIALECT_MINIMAL,
	}

	return
}

// Load creates a machine for a run of image. The configured patches, and
// then the extra patches, are applied to the machine's copy of the image.
func (emu *Emulator) Load(image []int, input intcode.Reader, extra ...Patch) (err error) {
	m := intcode.NewMachine(image, emu.Dialect)
	m.Verbose = emu.Verbose
	m.Tracing = emu.Tracing
	m.Strict = emu.Strict
	m.StepLimit = emu.StepLimit
	m.Input = input
	m.Writer = emu.Writer

	emu.Machine = m

	defines := map[string]int{"SIZE": len(image)}
	maps.Copy(defines, emu.Defines)

	for _, text := range emu.Patch {
		var patch Patch
		patch, err = ParsePatch(text, defines)
		if err != nil {
			return
		}
		err = patch.Apply(m.Memory)
		if err != nil {
			err = &ErrPatch{Patch: text, Err: err}
			return
		}
	}

	for _, patch := range extra {
		err = patch.Apply(m.Memory)
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d words, %d patches", len(image), len(emu.Patch)+len(extra))
	}

	return
}

// Execute loads image and runs it to completion with the given input.
func (emu *Emulator) Execute(image []int, input intcode.Reader, extra ...Patch) (err error) {
	err = emu.Load(image, input, extra...)
	if err != nil {
		return
	}

	m := emu.Machine
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: m.Ip, Step: m.Steps, Err: err}
		}
	}()

	err = m.Run()
	return
}

// Run runs image and returns the values it emitted.
// A single input value is supplied to every input instruction;
// several input values are supplied in order.
func (emu *Emulator) Run(image []int, input ...int) (output []int, err error) {
	err = emu.Execute(image, Input(input...))
	if emu.Machine != nil {
		output = emu.Machine.Output
	}

	return
}

// Input returns the reader for a list of input values: none for an empty
// list, a constant for one value, and a queue for several.
func Input(values ...int) (in intcode.Reader) {
	switch len(values) {
	case 0:
	case 1:
		in = intcode.Constant(values[0])
	default:
		in = intcode.NewQueue(values...)
	}

	return
}

// RunImage runs image without input and returns the final memory.
func (emu *Emulator) RunImage(image []int, extra ...Patch) (memory []int, err error) {
	err = emu.Execute(image, nil, extra...)
	if err != nil {
		return
	}

	memory = emu.Machine.Memory.Image()
	return
}

// Search finds the first noun and verb that, patched into image, leave
// target in memory address 0 when the program halts. Runs that fault
// are skipped; an image or patch that cannot be loaded is returned at once.
func (emu *Emulator) Search(image []int, target int) (noun, verb int, err error) {
	for noun = range SEARCH_LIMIT {
		for verb = range SEARCH_LIMIT {
			memory, run_err := emu.RunImage(image,
				Patch{Address: NOUN_ADDRESS, Value: noun},
				Patch{Address: VERB_ADDRESS, Value: verb})
			if run_err != nil {
				var er *ErrRuntime
				if !errors.As(run_err, &er) {
					noun, verb = 0, 0
					err = run_err
					return
				}
				if emu.Verbose {
					log.Printf("emulator: noun %d verb %d: %v", noun, verb, run_err)
				}
				continue
			}
			if memory[0] == target {
				return
			}
		}
	}

	noun, verb = 0, 0
	err = ErrSearchNotFound
	return
}
