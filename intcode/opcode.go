package intcode

import (
	"errors"
	"fmt"
	"strings"
)

// Opcode is the operation selected by the two low digits of a word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD  = Opcode(1)  // add
	OP_MUL  = Opcode(2)  // mul
	OP_IN   = Opcode(3)  // in
	OP_OUT  = Opcode(4)  // out
	OP_JNZ  = Opcode(5)  // jnz
	OP_JZ   = Opcode(6)  // jz
	OP_LT   = Opcode(7)  // lt
	OP_EQ   = Opcode(8)  // eq
	OP_HALT = Opcode(99) // halt
)

// Mode is the parameter mode of a single operand.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_POSITION  = Mode(0) // pos
	MODE_IMMEDIATE = Mode(1) // imm
	MODE_ADDRESS   = Mode(2) // addr
)

// Kind is how an operand is used by its opcode.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_VALUE   = Kind(0) // value
	KIND_ADDRESS = Kind(1) // address
)

// Dialect is the machine generation, selecting the recognized opcodes.
type Dialect int

//go:generate go tool stringer -linecomment -type=Dialect
const (
	DIALECT_ARITHMETIC = Dialect(0) // arithmetic
	DIALECT_MINIMAL    = Dialect(1) // minimal
	DIALECT_EXTENDED   = Dialect(2) // extended
)

// Dialects lists every known dialect, oldest first.
var Dialects = []Dialect{DIALECT_ARITHMETIC, DIALECT_MINIMAL, DIALECT_EXTENDED}

// ParseDialect returns the dialect with the given name.
func ParseDialect(name string) (dialect Dialect, err error) {
	for _, dialect = range Dialects {
		if dialect.String() == name {
			return
		}
	}

	err = fmt.Errorf("%w: %q", ErrDialect, name)
	return
}

// Has returns true if the dialect recognizes the opcode.
func (dialect Dialect) Has(op Opcode) bool {
	switch op {
	case OP_HALT, OP_ADD, OP_MUL:
		return dialect >= DIALECT_ARITHMETIC
	case OP_IN, OP_OUT:
		return dialect >= DIALECT_MINIMAL
	case OP_JNZ, OP_JZ, OP_LT, OP_EQ:
		return dialect >= DIALECT_EXTENDED
	}

	return false
}

// Arity returns the operand count of the opcode, or -1 if unknown.
func (op Opcode) Arity() int {
	switch op {
	case OP_HALT:
		return 0
	case OP_IN, OP_OUT:
		return 1
	case OP_JNZ, OP_JZ:
		return 2
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		return 3
	}

	return -1
}

// Target returns the index of the operand the opcode writes to memory,
// or -1 if the opcode does not write.
func (op Opcode) Target() int {
	switch op {
	case OP_IN:
		return 0
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		return 2
	}

	return -1
}

// Writes returns true if the opcode stores a result in memory.
func (op Opcode) Writes() bool {
	return op.Target() >= 0
}

// Operand classifies an operand of an opcode. The write target is always
// an address, whatever mode digit is encoded for it.
func Operand(op Opcode, index int) Kind {
	if index == op.Target() {
		return KIND_ADDRESS
	}

	return KIND_VALUE
}

// DecodeOpcode extracts the opcode of a word.
func DecodeOpcode(word int, dialect Dialect) (op Opcode, err error) {
	op = Opcode(word % 100)
	if op.Arity() < 0 || !dialect.Has(op) {
		err = errors.Join(ErrDecode, ErrOpcodeInvalid, ErrOpcode(word%100))
	}

	return
}

// ModeOf extracts the encoded mode of the index'th operand of a word.
func ModeOf(word int, index int) (mode Mode, err error) {
	scale := 100
	for range index {
		scale *= 10
	}

	digit := (word / scale) % 10
	switch digit {
	case 0:
		mode = MODE_POSITION
	case 1:
		mode = MODE_IMMEDIATE
	default:
		err = errors.Join(ErrDecode, ErrModeInvalid, ErrMode{Index: index, Digit: digit})
	}

	return
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Word   int
	Opcode Opcode
	Modes  []Mode
}

// Decode decodes an instruction word for a dialect.
func Decode(word int, dialect Dialect) (inst Instruction, err error) {
	op, err := DecodeOpcode(word, dialect)
	if err != nil {
		return
	}

	modes := make([]Mode, op.Arity())
	for n := range modes {
		if Operand(op, n) == KIND_ADDRESS {
			modes[n] = MODE_ADDRESS
			continue
		}
		modes[n], err = ModeOf(word, n)
		if err != nil {
			return
		}
	}

	inst = Instruction{
		Word:   word,
		Opcode: op,
		Modes:  modes,
	}

	return
}

// Width returns the number of memory cells the instruction occupies.
func (inst Instruction) Width() int {
	return 1 + len(inst.Modes)
}

// String returns the instruction as opcode and modes, ie 'mul.pos.imm.addr'.
func (inst Instruction) String() string {
	words := []string{inst.Opcode.String()}
	for _, mode := range inst.Modes {
		words = append(words, mode.String())
	}

	return strings.Join(words, ".")
}
