package intcode

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Fault classes
	ErrDecode   = errors.New(f("decode"))
	ErrAddress  = errors.New(f("address"))
	ErrProtocol = errors.New(f("protocol"))

	// Decode faults
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
	ErrModeInvalid   = errors.New(f("parameter mode invalid"))

	// Protocol faults
	ErrInputMissing   = errors.New(f("input missing"))
	ErrOutputNotFinal = errors.New(f("instruction after non-zero output"))

	// Machine errors
	ErrHalted    = errors.New(f("halted"))
	ErrStepLimit = errors.New(f("step limit exceeded"))
	ErrDialect   = errors.New(f("dialect unknown"))
)

// ErrInstruction locates the instruction that faulted.
type ErrInstruction struct {
	Ip   int
	Word int
}

func (ei ErrInstruction) Error() string {
	return f("ip %d word %d", ei.Ip, ei.Word)
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}

// ErrAddressRange is an access outside of the machine memory.
type ErrAddressRange struct {
	Address int
	Size    int
}

func (ea ErrAddressRange) Error() string {
	return f("address %d outside memory of %d", ea.Address, ea.Size)
}

func (ea ErrAddressRange) Is(err error) (ok bool) {
	_, ok = err.(ErrAddressRange)
	return
}

type ErrOpcode int

func (eo ErrOpcode) Error() string {
	return f("opcode %d", int(eo))
}

type ErrMode struct {
	Index int
	Digit int
}

func (em ErrMode) Error() string {
	return f("operand %d mode %d", em.Index, em.Digit)
}
