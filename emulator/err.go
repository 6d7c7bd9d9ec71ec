package emulator

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrSearchNotFound = errors.New(f("no noun and verb produce the target"))
	ErrPatchSyntax    = errors.New(f("patch is not address=value"))
	ErrConfigDialect  = errors.New(f("config dialect"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip   int
	Step int
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("ip %d step %d %v", err.Ip, err.Step, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrPatch is a patch that could not be evaluated or applied.
type ErrPatch struct {
	Patch string
	Err   error
}

func (err *ErrPatch) Error() string {
	return f("patch '%v' %v", err.Patch, err.Err)
}

func (err *ErrPatch) Unwrap() error {
	return err.Err
}

// ErrParseExpression is an expression that does not evaluate to an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("%v is not a valid expression", string(err))
}
