package io

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageEmpty = errors.New(f("image empty"))

	// Tape errors
	ErrTapeOutput = errors.New(f("tape has no output"))
)

// ErrParseNumber is a token that is not a decimal integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}
