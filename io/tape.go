package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/ezrec/intcode/intcode"
)

// Tape connects a machine to byte streams.
// Input values are decimal integers separated by commas or whitespace;
// output values are written one per line.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
}

var _ intcode.Reader = (*Tape)(nil)
var _ intcode.Writer = (*Tape)(nil)

// Read returns the next input value, or io.EOF at the end of the input.
func (tc *Tape) Read() (value int, err error) {
	if tc.Input == nil {
		err = io.EOF
		return
	}

	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Input)
		tc.scanner.Split(ScanValues)
	}

	if !tc.scanner.Scan() {
		err = tc.scanner.Err()
		if err == nil {
			err = io.EOF
		}
		return
	}

	word := tc.scanner.Text()
	value, err = strconv.Atoi(word)
	if err != nil {
		err = ErrParseNumber(word)
	}

	return
}

// Write writes a value to the output stream.
func (tc *Tape) Write(value int) (err error) {
	if tc.Output == nil {
		err = ErrTapeOutput
		return
	}

	_, err = fmt.Fprintln(tc.Output, value)
	return
}

// ScanValues is a bufio.SplitFunc that returns each value of a comma or
// whitespace separated list.
func ScanValues(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSeparator(data[start]) {
		start++
	}

	for n := start; n < len(data); n++ {
		if isSeparator(data[n]) {
			return n + 1, data[start:n], nil
		}
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	return start, nil, nil
}

func isSeparator(b byte) bool {
	return b == ',' || unicode.IsSpace(rune(b))
}
