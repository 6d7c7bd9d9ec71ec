package intcode

import (
	"io"
)

// Reader supplies values to the store input instruction.
type Reader interface {
	// Read returns the next input value, or io.EOF when there is none.
	Read() (value int, err error)
}

// Writer receives values from the emit output instruction.
type Writer interface {
	Write(value int) error
}

// Constant is an input that supplies the same value for every read.
type Constant int

var _ Reader = Constant(0)

func (c Constant) Read() (int, error) {
	return int(c), nil
}

// Queue is an input that supplies its values in order, once each.
type Queue struct {
	Values []int
}

var _ Reader = (*Queue)(nil)

// NewQueue creates a queue of input values.
func NewQueue(values ...int) *Queue {
	return &Queue{Values: values}
}

func (q *Queue) Read() (value int, err error) {
	if len(q.Values) == 0 {
		err = io.EOF
		return
	}

	value = q.Values[0]
	q.Values = q.Values[1:]
	return
}
