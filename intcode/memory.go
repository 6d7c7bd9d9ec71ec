package intcode

import (
	"errors"
	"slices"
)

// Memory is the shared code and data space of a machine.
type Memory []int

// NewMemory copies an image into a new memory.
func NewMemory(image []int) Memory {
	return Memory(slices.Clone(image))
}

// Load reads the cell at addr.
func (mem Memory) Load(addr int) (value int, err error) {
	if addr < 0 || addr >= len(mem) {
		err = errors.Join(ErrAddress, ErrAddressRange{Address: addr, Size: len(mem)})
		return
	}

	value = mem[addr]
	return
}

// Store writes the cell at addr.
func (mem Memory) Store(addr int, value int) (err error) {
	if addr < 0 || addr >= len(mem) {
		err = errors.Join(ErrAddress, ErrAddressRange{Address: addr, Size: len(mem)})
		return
	}

	mem[addr] = value
	return
}

// Image returns a copy of the memory contents.
func (mem Memory) Image() []int {
	return slices.Clone([]int(mem))
}
