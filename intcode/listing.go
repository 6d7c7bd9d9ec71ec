package intcode

import (
	"fmt"
	"iter"
	"strings"
)

// Line is one entry of a program listing.
type Line struct {
	Ip       int         // Address of the entry.
	Inst     Instruction // Decoded instruction, unless Data is set.
	Operands []int       // Raw operand words.
	Data     bool        // Set if the word does not decode as an instruction.
	Word     int         // Raw word at Ip.
}

// Width returns the number of memory cells the entry covers.
func (line Line) Width() int {
	if line.Data {
		return 1
	}

	return line.Inst.Width()
}

// String returns the entry in assembler form, ie '0004: mul.pos.imm.addr 4 3 4'.
func (line Line) String() string {
	if line.Data {
		return fmt.Sprintf("%04d: data %d", line.Ip, line.Word)
	}

	words := []string{fmt.Sprintf("%04d: %v", line.Ip, line.Inst)}
	for _, operand := range line.Operands {
		words = append(words, fmt.Sprintf("%d", operand))
	}

	return strings.Join(words, " ")
}

// Listing walks an image from address 0, decoding instructions in order.
// Words that do not decode, or whose operands run past the end of the
// image, are listed as data.
func Listing(image []int, dialect Dialect) iter.Seq2[int, Line] {
	return func(yield func(ip int, line Line) bool) {
		for ip := 0; ip < len(image); {
			line := Line{Ip: ip, Word: image[ip]}
			inst, err := Decode(image[ip], dialect)
			if err != nil || ip+inst.Width() > len(image) {
				line.Data = true
			} else {
				line.Inst = inst
				line.Operands = image[ip+1 : ip+inst.Width()]
			}
			if !yield(ip, line) {
				return
			}
			ip += line.Width()
		}
	}
}
