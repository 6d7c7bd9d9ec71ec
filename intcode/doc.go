// Package intcode implements the decoder and executor for Intcode programs.
//
// An Intcode program is a flat array of signed integers that serves as both
// code and data. Each instruction word carries its opcode in the two low
// decimal digits and one parameter mode digit per operand above that. The
// Machine fetches, decodes and executes instructions in place until a halt
// instruction, and surfaces every malformed program or invalid access as a
// distinct fault.
//
// Three dialects are supported. The arithmetic dialect knows only add,
// multiply and halt; the minimal dialect adds input and output; the extended
// dialect adds conditional jumps and comparisons.
package intcode
