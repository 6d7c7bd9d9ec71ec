package intcode

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type collector struct {
	values []int
}

func (c *collector) Write(value int) error {
	c.values = append(c.values, value)
	return nil
}

func TestMachine_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []int
		memory  []int
		steps   int
	}){
		{"add", []int{1, 0, 0, 0, 99}, []int{2, 0, 0, 0, 99}, 2},
		{"mul", []int{2, 3, 0, 3, 99}, []int{2, 3, 0, 6, 99}, 2},
		{"mul_tail", []int{2, 4, 4, 5, 99, 0}, []int{2, 4, 4, 5, 99, 9801}, 2},
		{"self_modify", []int{1, 1, 1, 4, 99, 5, 6, 0, 99}, []int{30, 1, 1, 4, 2, 5, 6, 0, 99}, 3},
		{"chain",
			[]int{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50},
			[]int{3500, 9, 10, 70, 2, 3, 11, 0, 99, 30, 40, 50}, 3},
	}

	for _, entry := range table {
		image := append([]int(nil), entry.program...)
		m := NewMachine(image, DIALECT_ARITHMETIC)
		err := m.Run()
		assert.NoError(err, entry.name)
		assert.Equal(STATE_HALTED, m.State, entry.name)
		assert.Equal(entry.memory, m.Memory.Image(), entry.name)
		assert.Equal(entry.steps, m.Steps, entry.name)
		assert.Equal(entry.program, image, entry.name)
	}
}

func TestMachine_Immediate(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine([]int{1002, 4, 3, 4, 33}, DIALECT_MINIMAL)
	assert.NoError(m.Run())
	assert.Equal([]int{1002, 4, 3, 4, 99}, m.Memory.Image())

	m = NewMachine([]int{1101, 100, -1, 4, 0}, DIALECT_MINIMAL)
	assert.NoError(m.Run())
	assert.Equal([]int{1101, 100, -1, 4, 99}, m.Memory.Image())
}

func TestMachine_InputOutput(t *testing.T) {
	assert := assert.New(t)

	out := &collector{}

	m := NewMachine([]int{3, 0, 4, 0, 99}, DIALECT_MINIMAL)
	m.Input = Constant(1234)
	m.Writer = out
	assert.NoError(m.Run())
	assert.Equal([]int{1234}, m.Output)
	assert.Equal([]int{1234}, out.values)

	value, ok := m.Last()
	assert.True(ok)
	assert.Equal(1234, value)

	// Constant input is supplied to every read of the run.
	m = NewMachine([]int{3, 5, 3, 6, 99, 0, 0}, DIALECT_MINIMAL)
	m.Input = Constant(4)
	assert.NoError(m.Run())
	assert.Equal([]int{3, 5, 3, 6, 99, 4, 4}, m.Memory.Image())

	m = NewMachine([]int{3, 5, 3, 6, 99, 0, 0}, DIALECT_MINIMAL)
	m.Input = NewQueue(4, 5)
	assert.NoError(m.Run())
	assert.Equal([]int{3, 5, 3, 6, 99, 4, 5}, m.Memory.Image())

	m = NewMachine([]int{99}, DIALECT_MINIMAL)
	assert.NoError(m.Run())
	_, ok = m.Last()
	assert.False(ok)
}

func TestMachine_Compare(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []int
		input   int
		output  int
	}){
		{"eq_pos_8", []int{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}, 8, 1},
		{"eq_pos_7", []int{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}, 7, 0},
		{"lt_pos_7", []int{3, 9, 7, 9, 10, 9, 4, 9, 99, -1, 8}, 7, 1},
		{"lt_pos_8", []int{3, 9, 7, 9, 10, 9, 4, 9, 99, -1, 8}, 8, 0},
		{"eq_imm_8", []int{3, 3, 1108, -1, 8, 3, 4, 3, 99}, 8, 1},
		{"eq_imm_9", []int{3, 3, 1108, -1, 8, 3, 4, 3, 99}, 9, 0},
		{"lt_imm_-3", []int{3, 3, 1107, -1, 8, 3, 4, 3, 99}, -3, 1},
		{"lt_imm_9", []int{3, 3, 1107, -1, 8, 3, 4, 3, 99}, 9, 0},
	}

	for _, entry := range table {
		m := NewMachine(entry.program, DIALECT_EXTENDED)
		m.Input = Constant(entry.input)
		assert.NoError(m.Run(), entry.name)
		assert.Equal([]int{entry.output}, m.Output, entry.name)
	}
}

func TestMachine_Jump(t *testing.T) {
	assert := assert.New(t)

	cmp8 := []int{
		3, 21, 1008, 21, 8, 20, 1005, 20, 22, 107, 8, 21, 20, 1006, 20, 31,
		1106, 0, 36, 98, 0, 0, 1002, 21, 125, 20, 4, 20, 1105, 1, 46, 104,
		999, 1105, 1, 46, 1101, 1000, 1, 20, 4, 20, 1105, 1, 46, 98, 99,
	}

	table := [](struct {
		name    string
		program []int
		input   int
		output  int
	}){
		{"jz_pos_0", []int{3, 12, 6, 12, 15, 1, 13, 14, 13, 4, 13, 99, -1, 0, 1, 9}, 0, 0},
		{"jz_pos_5", []int{3, 12, 6, 12, 15, 1, 13, 14, 13, 4, 13, 99, -1, 0, 1, 9}, 5, 1},
		{"jnz_imm_0", []int{3, 3, 1105, -1, 9, 1101, 0, 0, 12, 4, 12, 99, 1}, 0, 0},
		{"jnz_imm_5", []int{3, 3, 1105, -1, 9, 1101, 0, 0, 12, 4, 12, 99, 1}, 5, 1},
		{"cmp8_7", cmp8, 7, 999},
		{"cmp8_8", cmp8, 8, 1000},
		{"cmp8_9", cmp8, 9, 1001},
	}

	for _, entry := range table {
		m := NewMachine(entry.program, DIALECT_EXTENDED)
		m.Input = Constant(entry.input)
		assert.NoError(m.Run(), entry.name)
		assert.Equal([]int{entry.output}, m.Output, entry.name)
	}
}

func TestMachine_Trace(t *testing.T) {
	assert := assert.New(t)

	// in m[20]; jz m[20] 7; out 100; jnz m[20] 12; out 200; halt
	program := make([]int, 21)
	copy(program, []int{3, 20, 1006, 20, 7, 104, 100, 1005, 20, 12, 104, 200, 99})

	table := [](struct {
		name   string
		input  int
		trace  []int
		output []int
	}){
		{"zero", 0, []int{0, 2, 7, 10, 12}, []int{200}},
		{"nonzero", 5, []int{0, 2, 5, 7, 12}, []int{100}},
		{"negative", -1, []int{0, 2, 5, 7, 12}, []int{100}},
	}

	for _, entry := range table {
		m := NewMachine(program, DIALECT_EXTENDED)
		m.Tracing = true
		m.Input = Constant(entry.input)
		assert.NoError(m.Run(), entry.name)
		assert.Equal(entry.trace, m.Trace, entry.name)
		assert.Equal(entry.output, m.Output, entry.name)
		assert.Equal(12, m.Ip, entry.name)
	}
}

func TestMachine_Tick(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine([]int{1101, 2, 3, 0, 99}, DIALECT_EXTENDED)

	inst, err := m.Fetch()
	assert.NoError(err)
	assert.Equal(OP_ADD, inst.Opcode)

	assert.NoError(m.Tick())
	assert.Equal(4, m.Ip)
	assert.Equal(STATE_RUNNING, m.State)
	assert.Equal(5, m.Memory[0])

	assert.NoError(m.Tick())
	assert.Equal(STATE_HALTED, m.State)
	assert.Equal(4, m.Ip)
	assert.Contains(m.String(), "state: halted")

	assert.ErrorIs(m.Tick(), ErrHalted)
	assert.NoError(m.Run())

	m.Reset([]int{99})
	assert.Equal(STATE_RUNNING, m.State)
	assert.Equal(0, m.Steps)
}

func TestMachine_InputMissing(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine([]int{3, 0, 99}, DIALECT_EXTENDED)
	err := m.Run()
	assert.ErrorIs(err, ErrProtocol)
	assert.ErrorIs(err, ErrInputMissing)
	assert.Equal(STATE_FAULTED, m.State)
	assert.Equal([]int{3, 0, 99}, m.Memory.Image())

	m = NewMachine([]int{3, 0, 3, 0, 99}, DIALECT_MINIMAL)
	m.Input = NewQueue(1)
	err = m.Run()
	assert.ErrorIs(err, ErrInputMissing)
	assert.ErrorIs(err, io.EOF)
	assert.Equal(2, m.Ip)
}

func TestMachine_Strict(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine([]int{104, 1, 104, 2, 99}, DIALECT_MINIMAL)
	assert.True(m.Strict)
	err := m.Run()
	assert.ErrorIs(err, ErrProtocol)
	assert.ErrorIs(err, ErrOutputNotFinal)
	assert.Equal([]int{1}, m.Output)
	assert.Equal(2, m.Ip)

	// Zero outputs may repeat; only the non-zero one must be last.
	m = NewMachine([]int{104, 0, 104, 0, 104, 5, 99}, DIALECT_MINIMAL)
	assert.NoError(m.Run())
	assert.Equal(STATE_HALTED, m.State)
	assert.Equal([]int{0, 0, 5}, m.Output)

	m = NewMachine([]int{104, 5, 1101, 0, 0, 7, 99, 0}, DIALECT_MINIMAL)
	err = m.Run()
	assert.ErrorIs(err, ErrProtocol)
	assert.ErrorIs(err, ErrOutputNotFinal)
	var ei ErrInstruction
	assert.True(errors.As(err, &ei))
	assert.Equal(ErrInstruction{Ip: 2, Word: 1101}, ei)
	assert.Equal([]int{5}, m.Output)
	assert.Equal(1, m.Steps)

	m = NewMachine([]int{104, 1, 104, 2, 99}, DIALECT_EXTENDED)
	assert.False(m.Strict)
	assert.NoError(m.Run())
	assert.Equal([]int{1, 2}, m.Output)
}

func TestMachine_Faults(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		dialect Dialect
		program []int
		class   error
		cause   error
		ip      int
	}){
		{"opcode", DIALECT_EXTENDED, []int{42}, ErrDecode, ErrOpcodeInvalid, 0},
		{"opcode_dialect", DIALECT_MINIMAL, []int{1108, 1, 1, 0, 99}, ErrDecode, ErrOpcodeInvalid, 0},
		{"arithmetic_io", DIALECT_ARITHMETIC, []int{1, 0, 0, 0, 104, 0, 99}, ErrDecode, ErrOpcodeInvalid, 4},
		{"mode", DIALECT_EXTENDED, []int{204, 0, 99}, ErrDecode, ErrModeInvalid, 0},
		{"write_range", DIALECT_EXTENDED, []int{1, 0, 0, 10, 99}, ErrAddress, ErrAddressRange{}, 0},
		{"read_range", DIALECT_EXTENDED, []int{1, 20, 0, 0, 99}, ErrAddress, ErrAddressRange{}, 0},
		{"read_negative", DIALECT_EXTENDED, []int{4, -1, 99}, ErrAddress, ErrAddressRange{}, 0},
		{"no_halt", DIALECT_EXTENDED, []int{1, 0, 0, 0}, ErrAddress, ErrAddressRange{}, 4},
		{"truncated", DIALECT_EXTENDED, []int{1, 0}, ErrAddress, ErrAddressRange{}, 0},
		{"jump_range", DIALECT_EXTENDED, []int{1105, 1, -5}, ErrAddress, ErrAddressRange{}, -5},
		{"input_range", DIALECT_EXTENDED, []int{3, 7, 99}, ErrAddress, ErrAddressRange{}, 0},
	}

	for _, entry := range table {
		m := NewMachine(entry.program, entry.dialect)
		m.Input = Constant(1)
		err := m.Run()
		assert.ErrorIs(err, entry.class, entry.name)
		assert.ErrorIs(err, entry.cause, entry.name)
		assert.Equal(STATE_FAULTED, m.State, entry.name)

		var ei ErrInstruction
		assert.True(errors.As(err, &ei), entry.name)
		assert.Equal(entry.ip, ei.Ip, entry.name)

		for _, other := range []error{ErrDecode, ErrAddress, ErrProtocol} {
			if other != entry.class {
				assert.NotErrorIs(err, other, entry.name)
			}
		}

		// Faults are terminal.
		assert.Equal(err, m.Tick(), entry.name)
		assert.Equal(err, m.Run(), entry.name)
	}
}

func TestMachine_StepLimit(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine([]int{1105, 1, 0}, DIALECT_EXTENDED)
	m.StepLimit = 10
	err := m.Run()
	assert.ErrorIs(err, ErrStepLimit)
	assert.Equal(10, m.Steps)
	assert.Equal(STATE_FAULTED, m.State)

	// Halt counts as a step.
	m = NewMachine([]int{1101, 1, 1, 0, 99}, DIALECT_EXTENDED)
	m.StepLimit = 2
	assert.NoError(m.Run())
}

func TestMachine_Execute(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine([]int{1, 0, 0, 0, 99}, DIALECT_EXTENDED)

	err := m.Execute(Instruction{Word: 1, Opcode: OP_ADD})
	assert.ErrorIs(err, ErrDecode)

	value, err := m.Resolve(KIND_ADDRESS, MODE_POSITION, 4)
	assert.NoError(err)
	assert.Equal(4, value)

	value, err = m.Resolve(KIND_VALUE, MODE_POSITION, 4)
	assert.NoError(err)
	assert.Equal(99, value)

	value, err = m.Resolve(KIND_VALUE, MODE_IMMEDIATE, 4)
	assert.NoError(err)
	assert.Equal(4, value)

	_, err = m.Resolve(KIND_VALUE, MODE_POSITION, 5)
	assert.ErrorIs(err, ErrAddress)
}

func FuzzMachine(f *testing.F) {
	f.Add(1, 0, 0, 0, 99, 0)
	f.Add(1002, 4, 3, 4, 33, 0)
	f.Add(3, 0, 4, 0, 99, 7)
	f.Add(1105, 1, 0, 0, 0, 0)

	f.Fuzz(func(t *testing.T, w0, w1, w2, w3, w4, input int) {
		assert := assert.New(t)

		m := NewMachine([]int{w0, w1, w2, w3, w4}, DIALECT_EXTENDED)
		m.Input = Constant(input)
		m.StepLimit = 64

		err := m.Run()
		if err == nil {
			assert.Equal(STATE_HALTED, m.State)
		} else {
			assert.Equal(STATE_FAULTED, m.State)
			assert.ErrorIs(err, ErrInstruction{})
		}
		assert.LessOrEqual(m.Steps, 64)
	})
}
