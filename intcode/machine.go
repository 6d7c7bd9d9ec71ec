package intcode

import (
	"errors"
	"fmt"
	"log"
)

// State is the execution state of a machine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
	STATE_FAULTED = State(2) // faulted
)

// Machine is the execution context for a single Intcode run.
type Machine struct {
	Verbose bool // Set to enable verbose logging.
	Tracing bool // Set to record the instruction pointer of every step.
	Strict  bool // Set to fault on any instruction but halt after a non-zero output.

	Dialect   Dialect // Recognized instruction set.
	StepLimit int     // Maximum steps per run, 0 for no limit.

	Input  Reader // Source for the store input instruction.
	Writer Writer // Optional sink for emitted values.

	Memory Memory // Code and data.
	Ip     int    // Current instruction pointer.
	State  State  // Execution state.
	Fault  error  // Fault that stopped the machine, if faulted.
	Steps  int    // Instructions executed since reset.
	Output []int  // Values emitted since reset.
	Trace  []int  // Instruction pointer of every step since reset.
}

// NewMachine creates a machine for a dialect, loaded with a copy of image.
// The minimal dialect runs in strict mode.
func NewMachine(image []int, dialect Dialect) (m *Machine) {
	m = &Machine{
		Dialect: dialect,
		Strict:  dialect == DIALECT_MINIMAL,
	}

	m.Reset(image)

	return
}

// Reset loads a copy of image and rewinds the machine.
// The input and output attachments are kept.
func (m *Machine) Reset(image []int) {
	if m.Verbose {
		log.Printf("intcode: reset %v, %d words", m.Dialect, len(image))
	}

	m.Memory = NewMemory(image)
	m.Ip = 0
	m.State = STATE_RUNNING
	m.Fault = nil
	m.Steps = 0
	m.Output = nil
	m.Trace = nil
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	word := "-"
	if value, err := m.Memory.Load(m.Ip); err == nil {
		word = fmt.Sprintf("%d", value)
	}

	text += fmt.Sprintf("% 6s: %04d\n", "ip", m.Ip)
	text += fmt.Sprintf("% 6s: %v\n", "word", word)
	text += fmt.Sprintf("% 6s: %v\n", "state", m.State)
	text += fmt.Sprintf("% 6s: %d\n", "steps", m.Steps)
	text += fmt.Sprintf("% 6s: %v\n", "output", m.Output)
	if m.Fault != nil {
		text += fmt.Sprintf("% 6s: %v\n", "fault", m.Fault)
	}

	return
}

// Last returns the most recent output value.
func (m *Machine) Last() (value int, ok bool) {
	if len(m.Output) == 0 {
		return
	}

	return m.Output[len(m.Output)-1], true
}

// Fetch decodes the instruction at the instruction pointer.
func (m *Machine) Fetch() (inst Instruction, err error) {
	word, err := m.Memory.Load(m.Ip)
	if err != nil {
		return
	}

	inst, err = Decode(word, m.Dialect)
	return
}

// Tick executes a single instruction.
// Any fault is terminal; the machine keeps returning it.
func (m *Machine) Tick() (err error) {
	switch m.State {
	case STATE_HALTED:
		return ErrHalted
	case STATE_FAULTED:
		return m.Fault
	}

	ip := m.Ip
	defer func() {
		if err != nil {
			word, _ := m.Memory.Load(ip)
			err = errors.Join(ErrInstruction{Ip: ip, Word: word}, err)
			m.State = STATE_FAULTED
			m.Fault = err
			if m.Verbose {
				log.Printf("%04d: %v", ip, err)
			}
		}
	}()

	if m.StepLimit > 0 && m.Steps >= m.StepLimit {
		err = ErrStepLimit
		return
	}

	inst, err := m.Fetch()
	if err != nil {
		return
	}

	err = m.Execute(inst)
	return
}

// Run executes instructions until the machine halts or faults.
func (m *Machine) Run() (err error) {
	for m.State == STATE_RUNNING {
		err = m.Tick()
		if err != nil {
			return
		}
	}

	if m.State == STATE_FAULTED {
		err = m.Fault
	}

	return
}

// Execute executes a single decoded instruction at the instruction pointer.
func (m *Machine) Execute(inst Instruction) (err error) {
	if m.Verbose {
		log.Printf("%04d: %v", m.Ip, inst)
	}

	if len(inst.Modes) != inst.Opcode.Arity() {
		err = errors.Join(ErrDecode, ErrOpcodeInvalid, ErrOpcode(inst.Opcode))
		return
	}

	if m.Tracing {
		m.Trace = append(m.Trace, m.Ip)
	}

	// A non-zero output must be the final result of a strict run.
	if last, ok := m.Last(); m.Strict && ok && last != 0 && inst.Opcode != OP_HALT {
		err = errors.Join(ErrProtocol, ErrOutputNotFinal)
		return
	}

	args := make([]int, len(inst.Modes))
	for n, mode := range inst.Modes {
		var raw int
		raw, err = m.Memory.Load(m.Ip + 1 + n)
		if err != nil {
			return
		}
		args[n], err = m.Resolve(Operand(inst.Opcode, n), mode, raw)
		if err != nil {
			return
		}
	}

	next_ip := m.Ip + inst.Width()

	switch inst.Opcode {
	case OP_HALT:
		m.State = STATE_HALTED
		next_ip = m.Ip
	case OP_ADD:
		err = m.Memory.Store(args[2], args[0]+args[1])
	case OP_MUL:
		err = m.Memory.Store(args[2], args[0]*args[1])
	case OP_IN:
		var value int
		value, err = m.read()
		if err != nil {
			return
		}
		err = m.Memory.Store(args[0], value)
	case OP_OUT:
		err = m.write(args[0])
	case OP_JNZ:
		if args[0] != 0 {
			next_ip = args[1]
		}
	case OP_JZ:
		if args[0] == 0 {
			next_ip = args[1]
		}
	case OP_LT:
		err = m.Memory.Store(args[2], truth(args[0] < args[1]))
	case OP_EQ:
		err = m.Memory.Store(args[2], truth(args[0] == args[1]))
	default:
		err = errors.Join(ErrDecode, ErrOpcodeInvalid, ErrOpcode(inst.Opcode))
	}

	if err != nil {
		return
	}

	m.Steps++
	m.Ip = next_ip

	return
}

// Resolve converts the raw operand cell into the value used by the opcode.
// Address operands are returned as-is and are never dereferenced.
func (m *Machine) Resolve(kind Kind, mode Mode, raw int) (value int, err error) {
	if kind == KIND_ADDRESS {
		value = raw
		return
	}

	switch mode {
	case MODE_POSITION:
		value, err = m.Memory.Load(raw)
	case MODE_IMMEDIATE:
		value = raw
	default:
		err = errors.Join(ErrDecode, ErrModeInvalid)
	}

	return
}

// read gets the next input value.
func (m *Machine) read() (value int, err error) {
	if m.Input == nil {
		err = errors.Join(ErrProtocol, ErrInputMissing)
		return
	}

	value, err = m.Input.Read()
	if err != nil {
		err = errors.Join(ErrProtocol, ErrInputMissing, err)
		return
	}

	return
}

// write records an output value and sends it to the writer.
func (m *Machine) write(value int) (err error) {
	m.Output = append(m.Output, value)

	if m.Writer != nil {
		err = m.Writer.Write(value)
	}

	return
}

func truth(cond bool) int {
	if cond {
		return 1
	}

	return 0
}
