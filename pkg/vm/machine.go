package vm

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/agenthands/hexa/pkg/core/ops"
	"github.com/agenthands/hexa/pkg/core/value"
)

// Machine evaluates one postfix stream at a time on a value stack. A
// Machine is not safe for concurrent use; Reset makes it reusable.
type Machine struct {
	Stack []value.Value
	IP    int // Instruction Pointer

	// Out receives separator emissions and the final value. It is written
	// only when a run succeeds.
	Out io.Writer

	// Format renders values for output. Defaults to value.Value.String.
	Format func(value.Value) string

	buf bytes.Buffer
}

func NewMachine(out io.Writer) *Machine {
	return &Machine{Out: out}
}

// Reset clears the machine state for reuse.
func (m *Machine) Reset() {
	for i := range m.Stack {
		m.Stack[i] = value.Value{}
	}
	m.Stack = m.Stack[:0]
	m.IP = 0
	m.buf.Reset()
}

// Depth returns the number of values on the stack.
func (m *Machine) Depth() int { return len(m.Stack) }

// Push adds a value to the stack.
func (m *Machine) Push(v value.Value) {
	m.Stack = append(m.Stack, v)
}

// Pop removes and returns the top value from the stack. Panics on underflow.
func (m *Machine) Pop() value.Value {
	n := len(m.Stack)
	if n == 0 {
		panic(ErrStackUnderflow)
	}
	v := m.Stack[n-1]
	m.Stack[n-1] = value.Value{}
	m.Stack = m.Stack[:n-1]
	return v
}

// Peek returns the top value without removing it. Panics on underflow.
func (m *Machine) Peek() value.Value {
	n := len(m.Stack)
	if n == 0 {
		panic(ErrStackUnderflow)
	}
	return m.Stack[n-1]
}

// Execute runs bc on a fresh machine writing to out.
func Execute(bc *Bytecode, conv Converter, out io.Writer) (value.Value, error) {
	return NewMachine(out).Run(bc, conv)
}

// Run executes bc from a clean stack and reports the final top-of-stack
// value, which is also written to Out followed by a newline. A nil conv
// means ConvertFloat64.
func (m *Machine) Run(bc *Bytecode, conv Converter) (result value.Value, err error) {
	m.Reset()
	if conv == nil {
		conv = ConvertFloat64
	}

	// Safety net: stack panics from Pop/Peek become errors
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, ErrStackUnderflow) {
				result, err = value.Void, e
				return
			}
			panic(r)
		}
	}()

	for m.IP = 0; m.IP < len(bc.Instructions); m.IP++ {
		code, idx := Decode(bc.Instructions[m.IP])
		if idx >= len(bc.Tokens) {
			return value.Void, errors.Errorf("vm: instruction %d: token %d out of range", m.IP, idx)
		}

		if code == ops.OpInvalid {
			v, err := conv(bc.Tokens[idx].Class, bc.Text(idx))
			if err != nil {
				return value.Void, err
			}
			m.Push(v)
			continue
		}

		info := ops.ByCode(code)
		if info == nil {
			return value.Void, errors.Errorf("vm: instruction %d: unknown operation %d", m.IP, code)
		}
		alias := bc.Text(idx)

		need := int(info.Arity)
		if info.IsSeparator() {
			need = 1
		}
		if m.Depth() < need {
			return value.Void, errors.Wrapf(ErrStackUnderflow, "%s needs %d operand(s), have %d", alias, need, m.Depth())
		}

		switch info.Arity {
		case ops.ArityBinary:
			f := binaryOps[code]
			if f == nil {
				return value.Void, errors.Errorf("vm: %s is not executable", alias)
			}
			b := m.Pop()
			a := m.Pop()
			r, err := f(a, b)
			if err != nil {
				return value.Void, &ArithmeticError{Op: alias, Err: err}
			}
			m.Push(r)

		case ops.ArityUnary:
			f := unaryOps[code]
			if f == nil {
				return value.Void, errors.Errorf("vm: %s is not executable", alias)
			}
			r, err := f(m.Pop())
			if err != nil {
				return value.Void, &ArithmeticError{Op: alias, Err: err}
			}
			m.Push(r)

		default:
			suffix := byte(' ')
			if code == ops.OpEnd {
				suffix = '\n'
			}
			m.emit(m.Peek(), suffix)
		}
	}

	if m.Depth() == 0 {
		return value.Void, errors.Wrap(ErrStackUnderflow, "no value to report")
	}
	result = m.Peek()
	m.emit(result, '\n')

	if m.Out != nil {
		if _, err := m.buf.WriteTo(m.Out); err != nil {
			return value.Void, errors.Wrap(err, "vm: write output")
		}
	}
	return result, nil
}

func (m *Machine) emit(v value.Value, suffix byte) {
	if m.Format != nil {
		m.buf.WriteString(m.Format(v))
	} else {
		m.buf.WriteString(v.String())
	}
	m.buf.WriteByte(suffix)
}
