package vm

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrStackUnderflow = errors.New("vm: stack underflow")

	ErrDivisionByZero = errors.New("division by zero")
	ErrDomain         = errors.New("math domain error")
	ErrOverflow       = errors.New("result out of range")
	ErrNotInteger     = errors.New("operand is not an integer")
	ErrNegativeShift  = errors.New("negative shift count")
	ErrNotNumber      = errors.New("operand is not a number")
)

// ArithmeticError is a failed operation, named by the alias that ran it.
type ArithmeticError struct {
	Op  string
	Err error
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("vm: %s: %v", e.Op, e.Err)
}

func (e *ArithmeticError) Unwrap() error { return e.Err }
func (e *ArithmeticError) Cause() error  { return e.Err }

// ConversionError is a literal the active converter cannot represent.
type ConversionError struct {
	Literal string
	Err     error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("vm: cannot convert %q: %v", e.Literal, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
func (e *ConversionError) Cause() error  { return e.Err }
