package vm

import (
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/agenthands/hexa/pkg/compiler/lexer"
	"github.com/agenthands/hexa/pkg/core/value"
)

// Converter turns a literal token into a value. class may be
// lexer.ClassNone, in which case the text is classified first.
type Converter func(class lexer.Class, text string) (value.Value, error)

var errNotLiteral = errors.New("not a literal")

// ConvertFloat64 converts literals to 64-bit floats.
func ConvertFloat64(class lexer.Class, text string) (value.Value, error) {
	return convert(class, text, 64)
}

// ConvertFloat32 converts literals to 32-bit floats.
func ConvertFloat32(class lexer.Class, text string) (value.Value, error) {
	return convert(class, text, 32)
}

// ConverterFor returns the converter for a numeric width in bits.
func ConverterFor(width int) (Converter, error) {
	switch width {
	case 64:
		return ConvertFloat64, nil
	case 32:
		return ConvertFloat32, nil
	}
	return nil, errors.Errorf("vm: unsupported numeric width %d", width)
}

func convert(class lexer.Class, text string, bits int) (value.Value, error) {
	if class == lexer.ClassNone {
		class = lexer.Classify(text)
	}

	typ := value.TypeFloat
	if bits == 32 {
		typ = value.TypeFloat32
	}

	switch class {
	case lexer.ClassBinary, lexer.ClassOctal, lexer.ClassHex:
		base := 16
		switch class {
		case lexer.ClassBinary:
			base = 2
		case lexer.ClassOctal:
			base = 8
		}
		u, err := strconv.ParseUint(text[2:], base, 64)
		if err != nil {
			return value.Void, &ConversionError{Literal: text, Err: unwrapNumError(err)}
		}
		return value.Number(float64(u), typ), nil

	case lexer.ClassFloat, lexer.ClassUnsigned, lexer.ClassSigned:
		f, err := strconv.ParseFloat(text, bits)
		if err != nil {
			return value.Void, &ConversionError{Literal: text, Err: unwrapNumError(err)}
		}
		return value.Number(f, typ), nil

	case lexer.ClassConstant:
		var f float64
		switch text {
		case "pi":
			f = math.Pi
		case "e":
			f = math.E
		case "inf":
			f = math.Inf(1)
		case "nan":
			f = math.NaN()
		}
		return value.Number(f, typ), nil

	case lexer.ClassType, lexer.ClassFormat:
		return value.Tag(text), nil
	}

	return value.Void, &ConversionError{Literal: text, Err: errNotLiteral}
}

func unwrapNumError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
