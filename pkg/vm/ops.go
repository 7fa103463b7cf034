package vm

import (
	"math"
	"math/bits"

	"github.com/agenthands/hexa/pkg/core/ops"
	"github.com/agenthands/hexa/pkg/core/value"
)

type (
	binaryFunc func(a, b value.Value) (value.Value, error)
	unaryFunc  func(a value.Value) (value.Value, error)
)

// Dispatch tables indexed by operation code. Filled once in init.
var (
	binaryOps [ops.NumCodes]binaryFunc
	unaryOps  [ops.NumCodes]unaryFunc
)

func init() {
	binaryOps[ops.OpGCD] = integral(func(x, y int64) (int64, error) {
		return fit(gcd(uabs(x), uabs(y)))
	})
	binaryOps[ops.OpLCM] = integral(lcm)
	binaryOps[ops.OpCast] = func(a, b value.Value) (value.Value, error) {
		return value.Void, nil
	}
	binaryOps[ops.OpPow] = arith(pow)
	binaryOps[ops.OpMul] = arith(func(x, y float64) (float64, error) { return x * y, nil })
	binaryOps[ops.OpDiv] = arith(func(x, y float64) (float64, error) {
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return x / y, nil
	})
	binaryOps[ops.OpMod] = arith(mod)
	binaryOps[ops.OpShl] = integral(shl)
	binaryOps[ops.OpShr] = integral(func(x, y int64) (int64, error) {
		if y < 0 {
			return 0, ErrNegativeShift
		}
		// arithmetic shift: counts of 64 and more leave 0 or -1
		return x >> uint64(y), nil
	})
	binaryOps[ops.OpBitAndInv] = integral(func(x, y int64) (int64, error) { return x &^ y, nil })
	binaryOps[ops.OpBitAnd] = integral(func(x, y int64) (int64, error) { return x & y, nil })
	binaryOps[ops.OpAdd] = arith(func(x, y float64) (float64, error) { return x + y, nil })
	binaryOps[ops.OpSub] = arith(func(x, y float64) (float64, error) { return x - y, nil })
	binaryOps[ops.OpXor] = integral(func(x, y int64) (int64, error) { return x ^ y, nil })
	binaryOps[ops.OpBitOr] = integral(func(x, y int64) (int64, error) { return x | y, nil })

	binaryOps[ops.OpEq] = compare(func(x, y float64) bool { return x == y })
	binaryOps[ops.OpNeq] = compare(func(x, y float64) bool { return x != y })
	binaryOps[ops.OpGt] = compare(func(x, y float64) bool { return x > y })
	binaryOps[ops.OpLt] = compare(func(x, y float64) bool { return x < y })
	binaryOps[ops.OpGte] = compare(func(x, y float64) bool { return x >= y })
	binaryOps[ops.OpLte] = compare(func(x, y float64) bool { return x <= y })

	binaryOps[ops.OpAnd] = logical(func(x, y bool) bool { return x && y })
	binaryOps[ops.OpOr] = logical(func(x, y bool) bool { return x || y })

	unaryOps[ops.OpSqrt] = domain(math.Sqrt)
	unaryOps[ops.OpSin] = domain(math.Sin)
	unaryOps[ops.OpCos] = domain(math.Cos)
	unaryOps[ops.OpTan] = domain(math.Tan)
	unaryOps[ops.OpAbs] = domain(math.Abs)
	unaryOps[ops.OpSgn] = domain(sgn)
	unaryOps[ops.OpFloor] = domain(math.Floor)
	unaryOps[ops.OpRound] = domain(math.RoundToEven)
	unaryOps[ops.OpInv] = func(a value.Value) (value.Value, error) {
		if !a.IsNumber() {
			return value.Void, ErrNotNumber
		}
		x, ok := a.Integer()
		if !ok {
			return value.Void, ErrNotInteger
		}
		return wrapInt(^x, a.Type), nil
	}
	unaryOps[ops.OpNot] = func(a value.Value) (value.Value, error) {
		if !a.IsNumber() {
			return value.Void, ErrNotNumber
		}
		return boolean(!a.Bool(), a.Type), nil
	}
}

// resultType is float32 only when both operands are float32.
func resultType(a, b value.Value) value.Type {
	if a.Type == value.TypeFloat32 && b.Type == value.TypeFloat32 {
		return value.TypeFloat32
	}
	return value.TypeFloat
}

func arith(f func(x, y float64) (float64, error)) binaryFunc {
	return func(a, b value.Value) (value.Value, error) {
		if !a.IsNumber() || !b.IsNumber() {
			return value.Void, ErrNotNumber
		}
		r, err := f(a.Float(), b.Float())
		if err != nil {
			return value.Void, err
		}
		return value.Number(r, resultType(a, b)), nil
	}
}

func integral(f func(x, y int64) (int64, error)) binaryFunc {
	return func(a, b value.Value) (value.Value, error) {
		if !a.IsNumber() || !b.IsNumber() {
			return value.Void, ErrNotNumber
		}
		x, okx := a.Integer()
		y, oky := b.Integer()
		if !okx || !oky {
			return value.Void, ErrNotInteger
		}
		r, err := f(x, y)
		if err != nil {
			return value.Void, err
		}
		return wrapInt(r, resultType(a, b)), nil
	}
}

func compare(f func(x, y float64) bool) binaryFunc {
	return func(a, b value.Value) (value.Value, error) {
		if !a.IsNumber() || !b.IsNumber() {
			return value.Void, ErrNotNumber
		}
		return boolean(f(a.Float(), b.Float()), resultType(a, b)), nil
	}
}

func logical(f func(x, y bool) bool) binaryFunc {
	return func(a, b value.Value) (value.Value, error) {
		if !a.IsNumber() || !b.IsNumber() {
			return value.Void, ErrNotNumber
		}
		return boolean(f(a.Bool(), b.Bool()), resultType(a, b)), nil
	}
}

// domain lifts a math function, failing when it turns a number into NaN.
func domain(f func(float64) float64) unaryFunc {
	return func(a value.Value) (value.Value, error) {
		if !a.IsNumber() {
			return value.Void, ErrNotNumber
		}
		x := a.Float()
		r := f(x)
		if math.IsNaN(r) && !math.IsNaN(x) {
			return value.Void, ErrDomain
		}
		return value.Number(r, a.Type), nil
	}
}

func pow(x, y float64) (float64, error) {
	if x == 0 && y < 0 {
		return 0, ErrDivisionByZero
	}
	r := math.Pow(x, y)
	switch {
	case math.IsNaN(r) && !math.IsNaN(x) && !math.IsNaN(y):
		return 0, ErrDomain
	case math.IsInf(r, 0) && !math.IsInf(x, 0) && !math.IsInf(y, 0):
		return 0, ErrOverflow
	}
	return r, nil
}

// mod follows floored division: the result takes the sign of y.
func mod(x, y float64) (float64, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r, nil
}

func sgn(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return x // keeps 0, -0 and NaN
}

func gcd(x, y uint64) uint64 {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// lcm is |x*y| / gcd(x, y), computed as |x|/g * |y| so only a result that
// does not fit reports ErrOverflow.
func lcm(x, y int64) (int64, error) {
	ax, ay := uabs(x), uabs(y)
	g := gcd(ax, ay)
	if g == 0 {
		return 0, ErrDivisionByZero
	}
	hi, lo := bits.Mul64(ax/g, ay)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return fit(lo)
}

// shl fails with ErrOverflow when a set bit or the sign would be shifted out.
func shl(x, y int64) (int64, error) {
	switch {
	case y < 0:
		return 0, ErrNegativeShift
	case x == 0:
		return 0, nil
	case y >= 64:
		return 0, ErrOverflow
	}
	r := x << uint64(y)
	if r>>uint64(y) != x {
		return 0, ErrOverflow
	}
	return r, nil
}

// uabs is |x| without the int64 overflow at math.MinInt64.
func uabs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

func fit(u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(u), nil
}

// wrapInt stores an integer result, truncating to 32 bits for float32.
func wrapInt(r int64, t value.Type) value.Value {
	if t == value.TypeFloat32 {
		r = int64(int32(r))
	}
	return value.Number(float64(r), t)
}

func boolean(b bool, t value.Type) value.Value {
	if b {
		return value.Number(1, t)
	}
	return value.Number(0, t)
}
