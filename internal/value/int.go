package value

import "math"

// Int is a 64-bit signed integer. The raw value equal to the platform
// int64 minimum is reserved exclusively for N/A: every concrete Int lives
// in [MinValidInt, math.MaxInt64].
type Int int64

const (
	IntNA        Int = math.MinInt64
	MinValidInt  Int = math.MinInt64 + 1
	MaxValidInt  Int = math.MaxInt64
)

func (i Int) IsNA() bool { return i == IntNA }

func (i Int) Equal(o Int) Bool {
	if i.IsNA() || o.IsNA() {
		return NA
	}
	return BoolOf(i == o)
}

func (i Int) NotEqual(o Int) Bool { return i.Equal(o).Not() }

func (i Int) Less(o Int) Bool {
	if i.IsNA() || o.IsNA() {
		return NA
	}
	return BoolOf(i < o)
}

func (i Int) LessEqual(o Int) Bool {
	if i.IsNA() || o.IsNA() {
		return NA
	}
	return BoolOf(i <= o)
}

func (i Int) Greater(o Int) Bool { return o.Less(i) }

func (i Int) GreaterEqual(o Int) Bool { return o.LessEqual(i) }

func (i Int) Match(o Int) bool   { return i == o }
func (i Int) Unmatch(o Int) bool { return i != o }

// Negate: unary negation of N/A is N/A; negating MinValidInt is in range
// (MaxValidInt), so it never needs an overflow check of its own.
func (i Int) Negate() Int {
	if i.IsNA() {
		return IntNA
	}
	return -i
}

func (i Int) Add(o Int) Int {
	if i.IsNA() || o.IsNA() {
		return IntNA
	}
	if addOverflows(int64(i), int64(o)) {
		return IntNA
	}
	r := i + o
	if r.IsNA() {
		return IntNA
	}
	return r
}

func (i Int) Sub(o Int) Int {
	if i.IsNA() || o.IsNA() {
		return IntNA
	}
	if subOverflows(int64(i), int64(o)) {
		return IntNA
	}
	r := i - o
	if r.IsNA() {
		return IntNA
	}
	return r
}

func (i Int) Mul(o Int) Int {
	if i.IsNA() || o.IsNA() {
		return IntNA
	}
	if mulOverflows(int64(i), int64(o)) {
		return IntNA
	}
	r := i * o
	if r.IsNA() {
		return IntNA
	}
	return r
}

// Div: division by zero yields N/A, not a fault. MinValidInt / -1 also
// yields N/A, even though its exact quotient (MaxValidInt) is a valid Int.
func (i Int) Div(o Int) Int {
	if i.IsNA() || o.IsNA() || o == 0 {
		return IntNA
	}
	if i == MinValidInt && o == -1 {
		return IntNA
	}
	return Int(int64(i) / int64(o))
}

func (i Int) Mod(o Int) Int {
	if i.IsNA() || o.IsNA() || o == 0 {
		return IntNA
	}
	if i == MinValidInt && o == -1 {
		return 0
	}
	return Int(int64(i) % int64(o))
}

func (i Int) Not() Int {
	if i.IsNA() {
		return IntNA
	}
	return ^i
}

func (i Int) And(o Int) Int {
	if i.IsNA() || o.IsNA() {
		return IntNA
	}
	return i & o
}

func (i Int) Or(o Int) Int {
	if i.IsNA() || o.IsNA() {
		return IntNA
	}
	return i | o
}

func (i Int) Xor(o Int) Int {
	if i.IsNA() || o.IsNA() {
		return IntNA
	}
	return i ^ o
}

// Shl/Shr: any shift amount outside [0,64) or an N/A operand yields N/A.
func (i Int) Shl(n Int) Int {
	if i.IsNA() || n.IsNA() || n < 0 || n >= 64 {
		return IntNA
	}
	r := i << uint(n)
	if r.IsNA() {
		return IntNA
	}
	return r
}

func (i Int) Shr(n Int) Int {
	if i.IsNA() || n.IsNA() || n < 0 || n >= 64 {
		return IntNA
	}
	return i >> uint(n)
}

func (i Int) ToFloat() Float {
	if i.IsNA() {
		return FloatNA
	}
	return Float(i)
}
