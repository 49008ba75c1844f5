package op

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Code selects an elementwise operation.
type Code int

const (
	// Add computes a + b.
	Add Code = iota

	// Divide computes a / b. Division by zero follows IEEE 754 (±Inf or NaN).
	Divide

	// Multiply computes a * b.
	Multiply

	// Subtract computes a - b. It is also the binary fallback for unknown codes.
	Subtract

	// Exp computes e^a. It is the only unary transform; every other code is
	// the identity when applied unary.
	Exp
)

// Count is the number of defined codes.
const Count = int(Exp) + 1

// ErrUnknownName is returned by Parse for names and numbers outside the code set.
var ErrUnknownName = errors.New("op: unknown operation")

var names = [Count]string{
	Add:      "add",
	Divide:   "divide",
	Multiply: "multiply",
	Subtract: "subtract",
	Exp:      "exp",
}

var aliases = map[string]Code{
	"+":   Add,
	"/":   Divide,
	"div": Divide,
	"*":   Multiply,
	"mul": Multiply,
	"-":   Subtract,
	"sub": Subtract,
}

// String returns the lower-case operation name, or "op(N)" for codes outside the set.
func (c Code) String() string {
	if c.Valid() {
		return names[c]
	}
	return "op(" + strconv.Itoa(int(c)) + ")"
}

// Valid reports whether c is one of the defined codes.
func (c Code) Valid() bool {
	return c >= Add && c <= Exp
}

// IsBinary reports whether c has a binary meaning of its own (Add through Subtract).
func (c Code) IsBinary() bool {
	return c >= Add && c <= Subtract
}

// IsUnary reports whether c transforms its operand when applied unary.
func (c Code) IsUnary() bool {
	return c == Exp
}

// Commutative reports whether swapping the operands of the binary form
// cannot change the result. The reverse flag is meaningless for these codes.
func (c Code) Commutative() bool {
	return c == Add || c == Multiply
}

// Codes returns all defined codes in boundary order.
func Codes() []Code {
	out := make([]Code, Count)
	for i := range out {
		out[i] = Code(i)
	}
	return out
}

// Parse resolves an operation name, symbol or decimal code.
func Parse(s string) (Code, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if key == name {
			return Code(i), nil
		}
	}
	if c, ok := aliases[key]; ok {
		return c, nil
	}
	if n, err := strconv.Atoi(key); err == nil && Code(n).Valid() {
		return Code(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownName, s)
}

// Binary applies the binary form of c to a and b.
// Codes other than Add, Divide and Multiply compute a - b.
func Binary(a, b float64, c Code) float64 {
	switch c {
	case Add:
		return a + b
	case Divide:
		return a / b
	case Multiply:
		return a * b
	default:
		return a - b
	}
}

// Unary applies the unary form of c to a: e^a for Exp, a otherwise.
func Unary(a float64, c Code) float64 {
	if c == Exp {
		return math.Exp(a)
	}
	return a
}
