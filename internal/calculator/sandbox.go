package calculator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero is not allowed")
	// ErrUnknownOp is returned by ParseOp for unrecognized operation names.
	ErrUnknownOp = errors.New("unknown operation")
	// ErrArity is returned by Apply when the operand count does not fit the operation.
	ErrArity = errors.New("wrong number of operands")
)

// Sum3 adds three integers.
func Sum3(a, b, c int) int {
	return a + b + c
}

// Add adds two integers.
func Add(a, b int) int {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b int) int {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b int) int {
	return a * b
}

// Divide returns a / b as a float64. A zero divisor is rejected with
// ErrDivisionByZero instead of producing Inf or NaN.
func Divide(a, b int) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return float64(a) / float64(b), nil
}

// Op names a sandbox operation.
type Op string

const (
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
	OpMultiply Op = "multiply"
	OpDivide   Op = "divide"
)

// Ops lists the operations in display order.
var Ops = []Op{OpAdd, OpSubtract, OpMultiply, OpDivide}

// ParseOp resolves an operation name. Matching is case-insensitive and the
// short forms sub, mul and div are accepted.
func ParseOp(name string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "add", "plus":
		return OpAdd, nil
	case "subtract", "sub", "minus":
		return OpSubtract, nil
	case "multiply", "mul", "times":
		return OpMultiply, nil
	case "divide", "div":
		return OpDivide, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOp, name)
}

// Result is the outcome of Apply. add, subtract and multiply produce an
// exact integer; divide produces a float.
type Result struct {
	Int     int
	Float   float64
	IsFloat bool
}

func intResult(v int) Result { return Result{Int: v} }

// String formats integers exactly and floats in their shortest form.
func (r Result) String() string {
	if r.IsFloat {
		return strconv.FormatFloat(r.Float, 'g', -1, 64)
	}
	return strconv.Itoa(r.Int)
}

// Apply evaluates op over args. OpAdd takes two or three operands; the
// others take exactly two.
func Apply(op Op, args []int) (Result, error) {
	switch op {
	case OpAdd:
		switch len(args) {
		case 2:
			return intResult(Add(args[0], args[1])), nil
		case 3:
			return intResult(Sum3(args[0], args[1], args[2])), nil
		}
		return Result{}, fmt.Errorf("%w: %s takes 2 or 3, got %d", ErrArity, op, len(args))
	case OpSubtract, OpMultiply, OpDivide:
		if len(args) != 2 {
			return Result{}, fmt.Errorf("%w: %s takes 2, got %d", ErrArity, op, len(args))
		}
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownOp, string(op))
	}

	a, b := args[0], args[1]
	switch op {
	case OpSubtract:
		return intResult(Subtract(a, b)), nil
	case OpMultiply:
		return intResult(Multiply(a, b)), nil
	default:
		q, err := Divide(a, b)
		if err != nil {
			return Result{}, err
		}
		return Result{Float: q, IsFloat: true}, nil
	}
}
