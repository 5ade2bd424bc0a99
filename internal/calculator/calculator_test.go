package calculator

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulator_Chain(t *testing.T) {
	acc := NewAccumulator()
	assert.Equal(t, 0.0, acc.Result())

	got := acc.Add(5).Subtract(3).Add(10).Result()
	assert.Equal(t, 12.0, got)
}

func TestAccumulator_ResetYieldsZero(t *testing.T) {
	acc := NewAccumulator().Add(42).Subtract(7)
	assert.Equal(t, 0.0, acc.Reset().Result())

	// Reset is chainable.
	assert.Equal(t, 3.0, acc.Reset().Add(3).Result())
}

func TestAccumulator_AddSubtractRestores(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	acc := NewAccumulator()

	for i := 0; i < 100; i++ {
		prior := acc.Result()
		v := float64(rng.Intn(2001) - 1000)
		assert.Equal(t, prior, acc.Add(v).Subtract(v).Result())
		acc.Add(float64(rng.Intn(50)))
	}
}

func TestAccumulator_ReturnsReceiver(t *testing.T) {
	acc := NewAccumulator()
	assert.Same(t, acc, acc.Add(1))
	assert.Same(t, acc, acc.Subtract(1))
	assert.Same(t, acc, acc.Reset())
}

func TestSandboxArithmetic(t *testing.T) {
	assert.Equal(t, 6, Sum3(1, 2, 3))
	assert.Equal(t, 3, Add(1, 2))
	assert.Equal(t, 2, Subtract(5, 3))
	assert.Equal(t, 20, Multiply(4, 5))
	assert.Equal(t, -8, Multiply(-2, 4))
}

func TestDivide(t *testing.T) {
	tests := []struct {
		a, b int
		want float64
	}{
		{10, 2, 5},
		{7, 2, 3.5},
		{-9, 4, -2.25},
		{0, 5, 0},
		{1, 3, 1.0 / 3.0},
	}
	for _, tt := range tests {
		got, err := Divide(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Divide(%d, %d)", tt.a, tt.b)
	}
}

func TestDivide_ByZero(t *testing.T) {
	for _, a := range []int{0, 1, -1, 1 << 30, -(1 << 30)} {
		_, err := Divide(a, 0)
		assert.ErrorIs(t, err, ErrDivisionByZero, "Divide(%d, 0)", a)
	}
}

func TestParseOp(t *testing.T) {
	cases := map[string]Op{
		"add":      OpAdd,
		"ADD":      OpAdd,
		"sub":      OpSubtract,
		"subtract": OpSubtract,
		"mul":      OpMultiply,
		" div ":    OpDivide,
	}
	for in, want := range cases {
		got, err := ParseOp(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseOp("modulo")
	assert.ErrorIs(t, err, ErrUnknownOp)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		op      Op
		args    []int
		want    string
		isFloat bool
		wantErr error
	}{
		{"add two", OpAdd, []int{1, 2}, "3", false, nil},
		{"add three", OpAdd, []int{1, 2, 3}, "6", false, nil},
		{"add one", OpAdd, []int{1}, "", false, ErrArity},
		{"subtract", OpSubtract, []int{5, 3}, "2", false, nil},
		{"multiply", OpMultiply, []int{4, 5}, "20", false, nil},
		{"multiply three", OpMultiply, []int{1, 2, 3}, "", false, ErrArity},
		{"divide", OpDivide, []int{9, 2}, "4.5", true, nil},
		{"divide by zero", OpDivide, []int{9, 0}, "", false, ErrDivisionByZero},
		{"unknown", Op("pow"), []int{2, 3}, "", false, ErrUnknownOp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.op, tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.isFloat, got.IsFloat)
		})
	}
}

func TestApply_ExactBeyondFloatPrecision(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs 64-bit int")
	}
	big := 1
	big <<= 53
	big++ // 2^53 + 1 has no exact float64 form

	sum, err := Apply(OpAdd, []int{big, 0})
	require.NoError(t, err)
	assert.Equal(t, Add(big, 0), sum.Int)
	assert.Equal(t, "9007199254740993", sum.String())

	diff, err := Apply(OpSubtract, []int{big, 2})
	require.NoError(t, err)
	assert.Equal(t, "9007199254740991", diff.String())

	prod, err := Apply(OpMultiply, []int{big, 1})
	require.NoError(t, err)
	assert.Equal(t, big, prod.Int)
}
