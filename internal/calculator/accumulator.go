// Package calculator provides the sample arithmetic used by the tutorial:
// a chained running total (Autocomplete lesson) and the stateless sandbox
// operations used for manual testing.
package calculator

// Accumulator holds a single running total.
// Mutating methods return the receiver so calls can be chained.
type Accumulator struct {
	result float64
}

// NewAccumulator returns an accumulator starting at zero.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add adds v to the running total.
func (a *Accumulator) Add(v float64) *Accumulator {
	a.result += v
	return a
}

// Subtract subtracts v from the running total.
func (a *Accumulator) Subtract(v float64) *Accumulator {
	a.result -= v
	return a
}

// Reset zeroes the running total.
func (a *Accumulator) Reset() *Accumulator {
	a.result = 0
	return a
}

// Result returns the current total.
func (a *Accumulator) Result() float64 {
	return a.result
}
