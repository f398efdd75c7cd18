package domain

import "math/rand/v2"

// NumberGenerator produces the business-facing identifiers assigned on
// create. Next returns a value in [base, base+span).
type NumberGenerator interface {
	Next(base, span int64) int64
}

// NumberGeneratorFunc adapts a plain function to the NumberGenerator interface.
type NumberGeneratorFunc func(base, span int64) int64

// Next implements NumberGenerator.
func (f NumberGeneratorFunc) Next(base, span int64) int64 {
	return f(base, span)
}

// RandomNumberGenerator draws identifiers from math/rand/v2.
// Collisions are possible and are left to the store's unique constraints.
type RandomNumberGenerator struct{}

// Next implements NumberGenerator.
func (RandomNumberGenerator) Next(base, span int64) int64 {
	if span <= 0 {
		return base
	}
	return base + rand.Int64N(span)
}
