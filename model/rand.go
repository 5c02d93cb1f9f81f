package model

import "math/rand/v2"

// Rand is the source of randomness for the time label easter egg.
type Rand interface {
	// IntN returns a value in [0,n).
	IntN(n int) int
}

// RandFunc adapts a function to the Rand interface.
type RandFunc func(n int) int

func (f RandFunc) IntN(n int) int { return f(n) }

// DefaultRand draws from the math/rand/v2 top-level source.
var DefaultRand Rand = RandFunc(rand.IntN)
