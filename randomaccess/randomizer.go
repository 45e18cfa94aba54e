// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package randomaccess

import "math/rand"

// UniformRng is the uniform random source an Engine draws from. It mirrors
// the teacher's stochastic/generator.Randomizer shape (a small, swappable
// sampling interface rather than a concrete *rand.Rand field) so tests can
// substitute a scripted sequence of draws.
type UniformRng interface {
	// RandRange returns a uniform random integer in the closed interval [lo,hi].
	RandRange(lo, hi uint32) uint32
	// Float64 returns a uniform random value in [0,1), used for the CRDSA
	// Bernoulli backoff trials.
	Float64() float64
}

// mathRandRNG adapts math/rand.Rand to UniformRng, the same direct use of
// math/rand seen throughout stochastic/generator (e.g. ExpRandomizer).
type mathRandRNG struct {
	rng *rand.Rand
}

// NewMathRandRNG creates a seedable UniformRng. Two engines built with the
// same seed and driven with the same call/callback schedule produce
// bit-identical TxDecision sequences, per spec.md 5's determinism
// requirement.
func NewMathRandRNG(seed int64) UniformRng {
	return &mathRandRNG{rng: rand.New(rand.NewSource(seed))}
}

func (m *mathRandRNG) RandRange(lo, hi uint32) uint32 {
	if hi < lo {
		panic("randomaccess: RandRange called with hi < lo")
	}
	span := uint64(hi) - uint64(lo) + 1
	return lo + uint32(m.rng.Int63n(int64(span)))
}

func (m *mathRandRNG) Float64() float64 {
	return m.rng.Float64()
}
