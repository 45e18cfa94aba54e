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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomizeReplicas_SizeAndBounds(t *testing.T) {
	rng := NewMathRandRNG(42)
	frame := NewSlotSet()
	payload := randomizeReplicas(rng, 0, 99, 3, frame)

	require.Len(t, payload, 3)
	for _, slot := range payload.Slice() {
		assert.GreaterOrEqual(t, slot, uint32(0))
		assert.LessOrEqual(t, slot, uint32(99))
	}
}

func TestRandomizeReplicas_DisjointAcrossPayloadsInSameFrame(t *testing.T) {
	rng := NewMathRandRNG(42)
	frame := NewSlotSet()

	p1 := randomizeReplicas(rng, 0, 9, 5, frame)
	p2 := randomizeReplicas(rng, 0, 9, 5, frame)

	require.Len(t, p1, 5)
	require.Len(t, p2, 5)
	for slot := range p1 {
		assert.False(t, p2.Contains(slot), "slot %d present in both payloads", slot)
	}
	assert.Len(t, frame, 10)
}

func TestRandomizeReplicas_ExhaustsEntireSpan(t *testing.T) {
	rng := NewMathRandRNG(1)
	frame := NewSlotSet()
	payload := randomizeReplicas(rng, 0, 4, 5, frame)
	require.Len(t, payload, 5)
	for i := uint32(0); i <= 4; i++ {
		assert.True(t, frame.Contains(i))
	}
}
