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

import "fmt"

// randomizeReplicas draws numInstances distinct slot indices from the closed
// interval [minVal,maxVal], disjoint from frameWide (the slots already
// claimed by other payloads in this block), and adds them to frameWide.
//
// This is CrdsaRandomizeTxOpportunities from the original source, ported as
// a rejection loop the same way stochastic/generator.RandomAccess.NextIndex
// loops on Sample+findQElem until it draws a value not already queued.
// Termination is guaranteed by AllocationChannelConfig's invariants: the
// randomization span is large enough to hold every instance of every
// payload in the block (config.go's "implicit cap" check).
//
// The source's dead `if (resultAllSlotsInFrame.second) NS_FATAL_ERROR(...)`
// branch (unreachable as written, see spec.md 9) is replaced here with an
// assertion on the per-payload insert instead: since frameWide uniqueness
// is a superset of per-payload uniqueness, a slot that was new to frameWide
// must also be new to the payload's own set; if it isn't, something upstream
// broke the invariant and we fail loudly rather than silently producing a
// malformed payload.
func randomizeReplicas(rng UniformRng, minVal, maxVal uint32, numInstances int, frameWide SlotSet) SlotSet {
	payload := NewSlotSet()
	for len(payload) < numInstances {
		slot := rng.RandRange(minVal, maxVal)
		if !frameWide.Add(slot) {
			continue
		}
		if !payload.Add(slot) {
			panic(fmt.Errorf("randomaccess: slot %d was new to the frame but already in this payload's set", slot))
		}
	}
	return payload
}
