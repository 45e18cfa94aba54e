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

// runCrdsa implements CrdsaDoBackoff / CrdsaPrepareToTransmit from the
// source as the single flow in spec.md 4.2, steps 1-6.
func (e *Engine) runCrdsa(now float64, channel uint32) TxDecision {
	c := e.mustBeCrdsaChannel(channel)

	// 1. Backoff gate.
	if now < c.crdsaBackoffReleaseTime {
		decrementFloored(&c.crdsaIdleBlocksLeft)
		if e.log != nil {
			e.log.Infof("crdsa channel %d: backoff still armed until %v, now=%v", channel, c.crdsaBackoffReleaseTime, now)
		}
		return TxDecision{Kind: KindDoNothing, AllocationChannel: channel}
	}

	// 2. DAMA preemption.
	if e.mac.IsDamaAvailable() {
		decrementFloored(&c.crdsaIdleBlocksLeft)
		return TxDecision{Kind: KindDoNothing, AllocationChannel: channel}
	}

	// 3. New-data gate.
	if e.crdsaNewData {
		e.crdsaNewData = false
		if e.doBackoff(c) {
			e.armBackoffTimer(c, now)
			decrementFloored(&c.crdsaIdleBlocksLeft)
			return TxDecision{Kind: KindDoNothing, AllocationChannel: channel}
		}
	}

	// 4. Prepare to transmit.
	k := c.CrdsaMaxUniquePayloadPerBlock
	if candidates := e.mac.NumOfCandidatePackets(c.CrdsaPayloadBytes); candidates < k {
		k = candidates
	}

	frameWide := NewSlotSet()
	var perPayload []SlotSet

	for i := uint32(0); i < k; i++ {
		if e.doBackoff(c) {
			e.armBackoffTimer(c, now)
			// CrdsaSetBackoffTimer decrements crdsaIdleBlocksLeft internally
			// on this path; step 5's unconditional decrement below still
			// runs after the break, so this is a deliberate double decrement,
			// not a bug (SPEC_FULL.md 3.4).
			decrementFloored(&c.crdsaIdleBlocksLeft)
			break
		}
		if c.crdsaIdleBlocksLeft > 0 {
			continue
		}
		payload := randomizeReplicas(e.rng, c.CrdsaMinRandomizationValue, c.CrdsaMaxRandomizationValue, int(c.CrdsaNumOfInstances), frameWide)
		perPayload = append(perPayload, payload)
		if e.mac.AreBuffersEmpty() {
			e.crdsaNewData = true
		}
	}

	// 5. Unconditional decrement after the loop.
	decrementFloored(&c.crdsaIdleBlocksLeft)

	// 6. Result + bookkeeping.
	if len(perPayload) == 0 {
		c.crdsaNumOfConsecutiveBlocksUsed = 0
		return TxDecision{Kind: KindDoNothing, AllocationChannel: channel}
	}
	e.crdsaLoadControlBookkeeping(c)
	return TxDecision{Kind: KindCrdsa, AllocationChannel: channel, PerPayloadSlots: perPayload}
}

// doBackoff is the Bernoulli trial shared by steps 3 and 4, p = crdsaBackoffProbability.
func (e *Engine) doBackoff(c *AllocationChannelConfig) bool {
	return e.rng.Float64() < c.CrdsaBackoffProbability
}

// armBackoffTimer arms the channel's backoff release time, the shared
// action of spec.md 4.2 steps 3 and 4.
func (e *Engine) armBackoffTimer(c *AllocationChannelConfig, now float64) {
	c.crdsaBackoffReleaseTime = now + float64(c.CrdsaBackoffTimeMs)/1000
}

// crdsaLoadControlBookkeeping implements spec.md 4.2.2: increment the
// consecutive-use counter, forcing idle once it reaches the channel's limit.
func (e *Engine) crdsaLoadControlBookkeeping(c *AllocationChannelConfig) {
	c.crdsaNumOfConsecutiveBlocksUsed++
	if c.crdsaNumOfConsecutiveBlocksUsed >= c.CrdsaMaxConsecutiveBlocksAccessed {
		c.crdsaIdleBlocksLeft = c.CrdsaMinIdleBlocks
		c.crdsaNumOfConsecutiveBlocksUsed = 0
	}
}
