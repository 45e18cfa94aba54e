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
	"fmt"

	"golang.org/x/exp/maps"

	"github.com/satcom-sim/randomaccess/logger"
)

// Engine is the per-terminal random-access decision engine. It owns no
// shared state: a host running several terminals instantiates one Engine
// per terminal, each with its own RandomAccessConfiguration and UniformRng.
type Engine struct {
	mode SchemeMode
	rng  UniformRng
	cfg  *RandomAccessConfiguration

	crdsaChannels map[uint32]struct{}
	saChannels    map[uint32]struct{}

	// crdsaNewData is a single engine-wide flag, not per channel: the source
	// tracks exactly one such flag per terminal regardless of how many
	// allocation channels it runs CRDSA on.
	crdsaNewData bool

	mac MacQueries
	log *logger.Logger

	// legacyIdleDecrementOnFallback toggles the ANY_AVAILABLE fallback's
	// "decrement every registered CRDSA channel's idle counter" behavior
	// (spec.md 9). Defaults to true so existing callers see identical pacing.
	legacyIdleDecrementOnFallback bool
}

// NewEngine constructs an Engine. cfg and mac must be non-nil; a nil rng
// is a programming error the same way an unregistered channel id is.
func NewEngine(cfg *RandomAccessConfiguration, mode SchemeMode, rng UniformRng, mac MacQueries, log *logger.Logger) *Engine {
	if cfg == nil {
		panic("randomaccess: NewEngine called with nil configuration")
	}
	if rng == nil {
		panic("randomaccess: NewEngine called with nil UniformRng")
	}
	if mac == nil {
		panic("randomaccess: NewEngine called with nil MacQueries")
	}
	return &Engine{
		mode:                          mode,
		rng:                           rng,
		cfg:                           cfg,
		crdsaChannels:                 make(map[uint32]struct{}),
		saChannels:                    make(map[uint32]struct{}),
		mac:                           mac,
		log:                           log,
		legacyIdleDecrementOnFallback: true,
	}
}

// SetLegacyIdleDecrementOnFallback overrides the default ANY_AVAILABLE
// fallback pacing behavior (spec.md 9).
func (e *Engine) SetLegacyIdleDecrementOnFallback(v bool) {
	e.legacyIdleDecrementOnFallback = v
}

// SetSchemeMode changes the active scheme mode.
func (e *Engine) SetSchemeMode(mode SchemeMode) {
	e.mode = mode
}

// Mode returns the engine's current scheme mode. Read-only introspection hook.
func (e *Engine) Mode() SchemeMode { return e.mode }

// RegisterCrdsaChannel enables CRDSA on the given allocation channel.
// Registering the same id twice is a fatal configuration error.
func (e *Engine) RegisterCrdsaChannel(id uint32) {
	if _, ok := e.crdsaChannels[id]; ok {
		panic(fmt.Errorf("randomaccess: allocation channel %d is already registered for CRDSA", id))
	}
	e.cfg.channel(id) // panics if unconfigured
	e.crdsaChannels[id] = struct{}{}
}

// RegisterSaChannel enables SA on the given allocation channel.
func (e *Engine) RegisterSaChannel(id uint32) {
	if _, ok := e.saChannels[id]; ok {
		panic(fmt.Errorf("randomaccess: allocation channel %d is already registered for SA", id))
	}
	e.cfg.channel(id)
	e.saChannels[id] = struct{}{}
}

func (e *Engine) mustBeCrdsaChannel(id uint32) *AllocationChannelConfig {
	if _, ok := e.crdsaChannels[id]; !ok {
		panic(fmt.Errorf("randomaccess: allocation channel %d is not registered for CRDSA", id))
	}
	return e.cfg.channel(id)
}

func (e *Engine) mustBeSaChannel(id uint32) *AllocationChannelConfig {
	if _, ok := e.saChannels[id]; !ok {
		panic(fmt.Errorf("randomaccess: allocation channel %d is not registered for SA", id))
	}
	return e.cfg.channel(id)
}

// requireCrdsaCapableMode panics if the engine's mode never evaluates CRDSA,
// per spec.md 4.4: calling a CRDSA setter in SA_ONLY/OFF mode is fatal.
func (e *Engine) requireCrdsaCapableMode() {
	if e.mode != CRDSAOnly && e.mode != AnyAvailable {
		panic(fmt.Errorf("randomaccess: CRDSA setter called while engine is in %s mode", e.mode))
	}
}

// requireSaCapableMode panics if the engine's mode never evaluates SA.
func (e *Engine) requireSaCapableMode() {
	if e.mode != SAOnly && e.mode != AnyAvailable {
		panic(fmt.Errorf("randomaccess: SA setter called while engine is in %s mode", e.mode))
	}
}

// CrdsaSetLoadControlParameters sets the consecutive-block/idle-block pair.
func (e *Engine) CrdsaSetLoadControlParameters(channel uint32, maxConsecutiveBlocksAccessed, minIdleBlocks uint32) {
	e.requireCrdsaCapableMode()
	c := e.mustBeCrdsaChannel(channel)
	c.CrdsaMaxConsecutiveBlocksAccessed = maxConsecutiveBlocksAccessed
	c.CrdsaMinIdleBlocks = minIdleBlocks
	c.mustValidate()
}

// CrdsaSetMaximumBackoffProbability sets the upper clamp on backoff probability.
func (e *Engine) CrdsaSetMaximumBackoffProbability(channel uint32, maximumBackoffProbability float64) {
	e.requireCrdsaCapableMode()
	c := e.mustBeCrdsaChannel(channel)
	c.CrdsaMaximumBackoffProbability = maximumBackoffProbability
	c.mustValidate()
}

// CrdsaSetPayloadBytes sets the payload size used to query candidate packets.
func (e *Engine) CrdsaSetPayloadBytes(channel uint32, payloadBytes uint32) {
	e.requireCrdsaCapableMode()
	c := e.mustBeCrdsaChannel(channel)
	c.CrdsaPayloadBytes = payloadBytes
	c.mustValidate()
}

// CrdsaSetRandomizationParameters sets the replica-slot randomization window
// and instance count.
func (e *Engine) CrdsaSetRandomizationParameters(channel uint32, minRandomizationValue, maxRandomizationValue, numOfInstances uint32) {
	e.requireCrdsaCapableMode()
	c := e.mustBeCrdsaChannel(channel)
	c.CrdsaMinRandomizationValue = minRandomizationValue
	c.CrdsaMaxRandomizationValue = maxRandomizationValue
	c.CrdsaNumOfInstances = numOfInstances
	c.mustValidate()
}

// CrdsaSetMaximumDataRateLimitationParameters sets the backoff time and the
// maximum number of unique payloads packed per block.
func (e *Engine) CrdsaSetMaximumDataRateLimitationParameters(channel uint32, backoffTimeMs, maxUniquePayloadPerBlock uint32) {
	e.requireCrdsaCapableMode()
	c := e.mustBeCrdsaChannel(channel)
	c.CrdsaBackoffTimeMs = backoffTimeMs
	c.CrdsaMaxUniquePayloadPerBlock = maxUniquePayloadPerBlock
	c.mustValidate()
}

// SlottedAlohaSetControlRandomizationInterval sets the global SA release
// delay window (applies to every SA-registered channel).
func (e *Engine) SlottedAlohaSetControlRandomizationInterval(ms uint32) {
	e.requireSaCapableMode()
	e.cfg.SetSlottedAlohaControlRandomizationInterval(ms)
}

// DoRandomAccess is the single entry point a MAC calls whenever a frame
// boundary (CRDSATrigger) or an eligible packet (SATrigger) occurs. See
// spec.md 4.1 for the dispatch table this implements.
func (e *Engine) DoRandomAccess(now float64, channel uint32, trigger TriggerKind) TxDecision {
	switch e.mode {
	case Off:
		return TxDecision{Kind: KindDoNothing, AllocationChannel: channel}
	case CRDSAOnly:
		if trigger == CRDSATrigger {
			return e.runCrdsa(now, channel)
		}
		return TxDecision{Kind: KindDoNothing, AllocationChannel: channel}
	case SAOnly:
		if trigger == SATrigger {
			return e.runSa(channel)
		}
		return TxDecision{Kind: KindDoNothing, AllocationChannel: channel}
	case AnyAvailable:
		if trigger == SATrigger {
			return e.runSa(channel)
		}
		c := e.mustBeCrdsaChannel(channel)
		if now < c.crdsaBackoffReleaseTime || c.CrdsaBackoffProbability >= c.CrdsaMaximumBackoffProbability {
			if e.legacyIdleDecrementOnFallback {
				e.decrementIdleBlocksOnAllCrdsaChannels()
			}
			return e.runSa(channel)
		}
		return e.runCrdsa(now, channel)
	default:
		panic(fmt.Errorf("randomaccess: unrecognized scheme mode %v", e.mode))
	}
}

// decrementIdleBlocksOnAllCrdsaChannels implements the ANY_AVAILABLE
// fallback's side effect on every registered CRDSA channel, not only the
// one that triggered the call (spec.md 4.1, last row).
func (e *Engine) decrementIdleBlocksOnAllCrdsaChannels() {
	for _, id := range maps.Keys(e.crdsaChannels) {
		c := e.cfg.channel(id)
		decrementFloored(&c.crdsaIdleBlocksLeft)
	}
}

func decrementFloored(v *uint32) {
	if *v > 0 {
		*v--
	}
}
