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
	"encoding/json"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
)

// AllocationChannelConfig holds the per-allocation-channel CRDSA/SA
// parameters and the runtime counters the load-control hysteresis mutates.
// The constructor and every Engine parameter setter re-run validate(),
// mirroring SatRandomAccessConf::DoCrdsaVariableSanityCheck; the runtime
// counters are updated by the CRDSA state machine directly.
type AllocationChannelConfig struct {
	CrdsaBackoffProbability        float64
	CrdsaMaximumBackoffProbability float64
	CrdsaBackoffTimeMs             uint32
	crdsaBackoffReleaseTime        float64 // absolute simulation seconds

	CrdsaMinRandomizationValue uint32
	CrdsaMaxRandomizationValue uint32
	CrdsaNumOfInstances        uint32

	CrdsaMaxUniquePayloadPerBlock     uint32
	CrdsaMaxConsecutiveBlocksAccessed uint32
	CrdsaMinIdleBlocks                uint32

	crdsaNumOfConsecutiveBlocksUsed uint32
	crdsaIdleBlocksLeft             uint32

	CrdsaPayloadBytes uint32
}

// NewAllocationChannelConfig builds a channel configuration and validates it
// immediately; a caller assembling configuration from literals gets the same
// fail-fast behavior as one loading it from JSON.
func NewAllocationChannelConfig(
	backoffProbability, maximumBackoffProbability float64,
	backoffTimeMs uint32,
	minRandomizationValue, maxRandomizationValue, numOfInstances uint32,
	maxUniquePayloadPerBlock, maxConsecutiveBlocksAccessed, minIdleBlocks uint32,
	payloadBytes uint32,
) *AllocationChannelConfig {
	c := &AllocationChannelConfig{
		CrdsaBackoffProbability:           backoffProbability,
		CrdsaMaximumBackoffProbability:    maximumBackoffProbability,
		CrdsaBackoffTimeMs:                backoffTimeMs,
		CrdsaMinRandomizationValue:        minRandomizationValue,
		CrdsaMaxRandomizationValue:        maxRandomizationValue,
		CrdsaNumOfInstances:               numOfInstances,
		CrdsaMaxUniquePayloadPerBlock:     maxUniquePayloadPerBlock,
		CrdsaMaxConsecutiveBlocksAccessed: maxConsecutiveBlocksAccessed,
		CrdsaMinIdleBlocks:                minIdleBlocks,
		CrdsaPayloadBytes:                 payloadBytes,
	}
	c.mustValidate()
	return c
}

// validate checks invariants I1-I5 of the data model (I6, channel
// registration, is enforced by the engine, not the config object).
func (c *AllocationChannelConfig) validate() error {
	if c.CrdsaBackoffProbability < 0 || c.CrdsaBackoffProbability > 1 {
		return errors.Newf("crdsaBackoffProbability (%v) must be in [0,1]", c.CrdsaBackoffProbability)
	}
	if c.CrdsaMaximumBackoffProbability < 0 || c.CrdsaMaximumBackoffProbability > 1 {
		return errors.Newf("crdsaMaximumBackoffProbability (%v) must be in [0,1]", c.CrdsaMaximumBackoffProbability)
	}
	if c.CrdsaMinRandomizationValue >= c.CrdsaMaxRandomizationValue {
		return errors.Newf("crdsaMinRandomizationValue (%v) must be < crdsaMaxRandomizationValue (%v)",
			c.CrdsaMinRandomizationValue, c.CrdsaMaxRandomizationValue)
	}
	span := c.CrdsaMaxRandomizationValue - c.CrdsaMinRandomizationValue
	if uint64(span) < uint64(c.CrdsaNumOfInstances) {
		return errors.Newf("randomization span (%v) must be >= crdsaNumOfInstances (%v)", span, c.CrdsaNumOfInstances)
	}
	if c.CrdsaNumOfInstances < 2 {
		return errors.Newf("crdsaNumOfInstances (%v) must be >= 2", c.CrdsaNumOfInstances)
	}
	if c.CrdsaMaxUniquePayloadPerBlock < 1 {
		return errors.New("crdsaMaxUniquePayloadPerBlock must be >= 1")
	}
	// the implicit cap from spec.md 4.2.1: k * numOfInstances must not exceed
	// the span+1 slots of the closed interval [min,max], otherwise replica
	// randomization for the last unique payload of a block cannot terminate.
	if uint64(c.CrdsaMaxUniquePayloadPerBlock)*uint64(c.CrdsaNumOfInstances) > uint64(span)+1 {
		return errors.Newf(
			"crdsaMaxUniquePayloadPerBlock (%v) * crdsaNumOfInstances (%v) must fit within the %v slots of the randomization window",
			c.CrdsaMaxUniquePayloadPerBlock, c.CrdsaNumOfInstances, span+1,
		)
	}
	if c.CrdsaMaxConsecutiveBlocksAccessed < 1 {
		return errors.New("crdsaMaxConsecutiveBlocksAccessed must be >= 1")
	}
	if c.crdsaNumOfConsecutiveBlocksUsed > c.CrdsaMaxConsecutiveBlocksAccessed {
		return errors.Newf("crdsaNumOfConsecutiveBlocksUsed (%v) exceeds crdsaMaxConsecutiveBlocksAccessed (%v)",
			c.crdsaNumOfConsecutiveBlocksUsed, c.CrdsaMaxConsecutiveBlocksAccessed)
	}
	if c.crdsaIdleBlocksLeft > c.CrdsaMinIdleBlocks {
		return errors.Newf("crdsaIdleBlocksLeft (%v) exceeds crdsaMinIdleBlocks (%v)",
			c.crdsaIdleBlocksLeft, c.CrdsaMinIdleBlocks)
	}
	if c.CrdsaPayloadBytes < 1 {
		return errors.New("crdsaPayloadBytes must be >= 1")
	}
	return nil
}

// mustValidate panics on an invariant violation: per spec.md 7, a
// configuration error is a programming bug caught at setup, not a retryable
// condition.
func (c *AllocationChannelConfig) mustValidate() {
	if err := c.validate(); err != nil {
		panic(fmt.Errorf("randomaccess: invalid allocation channel configuration: %w", err))
	}
}

// CrdsaBackoffReleaseTime returns the absolute simulation-second timestamp
// before which the channel's CRDSA backoff timer is armed. Read-only test hook.
func (c *AllocationChannelConfig) CrdsaBackoffReleaseTime() float64 { return c.crdsaBackoffReleaseTime }

// CrdsaNumOfConsecutiveBlocksUsed is a read-only introspection accessor.
func (c *AllocationChannelConfig) CrdsaNumOfConsecutiveBlocksUsed() uint32 {
	return c.crdsaNumOfConsecutiveBlocksUsed
}

// CrdsaIdleBlocksLeft is a read-only introspection accessor.
func (c *AllocationChannelConfig) CrdsaIdleBlocksLeft() uint32 { return c.crdsaIdleBlocksLeft }

// RandomAccessConfiguration is the set of per-allocation-channel parameters
// plus the global SA control-randomization interval, shared for the
// lifetime of one Engine.
type RandomAccessConfiguration struct {
	Channels                                map[uint32]*AllocationChannelConfig
	SlottedAlohaControlRandomizationInterval uint32 // milliseconds, must be >= 1
}

// NewRandomAccessConfiguration creates an empty configuration with the given
// SA control-randomization interval.
func NewRandomAccessConfiguration(slottedAlohaControlRandomizationIntervalMs uint32) *RandomAccessConfiguration {
	if slottedAlohaControlRandomizationIntervalMs < 1 {
		panic(errors.New("randomaccess: slottedAlohaControlRandomizationInterval must be >= 1"))
	}
	return &RandomAccessConfiguration{
		Channels: make(map[uint32]*AllocationChannelConfig),
		SlottedAlohaControlRandomizationInterval: slottedAlohaControlRandomizationIntervalMs,
	}
}

// AddChannel registers a channel's configuration, overwriting any existing
// entry for the same id (channel-id uniqueness is enforced by the engine's
// Register*Channel calls, not here: a configuration may be rebuilt ahead of
// a terminal being reconfigured).
func (c *RandomAccessConfiguration) AddChannel(id uint32, cfg *AllocationChannelConfig) {
	cfg.mustValidate()
	c.Channels[id] = cfg
}

// channel returns the configuration for id, panicking if it was never
// registered: per spec.md invariant I6, an id used in a call must have been
// configured.
func (c *RandomAccessConfiguration) channel(id uint32) *AllocationChannelConfig {
	cfg, ok := c.Channels[id]
	if !ok {
		panic(fmt.Errorf("randomaccess: allocation channel %d has no configuration", id))
	}
	return cfg
}

// SetSlottedAlohaControlRandomizationInterval sets the global SA interval
// and revalidates it.
func (c *RandomAccessConfiguration) SetSlottedAlohaControlRandomizationInterval(ms uint32) {
	c.SlottedAlohaControlRandomizationInterval = ms
	if c.SlottedAlohaControlRandomizationInterval < 1 {
		panic(errors.New("randomaccess: slottedAlohaControlRandomizationInterval must be >= 1"))
	}
}

// allocationChannelJSON is the on-disk shape for one allocation channel,
// used only by the demo CLI's configuration loader (spec.md's CLI/config
// loader is an external collaborator; this is this package's own
// constructible representation, not a reimplementation of that loader).
type allocationChannelJSON struct {
	ID                                int     `json:"id"`
	CrdsaBackoffProbability           float64 `json:"crdsaBackoffProbability"`
	CrdsaMaximumBackoffProbability    float64 `json:"crdsaMaximumBackoffProbability"`
	CrdsaBackoffTimeMs                uint32  `json:"crdsaBackoffTimeMs"`
	CrdsaMinRandomizationValue        uint32  `json:"crdsaMinRandomizationValue"`
	CrdsaMaxRandomizationValue        uint32  `json:"crdsaMaxRandomizationValue"`
	CrdsaNumOfInstances               uint32  `json:"crdsaNumOfInstances"`
	CrdsaMaxUniquePayloadPerBlock     uint32  `json:"crdsaMaxUniquePayloadPerBlock"`
	CrdsaMaxConsecutiveBlocksAccessed uint32  `json:"crdsaMaxConsecutiveBlocksAccessed"`
	CrdsaMinIdleBlocks                uint32  `json:"crdsaMinIdleBlocks"`
	CrdsaPayloadBytes                 uint32  `json:"crdsaPayloadBytes"`
}

type randomAccessConfigurationJSON struct {
	SlottedAlohaControlRandomizationIntervalMs uint32                  `json:"slottedAlohaControlRandomizationIntervalMs"`
	Channels                                   []allocationChannelJSON `json:"channels"`
}

// LoadConfigurationJSON reads a RandomAccessConfiguration from a JSON file.
func LoadConfigurationJSON(path string) (*RandomAccessConfiguration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("randomaccess: could not read configuration file %s: %w", path, err)
	}
	var raw randomAccessConfigurationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("randomaccess: could not parse configuration file %s: %w", path, err)
	}
	cfg := NewRandomAccessConfiguration(raw.SlottedAlohaControlRandomizationIntervalMs)
	for _, ch := range raw.Channels {
		channelCfg := NewAllocationChannelConfig(
			ch.CrdsaBackoffProbability, ch.CrdsaMaximumBackoffProbability, ch.CrdsaBackoffTimeMs,
			ch.CrdsaMinRandomizationValue, ch.CrdsaMaxRandomizationValue, ch.CrdsaNumOfInstances,
			ch.CrdsaMaxUniquePayloadPerBlock, ch.CrdsaMaxConsecutiveBlocksAccessed, ch.CrdsaMinIdleBlocks,
			ch.CrdsaPayloadBytes,
		)
		cfg.AddChannel(uint32(ch.ID), channelCfg)
	}
	return cfg, nil
}
