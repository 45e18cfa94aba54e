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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validChannelConfig() *AllocationChannelConfig {
	return NewAllocationChannelConfig(
		0.1, 0.5, 100,
		0, 99, 3,
		2, 5, 3,
		100,
	)
}

func TestAllocationChannelConfig_ValidationRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AllocationChannelConfig)
		wantErr bool
	}{
		{"valid as-is", func(c *AllocationChannelConfig) {}, false},
		{"backoffProbability above 1", func(c *AllocationChannelConfig) { c.CrdsaBackoffProbability = 1.5 }, true},
		{"backoffProbability below 0", func(c *AllocationChannelConfig) { c.CrdsaBackoffProbability = -0.1 }, true},
		{"maximumBackoffProbability out of range", func(c *AllocationChannelConfig) { c.CrdsaMaximumBackoffProbability = 2 }, true},
		{"min >= max", func(c *AllocationChannelConfig) { c.CrdsaMinRandomizationValue = 99 }, true},
		{"span smaller than numOfInstances", func(c *AllocationChannelConfig) {
			c.CrdsaMinRandomizationValue = 0
			c.CrdsaMaxRandomizationValue = 1
			c.CrdsaNumOfInstances = 3
		}, true},
		{"numOfInstances below 2", func(c *AllocationChannelConfig) { c.CrdsaNumOfInstances = 1 }, true},
		{"maxUniquePayloadPerBlock below 1", func(c *AllocationChannelConfig) { c.CrdsaMaxUniquePayloadPerBlock = 0 }, true},
		{"implicit cap violated", func(c *AllocationChannelConfig) {
			c.CrdsaMinRandomizationValue = 0
			c.CrdsaMaxRandomizationValue = 3
			c.CrdsaNumOfInstances = 3
			c.CrdsaMaxUniquePayloadPerBlock = 2
		}, true},
		{"maxConsecutiveBlocksAccessed below 1", func(c *AllocationChannelConfig) { c.CrdsaMaxConsecutiveBlocksAccessed = 0 }, true},
		{"payloadBytes below 1", func(c *AllocationChannelConfig) { c.CrdsaPayloadBytes = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := validChannelConfig()
			tc.mutate(c)
			err := c.validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAllocationChannelConfig_MustValidatePanicsOnInvariantViolation(t *testing.T) {
	assert.Panics(t, func() {
		NewAllocationChannelConfig(2, 0.5, 100, 0, 99, 3, 2, 5, 3, 100)
	})
}

func TestRandomAccessConfiguration_UnregisteredChannelPanics(t *testing.T) {
	cfg := NewRandomAccessConfiguration(50)
	assert.Panics(t, func() { cfg.channel(7) })
}

func TestRandomAccessConfiguration_ZeroIntervalPanics(t *testing.T) {
	assert.Panics(t, func() { NewRandomAccessConfiguration(0) })
}

func TestRandomAccessConfiguration_SetSlottedAlohaControlRandomizationInterval(t *testing.T) {
	cfg := NewRandomAccessConfiguration(50)
	cfg.SetSlottedAlohaControlRandomizationInterval(75)
	assert.EqualValues(t, 75, cfg.SlottedAlohaControlRandomizationInterval)
	assert.Panics(t, func() { cfg.SetSlottedAlohaControlRandomizationInterval(0) })
}

func TestLoadConfigurationJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	const doc = `{
		"slottedAlohaControlRandomizationIntervalMs": 50,
		"channels": [
			{
				"id": 0,
				"crdsaBackoffProbability": 0.1,
				"crdsaMaximumBackoffProbability": 0.5,
				"crdsaBackoffTimeMs": 100,
				"crdsaMinRandomizationValue": 0,
				"crdsaMaxRandomizationValue": 99,
				"crdsaNumOfInstances": 3,
				"crdsaMaxUniquePayloadPerBlock": 2,
				"crdsaMaxConsecutiveBlocksAccessed": 5,
				"crdsaMinIdleBlocks": 3,
				"crdsaPayloadBytes": 100
			}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := LoadConfigurationJSON(path)
	require.NoError(t, err)
	assert.EqualValues(t, 50, cfg.SlottedAlohaControlRandomizationInterval)
	require.Contains(t, cfg.Channels, uint32(0))
	assert.EqualValues(t, 3, cfg.Channels[0].CrdsaNumOfInstances)
}

func TestLoadConfigurationJSON_MissingFile(t *testing.T) {
	_, err := LoadConfigurationJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfigurationJSON_BadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err := LoadConfigurationJSON(path)
	assert.Error(t, err)
}
