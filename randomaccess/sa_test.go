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
	"go.uber.org/mock/gomock"
)

// Scenario 1 from spec.md 8: SA-only, DAMA available.
func TestSa_DamaAvailable_ReturnsDoNothing(t *testing.T) {
	cfg := NewRandomAccessConfiguration(50)
	cfg.AddChannel(0, NewAllocationChannelConfig(0, 0.5, 100, 0, 99, 3, 2, 5, 3, 100))

	ctrl := gomock.NewController(t)
	mac := NewMockMacQueries(ctrl)
	mac.EXPECT().IsDamaAvailable().Return(true)

	e := NewEngine(cfg, SAOnly, NewMathRandRNG(42), mac, nil)
	e.RegisterSaChannel(0)

	d := e.DoRandomAccess(0, 0, SATrigger)
	assert.True(t, d.IsDoNothing())
}

// Scenario 2 from spec.md 8: SA-only, no DAMA.
func TestSa_NoDama_ReturnsReleaseDelayWithinInterval(t *testing.T) {
	cfg := NewRandomAccessConfiguration(50)
	cfg.AddChannel(0, NewAllocationChannelConfig(0, 0.5, 100, 0, 99, 3, 2, 5, 3, 100))

	ctrl := gomock.NewController(t)
	mac := NewMockMacQueries(ctrl)
	mac.EXPECT().IsDamaAvailable().Return(false)

	e := NewEngine(cfg, SAOnly, NewMathRandRNG(42), mac, nil)
	e.RegisterSaChannel(0)

	d := e.DoRandomAccess(0, 0, SATrigger)
	assert.Equal(t, KindSlottedAloha, d.Kind)
	assert.LessOrEqual(t, d.ReleaseDelayMs, uint32(50))
}

func TestSa_UnregisteredChannelIsFatal(t *testing.T) {
	cfg := NewRandomAccessConfiguration(50)
	cfg.AddChannel(0, NewAllocationChannelConfig(0, 0.5, 100, 0, 99, 3, 2, 5, 3, 100))

	ctrl := gomock.NewController(t)
	mac := NewMockMacQueries(ctrl)

	e := NewEngine(cfg, SAOnly, NewMathRandRNG(42), mac, nil)
	assert.Panics(t, func() { e.DoRandomAccess(0, 0, SATrigger) })
}
