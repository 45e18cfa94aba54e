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

package visualizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_PanicsOnNonPositiveLimit(t *testing.T) {
	assert.Panics(t, func() { NewRecorder(0) })
	assert.Panics(t, func() { NewRecorder(-1) })
}

func TestRecorder_RecordAndRetrieveInOrder(t *testing.T) {
	rec := NewRecorder(3)
	rec.Record(Sample{Now: 1, AllocationChannel: 0, Emitted: true})
	rec.Record(Sample{Now: 2, AllocationChannel: 0, Emitted: false})

	samples := rec.Samples(0)
	require.Len(t, samples, 2)
	assert.Equal(t, 1.0, samples[0].Now)
	assert.Equal(t, 2.0, samples[1].Now)
}

func TestRecorder_DropsOldestBeyondLimit(t *testing.T) {
	rec := NewRecorder(2)
	rec.Record(Sample{Now: 1, AllocationChannel: 0})
	rec.Record(Sample{Now: 2, AllocationChannel: 0})
	rec.Record(Sample{Now: 3, AllocationChannel: 0})

	samples := rec.Samples(0)
	require.Len(t, samples, 2)
	assert.Equal(t, 2.0, samples[0].Now)
	assert.Equal(t, 3.0, samples[1].Now)
}

func TestRecorder_ChannelsListsOnlyRecordedIds(t *testing.T) {
	rec := NewRecorder(5)
	rec.Record(Sample{AllocationChannel: 3})
	rec.Record(Sample{AllocationChannel: 7})

	channels := rec.Channels()
	assert.ElementsMatch(t, []uint32{3, 7}, channels)
}

func TestRunningDutyCycle_AllEmittedIsAlwaysOne(t *testing.T) {
	samples := []Sample{{Emitted: true}, {Emitted: true}, {Emitted: true}}
	out := runningDutyCycle(samples, 2)
	require.Len(t, out, 3)
	for _, v := range out {
		assert.Equal(t, 1.0, v.Value)
	}
}

func TestRunningDutyCycle_NoneEmittedIsAlwaysZero(t *testing.T) {
	samples := []Sample{{Emitted: false}, {Emitted: false}}
	out := runningDutyCycle(samples, 2)
	require.Len(t, out, 2)
	for _, v := range out {
		assert.Equal(t, 0.0, v.Value)
	}
}
