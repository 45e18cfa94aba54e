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

// Package visualizer renders an HTML dashboard for a recorded trace of
// random-access decisions. It has no connection to the engine's own
// state: it only reads what a Recorder was handed, the same separation
// stochastic/visualizer keeps from the stochastic estimator it charts.
package visualizer

import "sync"

// Sample is one recorded DoRandomAccess outcome, timestamped by the
// caller's simulation clock.
type Sample struct {
	Now               float64
	AllocationChannel uint32
	Emitted           bool
}

// Recorder keeps a bounded, in-memory trace of samples per allocation
// channel. It is demo scaffolding for the CLI, not engine state: the
// engine never reads from or writes to a Recorder.
type Recorder struct {
	mu      sync.Mutex
	limit   int
	samples map[uint32][]Sample
}

// NewRecorder creates a Recorder that keeps at most limit samples per
// allocation channel, discarding the oldest once full.
func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		panic("visualizer: NewRecorder called with non-positive limit")
	}
	return &Recorder{limit: limit, samples: make(map[uint32][]Sample)}
}

// Record appends a sample for the given channel.
func (r *Recorder) Record(s Sample) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.samples[s.AllocationChannel]
	list = append(list, s)
	if len(list) > r.limit {
		list = list[len(list)-r.limit:]
	}
	r.samples[s.AllocationChannel] = list
}

// Samples returns a copy of the recorded samples for one channel, in
// recording order.
func (r *Recorder) Samples(channel uint32) []Sample {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.samples[channel]
	out := make([]Sample, len(list))
	copy(out, list)
	return out
}

// Channels returns every allocation channel id with at least one recorded sample.
func (r *Recorder) Channels() []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint32, 0, len(r.samples))
	for id := range r.samples {
		out = append(out, id)
	}
	return out
}
