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

package main

// toyMac is a minimal MacQueries implementation for the demo CLI: a
// terminal with no DAMA allocation and a packet backlog that drains by one
// packet per CRDSA payload emitted and is refilled by the simulate command.
type toyMac struct {
	damaAvailable bool
	backlog       uint32
}

func newToyMac(backlog uint32) *toyMac {
	return &toyMac{backlog: backlog}
}

func (m *toyMac) IsDamaAvailable() bool { return m.damaAvailable }

func (m *toyMac) AreBuffersEmpty() bool { return m.backlog == 0 }

func (m *toyMac) NumOfCandidatePackets(payloadBytes uint32) uint32 {
	if m.backlog == 0 {
		return 0
	}
	if m.backlog > 2 {
		return 2
	}
	return m.backlog
}

// drain is called by the simulate command after a CRDSA emission, to keep
// the backlog moving so the demo doesn't emit forever at a fixed rate.
func (m *toyMac) drain(numPayloads uint32) {
	if numPayloads > m.backlog {
		m.backlog = 0
		return
	}
	m.backlog -= numPayloads
}

// refill adds newly arrived traffic to the backlog.
func (m *toyMac) refill(n uint32) {
	m.backlog += n
}
