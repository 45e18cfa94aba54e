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

// MacQueries is the surface the engine consults to decide each
// DoRandomAccess call. The source plumbs these as three independent
// ns-3 callback objects (IsDamaAvailableCallback, AreBuffersEmptyCallback,
// NumOfCandidatePacketsCallback); collecting them into one small interface
// is the direct Go translation described in spec.md 4.5/9 ("callback
// plumbing ... a small MacQueries interface work").
//
// Implementations must be cheap and non-blocking: the engine calls them
// synchronously during a DoRandomAccess invocation (IsDamaAvailable and
// NumOfCandidatePackets at most once each, AreBuffersEmpty once per CRDSA
// payload planned).
type MacQueries interface {
	// IsDamaAvailable reports whether the terminal already holds a scheduled
	// (non-contention) allocation that can carry the pending packet.
	IsDamaAvailable() bool
	// AreBuffersEmpty reports whether all transmit buffers are empty after
	// the most recent candidate packet has been accounted for.
	AreBuffersEmpty() bool
	// NumOfCandidatePackets reports how many unique packets of the given
	// CRDSA payload size are eligible to be packed into the current frame.
	NumOfCandidatePackets(payloadBytes uint32) uint32
}
