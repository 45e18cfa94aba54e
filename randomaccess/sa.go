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

// runSa implements spec.md 4.3: Slotted ALOHA has no backoff timer and no
// idle-block logic, just a DAMA check followed by a release-delay draw.
func (e *Engine) runSa(channel uint32) TxDecision {
	e.mustBeSaChannel(channel)

	if e.mac.IsDamaAvailable() {
		return TxDecision{Kind: KindDoNothing, AllocationChannel: channel}
	}

	interval := e.cfg.SlottedAlohaControlRandomizationInterval
	delay := e.rng.RandRange(0, interval)
	return TxDecision{Kind: KindSlottedAloha, AllocationChannel: channel, ReleaseDelayMs: delay}
}
