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
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/exp/maps"
)

// PrintVariables renders a side-effect-free dump of every configured
// allocation channel's backoff/load-control state, with whether it is
// registered for CRDSA and for SA, the Go equivalent of
// SatRandomAccess::PrintVariables. It never mutates engine state, so it is
// safe to call from a test assertion or a CLI inspection command.
func (e *Engine) PrintVariables(now float64) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"channel", "crdsa", "sa", "backoffReleaseTime", "backoffArmed", "consecutiveUsed", "idleBlocksLeft"})

	ids := maps.Keys(e.cfg.Channels)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		c := e.cfg.Channels[id]
		_, isCrdsa := e.crdsaChannels[id]
		_, isSa := e.saChannels[id]
		t.AppendRow(table.Row{
			id,
			isCrdsa,
			isSa,
			c.crdsaBackoffReleaseTime,
			now < c.crdsaBackoffReleaseTime,
			c.crdsaNumOfConsecutiveBlocksUsed,
			c.crdsaIdleBlocksLeft,
		})
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"mode", e.mode.String()})
	return t.Render()
}
