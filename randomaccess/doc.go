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

// Package randomaccess implements the random-access transmission-opportunity
// engine for a satellite return-link terminal. It decides, on each call to
// DoRandomAccess, whether and where a terminal may transmit on a
// contention-based return channel using Slotted ALOHA (SA) or Contention
// Resolution Diversity Slotted ALOHA (CRDSA).
//
// An Engine is owned by exactly one terminal and is not safe for concurrent
// use: it is driven synchronously by the host's discrete-event loop, the
// same way a single ns-3 node drives its own SatRandomAccess instance.
package randomaccess
