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

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/satcom-sim/randomaccess/visualizer"
)

var portFlag = &cli.StringFlag{
	Name:  "port",
	Usage: "port to serve the dashboard on",
	Value: "8080",
}

// VisualizeCommand serves a duty-cycle dashboard for a trace file written
// by `simulate --trace-out`, the way StochasticVisualizeCommand serves the
// stochastic estimator's recorded stats.
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "serve a duty-cycle dashboard for a recorded decision trace",
	ArgsUsage: "<trace.json>",
	Flags:     []cli.Flag{portFlag},
}

func visualizeAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("visualize: expected exactly one trace file argument")
	}

	data, err := os.ReadFile(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	var entries []traceEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	rec := visualizer.NewRecorder(len(entries) + 1)
	for _, e := range entries {
		rec.Record(visualizer.Sample{Now: float64(e.Block), AllocationChannel: e.Channel, Emitted: e.Emitted})
	}

	fmt.Printf("serving dashboard on :%s\n", ctx.String(portFlag.Name))
	return visualizer.FireUpWeb(rec, ":"+ctx.String(portFlag.Name))
}
