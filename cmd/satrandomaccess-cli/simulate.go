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
	"time"

	"github.com/urfave/cli/v2"

	"github.com/satcom-sim/randomaccess/logger"
	"github.com/satcom-sim/randomaccess/randomaccess"
	"github.com/satcom-sim/randomaccess/visualizer"
)

var configFlag = &cli.StringFlag{
	Name:     "config",
	Usage:    "path to a RandomAccessConfiguration JSON file",
	Required: true,
}

var seedFlag = &cli.Int64Flag{
	Name:  "seed",
	Usage: "seed for the deterministic uniform random source",
	Value: 42,
}

var blocksFlag = &cli.IntFlag{
	Name:  "blocks",
	Usage: "number of CRDSA blocks to simulate",
	Value: 100,
}

var backlogFlag = &cli.UintFlag{
	Name:  "backlog",
	Usage: "initial toy MAC packet backlog",
	Value: 20,
}

var traceOutFlag = &cli.StringFlag{
	Name:  "trace-out",
	Usage: "write the recorded decision trace to this JSON file",
}

// SimulateCommand drives one Engine against a toy in-memory MAC for a
// fixed number of CRDSA blocks, the way StochasticGenerateCommand drives
// the uniform event generator.
var SimulateCommand = cli.Command{
	Action:    simulateAction,
	Name:      "simulate",
	Usage:     "run the engine against a toy in-memory MAC and print a summary",
	ArgsUsage: "",
	Flags:     []cli.Flag{configFlag, seedFlag, blocksFlag, backlogFlag, traceOutFlag},
}

type traceEntry struct {
	Block   int    `json:"block"`
	Channel uint32 `json:"channel"`
	Emitted bool   `json:"emitted"`
}

func simulateAction(ctx *cli.Context) error {
	cfg, err := randomaccess.LoadConfigurationJSON(ctx.String(configFlag.Name))
	if err != nil {
		return err
	}

	mac := newToyMac(ctx.Uint(backlogFlag.Name))
	log := logger.NewLogger("INFO", "satrandomaccess-cli")
	rng := randomaccess.NewMathRandRNG(ctx.Int64(seedFlag.Name))
	engine := randomaccess.NewEngine(cfg, randomaccess.CRDSAOnly, rng, mac, log)

	for id := range cfg.Channels {
		engine.RegisterCrdsaChannel(id)
	}

	rec := visualizer.NewRecorder(1000)
	var trace []traceEntry
	now := 0.0
	for block := 0; block < ctx.Int(blocksFlag.Name); block++ {
		for id := range cfg.Channels {
			d := engine.DoRandomAccess(now, id, randomaccess.CRDSATrigger)
			emitted := !d.IsDoNothing()
			rec.Record(visualizer.Sample{Now: now, AllocationChannel: id, Emitted: emitted})
			trace = append(trace, traceEntry{Block: block, Channel: id, Emitted: emitted})
			if emitted {
				mac.drain(uint32(len(d.PerPayloadSlots)))
			}
		}
		mac.refill(1)
		now += 0.01
	}

	h, m, s := logger.ParseTime(time.Duration(now * float64(time.Second)))
	fmt.Printf("simulated %d blocks over %02d:%02d:%02d simulated time\n", ctx.Int(blocksFlag.Name), h, m, s)
	fmt.Println(engine.PrintVariables(now))

	if out := ctx.String(traceOutFlag.Name); out != "" {
		data, err := json.MarshalIndent(trace, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, data, 0o600); err != nil {
			return err
		}
	}
	return nil
}
