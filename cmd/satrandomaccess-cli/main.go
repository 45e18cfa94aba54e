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
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// RandomAccessCliApp drives the engine end to end with a toy in-memory MAC,
// the way cmd/stochastic-cli drives the stochastic estimator. It is
// scaffolding for exercising the engine; it is not part of the engine's
// own contract.
var RandomAccessCliApp = cli.App{
	Name:      "Random-Access Simulator",
	HelpName:  "satrandomaccess-cli",
	Usage:     "drive the random-access engine against a toy in-memory MAC",
	Copyright: "(c) 2025 Sonic Labs",
	Commands: []*cli.Command{
		&SimulateCommand,
		&VisualizeCommand,
	},
}

func main() {
	if err := RandomAccessCliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
