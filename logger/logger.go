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

// Package logger provides the module-scoped logging facility shared by the
// rest of this repository. It is a thin wrapper around op/go-logging that
// keeps every caller's construction call down to a level string and a
// module name.
package logger

import (
	"os"
	"time"

	"github.com/op/go-logging"
)

// Logger is the logging handle every component stores and calls
// Debugf/Infof/Noticef/Warningf/Errorf on.
type Logger = logging.Logger

// NewLogger creates a logger for the given module at the given level. Each
// call installs a new process-wide backend that carries only this module's
// level, so the levels set by earlier calls for other modules do not carry
// over to it. An unrecognized level string falls back to
// INFO rather than failing construction, since a bad log-level flag should
// never be the reason a simulation run aborts.
func NewLogger(level string, module string) *Logger {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{color}%{time:15:04:05.000} %{shortfunc} ▶ %{level:.4s}%{color:reset} %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, module)
	logging.SetBackend(leveled)

	return logging.MustGetLogger(module)
}

// ParseTime splits a duration into whole hours, minutes, and seconds, used
// for printing elapsed-time summaries (e.g. in the demo CLI's simulate
// command) without pulling in a formatting dependency.
func ParseTime(elapsed time.Duration) (hours, minutes, seconds uint32) {
	total := uint32(elapsed / time.Second)
	hours = total / 3600
	minutes = (total % 3600) / 60
	seconds = total % 60
	return
}
