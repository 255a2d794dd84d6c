// Copyright 2018 The CubeFS Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package log is the leveled, structured logger the server package and
// the daemon call through - Debugf/Infof/Warnf/Errorf, the same shape
// the teacher codebase's own util/log is called with throughout
// datanode, metanode, master and blobstore. Underneath it is a
// zerolog.Logger rather than a hand-rolled writer.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}).
		With().Timestamp().Logger()
)

// SetOutput redirects all subsequent log output to w, in plain JSON
// rather than the console-friendly format used by default. Intended for
// daemon startup, once a log file has been opened.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = zerolog.New(w).Level(logger.GetLevel()).With().Timestamp().Logger()
}

// SetLevel parses one of "debug", "info", "warn", "error" and applies it;
// an unrecognized level leaves the current level unchanged and returns
// false.
func SetLevel(level string) bool {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return false
	}
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Level(lvl)
	return true
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debugf(format string, args ...interface{}) {
	current().Debug().Msgf(format, args...)
}

func Infof(format string, args ...interface{}) {
	current().Info().Msgf(format, args...)
}

func Warnf(format string, args ...interface{}) {
	current().Warn().Msgf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	current().Error().Msgf(format, args...)
}

// Fatalf logs at fatal level then terminates the process, mirroring the
// category-2 fail-stop handling spec.md §7 assigns to invariant
// violations in environments that don't unwind.
func Fatalf(format string, args ...interface{}) {
	current().Fatal().Msgf(format, args...)
}
