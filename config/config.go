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

// Package config is a small JSON-file configuration loader, playing the
// same role in this node's cmd.go-style startup that the teacher
// codebase's util/config package plays: a flat, stringly-typed key/value
// bag loaded from the file passed on the command line.
package config

import (
	"encoding/json"
	"os"
	"strconv"
)

const (
	// KeyListenAddr is the address the dispatch HTTP server binds to.
	KeyListenAddr = "listenAddr"
	// KeyMetricsAddr is the address the Prometheus exporter binds to.
	KeyMetricsAddr = "metricsAddr"
	// KeyLogLevel is one of "debug", "info", "warn", "error".
	KeyLogLevel = "logLevel"
	// KeyLogPath is the file logs are written to; empty means stderr.
	KeyLogPath = "logPath"
)

// Config is a flat key/value bag loaded from a JSON object, e.g.:
//
//	{"listenAddr": ":7070", "metricsAddr": ":9090", "logLevel": "info"}
type Config struct {
	raw map[string]interface{}
}

// LoadFile reads and parses the JSON object at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// Load parses a JSON object from data.
func Load(data []byte) (*Config, error) {
	raw := make(map[string]interface{})
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return &Config{raw: raw}, nil
}

// GetString returns key's value as a string, or def if key is absent or
// not a string.
func (c *Config) GetString(key, def string) string {
	v, ok := c.raw[key]
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

// GetInt64 returns key's value as an int64, or def if key is absent or
// cannot be interpreted as a number.
func (c *Config) GetInt64(key string, def int64) int64 {
	v, ok := c.raw[key]
	if !ok {
		return def
	}
	switch t := v.(type) {
	case float64:
		return int64(t)
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return def
		}
		return n
	default:
		return def
	}
}
