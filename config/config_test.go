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

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAndGetString(t *testing.T) {
	c, err := Load([]byte(`{"listenAddr": ":7070", "logLevel": "debug"}`))
	require.NoError(t, err)
	require.Equal(t, ":7070", c.GetString(KeyListenAddr, ":0"))
	require.Equal(t, "debug", c.GetString(KeyLogLevel, "info"))
	require.Equal(t, "fallback", c.GetString("missing", "fallback"))
}

func TestGetInt64FromNumberAndString(t *testing.T) {
	c, err := Load([]byte(`{"a": 42, "b": "7"}`))
	require.NoError(t, err)
	require.Equal(t, int64(42), c.GetInt64("a", 0))
	require.Equal(t, int64(7), c.GetInt64("b", 0))
	require.Equal(t, int64(-1), c.GetInt64("missing", -1))
}
