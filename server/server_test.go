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

package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cubefs/extentcache/eccache"
	"github.com/cubefs/extentcache/proto"
)

func newTestServer() *Server {
	return New(eccache.New[proto.ObjectID](), 0)
}

func TestWriteReadRemoveRoundTrip(t *testing.T) {
	s := newTestServer()
	ts := httptest.NewServer(s)
	defer ts.Close()

	// write
	req, err := http.NewRequest(http.MethodPut, ts.URL+"/objects/obj-1/extents?offset=0", strings.NewReader("foofoo"))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Version uint64 `json:"version"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, uint64(1), body.Version)

	// read
	readResp, err := http.Get(ts.URL + "/objects/obj-1/extents?offset=0&length=6")
	require.NoError(t, err)
	defer readResp.Body.Close()
	data, err := io.ReadAll(readResp.Body)
	require.NoError(t, err)
	require.Equal(t, "foofoo", string(data))

	// remove
	delReq, err := http.NewRequest(http.MethodDelete, ts.URL+"/objects/obj-1/extents?offset=0&length=6&version=1", nil)
	require.NoError(t, err)
	delResp, err := http.DefaultClient.Do(delReq)
	require.NoError(t, err)
	defer delResp.Body.Close()
	require.Equal(t, http.StatusNoContent, delResp.StatusCode)

	// read again: gaps zero-fill on the HTTP surface
	readResp2, err := http.Get(ts.URL + "/objects/obj-1/extents?offset=0&length=6")
	require.NoError(t, err)
	defer readResp2.Body.Close()
	data2, err := io.ReadAll(readResp2.Body)
	require.NoError(t, err)
	require.Equal(t, string([]byte{0, 0, 0, 0, 0, 0}), string(data2))
}

func TestWriteRejectsEmptyBody(t *testing.T) {
	s := newTestServer()
	ts := httptest.NewServer(s)
	defer ts.Close()

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/objects/obj-1/extents?offset=0", strings.NewReader(""))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestClearResetsVersionSpace(t *testing.T) {
	s := newTestServer()
	ts := httptest.NewServer(s)
	defer ts.Close()

	put := func() uint64 {
		req, _ := http.NewRequest(http.MethodPut, ts.URL+"/objects/obj-1/extents?offset=0", strings.NewReader("x"))
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		var body struct {
			Version uint64 `json:"version"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body.Version
	}

	require.Equal(t, uint64(1), put())

	clearResp, err := http.Post(ts.URL+"/objects/obj-1/clear", "application/json", nil)
	require.NoError(t, err)
	defer clearResp.Body.Close()
	require.Equal(t, http.StatusNoContent, clearResp.StatusCode)

	require.Equal(t, uint64(1), put(), "clear resets the per-object version counter")
}
