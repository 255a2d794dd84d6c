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

// Package server is the thin (object_id, op) -> Cache dispatch layer
// spec.md §4.2 calls out, given a concrete HTTP transport. It is
// intentionally minimal: parameter parsing, one Cache call, one
// response - no retries, no batching, no auth.
package server

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cubefs/extentcache/ecerrors"
	"github.com/cubefs/extentcache/eccache"
	"github.com/cubefs/extentcache/log"
	"github.com/cubefs/extentcache/metrics"
	"github.com/cubefs/extentcache/proto"
)

// Server wraps a Cache with an HTTP mux. The zero value is not usable;
// construct with New.
type Server struct {
	cache *eccache.Cache[proto.ObjectID]
	pool  uint32
	mux   chi.Router
}

// New builds a Server dispatching onto cache. pool is the placement pool
// every object named on this server's routes is assumed to belong to.
func New(cache *eccache.Cache[proto.ObjectID], pool uint32) *Server {
	s := &Server{cache: cache, pool: pool}
	s.mux = s.routes()
	metrics.ObjectCount.Set(0)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Put("/objects/{oid}/extents", s.handleWrite)
	r.Delete("/objects/{oid}/extents", s.handleRemove)
	r.Get("/objects/{oid}/extents", s.handleRead)
	r.Post("/objects/{oid}/clear", s.handleClear)
	return r
}

func (s *Server) objectID(r *http.Request) proto.ObjectID {
	name := chi.URLParam(r, "oid")
	return proto.NewObjectID(s.pool, name)
}

func parseUint64(r *http.Request, key string) (uint64, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func writeError(w http.ResponseWriter, op string, err error) {
	switch err {
	case ecerrors.ErrInvalidArgument, ecerrors.ErrBufferTooSmall:
		log.Warnf("eccache: %s: caller error: %v", op, err)
		metrics.Observe(op, "invalid_argument", time.Now())
		http.Error(w, err.Error(), http.StatusBadRequest)
	case ecerrors.ErrVersionConflict:
		log.Errorf("eccache: %s: version conflict, caller protocol desynced: %v", op, err)
		metrics.Observe(op, "version_conflict", time.Now())
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		log.Errorf("eccache: %s: unexpected error: %v", op, err)
		metrics.Observe(op, "error", time.Now())
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (s *Server) handleWrite(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	offset, ok := parseUint64(r, "offset")
	if !ok {
		http.Error(w, "missing or invalid offset", http.StatusBadRequest)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "could not read body", http.StatusBadRequest)
		return
	}
	if len(body) == 0 {
		http.Error(w, ecerrors.ErrInvalidArgument.Error(), http.StatusBadRequest)
		return
	}

	version, err := s.cache.Write(s.objectID(r), offset, proto.NewBuffer(body))
	if err != nil {
		writeError(w, "write", err)
		return
	}
	metrics.Observe("write", "ok", start)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"version":` + strconv.FormatUint(version, 10) + `}`))
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	offset, ok1 := parseUint64(r, "offset")
	length, ok2 := parseUint64(r, "length")
	version, ok3 := parseUint64(r, "version")
	if !ok1 || !ok2 || !ok3 {
		http.Error(w, "missing or invalid offset/length/version", http.StatusBadRequest)
		return
	}

	if err := s.cache.Remove(s.objectID(r), offset, length, version); err != nil {
		writeError(w, "remove", err)
		return
	}
	metrics.Observe("remove", "ok", start)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRead(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	offset, ok1 := parseUint64(r, "offset")
	length, ok2 := parseUint64(r, "length")
	if !ok1 || !ok2 {
		http.Error(w, "missing or invalid offset/length", http.StatusBadRequest)
		return
	}

	// The HTTP surface has no pre-existing client-side buffer to overlay
	// onto (spec.md §4.1.3's gap-preservation contract lives at the
	// ExtentMap.Read API, exercised directly by in-process callers); it
	// zero-fills its own scratch buffer first, so gaps read back as
	// zeros rather than as leftover caller state.
	out := proto.NewBuffer(make([]byte, length))
	if err := s.cache.Read(s.objectID(r), offset, length, out); err != nil {
		writeError(w, "read", err)
		return
	}
	metrics.Observe("read", "ok", start)
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(out.Raw())
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.cache.Clear(s.objectID(r))
	metrics.Observe("clear", "ok", start)
	w.WriteHeader(http.StatusNoContent)
}
