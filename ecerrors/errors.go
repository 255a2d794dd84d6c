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

// Package ecerrors holds the sentinel errors the extent cache reports to
// its callers, split along the two recoverable/fatal categories the cache
// distinguishes internally.
package ecerrors

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned for caller-value mistakes that leave
	// the map unchanged: a zero-length write, an offset+length that
	// overflows uint64, or a remove version newer than the map has ever
	// issued. A too-short read buffer is reported as ErrBufferTooSmall.
	ErrInvalidArgument = errors.New("extentcache: invalid argument")

	// ErrBufferTooSmall is returned by Read when the caller-supplied
	// buffer cannot hold the requested length.
	ErrBufferTooSmall = errors.New("extentcache: output buffer too small")

	// ErrVersionConflict indicates a caller protocol error: Remove was
	// asked to retire a version newer than an extent it encountered in
	// the remove range. A well-behaved caller never triggers this; it
	// means the caller's own version bookkeeping has desynced from the
	// cache's.
	ErrVersionConflict = errors.New("extentcache: version conflict: an extent in range is older than the version being removed")
)

// Wrap annotates err with msg using github.com/pkg/errors, preserving the
// original error for errors.Is/As. Returns nil if err is nil.
func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// Wrapf is Wrap with Printf-style formatting.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
