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

// Package extentmap implements the per-object versioned extent map: an
// ordered, non-overlapping set of byte ranges indexed by offset, each
// tagged with the map's current_version at the moment it was written.
//
// The map is not safe for concurrent use; callers (package eccache, or any
// other enclosing engine) are expected to serialize all four operations
// per object, exactly as an erasure-coded object storage node serializes
// writes to one placement group.
package extentmap

// ByteBuffer is the only payload type the map depends on. It mirrors the
// opaque buffer-list type the surrounding storage engine actually uses:
// owned, contiguous, and cheap to sub-slice.
type ByteBuffer interface {
	// Len returns the number of bytes in the buffer.
	Len() uint64
	// Slice returns a new, owned ByteBuffer over [start, end) of this
	// buffer's bytes.
	Slice(start, end uint64) ByteBuffer
	// Raw returns the buffer's bytes for random-access read. Callers must
	// not mutate the returned slice.
	Raw() []byte
	// CopyInto copies length bytes from src into this buffer starting at
	// dstOffset.
	CopyInto(dstOffset, length uint64, src []byte)
}

// Extent is a contiguous run of bytes stored at a known offset, tagged
// with the version under which it entered the map: either the version of
// the write that produced it, or, if it is a residual fragment of an
// older write split by a later overlapping write, the original write's
// version (I5 in the invariant list).
type Extent struct {
	Version uint64
	Bytes   ByteBuffer
}

func (e Extent) end(offset uint64) uint64 {
	return offset + e.Bytes.Len()
}
