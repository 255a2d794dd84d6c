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

package proto

import "github.com/cubefs/extentcache/extentmap"

// Buffer is an owned, contiguous run of bytes implementing
// extentmap.ByteBuffer. Once constructed, the bytes are never mutated in
// place except by CopyInto, which only the owner of a read's destination
// buffer is expected to call.
//
// Buffer always copies on construction and on Slice, rather than sharing
// a backing array by reference: see DESIGN.md for why the refcounted,
// zero-copy option spec.md §9 allows was not taken here.
type Buffer struct {
	data []byte
}

// NewBuffer returns a Buffer owning a copy of b.
func NewBuffer(b []byte) *Buffer {
	owned := make([]byte, len(b))
	copy(owned, b)
	return &Buffer{data: owned}
}

// NewBufferString is a convenience constructor for tests and CLI
// plumbing that deal in text payloads.
func NewBufferString(s string) *Buffer {
	return NewBuffer([]byte(s))
}

func (b *Buffer) Len() uint64 {
	return uint64(len(b.data))
}

func (b *Buffer) Slice(start, end uint64) extentmap.ByteBuffer {
	return NewBuffer(b.data[start:end])
}

func (b *Buffer) Raw() []byte {
	return b.data
}

func (b *Buffer) CopyInto(dstOffset, length uint64, src []byte) {
	copy(b.data[dstOffset:dstOffset+length], src[:length])
}

func (b *Buffer) String() string {
	return string(b.data)
}

var _ extentmap.ByteBuffer = (*Buffer)(nil)
