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

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestObjectIDEqualNamesProduceEqualIDs(t *testing.T) {
	a := NewObjectID(1, "obj-a")
	b := NewObjectID(1, "obj-a")
	require.Equal(t, a, b)
	require.False(t, a.Less(b))
	require.False(t, b.Less(a))
}

func TestObjectIDUsableAsMapKey(t *testing.T) {
	m := make(map[ObjectID]int)
	names := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}
	for i, n := range names {
		m[NewObjectID(0, n)] = i
	}
	require.Len(t, m, len(names))
	for i, n := range names {
		require.Equal(t, i, m[NewObjectID(0, n)])
	}
}

func TestObjectIDDistinctPoolsDiffer(t *testing.T) {
	a := NewObjectID(1, "same-name")
	b := NewObjectID(2, "same-name")
	require.NotEqual(t, a, b)
}

func TestBufferSliceIsOwned(t *testing.T) {
	orig := NewBufferString("hello world")
	sub := orig.Slice(0, 5)
	require.Equal(t, "hello", string(sub.Raw()))

	// Mutating the slice's backing storage must not affect orig.
	sub.(*Buffer).CopyInto(0, 5, []byte("HELLO"))
	require.Equal(t, "hello world", orig.String())
}

func TestBufferCopyInto(t *testing.T) {
	dst := NewBufferString("aaaaaaaaaa")
	dst.CopyInto(2, 3, []byte("XYZ"))
	require.Equal(t, "aaXYZaaaaa", dst.String())
}
