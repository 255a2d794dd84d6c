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

package eccache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cubefs/extentcache/proto"
)

func TestCacheCreatesMapOnFirstTouch(t *testing.T) {
	c := New[proto.ObjectID]()
	oid := proto.NewObjectID(0, "obj-1")

	require.Equal(t, 0, c.Len())
	v, err := c.Write(oid, 0, proto.NewBufferString("foo"))
	require.NoError(t, err)
	require.Equal(t, uint64(1), v)
	require.Equal(t, 1, c.Len())
}

func TestCacheRemoveAndReadOnUnknownObjectIsNoOp(t *testing.T) {
	c := New[proto.ObjectID]()
	oid := proto.NewObjectID(0, "never-written")

	require.NoError(t, c.Remove(oid, 0, 10, 1))

	out := proto.NewBufferString("aaa")
	require.NoError(t, c.Read(oid, 0, 3, out))
	require.Equal(t, "aaa", out.String())
}

func TestCacheClearDropsMapAndResetsVersionSpace(t *testing.T) {
	c := New[proto.ObjectID]()
	oid := proto.NewObjectID(0, "obj-1")

	v1, err := c.Write(oid, 0, proto.NewBufferString("foo"))
	require.NoError(t, err)
	require.Equal(t, uint64(1), v1)

	c.Clear(oid)
	require.Equal(t, 0, c.Len())

	v2, err := c.Write(oid, 0, proto.NewBufferString("bar"))
	require.NoError(t, err)
	require.Equal(t, uint64(1), v2, "Cache.Clear resets the per-object version counter, unlike ExtentMap.Clear")
}

func TestCacheVersionsArePerObject(t *testing.T) {
	c := New[proto.ObjectID]()
	a := proto.NewObjectID(0, "a")
	b := proto.NewObjectID(0, "b")

	for i := 0; i < 5; i++ {
		_, err := c.Write(a, uint64(i), proto.NewBufferString("x"))
		require.NoError(t, err)
	}
	vb, err := c.Write(b, 0, proto.NewBufferString("y"))
	require.NoError(t, err)
	require.Equal(t, uint64(1), vb, "a fresh object's version space starts at 1 regardless of other objects")
}

func TestCacheConcurrentDistinctObjects(t *testing.T) {
	c := New[proto.ObjectID]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		oid := proto.NewObjectID(0, string(rune('a'+i%26))+string(rune(i)))
		wg.Add(1)
		go func(oid proto.ObjectID) {
			defer wg.Done()
			_, err := c.Write(oid, 0, proto.NewBufferString("data"))
			require.NoError(t, err)
		}(oid)
	}
	wg.Wait()
	require.Equal(t, 50, c.Len())
}
