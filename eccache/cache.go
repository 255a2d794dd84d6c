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

// Package eccache is the per-node dispatch layer sitting in front of
// package extentmap: it owns one ExtentMap per object, created lazily on
// first touch and never evicted implicitly.
package eccache

import (
	"sync"

	"github.com/cubefs/extentcache/extentmap"
)

// object pairs an ExtentMap with the mutex that serializes the four
// operations against it. The Cache's own lock only ever protects
// membership in the objects map, never an operation running against one
// object's map - that's the "external mutex held by the enclosing
// storage engine" spec.md §5 assumes, made concrete.
type object struct {
	mu sync.Mutex
	em *extentmap.ExtentMap
}

// Cache maps an opaque, comparable object identifier to its ExtentMap.
// The zero value is not usable; construct with New.
type Cache[K comparable] struct {
	mu      sync.RWMutex
	objects map[K]*object
}

// New returns an empty Cache.
func New[K comparable]() *Cache[K] {
	return &Cache[K]{objects: make(map[K]*object)}
}

// lookup returns the object entry for id, creating an empty one if
// create is true and none exists yet. Returns nil, false if create is
// false and no entry exists.
func (c *Cache[K]) lookup(id K, create bool) (*object, bool) {
	c.mu.RLock()
	obj, ok := c.objects[id]
	c.mu.RUnlock()
	if ok {
		return obj, true
	}
	if !create {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if obj, ok = c.objects[id]; ok {
		return obj, true
	}
	obj = &object{em: extentmap.New()}
	c.objects[id] = obj
	return obj, true
}

// Write delegates to the object's ExtentMap, creating it on first touch,
// and returns the version Write issued.
func (c *Cache[K]) Write(id K, offset uint64, bytes extentmap.ByteBuffer) (uint64, error) {
	obj, _ := c.lookup(id, true)
	obj.mu.Lock()
	defer obj.mu.Unlock()
	return obj.em.Write(offset, bytes)
}

// Remove delegates to the object's ExtentMap. A remove against an object
// the cache has never seen is a silent no-op.
func (c *Cache[K]) Remove(id K, offset, length, version uint64) error {
	obj, ok := c.lookup(id, false)
	if !ok {
		return nil
	}
	obj.mu.Lock()
	defer obj.mu.Unlock()
	return obj.em.Remove(offset, length, version)
}

// Read delegates to the object's ExtentMap. A read against an object the
// cache has never seen leaves out entirely untouched, the same as a read
// over gaps in a populated map.
func (c *Cache[K]) Read(id K, offset, length uint64, out extentmap.ByteBuffer) error {
	obj, ok := c.lookup(id, false)
	if !ok {
		return nil
	}
	obj.mu.Lock()
	defer obj.mu.Unlock()
	return obj.em.Read(offset, length, out)
}

// Clear drops id's ExtentMap entirely, reclaiming its memory. Unlike
// ExtentMap.Clear, this *does* reset the object's version counter: the
// next Write re-creates a fresh ExtentMap starting at current_version 0.
// This asymmetry is deliberate (spec.md §4.2, §9) - document it at every
// call site that matters, don't rely on callers rediscovering it.
func (c *Cache[K]) Clear(id K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.objects, id)
}

// Len reports the number of objects the cache currently holds an
// ExtentMap for (including objects whose map is empty but was touched).
func (c *Cache[K]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.objects)
}
