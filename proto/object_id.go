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

// Package proto holds the concrete wire types an extent cache node uses
// to fulfill the ObjectID and ByteBuffer obligations of the extentmap
// package: an opaque, totally-ordered object identifier and an owned
// byte buffer.
package proto

import (
	"fmt"
	"hash/crc32"
)

// ObjectID names a logical object the way an erasure-coded placement
// group would: a pool, a hashed placement key derived from the object's
// name, and the name itself for disambiguation and debugging. It is a
// plain value type, hashable as a Go map key and totally ordered by
// (Hash, Pool, Name) so ties between differently-named objects that
// happen to hash alike still resolve deterministically.
type ObjectID struct {
	Pool uint32
	Hash uint32
	Name string
}

// NewObjectID derives an ObjectID's placement hash from its name the way
// the surrounding object store would (CRC32 over the name), so equal
// names always produce equal ids and distinct names are spread evenly
// across whatever hash-bucketed index the enclosing Cache happens to use.
func NewObjectID(pool uint32, name string) ObjectID {
	return ObjectID{Pool: pool, Hash: crc32.ChecksumIEEE([]byte(name)), Name: name}
}

// Less gives ObjectID a total order, for callers (tests, debug tooling)
// that want objects listed deterministically; the Cache itself only
// needs ObjectID to be comparable for use as a map key.
func (o ObjectID) Less(other ObjectID) bool {
	if o.Hash != other.Hash {
		return o.Hash < other.Hash
	}
	if o.Pool != other.Pool {
		return o.Pool < other.Pool
	}
	return o.Name < other.Name
}

func (o ObjectID) String() string {
	return fmt.Sprintf("%d.%08x(%s)", o.Pool, o.Hash, o.Name)
}
