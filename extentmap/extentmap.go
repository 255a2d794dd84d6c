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

package extentmap

import (
	"github.com/google/btree"

	"github.com/cubefs/extentcache/ecerrors"
)

const btreeDegree = 32

// entry is the unit stored in the ordered index: an extent together with
// its starting offset, which doubles as the btree key.
type entry struct {
	offset uint64
	extent Extent
}

func entryLess(a, b entry) bool {
	return a.offset < b.offset
}

// ExtentMap is the ordered, non-overlapping set of Extents belonging to a
// single object. The zero value is not usable; construct with New.
type ExtentMap struct {
	tree           *btree.BTreeG[entry]
	currentVersion uint64
}

// New returns an empty ExtentMap with current_version = 0.
func New() *ExtentMap {
	return &ExtentMap{tree: btree.NewG(btreeDegree, entryLess)}
}

// CurrentVersion returns the map's current_version counter.
func (m *ExtentMap) CurrentVersion() uint64 {
	return m.currentVersion
}

// Len reports the number of entries currently stored. Exposed for tests
// asserting P1/P4 and the seed scenarios of spec §8.
func (m *ExtentMap) Len() int {
	return m.tree.Len()
}

// Entries returns a snapshot of the stored (offset, Extent) pairs in
// ascending offset order. Exposed for tests; callers must not mutate the
// returned Extent.Bytes.
func (m *ExtentMap) Entries() []struct {
	Offset uint64
	Extent Extent
} {
	out := make([]struct {
		Offset uint64
		Extent Extent
	}, 0, m.tree.Len())
	m.tree.Ascend(func(e entry) bool {
		out = append(out, struct {
			Offset uint64
			Extent Extent
		}{Offset: e.offset, Extent: e.extent})
		return true
	})
	return out
}

// addRange computes begin+length and reports whether it overflowed a
// uint64, matching the I-InvalidArgument case for offset+length overflow.
func addRange(begin, length uint64) (end uint64, overflowed bool) {
	end = begin + length
	return end, end < begin
}

// extentLowerBound returns the first entry whose byte range includes or
// starts at-or-after offset (spec §4.1.5): the entry at offset itself if
// present, else the predecessor only if it straddles offset, else the
// next entry strictly after offset.
func (m *ExtentMap) extentLowerBound(offset uint64) (entry, bool) {
	var ge entry
	hasGE := false
	m.tree.AscendGreaterOrEqual(entry{offset: offset}, func(e entry) bool {
		ge, hasGE = e, true
		return false
	})
	if hasGE && ge.offset == offset {
		return ge, true
	}

	var lt entry
	hasLT := false
	m.tree.DescendLessOrEqual(entry{offset: offset}, func(e entry) bool {
		lt, hasLT = e, true
		return false
	})
	if hasLT && lt.extent.end(lt.offset) > offset {
		return lt, true
	}
	return ge, hasGE
}

// Write issues a fresh version, inserts a new extent covering
// [offset, offset+len(bytes)), and splits or removes any pre-existing
// extents that intersect the written range (spec §4.1.1).
func (m *ExtentMap) Write(offset uint64, bytes ByteBuffer) (uint64, error) {
	if bytes == nil || bytes.Len() == 0 {
		return 0, ecerrors.ErrInvalidArgument
	}
	wBegin := offset
	wEnd, overflowed := addRange(offset, bytes.Len())
	if overflowed {
		return 0, ecerrors.ErrInvalidArgument
	}

	// Pre-flight: collect the entries the write intersects without
	// mutating the tree, so a later step can never leave the map
	// partially updated.
	var affected []entry
	if first, ok := m.extentLowerBound(wBegin); ok {
		m.tree.AscendGreaterOrEqual(entry{offset: first.offset}, func(e entry) bool {
			if e.offset >= wEnd {
				return false
			}
			affected = append(affected, e)
			return true
		})
	}

	type fragment struct {
		offset uint64
		extent Extent
	}
	toDelete := make([]uint64, 0, len(affected))
	var fragments []fragment
	for _, e := range affected {
		eStart := e.offset
		eEnd := e.extent.end(eStart)
		toDelete = append(toDelete, eStart)

		if eStart < wBegin {
			// left-overhang: residual bytes on the left keep e's version.
			left := e.extent.Bytes.Slice(0, wBegin-eStart)
			fragments = append(fragments, fragment{offset: eStart, extent: Extent{Version: e.extent.Version, Bytes: left}})
		}
		if eEnd > wEnd {
			// right-overhang: residual bytes on the right keep e's version.
			right := e.extent.Bytes.Slice(wEnd-eStart, eEnd-eStart)
			fragments = append(fragments, fragment{offset: wEnd, extent: Extent{Version: e.extent.Version, Bytes: right}})
		}
	}

	for _, off := range toDelete {
		m.tree.Delete(entry{offset: off})
	}
	for _, f := range fragments {
		m.tree.ReplaceOrInsert(entry{offset: f.offset, extent: f.extent})
	}

	m.currentVersion++
	v := m.currentVersion
	m.tree.ReplaceOrInsert(entry{offset: wBegin, extent: Extent{Version: v, Bytes: bytes}})
	return v, nil
}

// Remove erases every entry in [offset, offset+length) whose starting
// offset lies in that range and whose version exactly equals version.
// Entries starting before offset are never inspected (spec §4.1.2): a
// write at version v is assumed to have inserted exactly one extent at
// exactly the offset the caller is now retiring.
func (m *ExtentMap) Remove(offset, length, version uint64) error {
	rEnd, overflowed := addRange(offset, length)
	if overflowed {
		return ecerrors.ErrInvalidArgument
	}
	if version > m.currentVersion {
		return ecerrors.ErrInvalidArgument
	}

	var toDelete []uint64
	conflict := false
	m.tree.AscendGreaterOrEqual(entry{offset: offset}, func(e entry) bool {
		if e.offset >= rEnd {
			return false
		}
		switch {
		case e.extent.Version == version:
			toDelete = append(toDelete, e.offset)
		case e.extent.Version < version:
			// An extent that's supposedly older than the version being
			// retired: the caller's bookkeeping has desynced from ours.
			conflict = true
			return false
		}
		return true
	})
	if conflict {
		return ecerrors.ErrVersionConflict
	}
	for _, off := range toDelete {
		m.tree.Delete(entry{offset: off})
	}
	return nil
}

// MustRemove calls Remove and panics on ErrVersionConflict, mirroring the
// original C++ implementation's assert on an impossible caller protocol
// violation. Caller-value errors (ErrInvalidArgument) are still returned
// normally, since those are recoverable by construction.
func (m *ExtentMap) MustRemove(offset, length, version uint64) error {
	err := m.Remove(offset, length, version)
	if err == ecerrors.ErrVersionConflict {
		panic(err)
	}
	return err
}

// Read copies every stored byte in [offset, offset+length) into out at
// its position relative to offset. Bytes of out in gaps not covered by
// any extent are left untouched (spec §4.1.3).
func (m *ExtentMap) Read(offset, length uint64, out ByteBuffer) error {
	rEnd, overflowed := addRange(offset, length)
	if overflowed {
		return ecerrors.ErrInvalidArgument
	}
	if out.Len() < length {
		return ecerrors.ErrBufferTooSmall
	}

	first, ok := m.extentLowerBound(offset)
	if !ok {
		return nil
	}
	m.tree.AscendGreaterOrEqual(entry{offset: first.offset}, func(e entry) bool {
		eStart := e.offset
		if eStart >= rEnd {
			return false
		}
		eEnd := e.extent.end(eStart)

		copyStart := eStart
		if offset > copyStart {
			copyStart = offset
		}
		copyEnd := eEnd
		if rEnd < copyEnd {
			copyEnd = rEnd
		}
		if copyEnd <= copyStart {
			return true
		}

		n := copyEnd - copyStart
		srcOff := copyStart - eStart
		dstOff := copyStart - offset
		out.CopyInto(dstOff, n, e.extent.Bytes.Raw()[srcOff:srcOff+n])
		return true
	})
	return nil
}

// Clear erases every entry. It does not reset current_version, so a
// version token a caller is still holding from before Clear can never
// collide with one issued afterward (spec §4.1.4, §9).
func (m *ExtentMap) Clear() {
	m.tree = btree.NewG(btreeDegree, entryLess)
}
