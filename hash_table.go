// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "sync"

// HashTable maps 4-byte sequence hashes to the most recent input position
// where that sequence occurred. Slots store position+1; 0 means the slot has
// never been set, so get keeps the empty case explicit instead of overloading
// position 0.
//
// A HashTable is not safe for concurrent Compress calls. Compress resets it
// before scanning, so a reused table carries no match state between blocks.
type HashTable struct {
	entries [hashTableSize]uint32
}

// NewHashTable returns a zeroed hash table for reuse via CompressOptions.Table.
func NewHashTable() *HashTable {
	return &HashTable{}
}

// reset clears every slot to the never-set sentinel.
func (t *HashTable) reset() {
	clear(t.entries[:])
}

// get returns the stored position for slot h and whether the slot was set.
func (t *HashTable) get(h uint32) (pos int, ok bool) {
	v := t.entries[h]
	if v == 0 {
		return 0, false
	}

	return int(v) - 1, true
}

// put records pos as the latest occurrence for slot h.
func (t *HashTable) put(h uint32, pos int) {
	t.entries[h] = uint32(pos) + 1 // #nosec G115 -- pos < MaxInputSize fits uint32
}

// hashTablePool pools hash tables for Compress calls without a caller-supplied table.
var hashTablePool = sync.Pool{
	New: func() any {
		return &HashTable{}
	},
}

// acquireHashTable takes a table from the pool; contents are stale until reset.
func acquireHashTable() *HashTable {
	return hashTablePool.Get().(*HashTable)
}

// releaseHashTable returns a table to the pool.
func releaseHashTable(t *HashTable) {
	if t == nil {
		return
	}

	hashTablePool.Put(t)
}
