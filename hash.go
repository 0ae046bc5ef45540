// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// blockHash maps a 4-byte sequence to a table index in [0, hashTableSize).
// uint32 arithmetic gives the exact 32-bit wrap on multiply and the logical
// shift the format's reference encoders use.
func blockHash(seq uint32) uint32 {
	return seq * hasher >> hashShift
}

// loadLE32 packs the 4 bytes at src[pos:pos+4] little-endian.
func loadLE32(src []byte, pos int) uint32 {
	return uint32(src[pos]) |
		uint32(src[pos+1])<<8 |
		uint32(src[pos+2])<<16 |
		uint32(src[pos+3])<<24
}
