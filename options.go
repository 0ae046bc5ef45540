// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// DecompressOptions configures decompression.
// OutLen is required (expected decompressed size); MaxInputSize limits reads when using DecompressFromReader.
type DecompressOptions struct {
	// OutLen is the expected decompressed size (required; the block format does not carry it).
	OutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given output length and no input limit.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}

// CompressOptions configures compression. May be nil.
type CompressOptions struct {
	// Table is an optional hash table to reuse across calls, saving its
	// allocation. The table is reset at the start of every Compress call:
	// reuse shares memory, never match state between blocks.
	Table *HashTable
}

// DefaultCompressOptions returns options with a pooled per-call hash table.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}
