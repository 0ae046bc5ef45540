// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package batch

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/woozymasta/lz4"
)

// ChunkSize is the fixed chunk width Pack splits input into.
const ChunkSize = 2048

// slackChunks is how many chunk-widths of spare capacity the packed data
// buffer carries beyond its payload, for caller-side chunk caching.
const slackChunks = 2

// Package errors. Per-chunk failures are wrapped with the chunk index.
var (
	ErrCorruptIndex     = errors.New("chunk index out of data bounds")
	ErrSizeMismatch     = errors.New("raw chunk size does not match original chunk size")
	ErrChecksumMismatch = errors.New("chunk checksum mismatch")
	ErrShortInput       = errors.New("original size exceeds indexed chunks")
)

// Options configures Pack. May be nil.
type Options struct {
	// Verify round-trips every compressed chunk through Decompress and
	// stores the chunk raw if the result does not match the original.
	Verify bool
	// Checksum records an xxHash64 of every original chunk in
	// Packed.Checksums; Unpack verifies them.
	Checksum bool
}

// Packed is the result of Pack: one concatenated data buffer plus a
// per-chunk index. Entry i of each slice describes chunk i of the input.
type Packed struct {
	// Data holds every stored chunk back to back. Its capacity extends two
	// chunk-widths past its length.
	Data []byte
	// Offsets are byte offsets of each stored chunk within Data.
	Offsets []int
	// Sizes are stored byte sizes (compressed size, or original size for raw chunks).
	Sizes []int
	// Compressed flags whether chunk i is an LZ4 block (false = stored raw).
	Compressed []bool
	// Checksums are xxHash64 values of the original chunks (nil unless Options.Checksum).
	Checksums []uint64
}

// Pack splits src into ChunkSize chunks and compresses each independently.
// A nil src yields an empty Packed with zero chunks.
func Pack(src []byte, opts *Options) (*Packed, error) {
	if opts == nil {
		opts = &Options{}
	}

	chunkCount := (len(src) + ChunkSize - 1) / ChunkSize
	stored := make([][]byte, 0, chunkCount)

	p := &Packed{
		Offsets:    make([]int, 0, chunkCount),
		Sizes:      make([]int, 0, chunkCount),
		Compressed: make([]bool, 0, chunkCount),
	}
	if opts.Checksum {
		p.Checksums = make([]uint64, 0, chunkCount)
	}

	// One table for the whole batch; Compress resets it per chunk, so no
	// stale positions leak between chunks.
	table := lz4.NewHashTable()
	copts := &lz4.CompressOptions{Table: table}

	total := 0
	for start := 0; start < len(src); start += ChunkSize {
		chunk := src[start:min(start+ChunkSize, len(src))]

		enc, err := lz4.Compress(chunk, copts)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", len(stored), err)
		}

		compressed := len(enc) < len(chunk)
		if compressed && opts.Verify && !verifyChunk(enc, chunk) {
			compressed = false
		}

		if !compressed {
			enc = chunk
		}

		p.Offsets = append(p.Offsets, total)
		p.Sizes = append(p.Sizes, len(enc))
		p.Compressed = append(p.Compressed, compressed)
		if opts.Checksum {
			p.Checksums = append(p.Checksums, xxhash.Sum64(chunk))
		}

		stored = append(stored, enc)
		total += len(enc)
	}

	p.Data = make([]byte, 0, total+slackChunks*ChunkSize)
	for _, enc := range stored {
		p.Data = append(p.Data, enc...)
	}

	return p, nil
}

// Unpack reassembles the original bytes from a Packed result. originalSize is
// the total pre-compression length (the index does not carry it).
func Unpack(p *Packed, originalSize int) ([]byte, error) {
	if originalSize < 0 {
		return nil, lz4.ErrNegativeOutLen
	}

	out := make([]byte, 0, originalSize)

	for i := range p.Offsets {
		remaining := originalSize - i*ChunkSize
		if remaining <= 0 {
			return nil, fmt.Errorf("chunk %d: %w", i, ErrCorruptIndex)
		}
		origLen := min(remaining, ChunkSize)

		start, size := p.Offsets[i], p.Sizes[i]
		if start < 0 || size < 0 || start+size > len(p.Data) {
			return nil, fmt.Errorf("chunk %d: %w", i, ErrCorruptIndex)
		}
		enc := p.Data[start : start+size]

		var chunk []byte
		if p.Compressed[i] {
			dec, err := lz4.Decompress(enc, lz4.DefaultDecompressOptions(origLen))
			if err != nil {
				return nil, fmt.Errorf("chunk %d: %w", i, err)
			}
			chunk = dec
		} else {
			if size != origLen {
				return nil, fmt.Errorf("chunk %d: %w", i, ErrSizeMismatch)
			}
			chunk = enc
		}

		if p.Checksums != nil && xxhash.Sum64(chunk) != p.Checksums[i] {
			return nil, fmt.Errorf("chunk %d: %w", i, ErrChecksumMismatch)
		}

		out = append(out, chunk...)
	}

	if len(out) != originalSize {
		return nil, ErrShortInput
	}

	return out, nil
}

// verifyChunk round-trips enc and reports whether it reproduces chunk exactly.
func verifyChunk(enc, chunk []byte) bool {
	dst := make([]byte, len(chunk))
	dec, err := lz4.DecompressInto(enc, dst)

	return err == nil && bytes.Equal(dec, chunk)
}
