// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

/*
Package lz4 implements the LZ4 block format (compression and decompression).

A block is a sequence of token bytes, each followed by literal bytes, a 2-byte
little-endian back-reference offset (1..65535) and an optional extended match
length; the final sequence carries trailing literals only. The format has no
frame header, magic bytes, or checksum, and does not record the uncompressed
size; the caller must carry it externally. Output is decodable by any
conforming LZ4 block decoder.

Compress never expands data: when the input is empty, shorter than the
match-finding threshold, or contains no usable back-reference, the original
slice is returned unchanged. Callers that store compressed blocks must record
whether the block was actually encoded (the batch subpackage does this with a
per-chunk flag).

# Compress

Options may be nil. Pass a *HashTable to reuse its allocation across calls
(the table is reset on every call, so unrelated blocks never cross-reference):

	out, err := lz4.Compress(data, nil)

	table := lz4.NewHashTable()
	out, err := lz4.Compress(data, &lz4.CompressOptions{Table: table})

CompressBlockBound(n) is the worst-case output size for n input bytes; use it
to size storage before the compressed length is known.

# Decompress

OutLen is required (the block format does not carry it). From a byte slice:

	out, err := lz4.Decompress(compressed, lz4.DefaultDecompressOptions(expectedLen))

To reuse caller-managed output memory (no per-call output allocation):

	dst := make([]byte, expectedLen)
	out, err := lz4.DecompressInto(compressed, dst)

From an io.Reader (e.g. stream with known decompressed size):

	out, err := lz4.DecompressFromReader(r, lz4.DefaultDecompressOptions(expectedLen))
*/
package lz4
