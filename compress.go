// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// CompressBlockBound returns the worst-case compressed size for n input bytes:
// every byte an uncompressible literal plus length-extension overhead. Returns
// 0 when n is negative or beyond MaxInputSize.
func CompressBlockBound(n int) int {
	if n < 0 || n > MaxInputSize {
		return 0
	}

	return n + n/255 + 16
}

// Compress compresses src into an LZ4 block. opts may be nil.
//
// The original slice is returned unchanged when src is empty, too short for
// match finding, or contains no back-reference the format can use, so the
// result is never longer than CompressBlockBound(len(src)) and never longer
// than an all-literal encoding of src. Callers storing the result must track
// whether it was actually encoded. Returns ErrInputTooLarge when
// len(src) >= MaxInputSize.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	if len(src) >= MaxInputSize {
		return nil, ErrInputTooLarge
	}

	// Below the match-finding limit every byte would be a literal; the
	// encoded form cannot beat the input, so hand it back verbatim.
	if len(src) <= mfLimit {
		return src, nil
	}

	table := opts.Table
	if table == nil {
		table = acquireHashTable()
		defer releaseHashTable(table)
	}

	// A fresh table per call: positions from a previous block must never be
	// reinterpreted as positions in this one.
	table.reset()

	out, anchor := compressSequences(src, table)
	if anchor == 0 {
		// Not a single match; an all-literal encoding only adds overhead.
		return src, nil
	}

	return appendLiteralTail(out, src[anchor:]), nil
}

// compressSequences runs the hash-based scan over src and emits every
// sequence that ends in a match. It returns the emitted stream and the anchor
// (start of the pending literal tail). anchor == 0 means no match was found.
func compressSequences(src []byte, table *HashTable) (out []byte, anchor int) {
	limit := len(src) - mfLimit
	attempts := skipTrigger
	pos := 0

	for pos < limit {
		h := blockHash(loadLE32(src, pos))
		ref, ok := table.get(h)
		table.put(h, pos)

		// Candidate must exist, fit the 2-byte offset field, and actually
		// match on all 4 hashed bytes (the hash may collide).
		if !ok || pos-ref > maxOffset || loadLE32(src, ref) != loadLE32(src, pos) {
			pos += attempts >> skipStrength
			attempts++
			continue
		}

		attempts = skipTrigger

		litLen := pos - anchor
		offset := pos - ref

		// Extend past the guaranteed minimum, keeping the last mfLimit bytes
		// out of reach so the block always ends in literals.
		m := ref + minMatch
		end := pos + minMatch
		for end < limit && src[end] == src[m] {
			end++
			m++
		}
		extra := end - pos - minMatch

		if out == nil {
			out = make([]byte, 0, CompressBlockBound(len(src)))
		}

		out = append(out, byte(min(litLen, maxShortLength)<<4|min(extra, maxShortLength)))
		if litLen >= maxShortLength {
			out = appendLengthExtension(out, litLen-maxShortLength)
		}

		out = append(out, src[anchor:pos]...)
		out = append(out, byte(offset), byte(offset>>8)) // #nosec G115 -- offset <= maxOffset
		if extra >= maxShortLength {
			out = appendLengthExtension(out, extra-maxShortLength)
		}

		pos = end
		anchor = pos
	}

	return out, anchor
}

// appendLiteralTail emits the final, offset-less sequence holding the
// trailing literal run. lit is never empty: matches stop mfLimit bytes
// before the end of input.
func appendLiteralTail(out []byte, lit []byte) []byte {
	litLen := len(lit)

	out = append(out, byte(min(litLen, maxShortLength)<<4))
	if litLen >= maxShortLength {
		out = appendLengthExtension(out, litLen-maxShortLength)
	}

	return append(out, lit...)
}

// appendLengthExtension emits n as a 255-chain: full 255 bytes followed by a
// terminal byte < 255 (0 when n is an exact multiple).
func appendLengthExtension(out []byte, n int) []byte {
	for n >= 255 {
		out = append(out, 255)
		n -= 255
	}

	return append(out, byte(n)) // #nosec G115 -- remainder < 255
}
