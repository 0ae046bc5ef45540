// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import (
	"fmt"
	"io"
)

// Decompress decompresses an LZ4 block from src into a buffer of length opts.OutLen.
// Returns ErrOptionsRequired if opts is nil and ErrNegativeOutLen if OutLen < 0.
// The stream must produce exactly OutLen bytes; anything else is a malformed-stream error.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	if opts.OutLen < 0 {
		return nil, ErrNegativeOutLen
	}

	dst := make([]byte, opts.OutLen)
	if err := decompressCore(src, dst); err != nil {
		return nil, err
	}

	return dst, nil
}

// DecompressInto decompresses an LZ4 block from src into dst, whose length is
// the expected decompressed size. Returns dst on success (no output allocation).
func DecompressInto(src, dst []byte) ([]byte, error) {
	if err := decompressCore(src, dst); err != nil {
		return nil, err
	}

	return dst, nil
}

// DecompressFromReader reads the full stream then calls Decompress. No decoding logic of its own.
// If opts.MaxInputSize > 0 and more bytes are read, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}

// decompressCore decodes the token stream in src into dst and requires the
// output to land exactly on len(dst). Errors carry the input byte offset at
// which the violated invariant was detected.
func decompressCore(src, dst []byte) error {
	var inPos, outPos int

	for inPos < len(src) {
		token := src[inPos]
		inPos++

		// Literal run: high nibble, 15 continues in a 255-chain.
		litLen := int(token >> 4)
		if litLen == maxShortLength {
			ext, err := readLengthExtension(src, &inPos)
			if err != nil {
				return streamError(err, inPos)
			}

			litLen += ext
		}

		if err := copyLiteralRun(src, &inPos, dst, &outPos, litLen); err != nil {
			return streamError(err, inPos)
		}

		// The final sequence is trailing literals only: no offset, no match.
		if inPos == len(src) {
			break
		}

		offset, err := readLE16(src, &inPos)
		if err != nil {
			return streamError(err, inPos)
		}

		if offset == 0 {
			return streamError(ErrZeroOffset, inPos)
		}

		if int(offset) > outPos {
			return streamError(ErrLookBehindUnderrun, inPos)
		}

		// Match length: low nibble plus the format's 4-byte floor.
		matchLen := int(token & 0x0F)
		if matchLen == maxShortLength {
			ext, err := readLengthExtension(src, &inPos)
			if err != nil {
				return streamError(err, inPos)
			}

			matchLen += ext
		}
		matchLen += minMatch

		if err := copyBackRef(dst, outPos, int(offset), matchLen); err != nil {
			return streamError(err, inPos)
		}

		outPos += matchLen
	}

	if outPos != len(dst) {
		return streamError(ErrOutputLengthMismatch, inPos)
	}

	return nil
}

// streamError attaches the input byte offset to a malformed-stream sentinel.
// errors.Is against the sentinel still matches.
func streamError(err error, inPos int) error {
	return fmt.Errorf("%w (input byte %d)", err, inPos)
}

// readLengthExtension consumes a 255-chain and returns the summed extension.
// The chain must end with a byte < 255; running out of input mid-chain is an overrun.
func readLengthExtension(src []byte, inPos *int) (int, error) {
	n := 0

	for {
		if *inPos >= len(src) {
			return 0, ErrInputOverrun
		}

		b := src[*inPos]
		*inPos++
		n += int(b)

		if b < 255 {
			return n, nil
		}
	}
}

// readLE16 reads one little-endian uint16 from src at *inPos and advances *inPos by 2.
func readLE16(src []byte, inPos *int) (uint16, error) {
	if *inPos+2 > len(src) {
		return 0, ErrInputOverrun
	}

	lo := uint16(src[*inPos])
	hi := uint16(src[*inPos+1])
	*inPos += 2

	return lo | hi<<8, nil
}

// copyLiteralRun copies n bytes from src[*inPos:] to dst[*outPos:] and advances both pointers.
func copyLiteralRun(src []byte, inPos *int, dst []byte, outPos *int, n int) error {
	if n == 0 {
		return nil
	}

	if *inPos+n > len(src) {
		return ErrInputOverrun
	}

	if *outPos+n > len(dst) {
		return ErrOutputOverrun
	}

	copy(dst[*outPos:*outPos+n], src[*inPos:*inPos+n])
	*inPos += n
	*outPos += n

	return nil
}
