// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "errors"

// Sentinel errors for compression and decompression.
// Decode errors are wrapped with the offending input byte offset; match with errors.Is.
var (
	// ErrInputTooLarge is returned when the input length is at or beyond MaxInputSize.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
	// ErrInputOverrun is returned when the decoder reads past the end of input.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when the decoder would write past the output buffer.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrZeroOffset is returned when a back-reference carries the invalid offset 0.
	ErrZeroOffset = errors.New("zero match offset")
	// ErrLookBehindUnderrun is returned when a back-reference points before the start of the output.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrOutputLengthMismatch is returned when the stream ends before or after the expected output length.
	ErrOutputLengthMismatch = errors.New("decoded length does not match expected output length")
	// ErrOptionsRequired is returned when Decompress is called with nil options (OutLen is required).
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrNegativeOutLen is returned when OutLen is negative.
	ErrNegativeOutLen = errors.New("output length must be non-negative")
)
