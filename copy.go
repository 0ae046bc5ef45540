// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// copyBackRef copies length bytes from dst[outputPos-offset:] to dst[outputPos:].
// When offset < length, source and destination overlap and the copy must run
// byte-by-byte forward so the freshly written bytes replicate the pattern.
// The built-in copy does not handle overlapping regions where src precedes dst.
func copyBackRef(dst []byte, outputPos, offset, length int) error {
	mPos := outputPos - offset
	if mPos < 0 {
		return ErrLookBehindUnderrun
	}

	if outputPos+length > len(dst) {
		return ErrOutputOverrun
	}

	if offset >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return nil
	}

	for i := 0; i < length; i++ {
		dst[outputPos+i] = dst[mPos+i]
	}

	return nil
}
