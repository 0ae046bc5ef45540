// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// LZ4 block format constants: token layout, match bounds, and hash parameters.

// Format bounds.
const (
	// MaxInputSize is the largest input Compress accepts (inputs of this
	// length or more fail with ErrInputTooLarge).
	MaxInputSize = 0x7E000000

	minMatch  = 4     // shortest back-reference the format can encode
	maxOffset = 65535 // back-reference distance limit (2-byte offset field)

	// mfLimit is the match-finding limit: the last mfLimit input bytes are
	// never used to start or extend a match, so the final sequence always
	// has room for its trailing literals.
	mfLimit = 12

	// maxShortLength is the largest length a token nibble holds directly;
	// larger lengths continue in 255-chain extension bytes.
	maxShortLength = 15
)

// Hash table parameters used by the compressor.
const (
	hashLog       = 16                 // number of bits in the table index
	hashTableSize = 1 << hashLog       // 65536 slots
	hashShift     = 32 - hashLog       // top bits of the multiplicative hash
	hasher        = uint32(0x9E3779B1) // Knuth multiplicative constant
)

// Probe stepping on incompressible regions: each miss advances the scan by
// attempts>>skipStrength, so the step grows the longer a region resists
// matching. A hit resets attempts to skipTrigger.
const (
	skipStrength = 6
	skipTrigger  = (1 << skipStrength) + 3
)
