// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

/*
Package batch splits arbitrary input into fixed 2048-byte chunks, compresses
each chunk independently with the lz4 block codec, and assembles a Packed
index (per-chunk offsets, stored sizes, and a compressed/raw flag) over one
concatenated data buffer. Chunks that the codec passes through, or that would
not shrink, are stored raw.

	packed, err := batch.Pack(data, nil)
	...
	original, err := batch.Unpack(packed, len(data))

Options.Verify round-trips every compressed chunk before accepting it;
Options.Checksum records an xxHash64 per original chunk, verified on Unpack.
*/
package batch
