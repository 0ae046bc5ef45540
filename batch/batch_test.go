package batch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpack_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "below-one-chunk", data: bytes.Repeat([]byte("chunk"), 100)},
		{name: "exactly-one-chunk", data: bytes.Repeat([]byte{0xAA, 0xBB}, ChunkSize/2)},
		{name: "several-chunks", data: bytes.Repeat([]byte("payload-123"), 2000)},
		{name: "chunks-plus-tail", data: bytes.Repeat([]byte{1, 2, 3}, 3000)},
		{name: "tiny-tail", data: append(bytes.Repeat([]byte("x"), ChunkSize*2), 'y')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Pack(tt.data, nil)
			require.NoError(t, err)

			wantChunks := (len(tt.data) + ChunkSize - 1) / ChunkSize
			require.Len(t, p.Offsets, wantChunks)
			require.Len(t, p.Sizes, wantChunks)
			require.Len(t, p.Compressed, wantChunks)
			assert.Nil(t, p.Checksums)

			out, err := Unpack(p, len(tt.data))
			require.NoError(t, err)
			assert.Equal(t, len(tt.data), len(out))
			assert.True(t, bytes.Equal(out, tt.data))
		})
	}
}

func TestPack_ChunkFlags(t *testing.T) {
	// Two fully repetitive chunks and a 10-byte tail the codec passes through.
	data := append(bytes.Repeat([]byte{0x42}, ChunkSize*2), []byte("0123456789")...)

	p, err := Pack(data, nil)
	require.NoError(t, err)
	require.Len(t, p.Compressed, 3)

	assert.True(t, p.Compressed[0], "repetitive chunk should be stored compressed")
	assert.True(t, p.Compressed[1], "repetitive chunk should be stored compressed")
	assert.False(t, p.Compressed[2], "pass-through tail must be stored raw")
	assert.Equal(t, 10, p.Sizes[2])

	assert.Less(t, p.Sizes[0], ChunkSize)
	assert.Less(t, p.Sizes[1], ChunkSize)
}

func TestPack_IndexIsConsistent(t *testing.T) {
	data := bytes.Repeat([]byte("indexed-chunk-data"), 700)

	p, err := Pack(data, nil)
	require.NoError(t, err)

	total := 0
	for i := range p.Offsets {
		assert.Equal(t, total, p.Offsets[i], "chunk %d offset", i)
		total += p.Sizes[i]
	}
	assert.Equal(t, total, len(p.Data))
}

func TestPack_DataBufferCarriesSlack(t *testing.T) {
	for _, data := range [][]byte{nil, bytes.Repeat([]byte("slack"), 1000)} {
		p, err := Pack(data, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, cap(p.Data)-len(p.Data), slackChunks*ChunkSize)
	}
}

func TestPack_VerifyOption(t *testing.T) {
	data := bytes.Repeat([]byte("verify-each-chunk"), 1500)

	verified, err := Pack(data, &Options{Verify: true})
	require.NoError(t, err)

	plain, err := Pack(data, nil)
	require.NoError(t, err)

	// A healthy codec round-trips every chunk, so Verify changes nothing.
	assert.Equal(t, plain.Data, verified.Data)
	assert.Equal(t, plain.Compressed, verified.Compressed)

	out, err := Unpack(verified, len(data))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(out, data))
}

func TestPackUnpack_Checksums(t *testing.T) {
	data := bytes.Repeat([]byte("checksummed"), 1000)

	p, err := Pack(data, &Options{Checksum: true})
	require.NoError(t, err)
	require.Len(t, p.Checksums, (len(data)+ChunkSize-1)/ChunkSize)

	out, err := Unpack(p, len(data))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(out, data))
}

func TestUnpack_ChecksumMismatch(t *testing.T) {
	data := bytes.Repeat([]byte{7}, ChunkSize)

	p, err := Pack(data, &Options{Checksum: true})
	require.NoError(t, err)
	require.NotEmpty(t, p.Data)

	p.Data[0] ^= 0x01
	_, err = Unpack(p, len(data))
	require.Error(t, err)
}

func TestUnpack_CorruptIndex(t *testing.T) {
	data := bytes.Repeat([]byte("corrupt-index"), 500)

	p, err := Pack(data, nil)
	require.NoError(t, err)

	t.Run("offset-past-data", func(t *testing.T) {
		broken := *p
		broken.Offsets = append([]int(nil), p.Offsets...)
		broken.Offsets[0] = len(p.Data)
		_, err := Unpack(&broken, len(data))
		assert.ErrorIs(t, err, ErrCorruptIndex)
	})

	t.Run("negative-offset", func(t *testing.T) {
		broken := *p
		broken.Offsets = append([]int(nil), p.Offsets...)
		broken.Offsets[0] = -1
		_, err := Unpack(&broken, len(data))
		assert.ErrorIs(t, err, ErrCorruptIndex)
	})

	t.Run("too-many-chunks-for-size", func(t *testing.T) {
		_, err := Unpack(p, ChunkSize) // index has more chunks than one
		assert.ErrorIs(t, err, ErrCorruptIndex)
	})

	t.Run("size-larger-than-index", func(t *testing.T) {
		_, err := Unpack(p, len(data)+ChunkSize)
		assert.Error(t, err)
	})
}

func TestUnpack_RawChunkSizeMismatch(t *testing.T) {
	// A 10-byte pass-through chunk stored raw; lie about the original size.
	data := []byte("0123456789")

	p, err := Pack(data, nil)
	require.NoError(t, err)
	require.False(t, p.Compressed[0])

	_, err = Unpack(p, len(data)-1)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestUnpack_NegativeSize(t *testing.T) {
	p, err := Pack(nil, nil)
	require.NoError(t, err)

	_, err = Unpack(p, -1)
	require.Error(t, err)
}
