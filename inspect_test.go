package openbump

import (
	"testing"

	"github.com/cespare/xxhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	l := defaultLayout()
	data := l.build()
	// gzip magic at the start of the ramdisk
	off := int(l.pageSize + l.kernel)
	data[off], data[off+1] = 0x1f, 0x8b
	data = append(data, Magic()...)

	info, err := Inspect(writeImage(t, data))
	require.NoError(t, err)

	assert.Equal(t, l.pageSize, info.Header.PageSize)
	assert.Equal(t, int64(l.kernel), info.PagedKernel)
	assert.Equal(t, int64(l.ramdisk), info.PagedRamdisk)
	assert.Equal(t, int64(0), info.PagedSecond)
	assert.Equal(t, int64(l.dt), info.PagedDt)
	assert.Equal(t, int64(len(data)-MagicSize), info.CalculatedSize)
	assert.Equal(t, int64(len(data)), info.ImageSize)
	assert.Equal(t, int64(MagicSize), info.Difference)
	assert.True(t, info.Bumped)
	assert.Equal(t, CompGzip, info.RamdiskFormat)
	assert.Equal(t, xxhash.Sum64(data), info.Digest)
}

func TestInspectUnalignedKernel(t *testing.T) {
	l := defaultLayout()
	l.kernel = 3*testPageSize + 10
	data := l.build()
	data = append(data, zeros(testPageSize)...)

	// Ramdisk begins on the page after the partial kernel page.
	off := testPageSize + 4*testPageSize
	data[off], data[off+1] = 0xfd, 0x37

	info, err := Inspect(writeImage(t, data))
	require.NoError(t, err)
	assert.Equal(t, CompXz, info.RamdiskFormat)
	assert.False(t, info.Bumped)
}

func TestInspectInvalidImage(t *testing.T) {
	data := defaultLayout().build()
	data = data[:len(data)-testPageSize]

	info, err := Inspect(writeImage(t, data))
	require.NoError(t, err)
	assert.Equal(t, int64(-testPageSize), info.Difference)
	assert.Equal(t, CompUnknown, info.RamdiskFormat)
}

func TestDetectCompressor(t *testing.T) {
	tests := map[string]struct {
		magic []byte
		want  int
	}{
		"bzip2":   {[]byte{0x42, 0x5a}, CompBzip2},
		"gzip":    {[]byte{0x1f, 0x8b}, CompGzip},
		"gzip9e":  {[]byte{0x1f, 0x9e}, CompGzip},
		"lz4":     {[]byte{0x04, 0x22}, CompLz4},
		"lzo":     {[]byte{0x89, 0x4c}, CompLzo},
		"lzma":    {[]byte{0x5d, 0x00}, CompLzma},
		"xz":      {[]byte{0xfd, 0x37}, CompXz},
		"unknown": {[]byte{0x00, 0x00}, CompUnknown},
		"short":   {[]byte{0x1f}, CompUnknown},
	}

	for name, tt := range tests {
		assert.Equal(t, tt.want, DetectCompressor(tt.magic), name)
	}
	assert.Equal(t, "xz", CompressorName(CompXz))
	assert.Equal(t, "unknown", CompressorName(99))
}
