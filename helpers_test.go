package openbump

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testPageSize = 2048

// layout describes a synthetic boot image.
type layout struct {
	pageSize uint32
	kernel   uint32
	ramdisk  uint32
	second   uint32
	dt       uint32
}

func defaultLayout() layout {
	return layout{
		pageSize: testPageSize,
		kernel:   4 * testPageSize,
		ramdisk:  2 * testPageSize,
		second:   0,
		dt:       testPageSize,
	}
}

// build returns a header page followed by page-aligned non-zero sections.
func (l layout) build() []byte {
	hdr := make([]byte, l.pageSize)
	copy(hdr, "ANDROID!")
	binary.LittleEndian.PutUint32(hdr[KernelSizeOffset:], l.kernel)
	binary.LittleEndian.PutUint32(hdr[RamdiskSizeOffset:], l.ramdisk)
	binary.LittleEndian.PutUint32(hdr[SecondSizeOffset:], l.second)
	binary.LittleEndian.PutUint32(hdr[PageSizeOffset:], l.pageSize)
	binary.LittleEndian.PutUint32(hdr[DtSizeOffset:], l.dt)

	body := bytes.Repeat([]byte{0xaa}, int(l.kernel+l.ramdisk+l.second+l.dt))
	return append(hdr, body...)
}

func writeImage(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "boot.img")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func readImage(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func zeros(n int) []byte {
	return make([]byte, n)
}
