package openbump

import (
	"io"
	"os"

	"github.com/cespare/xxhash"
)

// Compression types/modes
const (
	CompGzip = iota
	CompLz4
	CompLzo
	CompXz
	CompBzip2
	CompLzma
	CompUnknown
)

var compNames = map[int]string{
	CompGzip:    "gzip",
	CompLz4:     "lz4",
	CompLzo:     "lzo",
	CompXz:      "xz",
	CompBzip2:   "bzip2",
	CompLzma:    "lzma",
	CompUnknown: "unknown",
}

// CompressorName returns a readable name for a compression mode.
func CompressorName(cMode int) string {
	if name, ok := compNames[cMode]; ok {
		return name
	}

	return compNames[CompUnknown]
}

// DetectCompressor detects the compressor used for the input ramdisk.
func DetectCompressor(compr []byte) int {
	if len(compr) < 2 {
		return CompUnknown
	}

	switch {
	case compr[0] == 0x42 && compr[1] == 0x5a:
		return CompBzip2
	case compr[0] == 0x1f && (compr[1] == 0x8b || compr[1] == 0x9e):
		return CompGzip
	case compr[0] == 0x04 && compr[1] == 0x22:
		return CompLz4
	case compr[0] == 0x89 && compr[1] == 0x4c:
		return CompLzo
	case compr[0] == 0x5d && compr[1] == 0x00:
		return CompLzma
	case compr[0] == 0xfd && compr[1] == 0x37:
		return CompXz
	default:
		return CompUnknown
	}
}

// Info describes the layout of a boot image on disk.
type Info struct {
	Header Header

	PagedKernel  int64
	PagedRamdisk int64
	PagedSecond  int64
	PagedDt      int64

	// CalculatedSize is the size declared by the header.
	CalculatedSize int64
	// ImageSize is the size of the file.
	ImageSize int64
	// Difference is ImageSize - CalculatedSize; negative for invalid images.
	Difference int64

	Bumped        bool
	RamdiskFormat int

	// Digest is the xxhash64 of the whole file.
	Digest uint64
}

// alignedSize rounds size up to a whole number of pages.
func (hdr *Header) alignedSize(size uint32) int64 {
	pageSize := int64(hdr.PageSize)
	pad := int64(size) % pageSize
	if pad == 0 {
		return int64(size)
	}

	return int64(size) + pageSize - pad
}

// RamdiskOffset is the file offset of the ramdisk section.
func (hdr *Header) RamdiskOffset() int64 {
	return int64(hdr.PageSize) + hdr.alignedSize(hdr.KernelSize)
}

// Inspect reads the layout of the image at path.
func Inspect(path string) (*Info, error) {
	fin, err := os.Open(path)
	if err != nil {
		return nil, eMsg(err, "opening image for reading")
	}
	defer fin.Close()

	hdr, err := ReadHeader(fin)
	if err != nil {
		return nil, err
	}

	fInfo, err := fin.Stat()
	if err != nil {
		return nil, eMsg(err, "checking image size")
	}

	info := &Info{
		Header:         *hdr,
		CalculatedSize: hdr.ImageSize(),
		ImageSize:      fInfo.Size(),
		RamdiskFormat:  CompUnknown,
	}
	info.PagedKernel, info.PagedRamdisk, info.PagedSecond, info.PagedDt = hdr.PagedSizes()
	info.Difference = info.ImageSize - info.CalculatedSize

	trailerSize := int64(TrailerSize)
	if info.ImageSize < trailerSize {
		trailerSize = info.ImageSize
	}
	trailer := make([]byte, trailerSize)
	_, err = fin.ReadAt(trailer, info.ImageSize-trailerSize)
	if err != nil && err != io.EOF {
		return nil, eMsg(err, "reading image trailer")
	}
	info.Bumped = IsBumped(trailer)

	if hdr.RamdiskSize >= 2 {
		var magic [2]byte
		n, _ := fin.ReadAt(magic[:], hdr.RamdiskOffset())
		if n == len(magic) {
			info.RamdiskFormat = DetectCompressor(magic[:])
		}
	}

	xxh := xxhash.New()
	_, err = io.Copy(xxh, io.NewSectionReader(fin, 0, info.ImageSize))
	if err != nil {
		return nil, eMsg(err, "hashing image")
	}
	info.Digest = xxh.Sum64()

	return info, nil
}
