package openbump

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// readField reads the little-endian 32-bit header field at off.
func readField(r io.ReaderAt, off int64) (uint32, error) {
	var buf [4]byte
	n, err := r.ReadAt(buf[:], off)
	if n < len(buf) {
		if err == nil || err == io.EOF || err == io.ErrUnexpectedEOF {
			err = ErrTruncated
		}
		return 0, eMsg(err, fmt.Sprintf("reading header field at offset %d", off))
	}

	return binary.LittleEndian.Uint32(buf[:]), nil
}

// PageSizeFrom reads the page size from the image header.
func PageSizeFrom(r io.ReaderAt) (uint32, error) {
	pageSize, err := readField(r, PageSizeOffset)
	if err != nil {
		return 0, err
	}

	if pageSize == 0 {
		return 0, eMsg(ErrZeroPageSize, "reading page size")
	}

	return pageSize, nil
}

// ReadHeader decodes the layout fields of a boot image header.
func ReadHeader(r io.ReaderAt) (*Header, error) {
	pageSize, err := PageSizeFrom(r)
	if err != nil {
		return nil, err
	}

	hdr := &Header{PageSize: pageSize}
	fields := []struct {
		off int64
		dst *uint32
	}{
		{KernelSizeOffset, &hdr.KernelSize},
		{RamdiskSizeOffset, &hdr.RamdiskSize},
		{SecondSizeOffset, &hdr.SecondSize},
		{DtSizeOffset, &hdr.DtSize},
	}

	for _, f := range fields {
		*f.dst, err = readField(r, f.off)
		if err != nil {
			return nil, err
		}
	}

	return hdr, nil
}

// ReadPageSize reads the page size from the image at path.
func ReadPageSize(path string) (uint32, error) {
	fin, err := os.Open(path)
	if err != nil {
		return 0, eMsg(err, "opening image for reading")
	}
	defer fin.Close()

	return PageSizeFrom(fin)
}

// ReadHeaderFile decodes the header of the image at path.
func ReadHeaderFile(path string) (*Header, error) {
	fin, err := os.Open(path)
	if err != nil {
		return nil, eMsg(err, "opening image for reading")
	}
	defer fin.Close()

	return ReadHeader(fin)
}

// KernelRegionSize returns the page-aligned size the header of the image at
// path declares: the header page plus kernel, ramdisk, second stage and
// device tree.
func KernelRegionSize(path string) (int64, error) {
	hdr, err := ReadHeaderFile(path)
	if err != nil {
		return 0, err
	}

	return hdr.ImageSize(), nil
}
