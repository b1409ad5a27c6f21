package openbump

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Trailer sizes left behind by an earlier patch
const (
	patchedTrailer = 1024
	magicTrailer   = MagicSize
)

// pageUnused reports whether the page starting at off is unused padding.
// Only the leading byte decides; a page past the end of the file is unused.
func pageUnused(fin io.ReaderAt, off int64) (bool, error) {
	var lead [1]byte
	n, err := fin.ReadAt(lead[:], off)
	if n == 0 {
		if err == io.EOF {
			return true, nil
		}
		return false, err
	}

	return lead[0] == 0, nil
}

// PadImage checks the size of the image at path against its header and
// strips trailing unused pages when the image carries unexpected padding.
func (p *Patcher) PadImage(path string) (err error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return eMsg(err, "opening image for padding")
	}
	defer func() {
		cErr := f.Close()
		if err == nil && cErr != nil {
			err = eMsg(cErr, "closing padded image")
		}
	}()

	hdr, err := ReadHeader(f)
	if err != nil {
		return
	}

	fInfo, err := f.Stat()
	if err != nil {
		return eMsg(err, "checking image size")
	}

	pageSize := int64(hdr.PageSize)
	imageSize := fInfo.Size()
	numPages := imageSize / pageSize
	calculatedSize := hdr.ImageSize()

	log := p.log().WithFields(logrus.Fields{
		"image":           path,
		"page_size":       pageSize,
		"image_size":      imageSize,
		"calculated_size": calculatedSize,
	})

	if calculatedSize > imageSize {
		return eMsg(ErrInvalidImage, fmt.Sprintf("Invalid image: %s", path))
	}

	if imageSize == calculatedSize {
		log.Debug("Image size matches header")
		return
	}

	difference := imageSize - calculatedSize
	switch difference {
	case pageSize, 2 * pageSize:
		log.WithField("difference", difference).Debug("Image has room for the signature")
		return
	case patchedTrailer, pageSize + patchedTrailer, 2*pageSize + patchedTrailer,
		magicTrailer, pageSize + magicTrailer, 2*pageSize + magicTrailer:
		return eMsg(ErrAlreadyPatched, path)
	}

	log.WithField("difference", difference).Warn("Image already padded. Attempting to remove padding...")
	log.Warn("Beware: this may invalidate your image.")

	for i := numPages - 1; i >= 0; i-- {
		off := i * pageSize

		unused, err := pageUnused(f, off)
		if err != nil {
			return eMsg(err, fmt.Sprintf("reading page %d", i))
		}
		if !unused {
			break
		}

		err = f.Truncate(off)
		if err != nil {
			return eMsg(err, fmt.Sprintf("truncating image to page %d", i))
		}
		log.WithField("size", off).Debug("Removed padding page")
	}

	return
}

// PadImage checks and normalizes the padding of the image at path using the
// default Patcher.
func PadImage(path string) error {
	return defaultPatcher.PadImage(path)
}
