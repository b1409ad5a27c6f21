package openbump

import (
	"encoding/hex"
	"strings"
)

// MagicHex is the bump signature in hex form.
const MagicHex = "41a9e467744d1d1ba429f2ecea655279"

// Signature constants
const (
	MagicSize = 16

	// TrailerSize is how far from the end of an image the signature is searched for.
	TrailerSize = 1024
)

var magicBytes = [MagicSize]byte{
	0x41, 0xa9, 0xe4, 0x67, 0x74, 0x4d, 0x1d, 0x1b,
	0xa4, 0x29, 0xf2, 0xec, 0xea, 0x65, 0x52, 0x79,
}

// Magic returns a copy of the bump signature bytes.
func Magic() []byte {
	magic := magicBytes
	return magic[:]
}

// IsBumped reports whether the trailing bytes of the image begin or end with
// the bump signature.
func IsBumped(data []byte) bool {
	if len(data) > TrailerSize {
		data = data[len(data)-TrailerSize:]
	}

	trailer := hex.EncodeToString(data)
	return strings.HasPrefix(trailer, MagicHex) || strings.HasSuffix(trailer, MagicHex)
}
