// Package imgdim extracts pixel dimensions from raw PNG and JPEG bytes
// without decoding any pixel data.
package imgdim

import "encoding/binary"

// Dimensions holds the pixel width and height of an image.
type Dimensions struct {
	Width  uint32
	Height uint32
}

// pngSignature is the fixed 8-byte signature every PNG file starts with.
var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

const (
	// IHDR is the mandatory first chunk: length(4) + "IHDR"(4) starting at
	// offset 8, so width and height sit at fixed offsets.
	pngWidthOffset  = 16
	pngHeightOffset = 20

	jpegMarkerPrefix = 0xFF
	jpegSOI          = 0xD8

	// SOF0 (baseline) through SOF3 (lossless) all encode dimensions at the
	// same offsets within the segment.
	sofFirst = 0xC0
	sofLast  = 0xC3
)

// Read inspects data and, if it forms a recognized PNG or JPEG, returns the
// image dimensions. ok is false for any other byte pattern, including buffers
// too short to hold the fields being read. data is never mutated.
func Read(data []byte) (dim Dimensions, ok bool) {
	if isPNG(data) {
		return readPNG(data)
	}
	if isJPEG(data) {
		return readJPEG(data)
	}
	return Dimensions{}, false
}

// IsPNG reports whether data starts with the PNG signature.
func IsPNG(data []byte) bool {
	return isPNG(data)
}

func isPNG(data []byte) bool {
	if len(data) < len(pngSignature) {
		return false
	}
	for i, b := range pngSignature {
		if data[i] != b {
			return false
		}
	}
	return true
}

func isJPEG(data []byte) bool {
	return len(data) >= 2 && data[0] == jpegMarkerPrefix && data[1] == jpegSOI
}

func readPNG(data []byte) (Dimensions, bool) {
	if len(data) < pngHeightOffset+4 {
		return Dimensions{}, false
	}
	return Dimensions{
		Width:  binary.BigEndian.Uint32(data[pngWidthOffset:]),
		Height: binary.BigEndian.Uint32(data[pngHeightOffset:]),
	}, true
}

// readJPEG walks the marker segments after the SOI until it hits a
// start-of-frame marker. The segment length at i+2 counts its own two bytes
// but not the two marker bytes, so the next segment begins at i + length + 2.
// A buffer that runs out before an SOF marker is treated as not containing
// dimensions.
func readJPEG(data []byte) (Dimensions, bool) {
	for i := 2; i+9 <= len(data); {
		if data[i] == jpegMarkerPrefix && data[i+1] >= sofFirst && data[i+1] <= sofLast {
			return Dimensions{
				Height: uint32(binary.BigEndian.Uint16(data[i+5:])),
				Width:  uint32(binary.BigEndian.Uint16(data[i+7:])),
			}, true
		}
		i += int(binary.BigEndian.Uint16(data[i+2:])) + 2
	}
	return Dimensions{}, false
}
