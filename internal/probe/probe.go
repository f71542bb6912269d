// Package probe reads PNG header metadata (dimensions, bit depth, color
// type) without decoding image data. It doubles as a sanity check that the
// input really is a PNG before any encoder runs.
package probe

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// ihdrLen is the fixed byte length of the IHDR chunk data.
const ihdrLen = 13

// Info holds the metadata extracted from a PNG header.
type Info struct {
	Width     int
	Height    int
	BitDepth  byte
	ColorType byte
	Size      int64 // file size in bytes
}

// Resolution returns "WxH" for display.
func (i *Info) Resolution() string {
	return fmt.Sprintf("%dx%d", i.Width, i.Height)
}

// ColorTypeName returns the PNG color type as a human-readable label.
func (i *Info) ColorTypeName() string {
	switch i.ColorType {
	case 0:
		return "grayscale"
	case 2:
		return "truecolor"
	case 3:
		return "indexed"
	case 4:
		return "grayscale+alpha"
	case 6:
		return "truecolor+alpha"
	default:
		return "unknown"
	}
}

// Probe reads the PNG signature and IHDR chunk from path. It returns an
// error for non-PNG or truncated files.
func Probe(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Signature (8) + chunk length (4) + chunk type (4) + IHDR data (13).
	header := make([]byte, 8+4+4+ihdrLen)
	if _, err := io.ReadFull(f, header); err != nil {
		return nil, fmt.Errorf("read PNG header of %s: %w", path, err)
	}

	if !bytes.Equal(header[:8], pngSignature) {
		return nil, fmt.Errorf("%s is not a PNG file (bad signature)", path)
	}
	if binary.BigEndian.Uint32(header[8:12]) != ihdrLen || !bytes.Equal(header[12:16], []byte("IHDR")) {
		return nil, fmt.Errorf("%s: malformed PNG (IHDR chunk not first)", path)
	}

	info := &Info{
		Width:     int(binary.BigEndian.Uint32(header[16:20])),
		Height:    int(binary.BigEndian.Uint32(header[20:24])),
		BitDepth:  header[24],
		ColorType: header[25],
	}
	if info.Width <= 0 || info.Height <= 0 {
		return nil, fmt.Errorf("%s: malformed PNG (zero dimensions)", path)
	}

	if fi, err := f.Stat(); err == nil {
		info.Size = fi.Size()
	}
	return info, nil
}
