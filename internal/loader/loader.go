// Package loader handles input image loading operations.
package loader

import (
	"fmt"
	"os"

	"github.com/marcinbor85/gohex"
	"github.com/retroenv/bin2vmem/internal/detector"
)

// Loader handles loading input images from disk.
type Loader struct{}

// New creates a new image loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the input file and returns its flat byte image based on the
// detected format. A missing input file surfaces unwrapped enough for the
// caller to classify it with errors.Is(err, fs.ErrNotExist).
func (l *Loader) Load(filename string, format detector.ImageFormat) ([]byte, error) {
	switch format {
	case detector.IntelHex:
		return l.loadIntelHex(filename)
	default:
		return l.loadBinary(filename)
	}
}

func (l *Loader) loadBinary(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", filename, err)
	}
	return data, nil
}

// loadIntelHex parses an Intel HEX image and flattens its data segments into
// a contiguous byte image starting at the lowest segment address, zero-filling
// any gaps between segments.
func (l *Loader) loadIntelHex(filename string) ([]byte, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", filename, err)
	}
	defer func() { _ = file.Close() }()

	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(file); err != nil {
		return nil, fmt.Errorf("parsing Intel HEX file %s: %w", filename, err)
	}

	segments := mem.GetDataSegments()
	if len(segments) == 0 {
		return nil, nil
	}

	start := segments[0].Address
	end := segments[0].Address + uint32(len(segments[0].Data))
	for _, segment := range segments[1:] {
		if segment.Address < start {
			start = segment.Address
		}
		if segmentEnd := segment.Address + uint32(len(segment.Data)); segmentEnd > end {
			end = segmentEnd
		}
	}

	data := make([]byte, end-start)
	for _, segment := range segments {
		copy(data[segment.Address-start:], segment.Data)
	}
	return data, nil
}
