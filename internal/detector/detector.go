// Package detector handles input image format detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// ImageFormat describes the on-disk format of an input image.
type ImageFormat string

const (
	// Binary is a flat binary image, converted byte for byte.
	Binary ImageFormat = "binary"
	// IntelHex is an Intel HEX image that gets flattened before conversion.
	IntelHex ImageFormat = "intelhex"
)

// Detector detects the input image format from the file extension.
type Detector struct {
	logger *log.Logger
}

// New creates a new image format detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the image format of the input file.
// Files with a .hex or .ihex extension are treated as Intel HEX,
// everything else as a flat binary image.
func (d *Detector) Detect(filename string) ImageFormat {
	format := detectFromFile(filename)
	d.logger.Debug("Detected input format",
		log.String("format", string(format)),
		log.String("file", filename))
	return format
}

func detectFromFile(filename string) ImageFormat {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".hex", ".ihex":
		return IntelHex
	default:
		return Binary
	}
}
