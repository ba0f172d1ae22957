// Package converter implements the byte to word conversion pass.
package converter

import (
	"encoding/binary"
	"path/filepath"

	"github.com/retroenv/bin2vmem/internal/options"
	"github.com/retroenv/bin2vmem/internal/program"
	"github.com/retroenv/retrogolib/log"
)

// wordSize is the fixed size of a memory word in bytes.
const wordSize = 4

// Converter converts a flat byte image into a word addressed program model.
type Converter struct {
	logger  *log.Logger
	options options.Conversion

	sourceFile string
	data       []byte
}

// New creates a new converter for the given input image.
func New(logger *log.Logger, sourceFile string, data []byte, opts options.Conversion) *Converter {
	return &Converter{
		logger:     logger,
		options:    opts,
		sourceFile: sourceFile,
		data:       data,
	}
}

// Process converts the image into words and returns the program model.
// Words are reassembled little-endian, the final partial word is padded
// with zero bytes in its high-order positions.
func (c *Converter) Process() *program.Program {
	prg := program.New(filepath.Base(c.sourceFile), c.options.BaseAddress)
	prg.ByteCount = len(c.data)

	for offset := 0; offset < len(c.data); offset += wordSize {
		chunk := c.data[offset:]
		if len(chunk) >= wordSize {
			chunk = chunk[:wordSize]
		} else {
			padded := make([]byte, wordSize)
			copy(padded, chunk)
			chunk = padded
		}

		prg.Words = append(prg.Words, program.Word{
			Address: c.options.BaseAddress + uint32(offset),
			Value:   binary.LittleEndian.Uint32(chunk),
		})
	}

	c.logger.Debug("Converted image",
		log.String("file", c.sourceFile),
		log.Int("bytes", prg.ByteCount),
		log.Int("words", prg.WordCount()))

	return prg
}
