// Package coe provides the Xilinx COE file writer implementation.
package coe

import (
	"io"

	"github.com/retroenv/bin2vmem/internal/options"
	"github.com/retroenv/bin2vmem/internal/program"
	"github.com/retroenv/bin2vmem/internal/writer"
)

// FileWriter writes Xilinx COE coefficient files for block memory generators.
type FileWriter struct {
	prg    *program.Program
	writer *writer.Writer
}

// New creates a new COE file writer.
func New(prg *program.Program, _ options.Conversion, mainWriter io.Writer) writer.FileWriter {
	writerOpts := writer.Options{
		CommentPrefix: ";",
		Title:         "Memory initialization for Xilinx block memory",
	}
	return &FileWriter{
		prg:    prg,
		writer: writer.New(prg, mainWriter, writerOpts),
	}
}

// Write writes the COE file, all words as one comma separated
// initialization vector terminated with a semicolon.
func (w *FileWriter) Write() error {
	if err := w.writer.WriteCommentHeader(); err != nil {
		return err
	}

	if err := w.writer.WriteLine("memory_initialization_radix=16;\n"); err != nil {
		return err
	}
	if err := w.writer.WriteLine("memory_initialization_vector=\n"); err != nil {
		return err
	}

	for i, word := range w.prg.Words {
		separator := ","
		if i == len(w.prg.Words)-1 {
			separator = ";"
		}
		if err := w.writer.WriteLine("%08x%s\n", word.Value, separator); err != nil {
			return err
		}
	}
	if len(w.prg.Words) == 0 {
		if err := w.writer.WriteLine(";\n"); err != nil {
			return err
		}
	}

	return w.writer.WriteCommentFooter()
}
