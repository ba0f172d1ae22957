// Package verilog provides the Verilog case statement file writer implementation.
package verilog

import (
	"io"

	"github.com/retroenv/bin2vmem/internal/options"
	"github.com/retroenv/bin2vmem/internal/program"
	"github.com/retroenv/bin2vmem/internal/writer"
)

// FileWriter writes Verilog instruction memory initialization files.
type FileWriter struct {
	prg     *program.Program
	options options.Conversion
	writer  *writer.Writer
}

// New creates a new Verilog file writer.
func New(prg *program.Program, opts options.Conversion, mainWriter io.Writer) writer.FileWriter {
	writerOpts := writer.Options{
		CommentPrefix: "//",
		Title:         "Verilog instruction memory initialization",
	}
	return &FileWriter{
		prg:     prg,
		options: opts,
		writer:  writer.New(prg, mainWriter, writerOpts),
	}
}

// Write writes the Verilog memory initialization file.
// Each word is emitted as a case line assigning the word to the target signal,
// addresses are unpadded lowercase hex, values 8-digit lowercase hex.
func (w *FileWriter) Write() error {
	if err := w.writer.WriteCommentHeader(); err != nil {
		return err
	}

	for _, word := range w.prg.Words {
		if err := w.writer.WriteLine("    32'h%x:  %s <= 32'h%08x;\n",
			word.Address, w.options.Signal, word.Value); err != nil {
			return err
		}
	}

	return w.writer.WriteCommentFooter()
}
