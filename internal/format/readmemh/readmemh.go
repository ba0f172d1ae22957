// Package readmemh provides the $readmemh file writer implementation.
package readmemh

import (
	"io"

	"github.com/retroenv/bin2vmem/internal/options"
	"github.com/retroenv/bin2vmem/internal/program"
	"github.com/retroenv/bin2vmem/internal/writer"
)

// FileWriter writes memory files loadable with the Verilog $readmemh task.
type FileWriter struct {
	prg    *program.Program
	writer *writer.Writer
}

// New creates a new $readmemh file writer.
func New(prg *program.Program, _ options.Conversion, mainWriter io.Writer) writer.FileWriter {
	writerOpts := writer.Options{
		CommentPrefix: "//",
		Title:         "Memory initialization data for $readmemh",
	}
	return &FileWriter{
		prg:    prg,
		writer: writer.New(prg, mainWriter, writerOpts),
	}
}

// Write writes the memory file, one bare hex word per line. The target
// memory is word addressed, so the load offset is the base address divided
// by the word size.
func (w *FileWriter) Write() error {
	if err := w.writer.WriteCommentHeader(); err != nil {
		return err
	}

	if len(w.prg.Words) > 0 {
		if err := w.writer.WriteLine("@%x\n", w.prg.BaseAddress/4); err != nil {
			return err
		}
	}
	for _, word := range w.prg.Words {
		if err := w.writer.WriteLine("%08x\n", word.Value); err != nil {
			return err
		}
	}

	return w.writer.WriteCommentFooter()
}
