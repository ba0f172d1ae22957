// Package writer implements common memory table writing functionality.
package writer

import (
	"fmt"
	"io"

	"github.com/retroenv/bin2vmem/internal/program"
)

// FileWriter defines a shared interface used by the different output format packages.
// Their constructors need to return this shared interface, having them return the actual
// type instead of the interface results in compiler errors for the constructor variable
// that they are assigned to.
type FileWriter interface {
	Write() error
}

// Writer implements common memory table writing functionality.
type Writer struct {
	prg     *program.Program
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	CommentPrefix string // comment start token of the output dialect
	Title         string // first header comment line
}

// New creates a new writer.
func New(prg *program.Program, writer io.Writer, options Options) *Writer {
	return &Writer{
		prg:     prg,
		options: options,
		writer:  writer,
	}
}

// WriteCommentHeader writes the source file name, the image size and the
// starting address as comments to the output.
// The instruction count in the size line floors the byte count, a trailing
// padded word is not counted there.
func (w Writer) WriteCommentHeader() error {
	prefix := w.options.CommentPrefix
	if _, err := fmt.Fprintf(w.writer, "%s %s\n", prefix, w.options.Title); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "%s Generated from: %s\n", prefix, w.prg.SourceFile); err != nil {
		return fmt.Errorf("writing source file: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "%s Total size: %d bytes (%d instructions)\n",
		prefix, w.prg.ByteCount, w.prg.ByteCount/4); err != nil {
		return fmt.Errorf("writing size: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "%s Starting address: 0x%08x\n\n", prefix, w.prg.BaseAddress); err != nil {
		return fmt.Errorf("writing starting address: %w", err)
	}
	return nil
}

// WriteCommentFooter writes the emitted word count as a trailing comment.
func (w Writer) WriteCommentFooter() error {
	if _, err := fmt.Fprintf(w.writer, "\n%s Total instructions: %d\n",
		w.options.CommentPrefix, w.prg.WordCount()); err != nil {
		return fmt.Errorf("writing footer: %w", err)
	}
	return nil
}

// WriteLine writes a formatted line to the output.
func (w Writer) WriteLine(format string, args ...any) error {
	if _, err := fmt.Fprintf(w.writer, format, args...); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}
