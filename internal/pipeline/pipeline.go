// Package pipeline orchestrates the conversion workflow stages.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/bin2vmem/internal/converter"
	"github.com/retroenv/bin2vmem/internal/detector"
	"github.com/retroenv/bin2vmem/internal/format"
	"github.com/retroenv/bin2vmem/internal/format/coe"
	"github.com/retroenv/bin2vmem/internal/format/readmemh"
	"github.com/retroenv/bin2vmem/internal/format/verilog"
	"github.com/retroenv/bin2vmem/internal/loader"
	"github.com/retroenv/bin2vmem/internal/options"
	"github.com/retroenv/bin2vmem/internal/program"
	"github.com/retroenv/bin2vmem/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete conversion workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new conversion pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete conversion pipeline.
// The input file is loaded before the output file gets created, a missing
// input leaves any existing output file untouched.
func (p *Pipeline) Execute(opts options.Program, convOpts options.Conversion) (program.Summary, error) {
	imageFormat := p.detector.Detect(opts.Input)

	data, err := p.loader.Load(opts.Input, imageFormat)
	if err != nil {
		return program.Summary{}, fmt.Errorf("loading image: %w", err)
	}

	prg := converter.New(p.logger, opts.Input, data, convOpts).Process()

	output, err := p.createWriter(opts)
	if err != nil {
		return program.Summary{}, err
	}

	fileWriter, err := createFileWriter(prg, convOpts, output)
	if err != nil {
		_ = closeWriter(output)
		return program.Summary{}, err
	}

	if err := fileWriter.Write(); err != nil {
		_ = closeWriter(output)
		return program.Summary{}, fmt.Errorf("writing output: %w", err)
	}
	if err := closeWriter(output); err != nil {
		return program.Summary{}, fmt.Errorf("closing output file: %w", err)
	}

	p.printSummary(opts, prg)

	return prg.Summarize(), nil
}

// ExecuteWithData runs the conversion pipeline with an in-memory image and
// writes to the given writer. This is useful for testing and programmatic
// usage where the image is already in memory.
func (p *Pipeline) ExecuteWithData(sourceFile string, data []byte,
	convOpts options.Conversion, output io.Writer) (program.Summary, error) {

	prg := converter.New(p.logger, sourceFile, data, convOpts).Process()

	fileWriter, err := createFileWriter(prg, convOpts, output)
	if err != nil {
		return program.Summary{}, err
	}
	if err := fileWriter.Write(); err != nil {
		return program.Summary{}, fmt.Errorf("writing output: %w", err)
	}

	return prg.Summarize(), nil
}

// OutputFilename returns the output file name for a given input file,
// the extension gets replaced by a suffix matching the output dialect.
func OutputFilename(inputFile, formatName string) string {
	ext := filepath.Ext(inputFile)
	stem := inputFile[:len(inputFile)-len(ext)]

	switch formatName {
	case format.Readmemh:
		return stem + "_code.mem"
	case format.Coe:
		return stem + "_code.coe"
	default:
		return stem + "_code.v"
	}
}

func (p *Pipeline) createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

func createFileWriter(prg *program.Program, convOpts options.Conversion,
	output io.Writer) (writer.FileWriter, error) {

	switch convOpts.Format {
	case format.Verilog:
		return verilog.New(prg, convOpts, output), nil
	case format.Readmemh:
		return readmemh.New(prg, convOpts, output), nil
	case format.Coe:
		return coe.New(prg, convOpts, output), nil
	default:
		return nil, fmt.Errorf("unsupported output format '%s'", convOpts.Format)
	}
}

func closeWriter(output io.Writer) error {
	if closer, ok := output.(io.Closer); ok && output != os.Stdout {
		return closer.Close()
	}
	return nil
}

func (p *Pipeline) printSummary(opts options.Program, prg *program.Program) {
	if opts.Quiet {
		return
	}

	summary := prg.Summarize()
	p.logger.Info("Conversion successful", log.String("input", opts.Input))
	p.logger.Info("Output written", log.String("file", opts.Output))
	p.logger.Info("Instructions converted", log.Int("count", summary.WordCount))
	p.logger.Info("Address range",
		log.Hex("start", summary.StartAddress),
		log.Hex("end", summary.EndAddress))
}
