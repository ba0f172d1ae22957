// Package main implements a converter from flat binary files to Verilog
// instruction memory initialization tables.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/retroenv/bin2vmem/internal/cli"
	"github.com/retroenv/bin2vmem/internal/config"
	"github.com/retroenv/bin2vmem/internal/options"
	"github.com/retroenv/bin2vmem/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts, convOpts, err := cli.ParseFlags()
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	printBanner(logger, opts)

	files, err := getFilesToProcess(opts)
	if err != nil {
		logger.Fatal(err.Error())
	}

	p := pipeline.New(logger)

	for _, file := range files {
		opts.Input = file
		if len(files) > 1 || opts.Output == "" {
			opts.Output = pipeline.OutputFilename(file, convOpts.Format)
		}

		if _, err := p.Execute(opts, convOpts); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Error("Input file not found", log.String("file", file))
				os.Exit(1)
			}
			logger.Fatal(err.Error())
		}
	}
}

// getFilesToProcess returns the list of files to process based on options
func getFilesToProcess(opts options.Program) ([]string, error) {
	if opts.Batch == "" {
		return []string{opts.Input}, nil
	}

	matches, err := filepath.Glob(opts.Batch)
	if err != nil {
		return nil, fmt.Errorf("globbing batch pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern '%s'", opts.Batch)
	}
	return matches, nil
}

// printBanner prints application version information
func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("bin2vmem", log.String("version", buildinfo.Version(version, commit, date)))
}
