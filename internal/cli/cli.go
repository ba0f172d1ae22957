// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/bin2vmem/internal/format"
	"github.com/retroenv/bin2vmem/internal/options"
)

// defaultInput is the input file name used when no argument is given.
const defaultInput = "test_rv32i.bin"

// ParseFlags parses command line flags and returns program and conversion options
func ParseFlags() (options.Program, options.Conversion, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	if err := flags.Parse(os.Args[1:]); err != nil {
		return opts, options.Conversion{}, &UsageError{flags: flags}
	}

	if err := applyArgs(&opts, flags.Args(), flags); err != nil {
		return opts, options.Conversion{}, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Conversion{}, err
	}

	convOpts := options.NewConversion(opts.Format)
	convOpts.Signal = opts.Signal
	convOpts.BaseAddress = opts.BaseAddress

	return opts, convOpts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: bin2vmem [options] [input file] [output file] [base address hex]\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// applyArgs applies the positional arguments, all of them are optional:
// input file, output file and the base address as a hex string.
func applyArgs(opts *options.Program, args []string, flags *flag.FlagSet) error {
	if len(args) > 3 {
		return &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("unexpected extra argument '%s'", args[3]),
		}
	}

	opts.Input = defaultInput
	if len(args) > 0 {
		opts.Input = args[0]
	}
	if len(args) > 1 {
		opts.Output = args[1]
	}
	if len(args) > 2 {
		baseAddress, err := parseBaseAddress(args[2])
		if err != nil {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("invalid base address '%s': expected a hex value", args[2]),
			}
		}
		opts.BaseAddress = baseAddress
	}
	return nil
}

// parseBaseAddress parses a hex string without requiring a 0x prefix.
func parseBaseAddress(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	value, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing base address: %w", err)
	}
	return uint32(value), nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Format = strings.ToLower(opts.Format)

	for _, valid := range format.Names() {
		if opts.Format == valid {
			return nil
		}
	}

	return fmt.Errorf("unsupported output format: %s. Valid options: %s",
		opts.Format, strings.Join(format.Names(), ", "))
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Format, "f", format.Verilog, "output format of the generated file (verilog/readmemh/coe)")
	flags.StringVar(&opts.Signal, "signal", "o_instr", "Verilog signal that the words are assigned to")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask with automatic output file naming, for example *.bin")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
