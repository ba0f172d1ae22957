// Package options contains the program options.
package options

// Program options of the converter.
type Program struct {
	Input  string
	Output string
	Batch  string

	Format      string
	Signal      string
	BaseAddress uint32

	Debug bool
	Quiet bool
}

// Conversion defines options that are passed down to the format writers.
type Conversion struct {
	Format string // output dialect to generate
	Signal string // Verilog signal the words are assigned to

	BaseAddress uint32
}

// NewConversion returns a new options instance with default options.
func NewConversion(format string) Conversion {
	return Conversion{
		Format: format,
		Signal: "o_instr",
	}
}
