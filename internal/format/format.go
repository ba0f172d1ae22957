// Package format defines the available output dialects.
package format

const (
	Verilog  = "verilog"
	Readmemh = "readmemh"
	Coe      = "coe"
)

// Names returns the names of all supported output dialects.
func Names() []string {
	return []string{Verilog, Readmemh, Coe}
}
