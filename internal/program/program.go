// Package program represents the converted memory image.
package program

// Word pairs a memory address with the 32-bit value stored at it.
type Word struct {
	Address uint32
	Value   uint32
}

// Program defines the converted memory image that the format writers output.
type Program struct {
	SourceFile  string // base name of the input file, written to the header
	BaseAddress uint32
	ByteCount   int

	Words []Word // in strictly increasing address order
}

// New creates a new program for the given source file and base address.
func New(sourceFile string, baseAddress uint32) *Program {
	return &Program{
		SourceFile:  sourceFile,
		BaseAddress: baseAddress,
	}
}

// WordCount returns the number of words in the image.
func (p *Program) WordCount() int {
	return len(p.Words)
}

// EndAddress returns the address of the last word. For an empty image it
// returns the base address to avoid an underflow.
func (p *Program) EndAddress() uint32 {
	if len(p.Words) == 0 {
		return p.BaseAddress
	}
	return p.Words[len(p.Words)-1].Address
}

// Summary describes the result of a conversion.
type Summary struct {
	ByteCount    int
	WordCount    int
	StartAddress uint32
	EndAddress   uint32
}

// Summarize returns the conversion summary of the program.
func (p *Program) Summarize() Summary {
	return Summary{
		ByteCount:    p.ByteCount,
		WordCount:    p.WordCount(),
		StartAddress: p.BaseAddress,
		EndAddress:   p.EndAddress(),
	}
}
