package pipeline

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/bin2vmem/internal/format"
	"github.com/retroenv/bin2vmem/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestExecute(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	t.Run("convert binary file", func(t *testing.T) {
		tmpDir := t.TempDir()
		input := filepath.Join(tmpDir, "test.bin")
		output := filepath.Join(tmpDir, "test_code.v")
		assert.NoError(t, os.WriteFile(input, []byte{0x78, 0x56, 0x34, 0x12}, 0600))

		opts := options.Program{Input: input, Output: output, Quiet: true}
		convOpts := options.NewConversion(format.Verilog)

		summary, err := p.Execute(opts, convOpts)
		assert.NoError(t, err)
		assert.Equal(t, 4, summary.ByteCount)
		assert.Equal(t, 1, summary.WordCount)
		assert.Equal(t, uint32(0), summary.StartAddress)
		assert.Equal(t, uint32(0), summary.EndAddress)

		content, err := os.ReadFile(output)
		assert.NoError(t, err)
		want := `// Verilog instruction memory initialization
// Generated from: test.bin
// Total size: 4 bytes (1 instructions)
// Starting address: 0x00000000

    32'h0:  o_instr <= 32'h12345678;

// Total instructions: 1
`
		assert.Equal(t, want, string(content))
	})

	t.Run("conversion is idempotent", func(t *testing.T) {
		tmpDir := t.TempDir()
		input := filepath.Join(tmpDir, "test.bin")
		output := filepath.Join(tmpDir, "test_code.v")
		assert.NoError(t, os.WriteFile(input, []byte{1, 2, 3, 4, 5}, 0600))

		opts := options.Program{Input: input, Output: output, Quiet: true}
		convOpts := options.NewConversion(format.Verilog)

		_, err := p.Execute(opts, convOpts)
		assert.NoError(t, err)
		first, err := os.ReadFile(output)
		assert.NoError(t, err)

		_, err = p.Execute(opts, convOpts)
		assert.NoError(t, err)
		second, err := os.ReadFile(output)
		assert.NoError(t, err)

		assert.True(t, bytes.Equal(first, second))
	})

	t.Run("existing output file is overwritten", func(t *testing.T) {
		tmpDir := t.TempDir()
		input := filepath.Join(tmpDir, "test.bin")
		output := filepath.Join(tmpDir, "test_code.v")
		assert.NoError(t, os.WriteFile(input, []byte{1, 0, 0, 0}, 0600))
		assert.NoError(t, os.WriteFile(output, []byte("stale content"), 0600))

		opts := options.Program{Input: input, Output: output, Quiet: true}
		convOpts := options.NewConversion(format.Verilog)

		_, err := p.Execute(opts, convOpts)
		assert.NoError(t, err)

		content, err := os.ReadFile(output)
		assert.NoError(t, err)
		assert.False(t, bytes.Contains(content, []byte("stale content")))
	})

	t.Run("missing input creates no output file", func(t *testing.T) {
		tmpDir := t.TempDir()
		opts := options.Program{
			Input:  filepath.Join(tmpDir, "missing.bin"),
			Output: filepath.Join(tmpDir, "missing_code.v"),
			Quiet:  true,
		}
		convOpts := options.NewConversion(format.Verilog)

		_, err := p.Execute(opts, convOpts)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))

		_, err = os.Stat(opts.Output)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("missing input leaves existing output untouched", func(t *testing.T) {
		tmpDir := t.TempDir()
		output := filepath.Join(tmpDir, "missing_code.v")
		assert.NoError(t, os.WriteFile(output, []byte("previous result"), 0600))

		opts := options.Program{
			Input:  filepath.Join(tmpDir, "missing.bin"),
			Output: output,
			Quiet:  true,
		}
		convOpts := options.NewConversion(format.Verilog)

		_, err := p.Execute(opts, convOpts)
		assert.Error(t, err)

		content, err := os.ReadFile(output)
		assert.NoError(t, err)
		assert.Equal(t, "previous result", string(content))
	})

	t.Run("unsupported format errors", func(t *testing.T) {
		tmpDir := t.TempDir()
		input := filepath.Join(tmpDir, "test.bin")
		assert.NoError(t, os.WriteFile(input, []byte{1, 2, 3, 4}, 0600))

		opts := options.Program{
			Input:  input,
			Output: filepath.Join(tmpDir, "test_code.v"),
			Quiet:  true,
		}
		convOpts := options.NewConversion("unknown")

		_, err := p.Execute(opts, convOpts)
		assert.Error(t, err)
	})
}

func TestExecuteWithData(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	var buf bytes.Buffer
	convOpts := options.NewConversion(format.Readmemh)

	summary, err := p.ExecuteWithData("test.bin", []byte{0x78, 0x56, 0x34, 0x12}, convOpts, &buf)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.WordCount)
	assert.True(t, bytes.Contains(buf.Bytes(), []byte("12345678")))
}

func TestOutputFilename(t *testing.T) {
	tests := []struct {
		input      string
		formatName string
		want       string
	}{
		{input: "test.bin", formatName: format.Verilog, want: "test_code.v"},
		{input: "test_rv32i.bin", formatName: format.Verilog, want: "test_rv32i_code.v"},
		{input: "firmware", formatName: format.Verilog, want: "firmware_code.v"},
		{input: "dir/test.bin", formatName: format.Verilog, want: "dir/test_code.v"},
		{input: "test.bin", formatName: format.Readmemh, want: "test_code.mem"},
		{input: "test.bin", formatName: format.Coe, want: "test_code.coe"},
	}

	for _, tt := range tests {
		t.Run(tt.input+" "+tt.formatName, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputFilename(tt.input, tt.formatName))
		})
	}
}
