package escbytes

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/escbytes/internal/asciitext"
	"github.com/aretw0/escbytes/internal/transcode"
)

// Version is reported by the CLI.
var Version = "0.1.0"

const (
	// InputName is the source artifact, relative to the working directory.
	InputName = "pySrc.txt"
	// OutputName is the generated artifact, relative to the working directory.
	OutputName = "pyDst.txt"
)

// Converter runs the transcoder over the fixed artifacts of one directory.
type Converter struct {
	dir    string
	logger *slog.Logger
}

// Option defines a functional option for configuring the Converter.
type Option func(*Converter)

// WithLogger sets a custom structured logger for the converter.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// New prepares a Converter working in dir.
func New(dir string, opts ...Option) (*Converter, error) {
	if dir == "" {
		return nil, fmt.Errorf("dir is required")
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	c := &Converter{dir: absDir}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c.logger = c.logger.With("dir", absDir)
	return c, nil
}

// InputPath returns the absolute path of the source artifact.
func (c *Converter) InputPath() string {
	return filepath.Join(c.dir, InputName)
}

// OutputPath returns the absolute path of the generated artifact.
func (c *Converter) OutputPath() string {
	return filepath.Join(c.dir, OutputName)
}

// Run reads the input artifact, transcodes it and writes (or overwrites) the
// output artifact. Any failure aborts the run; a write failure can leave a
// partial output file behind.
func (c *Converter) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.logger.Debug("reading input", "path", c.InputPath())
	src, err := asciitext.ReadFile(c.InputPath())
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	out := transcode.Text(src)

	if err := ctx.Err(); err != nil {
		return err
	}

	c.logger.Debug("writing output", "path", c.OutputPath())
	if err := asciitext.WriteFile(c.OutputPath(), out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	c.logger.Info("transcode complete", "in_bytes", len(src), "out_bytes", len(out))
	return nil
}

// Transcode converts already-decoded text. It is the pure core of Run.
func Transcode(text string) string {
	return transcode.Text(text)
}
