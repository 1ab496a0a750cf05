package escbytes_test

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/escbytes"
	"github.com/aretw0/escbytes/internal/asciitext"
	"github.com/aretw0/escbytes/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, escbytes.InputName), []byte(content), 0644))
}

func readOutput(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, escbytes.OutputName))
	require.NoError(t, err)
	return string(data)
}

func TestConverter_Run(t *testing.T) {
	dir := t.TempDir()
	input := "\"abc\\Udef\"\r\n\"\\7y\"\r\n"
	writeInput(t, dir, input)

	conv, err := escbytes.New(dir)
	require.NoError(t, err)
	require.NoError(t, conv.Run(context.Background()))

	got := readOutput(t, dir)
	assert.Equal(t, "{\nABC, 0xDEF,\n07Y\n\n}", got)
	assert.Equal(t, escbytes.Transcode(input), got)
}

func TestConverter_RunOverwrites(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "\\U41")
	require.NoError(t, os.WriteFile(filepath.Join(dir, escbytes.OutputName), []byte("old output, much longer than the new one"), 0644))

	conv, err := escbytes.New(dir)
	require.NoError(t, err)
	require.NoError(t, conv.Run(context.Background()))

	assert.Equal(t, "{\n0x41\n}", readOutput(t, dir))
}

func TestConverter_MissingInput(t *testing.T) {
	dir := t.TempDir()
	conv, err := escbytes.New(dir)
	require.NoError(t, err)

	err = conv.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "read input")

	_, statErr := os.Stat(conv.OutputPath())
	assert.ErrorIs(t, statErr, fs.ErrNotExist, "no output without input")
}

func TestConverter_NonASCIIInput(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "\"caf\xC3\xA9\"")

	conv, err := escbytes.New(dir)
	require.NoError(t, err)

	err = conv.Run(context.Background())
	assert.ErrorIs(t, err, asciitext.ErrNotASCII)
	assert.Contains(t, err.Error(), "offset 4")
}

func TestConverter_UnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "\\U41")
	// A directory in place of the output file cannot be opened for writing.
	require.NoError(t, os.Mkdir(filepath.Join(dir, escbytes.OutputName), 0755))

	conv, err := escbytes.New(dir)
	require.NoError(t, err)

	err = conv.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write output")
}

func TestConverter_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "\\U41")

	conv, err := escbytes.New(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, conv.Run(ctx), context.Canceled)
}

func TestConverter_Logging(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "\\U41")

	var buf bytes.Buffer
	conv, err := escbytes.New(dir, escbytes.WithLogger(logging.New(&buf, slog.LevelDebug)))
	require.NoError(t, err)
	require.NoError(t, conv.Run(context.Background()))

	logs := buf.String()
	assert.Contains(t, logs, "reading input")
	assert.Contains(t, logs, "transcode complete")
	assert.Contains(t, logs, "out_bytes=8")
}

func TestNew_Paths(t *testing.T) {
	_, err := escbytes.New("")
	assert.Error(t, err)

	dir := t.TempDir()
	conv, err := escbytes.New(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pySrc.txt"), conv.InputPath())
	assert.Equal(t, filepath.Join(dir, "pyDst.txt"), conv.OutputPath())
}
