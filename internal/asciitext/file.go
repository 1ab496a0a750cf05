package asciitext

import (
	"errors"
	"io"
	"os"

	"golang.org/x/text/transform"
)

// ReadFile reads the whole file as US-ASCII text. Line terminators are
// returned as stored; CRLF is not translated.
func ReadFile(path string) (text string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	data, err := io.ReadAll(transform.NewReader(f, Decoder()))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteFile creates or truncates path and writes text as US-ASCII.
// The write is not atomic: a failure midway can leave a partial file.
func WriteFile(path, text string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	w := transform.NewWriter(f, Encoder())
	if _, err := io.WriteString(w, text); err != nil {
		return err
	}
	return w.Close()
}
