package asciitext

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// ErrNotASCII is matched by every CharsetError.
var ErrNotASCII = errors.New("byte outside 7-bit ASCII")

// CharsetError reports the first byte that does not fit the charset.
type CharsetError struct {
	Op     string // "decode" or "encode"
	Offset int64  // Position of Byte in the stream
	Byte   byte
}

func (e *CharsetError) Error() string {
	return fmt.Sprintf("%s: byte 0x%02X at offset %d: %v", e.Op, e.Byte, e.Offset, ErrNotASCII)
}

func (e *CharsetError) Is(target error) bool {
	return target == ErrNotASCII
}

// checker passes 7-bit bytes through unchanged and stops at the first byte
// with the high bit set.
type checker struct {
	op     string
	offset int64
}

// Decoder returns a transformer that validates US-ASCII input.
func Decoder() transform.Transformer {
	return &checker{op: "decode"}
}

// Encoder returns a transformer that validates US-ASCII output.
func Encoder() transform.Transformer {
	return &checker{op: "encode"}
}

func (c *checker) Reset() {
	c.offset = 0
}

func (c *checker) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	n := len(src)
	if n > len(dst) {
		n, err = len(dst), transform.ErrShortDst
	}
	for i := 0; i < n; i++ {
		if src[i] >= utf8.RuneSelf {
			copy(dst, src[:i])
			bad := &CharsetError{Op: c.op, Offset: c.offset + int64(i), Byte: src[i]}
			c.offset += int64(i)
			return i, i, bad
		}
	}
	copy(dst, src[:n])
	c.offset += int64(n)
	return n, n, err
}
