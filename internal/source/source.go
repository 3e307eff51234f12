// Package source is the I/O boundary in front of the filter. Reads never
// fail: undecodable bytes are substituted and unreadable inputs collapse to
// an empty document, so the calling toolchain is never aborted or hung.
package source

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Lossy decodes b as UTF-8, replacing each invalid sequence with U+FFFD.
func Lossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}

// ReadFile returns the lossily decoded contents of path, or an empty string
// if the file cannot be read for any reason.
func ReadFile(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return Lossy(b)
}

// ReadAll drains r to end-of-stream and lossily decodes the result. A read
// error yields an empty string; a closed empty stream yields one immediately.
func ReadAll(r io.Reader) string {
	b, err := io.ReadAll(r)
	if err != nil {
		return ""
	}
	return Lossy(b)
}
