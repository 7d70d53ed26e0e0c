// Package encoding provides text encoding utilities for Wavefront source files.
//
// OBJ and MTL files are nominally ASCII, but exporters routinely write object,
// group and material names in the platform code page. Decoding happens before
// tokenizing so that names reach the model as UTF-8.
package encoding

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// ErrUnsupportedEncoding is returned for encoding names that cannot be resolved.
var ErrUnsupportedEncoding = errors.New("unsupported text encoding")

// IsUTF8 reports whether name refers to UTF-8 (or ASCII), which needs no decoding.
// The empty name means UTF-8.
func IsUTF8(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8", "ascii", "us-ascii":
		return true
	}
	return false
}

// Lookup resolves an encoding by its WHATWG label ("windows-1252", "latin1",
// "shift_jis", ...). EUC-KR is accepted under its common aliases as well.
func Lookup(name string) (encoding.Encoding, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	switch label {
	case "euckr", "euc-kr", "cp949":
		return korean.EUCKR, nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
	return enc, nil
}

// NewReader wraps r so that its contents are decoded from the named encoding
// into UTF-8. UTF-8 names return r unchanged.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	if IsUTF8(name) {
		return r, nil
	}

	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
