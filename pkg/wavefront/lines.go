package wavefront

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/wavefront/pkg/encoding"
)

// maxLineSize bounds a single source line. Exporters emit very long face
// lines for large n-gons, so the bufio default of 64KB is not enough.
const maxLineSize = 16 * 1024 * 1024

// sourceLine is a retained line together with its physical line number.
type sourceLine struct {
	Number int
	Text   string
}

// ReadFile reads a Wavefront text file, dropping blank lines and comments.
// Trailing carriage returns are stripped so CRLF files parse like LF files.
func ReadFile(path string) ([]string, error) {
	lines, err := readSourceFile(path, "")
	if err != nil {
		return nil, err
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out, nil
}

// readSourceFile opens path and reads its lines, decoding from charset first.
// The file is closed on every exit path.
func readSourceFile(path, charset string) ([]sourceLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpenFile, path, err)
	}
	defer f.Close()

	lines, err := readSource(f, charset)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// readSource splits r into retained lines.
func readSource(r io.Reader, charset string) ([]sourceLine, error) {
	r, err := encoding.NewReader(r, charset)
	if err != nil {
		return nil, err
	}

	var lines []sourceLine
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	number := 0
	for scanner.Scan() {
		number++
		text := strings.TrimSuffix(scanner.Text(), "\r")

		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, sourceLine{Number: number, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Tokenize splits a line on runs of whitespace.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// StartsWith reports whether line begins with prefix once leading whitespace
// is skipped. The prefix itself is compared byte for byte, so keyword
// constants carry their trailing space ("Ka " never matches "Ks 1 1 1").
func StartsWith(line, prefix string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t\v\f\r"), prefix)
}

// ParseFloat parses a whole token as a 32-bit float.
func ParseFloat(token string) (float32, error) {
	v, err := strconv.ParseFloat(token, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, token)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidNumber, token)
	}
	if v == 0 && nonZeroMantissa(token) {
		return 0, fmt.Errorf("%w: %q underflows float range", ErrInvalidNumber, token)
	}
	return float32(v), nil
}

// nonZeroMantissa reports whether a float token that strconv accepted has a
// non-zero digit before its exponent.
func nonZeroMantissa(token string) bool {
	lower := strings.ToLower(token)
	digits := "123456789"
	exp := "e"
	if strings.Contains(lower, "0x") {
		lower = strings.Replace(lower, "0x", "", 1)
		digits = "123456789abcdef"
		exp = "p"
	}
	if i := strings.Index(lower, exp); i >= 0 {
		lower = lower[:i]
	}
	return strings.ContainsAny(lower, digits)
}

// ParseInt parses a whole base-10 token that must fit in 32 bits.
func ParseInt(token string) (int, error) {
	v, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, token)
	}
	return int(v), nil
}

// FloatInRange reports whether min <= v <= max.
func FloatInRange(v, min, max float32) bool {
	return v >= min && v <= max
}

// IntInRange reports whether min <= v <= max.
func IntInRange(v, min, max int) bool {
	return v >= min && v <= max
}

// parseFloats parses every token in tokens.
func parseFloats(tokens []string) ([]float32, error) {
	values := make([]float32, len(tokens))
	for i, tok := range tokens {
		v, err := ParseFloat(tok)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
