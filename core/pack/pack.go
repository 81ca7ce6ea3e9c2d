// Package pack serializes lists and registry values into the single-string forms
// that script arguments carry.
package pack

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/opal-lang/bakery/core/escape"
)

// MultiStringDelimiter separates elements of a packed REG_MULTI_SZ value.
// Unescape does not recognise it, so it survives argument preprocessing.
const MultiStringDelimiter = "#$z"

// multiBinarySeparator is the UTF-16 NUL terminator between packed strings.
const multiBinarySeparator = "00,00"

// RegBinary formats bin as uppercase two-digit hex pairs joined by ',' or, when
// escaped is set, by the #$c token.
func RegBinary(bin []byte, escaped bool) string {
	sep := ","
	if escaped {
		sep = escape.Comma
	}

	var b strings.Builder
	b.Grow(len(bin) * (2 + len(sep)))
	for i, c := range bin {
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprintf(&b, "%02X", c)
	}
	return b.String()
}

// JoinRegBinary joins already packed hex pair strings.
func JoinRegBinary(parts []string, escaped bool) string {
	sep := ","
	if escaped {
		sep = escape.Comma
	}
	return strings.Join(parts, sep)
}

// UnpackRegBinary parses hex pairs separated by ',' or #$c back into bytes.
func UnpackRegBinary(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	return UnpackRegBinaryParts(strings.Split(strings.ReplaceAll(s, escape.Comma, ","), ","))
}

// UnpackRegBinaryParts parses one hex byte per element.
func UnpackRegBinaryParts(parts []string) ([]byte, error) {
	bin := make([]byte, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) == 0 || len(p) > 2 {
			return nil, fmt.Errorf("invalid hex byte %q at index %d", p, i)
		}
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid hex byte %q at index %d: %w", p, i, err)
		}
		bin = append(bin, byte(v))
	}
	return bin, nil
}

// RegMultiBinary encodes each string as UTF-16LE hex pairs, separating
// strings with a 00,00 NUL terminator. Used to write REG_MULTI_SZ data as
// binary. An empty string adds no pairs of its own, so the output never holds
// an empty element.
func RegMultiBinary(ss []string) (string, error) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()

	parts := make([]string, 0, len(ss)*2)
	for i, s := range ss {
		bin, err := enc.Bytes([]byte(s))
		if err != nil {
			return "", fmt.Errorf("encode string %d as UTF-16LE: %w", i, err)
		}
		if i > 0 {
			parts = append(parts, multiBinarySeparator)
		}
		if len(bin) > 0 {
			parts = append(parts, RegBinary(bin, false))
		}
	}
	return strings.Join(parts, ","), nil
}

// RegMultiString joins strings with the #$z delimiter.
func RegMultiString(ss []string) string {
	return strings.Join(ss, MultiStringDelimiter)
}

// UnpackRegMultiString splits s on the #$z delimiter.
func UnpackRegMultiString(s string) []string {
	return strings.Split(s, MultiStringDelimiter)
}

// ListStr joins list with delim.
func ListStr(list []string, delim string) string {
	return strings.Join(list, delim)
}

// UnpackListStr splits s on every non-overlapping occurrence of delim, scanning
// left to right. Leading, trailing and consecutive delimiters yield empty
// elements. An empty delim returns s as the only element.
func UnpackListStr(s, delim string) []string {
	if delim == "" {
		return []string{s}
	}
	return strings.Split(s, delim)
}
