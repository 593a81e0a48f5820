package parser

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// DecodeText converts uploaded file bytes to a string. Circuit lists are
// exported from spreadsheets on operator workstations, so UTF-8 is tried
// first, then strict Windows-1251, then Latin-1 as a lossy last resort.
func DecodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	if s, err := encoding.Strict(charmap.Windows1251).NewDecoder().String(string(data)); err == nil {
		return s
	}

	// Latin-1 decoding cannot fail: every byte maps to a code point.
	s, _ := charmap.ISO8859_1.NewDecoder().String(string(data))
	return s
}
