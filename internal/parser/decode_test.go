package parser

import (
	"strings"
	"testing"
)

func TestDecodeTextUTF8(t *testing.T) {
	in := "WL-1\tКанал A\tWL"
	if got := DecodeText([]byte(in)); got != in {
		t.Errorf("expected UTF-8 passthrough, got %q", got)
	}
}

func TestDecodeTextWindows1251(t *testing.T) {
	// "Тест" in Windows-1251
	data := []byte{0xD2, 0xE5, 0xF1, 0xF2}
	got := DecodeText(data)
	if got != "Тест" {
		t.Errorf("expected cp1251 decode to Тест, got %q", got)
	}
}

func TestDecodeTextLatin1Fallback(t *testing.T) {
	// 0x98 is unmapped in Windows-1251, forcing the Latin-1 fallback.
	data := []byte{'W', 'L', 0x98}
	got := DecodeText(data)
	if !strings.HasPrefix(got, "WL") {
		t.Errorf("expected lossy Latin-1 decode to keep ASCII, got %q", got)
	}
	if strings.ContainsRune(got, 0xFFFD) {
		t.Errorf("latin-1 decode should not produce replacement runes, got %q", got)
	}
}
