package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseVocabulary(t *testing.T) {
	content := `
header_keywords:
  - cid
  - label
  - circuit_type

noise_tokens:
  - ENABLED
  - N/A

noise_prefixes:
  - OC-900001
  - TEST-

purpose_presets:
  - Routine Maintenance
  - Fiber Relocation
`
	tmpDir, err := os.MkdirTemp("", "vocab_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "vocab.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	vocab, err := ParseVocabulary(path)
	if err != nil {
		t.Fatalf("ParseVocabulary failed: %v", err)
	}

	if len(vocab.HeaderKeywords) != 3 {
		t.Errorf("expected 3 header keywords, got %d", len(vocab.HeaderKeywords))
	}
	if vocab.HeaderKeywords[2] != "circuit_type" {
		t.Errorf("expected circuit_type keyword, got %s", vocab.HeaderKeywords[2])
	}
	if len(vocab.NoisePrefixes) != 2 {
		t.Errorf("expected 2 noise prefixes, got %d", len(vocab.NoisePrefixes))
	}
	if len(vocab.PurposePresets) != 2 {
		t.Errorf("expected 2 purpose presets, got %d", len(vocab.PurposePresets))
	}
	if vocab.PurposePresets[1] != "Fiber Relocation" {
		t.Errorf("expected Fiber Relocation preset, got %s", vocab.PurposePresets[1])
	}
}

func TestParseVocabularyPartialFileKeepsDefaults(t *testing.T) {
	yaml := `
header_keywords:
  - kanal
`
	vocab, err := ParseVocabularyFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("ParseVocabularyFromReader failed: %v", err)
	}

	if len(vocab.HeaderKeywords) != 1 || vocab.HeaderKeywords[0] != "kanal" {
		t.Errorf("expected overridden header keywords, got %v", vocab.HeaderKeywords)
	}
	// Unset sections fall back to the built-in defaults
	if len(vocab.NoisePrefixes) == 0 {
		t.Error("expected default noise prefixes")
	}
	if len(vocab.PurposePresets) == 0 {
		t.Error("expected default purpose presets")
	}
}

func TestParseVocabularyInvalidYAML(t *testing.T) {
	if _, err := ParseVocabularyFromReader(strings.NewReader("::: not yaml")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestCustomVocabularyDrivesHeaderDetection(t *testing.T) {
	vocab, err := ParseVocabularyFromReader(strings.NewReader("header_keywords: [kanal, bezeichnung]"))
	if err != nil {
		t.Fatal(err)
	}

	a := NewAggregator(NewClassifier(vocab, false))
	block := "Kanal\tBezeichnung\tTyp\nWL-1\tA\tWL\n"
	entries := a.Aggregate([]string{block})
	if len(entries) != 1 || entries[0].Rendered != "WL-1" {
		t.Fatalf("expected custom header row to be skipped, got %v", entries)
	}
}
