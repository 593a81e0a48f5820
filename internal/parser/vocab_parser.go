package parser

import (
	"io"
	"os"

	"github.com/maintgen/backend/internal/models"
	"gopkg.in/yaml.v3"
)

// ParseVocabulary parses a YAML vocabulary file (header keywords, noise
// tokens, noise prefixes, purpose presets). Missing keys fall back to the
// built-in defaults so a partial file only overrides what it names.
func ParseVocabulary(filePath string) (*models.Vocabulary, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseVocabularyFromReader(file)
}

// ParseVocabularyFromReader parses a vocabulary from an io.Reader.
func ParseVocabularyFromReader(r io.Reader) (*models.Vocabulary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var vocab models.Vocabulary
	if err := yaml.Unmarshal(data, &vocab); err != nil {
		return nil, err
	}

	defaults := models.DefaultVocabulary()
	if len(vocab.HeaderKeywords) == 0 {
		vocab.HeaderKeywords = defaults.HeaderKeywords
	}
	if len(vocab.NoiseTokens) == 0 {
		vocab.NoiseTokens = defaults.NoiseTokens
	}
	if len(vocab.NoisePrefixes) == 0 {
		vocab.NoisePrefixes = defaults.NoisePrefixes
	}
	if len(vocab.PurposePresets) == 0 {
		vocab.PurposePresets = defaults.PurposePresets
	}

	return &vocab, nil
}
