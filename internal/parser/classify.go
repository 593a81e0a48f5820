// Package parser implements the circuit-list parsing engine: lenient TSV
// aggregation across multiple pasted or uploaded blocks, header detection,
// and per-category classification of circuit identifiers.
package parser

import (
	"fmt"
	"strings"

	"github.com/maintgen/backend/internal/models"
)

// Classifier decides whether a parsed circuit row is included in a notice and
// how it is rendered. Classification is a pure function of its inputs.
type Classifier struct {
	vocab        *models.Vocabulary
	includeOther bool
}

// NewClassifier creates a classifier using the given vocabulary. A nil
// vocabulary falls back to the built-in defaults.
func NewClassifier(vocab *models.Vocabulary, includeOther bool) *Classifier {
	if vocab == nil {
		vocab = models.DefaultVocabulary()
	}
	return &Classifier{vocab: vocab, includeOther: includeOther}
}

// NormalizeCategory maps a raw category token to the closed category
// enumeration. Unrecognized tokens fail soft to CategoryOther.
func NormalizeCategory(raw string) models.Category {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "WL":
		return models.CategoryWL
	case "WLP":
		return models.CategoryWLP
	case "OC":
		return models.CategoryOC
	case "3POC":
		return models.Category3POC
	default:
		return models.CategoryOther
	}
}

// Classify applies the rendering rules to one row. The second return value is
// false when the row is excluded: placeholder/test circuits, noise tokens, or
// an unrecognized category when OTHER inclusion is off.
//
// WL and WLP circuits render as the bare identifier; the label is ignored
// even when present. OC and 3POC circuits render as "identifier (label)" when
// a label exists.
func (cl *Classifier) Classify(identifier, label, rawCategory string) (models.CircuitEntry, bool) {
	id := strings.TrimSpace(identifier)
	if id == "" {
		return models.CircuitEntry{}, false
	}

	upper := strings.ToUpper(id)
	for _, tok := range cl.vocab.NoiseTokens {
		if upper == strings.ToUpper(tok) {
			return models.CircuitEntry{}, false
		}
	}
	for _, prefix := range cl.vocab.NoisePrefixes {
		if strings.HasPrefix(upper, strings.ToUpper(prefix)) {
			return models.CircuitEntry{}, false
		}
	}

	cat := NormalizeCategory(rawCategory)
	if cat == models.CategoryOther && !cl.includeOther {
		return models.CircuitEntry{}, false
	}

	label = strings.TrimSpace(label)
	rendered := id
	switch cat {
	case models.CategoryWL, models.CategoryWLP:
		// label intentionally ignored
	default:
		if label != "" {
			rendered = fmt.Sprintf("%s (%s)", id, label)
		}
	}

	return models.CircuitEntry{
		Rendered: rendered,
		CID:      id,
		Category: cat,
	}, true
}
