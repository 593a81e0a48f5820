package parser

import (
	"strings"

	"github.com/maintgen/backend/internal/models"
)

// minColumns is the number of non-empty columns a row needs to be usable:
// identifier, label (may be empty), category token.
const minColumns = 3

// Aggregator parses tab-separated circuit lists. Each submission may contain
// several blocks (one per pasted file); blocks are merged cumulatively in the
// caller-supplied order with first-occurrence-wins deduplication by CID.
type Aggregator struct {
	classifier *Classifier
	vocab      *models.Vocabulary
}

// NewAggregator creates an aggregator backed by the given classifier.
func NewAggregator(classifier *Classifier) *Aggregator {
	return &Aggregator{classifier: classifier, vocab: classifier.vocab}
}

// Aggregate parses every block and returns the ordered, deduplicated list of
// rendered circuit entries. Malformed rows and blank lines are dropped
// silently; the tool favors best-effort extraction over rejecting a whole
// submission for one bad line.
func (a *Aggregator) Aggregate(blocks []string) []models.CircuitEntry {
	entries := make([]models.CircuitEntry, 0)
	seen := make(map[string]struct{})

	for _, block := range blocks {
		a.aggregateBlock(block, seen, &entries)
	}

	return entries
}

func (a *Aggregator) aggregateBlock(block string, seen map[string]struct{}, out *[]models.CircuitEntry) {
	lines := splitLines(block)

	first := true
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			// Commented header lines are recovered; other comments dropped.
			stripped := strings.TrimSpace(strings.TrimLeft(line, "#"))
			if !a.isHeaderLine(splitFields(stripped)) {
				continue
			}
			line = stripped
		}

		fields := splitFields(line)

		if first {
			first = false
			if a.isHeaderLine(fields) {
				continue
			}
		}

		// Identifier and category are required; the label column may be empty.
		if len(fields) < minColumns || fields[0] == "" || fields[2] == "" {
			continue
		}

		identifier, label, category := fields[0], fields[1], fields[2]

		key := strings.ToUpper(strings.TrimSpace(identifier))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if entry, ok := a.classifier.Classify(identifier, label, category); ok {
			*out = append(*out, entry)
		}
	}
}

// isHeaderLine reports whether a line looks like a column header: any field,
// trimmed and lowercased, exactly matches a configured header keyword.
func (a *Aggregator) isHeaderLine(fields []string) bool {
	for _, f := range fields {
		low := strings.ToLower(strings.TrimSpace(f))
		for _, kw := range a.vocab.HeaderKeywords {
			if low == strings.ToLower(kw) {
				return true
			}
		}
	}
	return false
}

// splitLines normalizes CRLF/CR line endings and splits on newlines.
func splitLines(block string) []string {
	block = strings.ReplaceAll(block, "\r\n", "\n")
	block = strings.ReplaceAll(block, "\r", "\n")
	return strings.Split(block, "\n")
}

func splitFields(line string) []string {
	fields := strings.Split(line, "\t")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
