package models

// Vocabulary holds the configurable token sets used during parsing and
// composition. Loaded from the YAML file named in the config, when set.
type Vocabulary struct {
	// HeaderKeywords are compared case-insensitively against whole fields of
	// a block's first line to decide whether it is a header row.
	HeaderKeywords []string `yaml:"header_keywords" json:"headerKeywords"`

	// NoiseTokens are identifier cell values that are never real CIDs
	// (spreadsheet artifacts like "ENABLED" column values).
	NoiseTokens []string `yaml:"noise_tokens" json:"noiseTokens"`

	// NoisePrefixes are CID prefixes for placeholder/test circuits that must
	// never appear in a notice.
	NoisePrefixes []string `yaml:"noise_prefixes" json:"noisePrefixes"`

	// PurposePresets is the preset purpose enumeration offered by the form.
	PurposePresets []string `yaml:"purpose_presets" json:"purposePresets"`
}

// DefaultVocabulary returns the built-in vocabulary used when no YAML file is
// configured.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		HeaderKeywords: []string{"cid", "label", "type", "category"},
		NoiseTokens:    []string{"ENABLED", "DISABLED", "CID", "LABEL"},
		NoisePrefixes:  []string{"OC-900001"},
		PurposePresets: []string{
			"Routine Maintenance",
			"Emergency Maintenance",
			"Upgrade",
			"Capacity Expansion",
		},
	}
}
