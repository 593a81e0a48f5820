// Package models contains domain types for the Maintenance Notice Generator.
package models

// Category represents the circuit category code carried in the third TSV column.
type Category string

const (
	CategoryWL    Category = "WL"
	CategoryWLP   Category = "WLP"
	CategoryOC    Category = "OC"
	Category3POC  Category = "3POC"
	CategoryOther Category = "OTHER"
)

// CircuitRecord is one parsed row of circuit data. Immutable once built.
type CircuitRecord struct {
	Identifier string   `json:"identifier"`
	Label      string   `json:"label"`
	Category   Category `json:"category"`
}

// CircuitEntry is a rendering decision for a circuit: the display string that
// goes into the notice body, plus the record it was derived from.
type CircuitEntry struct {
	Rendered string   `json:"rendered" msgpack:"rendered"`
	CID      string   `json:"cid" msgpack:"cid"`
	Category Category `json:"category" msgpack:"category"`
}
