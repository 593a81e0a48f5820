package models

import "time"

// MaintenanceWindow is a normalized maintenance time range. Start and End are
// UTC instants; display strings always carry the fixed UTC+0 suffix.
type MaintenanceWindow struct {
	StartUTC        time.Time `json:"startUtc"`
	EndUTC          time.Time `json:"endUtc"`
	DurationMinutes int       `json:"durationMinutes"`
}
