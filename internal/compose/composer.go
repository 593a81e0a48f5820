// Package compose assembles the final notification draft (subject + body)
// from normalized window data, rendered circuit entries and form fields.
// Composition is pure string assembly with no I/O.
package compose

import (
	"fmt"
	"strings"

	"github.com/maintgen/backend/internal/models"
	"github.com/maintgen/backend/internal/window"
)

// NoCircuitsPlaceholder appears in the body when no circuit rows survived
// parsing (or none were submitted).
const NoCircuitsPlaceholder = "No circuits specified"

// zeroAliases are override values operators type to mean "no downtime".
var zeroAliases = map[string]struct{}{
	"0": {}, "0m": {}, "0min": {}, "0 minutes": {}, "0mins": {},
	"0h": {}, "0 hr": {}, "0 hrs": {},
}

const bodyTemplate = `Dear Team,

As part of our ongoing efforts to improve the reliability and performance of our network, we will be carrying out planned maintenance as outlined below:

PoP/Devices/LINE:
%s

Maintenance Window (UTC+0):
Start: %s %s
End:   %s %s

Purpose of Maintenance:
%s

Affected Customers/Services:
%s

Expected Impact:
%s
`

// Compose builds the notification draft. The window may be nil when the
// operator has not yet filled the date fields; the draft then carries
// placeholders instead of computed values.
func Compose(fields models.NoticeFields, win *models.MaintenanceWindow, circuits []models.CircuitEntry) models.NotificationDraft {
	var startDate, startTime, endDate, endTime, calculated string
	if win != nil {
		startDate = window.FormatDate(win.StartUTC)
		startTime = window.FormatTime(win.StartUTC)
		endDate = window.FormatDate(win.EndUTC)
		endTime = window.FormatTime(win.EndUTC)
		calculated = window.HumanizeMinutes(win.DurationMinutes)
	}

	downtime := resolveDowntime(fields.OverrideDowntime, win)

	popSegment := joinNonEmpty(" / ", strings.TrimSpace(fields.PoP), strings.TrimSpace(fields.Equipment))
	if line := strings.TrimSpace(fields.Line); line != "" {
		popSegment += " / " + line
	}

	subject := buildSubject(fields.JiraRef, popSegment, startDate, endDate, startTime, endTime)

	body := fmt.Sprintf(bodyTemplate,
		popSegment,
		startDate, startTime,
		endDate, endTime,
		purposeBlock(fields.PurposePresets, fields.PurposeFree),
		circuitBlock(circuits),
		impactBlock(downtime),
	)

	return models.NotificationDraft{
		Subject:            subject,
		Body:               body,
		CalculatedDowntime: calculated,
	}
}

// buildSubject renders the fixed subject template with bracketed segments:
// Planned Network Maintenance – [Jira] [PoP / Equipment] – [dates, times, UTC+0]
func buildSubject(jiraRef, segment, startDate, endDate, startTime, endTime string) string {
	when := joinNonEmpty(", ",
		joinNonEmpty(" - ", startDate, endDate),
		joinNonEmpty(" - ", startTime, endTime),
		"UTC+0",
	)

	return fmt.Sprintf("Planned Network Maintenance – [%s] [%s] – [%s]",
		strings.TrimSpace(jiraRef), segment, when)
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// resolveDowntime picks the downtime string: a zero-alias override collapses
// to "0", any other override is used verbatim, otherwise the computed
// duration, or "[specify]" when no window exists.
func resolveDowntime(override string, win *models.MaintenanceWindow) string {
	trimmed := strings.TrimSpace(override)
	if _, zero := zeroAliases[strings.ToLower(trimmed)]; zero {
		return "0"
	}
	if trimmed != "" {
		return trimmed
	}
	if win != nil {
		return window.HumanizeMinutes(win.DurationMinutes)
	}
	return "[specify]"
}

func impactBlock(downtime string) string {
	if _, zero := zeroAliases[strings.ToLower(downtime)]; zero {
		return window.NoInterruptionSentence
	}
	return "Downtime: " + downtime
}

func purposeBlock(presets []string, free string) string {
	var purposes []string
	for _, p := range presets {
		if p = strings.TrimSpace(p); p != "" {
			purposes = append(purposes, p)
		}
	}
	if free = strings.TrimSpace(free); free != "" {
		purposes = append(purposes, free)
	}
	if len(purposes) == 0 {
		return "[Enter purpose here]"
	}
	return strings.Join(purposes, "; ")
}

func circuitBlock(circuits []models.CircuitEntry) string {
	if len(circuits) == 0 {
		return NoCircuitsPlaceholder
	}
	lines := make([]string, 0, len(circuits))
	for _, c := range circuits {
		lines = append(lines, c.Rendered)
	}
	return strings.Join(lines, "\n")
}
