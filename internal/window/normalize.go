// Package window normalizes operator-entered maintenance times into UTC
// maintenance windows and computes downtime durations.
package window

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/maintgen/backend/internal/models"
)

// ErrInvalidRange is returned when the maintenance end precedes its start.
var ErrInvalidRange = errors.New("maintenance end precedes start")

// NoInterruptionSentence is rendered instead of a numeric duration when the
// computed downtime is zero. Policy substitution, not an error.
const NoInterruptionSentence = "No service interruption is anticipated."

const (
	dateLayout = "02/01/2006"
	timeLayout = "15:04"
)

// Normalize converts a local start/end pair plus a UTC offset into a
// maintenance window expressed in UTC. Cross-midnight windows are expected to
// carry differing date components; a negative duration is a hard failure.
func Normalize(startLocal, endLocal time.Time, offsetMinutes int) (*models.MaintenanceWindow, error) {
	offset := time.Duration(offsetMinutes) * time.Minute
	startUTC := startLocal.Add(-offset).UTC()
	endUTC := endLocal.Add(-offset).UTC()

	duration := endUTC.Sub(startUTC)
	if duration < 0 {
		return nil, fmt.Errorf("%w: start=%s end=%s", ErrInvalidRange,
			startUTC.Format(time.RFC3339), endUTC.Format(time.RFC3339))
	}

	return &models.MaintenanceWindow{
		StartUTC:        startUTC,
		EndUTC:          endUTC,
		DurationMinutes: int(duration / time.Minute),
	}, nil
}

// ParseLocal parses the form's separate date and time fields. Dates are
// day-first ("2/7/2026" or "02/07/26", two-digit years are 2000-based);
// times are 24h "HH:MM".
func ParseLocal(dateStr, timeStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	timeStr = strings.TrimSpace(timeStr)
	if dateStr == "" || timeStr == "" {
		return time.Time{}, fmt.Errorf("date and time are required")
	}

	parts := strings.Split(dateStr, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q: expected d/m/y", dateStr)
	}
	if len(parts[2]) == 2 {
		parts[2] = "20" + parts[2]
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day in %q", dateStr)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month in %q", dateStr)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year in %q", dateStr)
	}

	t, err := time.Parse(timeLayout, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected HH:MM", timeStr)
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid date %q", dateStr)
	}

	return time.Date(year, time.Month(month), day, t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

// ParseOffset converts a UTC offset string to minutes. Accepted forms:
// "+3", "-2", "5.5", "+03:00", "UTC+3", "utc -02:30". Empty or unparseable
// input falls back to zero; operators paste offsets in every shape
// imaginable and a wrong guess here only shifts the displayed window.
func ParseOffset(raw string) int {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(s, "UTC"), "utc"))
	if s == "" {
		return 0
	}

	sign := 1
	switch s[0] {
	case '-':
		sign = -1
		s = s[1:]
	case '+':
		s = s[1:]
	}
	s = strings.TrimSpace(s)

	if hh, mm, ok := strings.Cut(s, ":"); ok {
		h, err1 := strconv.Atoi(hh)
		m, err2 := strconv.Atoi(mm)
		if err1 != nil || err2 != nil {
			return 0
		}
		return sign * (h*60 + m)
	}

	if strings.Contains(s, ".") {
		val, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		h := int(val)
		m := int((val-float64(h))*60 + 0.5)
		return sign * (h*60 + m)
	}

	h, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return sign * h * 60
}

// FormatDate renders a window instant's date for display.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// FormatTime renders a window instant's clock time for display.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timeLayout)
}

// HumanizeMinutes renders a duration as "2h 30m", "2h" or "45m".
func HumanizeMinutes(mins int) string {
	if mins < 0 {
		mins = 0
	}
	h, m := mins/60, mins%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// DowntimeSentence renders the human-readable downtime for a window: the
// humanized duration, or the fixed no-interruption sentence when zero.
func DowntimeSentence(w *models.MaintenanceWindow) string {
	if w.DurationMinutes == 0 {
		return NoInterruptionSentence
	}
	return "Downtime: " + HumanizeMinutes(w.DurationMinutes)
}
