package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	errInvalidBudget = errors.New("Budget must be a valid number.")
	errInvalidDate   = errors.New("invalid date")
)

// Accepted timestamp layouts. Layouts without a zone are read in the
// configured location.
var timeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseBudget accepts a JSON number or a numeric string. The result is
// finite and not negative.
func parseBudget(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return 0, errInvalidBudget
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, errInvalidBudget
		}

		v, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, errInvalidBudget
		}
	}

	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, errInvalidBudget
	}
	return v, nil
}

// parseTime accepts RFC 3339 or one of timeLayouts and returns UTC.
func parseTime(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errInvalidDate
	}
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, errInvalidDate
}

// parseDate keeps only the calendar day of raw as seen in loc.
func parseDate(raw string, loc *time.Location) (time.Time, error) {
	t, err := parseTime(raw, loc)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}

	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// nullableString treats blank text as absent.
func nullableString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
