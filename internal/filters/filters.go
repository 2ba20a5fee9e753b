package filters

import (
	"fmt"
	"strconv"
)

// InteractionFilter narrows an interaction listing. Empty fields are ignored;
// set fields are combined with AND.
type InteractionFilter struct {
	ClientID  string
	ProjectID string
}

// ReminderFilter narrows a reminder listing. Empty fields are ignored; set
// fields are combined with AND.
type ReminderFilter struct {
	ClientID  string
	ProjectID string
	Completed *bool
	// Upcoming restricts due dates to UpcomingWindow of the listing time.
	Upcoming bool
}

// ParseUpcoming only treats the literal "true" as enabling the filter.
func ParseUpcoming(raw string) bool {
	return raw == "true"
}

// ParseCompleted returns nil when raw is empty.
func ParseCompleted(raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}

	switch raw {
	case "true", "false":
		v, _ := strconv.ParseBool(raw)
		return &v, nil
	default:
		return nil, fmt.Errorf("completed must be true or false, got %q", raw)
	}
}
