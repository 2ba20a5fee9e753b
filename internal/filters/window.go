// Package filters holds the optional criteria used to list reminders and
// interaction logs, and the date windows behind "upcoming" and
// "due this week".
package filters

import (
	"time"
)

// UpcomingSpan is the length of the rolling "upcoming" window.
const UpcomingSpan = 7 * 24 * time.Hour

// Clock returns the current instant. Windows are computed from it on every
// call and never cached.
type Clock func() time.Time

// Window is the closed interval [Start, End].
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// UTC returns the window with both bounds converted to UTC, which is how
// timestamps are stored.
func (w Window) UTC() Window {
	return Window{Start: w.Start.UTC(), End: w.End.UTC()}
}

// UpcomingWindow is the rolling window [now, now+7d].
func UpcomingWindow(now time.Time) Window {
	return Window{Start: now, End: now.Add(UpcomingSpan)}
}

// CalendarWeek is the Sunday-to-Saturday week containing now, in loc: from
// Sunday 00:00:00 through Saturday 23:59:59.999999999.
func CalendarWeek(now time.Time, loc *time.Location) Window {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)

	y, m, d := local.Date()
	sunday := time.Date(y, m, d-int(local.Weekday()), 0, 0, 0, 0, loc)
	nextSunday := time.Date(y, m, d-int(local.Weekday())+7, 0, 0, 0, 0, loc)

	return Window{Start: sunday, End: nextSunday.Add(-time.Nanosecond)}
}
