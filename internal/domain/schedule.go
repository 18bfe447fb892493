package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates (ISO, date only).
const DateLayout = "2006-01-02"

// scheduleSeparator splits a schedule line into time and text parts.
const scheduleSeparator = " - "

// WeekdayOf maps a calendar date to its weekday name. Indexing is
// Sunday=0 through Saturday=6, matching JavaScript's Date.getDay(), so
// server and browser always agree on which bucket a date falls in.
func WeekdayOf(t time.Time) Weekday {
	return Weekdays[int(t.Weekday())]
}

// ParseDate parses an ISO YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// ParseScheduleText turns raw multiline text into ordered schedule items.
// Each non-blank line becomes one item; a " - " separator splits it into
// time and text, otherwise the whole line is text with no time. Line
// order is preserved, blank lines are dropped.
func ParseScheduleText(raw string) []ScheduleItem {
	items := []ScheduleItem{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if t, text, ok := strings.Cut(line, scheduleSeparator); ok {
			items = append(items, ScheduleItem{Time: strings.TrimSpace(t), Text: strings.TrimSpace(text)})
		} else {
			items = append(items, ScheduleItem{Time: "", Text: line})
		}
	}
	return items
}
