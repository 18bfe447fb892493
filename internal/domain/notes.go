package domain

import (
	"strings"
	"time"
)

// AppendNote appends a note for the given date, creating the date's list
// if needed. Text is trimmed; empty or whitespace-only text is rejected
// with ErrBlankText. Lists for other dates are never touched, and notes
// are never edited or removed once appended.
func (r *Record) AppendNote(dateStr, text string, now time.Time) (Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Note{}, ErrBlankText
	}
	note := Note{
		Text:    text,
		Created: now.UTC().Format(time.RFC3339),
	}
	if r.Notes == nil {
		r.Notes = make(map[string][]Note)
	}
	r.Notes[dateStr] = append(r.Notes[dateStr], note)
	return note, nil
}
