package account

import (
	"context"
	"time"

	"github.com/dayplan/weekly-planner/internal/domain"
	"github.com/dayplan/weekly-planner/internal/port"
)

// DayView is everything that happens on one calendar date: the recurring
// items for that date's weekday plus the notes pinned to the exact date.
type DayView struct {
	Date    string                `json:"date"`
	Weekday domain.Weekday        `json:"weekday"`
	Items   []domain.ScheduleItem `json:"items"`
	Notes   []domain.Note         `json:"notes"`
}

// Service orchestrates the record store, schedule parsing and the note
// ledger. Identity is always an explicit username; sessions and
// credential checks live with the caller.
type Service struct {
	store port.RecordStore
	now   func() time.Time
}

// New creates a Service. nowFn may be nil, in which case time.Now is used;
// tests inject a fixed clock.
func New(store port.RecordStore, nowFn func() time.Time) *Service {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Service{store: store, now: nowFn}
}

// Register creates a record for a new username with all 7 weekdays empty.
// credentialHash is stored opaque. Fails with domain.ErrDuplicateUser if
// the username is taken; the check runs inside the store's critical
// section, so two racing registrations cannot both win.
func (s *Service) Register(ctx context.Context, username, credentialHash string) (*domain.Record, error) {
	rec := domain.NewRecord(username, credentialHash)
	if err := s.store.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Find returns the record for username, or domain.ErrRecordNotFound.
func (s *Service) Find(ctx context.Context, username string) (*domain.Record, error) {
	rec := s.store.Find(ctx, username)
	if rec == nil {
		return nil, domain.ErrRecordNotFound
	}
	return rec, nil
}

// SetWeeklySchedule parses raw text for each weekday and replaces the
// whole weekly schedule in one write. Weekdays missing from raw get an
// empty list; callers submit all 7 days each time. Notes are untouched:
// the replacement runs inside the store's critical section, so a racing
// AddNote for the same user cannot be lost.
func (s *Service) SetWeeklySchedule(ctx context.Context, username string, raw map[domain.Weekday]string) (*domain.Record, error) {
	weekly := make(domain.WeeklySchedule, len(domain.Weekdays))
	for _, d := range domain.Weekdays {
		weekly[d] = domain.ParseScheduleText(raw[d])
	}
	return s.store.Update(ctx, username, func(rec *domain.Record) error {
		rec.WeeklySchedule = weekly
		return nil
	})
}

// ResolveDay answers "what happens on this date" for a user: the
// weekday's recurring items plus the notes created for that exact date.
// Fails with domain.ErrInvalidDate on a malformed date string.
func (s *Service) ResolveDay(ctx context.Context, username, dateStr string) (*DayView, error) {
	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}
	day := domain.WeekdayOf(date)
	view := &DayView{
		Date:    dateStr,
		Weekday: day,
		Items:   []domain.ScheduleItem{},
		Notes:   []domain.Note{},
	}
	if rec := s.store.Find(ctx, username); rec != nil {
		view.Items = rec.ItemsFor(day)
		view.Notes = rec.NotesFor(dateStr)
	}
	return view, nil
}

// AddNote appends a note for the given date and persists the record.
// An empty dateStr defaults to today (server clock, UTC). Blank text
// fails with domain.ErrBlankText and nothing is persisted.
func (s *Service) AddNote(ctx context.Context, username, dateStr, text string) (domain.Note, error) {
	if dateStr == "" {
		dateStr = s.now().UTC().Format(domain.DateLayout)
	} else if _, err := domain.ParseDate(dateStr); err != nil {
		return domain.Note{}, err
	}
	var note domain.Note
	_, err := s.store.Update(ctx, username, func(rec *domain.Record) error {
		var appendErr error
		note, appendErr = rec.AppendNote(dateStr, text, s.now())
		return appendErr
	})
	if err != nil {
		return domain.Note{}, err
	}
	return note, nil
}
