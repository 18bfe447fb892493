package domain

// Weekday is a canonical lowercase weekday name
type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

// Weekdays lists all weekdays in week order, Sunday first (index 0).
// Clients compute the same index from Date.getDay(), so the order here
// must stay Sunday-based.
var Weekdays = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// ScheduleItem is one entry in a weekday's recurring schedule.
// Time is free-form ("09:00", "morning", or empty); Text is never empty.
type ScheduleItem struct {
	Time string `json:"time"`
	Text string `json:"text"`
}

// WeeklySchedule maps every weekday to its ordered items.
// All 7 keys are present after NewRecord or Normalize.
type WeeklySchedule map[Weekday][]ScheduleItem

// Note is a free-text annotation for one calendar date.
// Created is the UTC creation time in RFC 3339.
type Note struct {
	Text    string `json:"text"`
	Created string `json:"created"`
}

// Record is the complete persisted state for one user.
// Username is the unique key and never changes after creation.
// CredentialHash is opaque to the core; it is produced and verified
// by the credential gateway and stored unchanged.
type Record struct {
	Username       string            `json:"username"`
	CredentialHash string            `json:"credential_hash"`
	WeeklySchedule WeeklySchedule    `json:"weekly_schedule"`
	Notes          map[string][]Note `json:"notes"`
}

// NewRecord builds a fresh record with all 7 weekdays mapped to empty
// item lists and an empty notes map.
func NewRecord(username, credentialHash string) *Record {
	r := &Record{
		Username:       username,
		CredentialHash: credentialHash,
		WeeklySchedule: make(WeeklySchedule, len(Weekdays)),
		Notes:          make(map[string][]Note),
	}
	for _, d := range Weekdays {
		r.WeeklySchedule[d] = []ScheduleItem{}
	}
	return r
}

// Normalize fills in anything a partial or legacy persisted record is
// missing: nil maps and absent weekday keys. Item order is untouched.
func (r *Record) Normalize() {
	if r.WeeklySchedule == nil {
		r.WeeklySchedule = make(WeeklySchedule, len(Weekdays))
	}
	for _, d := range Weekdays {
		if r.WeeklySchedule[d] == nil {
			r.WeeklySchedule[d] = []ScheduleItem{}
		}
	}
	if r.Notes == nil {
		r.Notes = make(map[string][]Note)
	}
}

// ItemsFor returns the schedule items for a weekday, never nil.
func (r *Record) ItemsFor(day Weekday) []ScheduleItem {
	if items, ok := r.WeeklySchedule[day]; ok && items != nil {
		return items
	}
	return []ScheduleItem{}
}

// NotesFor returns the notes for a date string, never nil.
func (r *Record) NotesFor(dateStr string) []Note {
	if notes, ok := r.Notes[dateStr]; ok && notes != nil {
		return notes
	}
	return []Note{}
}
