package models

import "time"

// Slot represents one bookable interval in a doctor's schedule. A slot is
// either a recurring weekly template (Day set, Date empty) or a one-off slot
// for a specific calendar date (Date set, Day recorded for display only).
type Slot struct {
	ID          string    `bson:"id" json:"id"`
	DoctorID    string    `bson:"doctorId" json:"doctorId"`
	Day         string    `bson:"day,omitempty" json:"day,omitempty"`   // weekday name, e.g. "Monday"
	Date        string    `bson:"date,omitempty" json:"date,omitempty"` // "2006-01-02" for one-off slots
	StartTime   string    `bson:"startTime" json:"startTime"`           // "HH:MM", 24h
	EndTime     string    `bson:"endTime" json:"endTime"`               // "HH:MM", 24h
	Duration    int       `bson:"duration" json:"duration"`             // minutes, EndTime - StartTime
	IsAvailable bool      `bson:"isAvailable" json:"isAvailable"`
	IsAdminOnly bool      `bson:"isAdminOnly" json:"isAdminOnly"`
	BookedBy    string    `bson:"bookedBy,omitempty" json:"bookedBy,omitempty"` // appointment ID when consumed
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DayKeyKind tags which calendar dimension a slot is keyed by.
type DayKeyKind int

const (
	// KeyWeekday marks a recurring weekly template keyed by weekday name.
	KeyWeekday DayKeyKind = iota
	// KeyDate marks a one-off slot keyed by a concrete calendar date.
	KeyDate
)

// DayKey identifies the schedule bucket a slot belongs to: a weekday for
// recurring templates, a concrete date for one-off slots. Conflict checks
// compare slots within the same key only.
type DayKey struct {
	Kind    DayKeyKind `json:"kind"`
	Weekday string     `json:"weekday,omitempty"`
	Date    string     `json:"date,omitempty"`
}

// WeekdayKey builds a key for a recurring weekly template.
func WeekdayKey(weekday string) DayKey {
	return DayKey{Kind: KeyWeekday, Weekday: weekday}
}

// DateKey builds a key for a date-specific slot.
func DateKey(date string) DayKey {
	return DayKey{Kind: KeyDate, Date: date}
}

// Key derives the schedule bucket for this slot. Date governs matching when
// present; Day is only display metadata on date-specific slots.
func (s Slot) Key() DayKey {
	if s.Date != "" {
		return DateKey(s.Date)
	}
	return WeekdayKey(s.Day)
}

// String renders the key the way it is shown to the front desk.
func (k DayKey) String() string {
	if k.Kind == KeyDate {
		return k.Date
	}
	return k.Weekday
}

// Role identifies the caller of availability resolution.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// BulkAction enumerates the supported bulk slot mutations.
type BulkAction string

const (
	BulkEnable       BulkAction = "enable"
	BulkDisable      BulkAction = "disable"
	BulkSetAdminOnly BulkAction = "setAdminOnly"
	BulkUnsetAdmin   BulkAction = "unsetAdminOnly"
	BulkDelete       BulkAction = "delete"
)

// BulkResult reports the outcome of one id within a bulk mutation. Failures
// never abort the remaining ids.
type BulkResult struct {
	SlotID string `json:"slotId"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}
