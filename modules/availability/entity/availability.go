package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"recruit-api/core/entity"

	"github.com/google/uuid"
)

// Priority ranks a free slot for schedulers.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

const (
	SlotTypeAvailable  = "available"
	EventTypeInterview = "interview"
)

// FreeSlot is a persisted free interval. EndTime - StartTime always equals
// DurationMinutes.
type FreeSlot struct {
	ID              string          `json:"id"`
	StartTime       time.Time       `json:"start_time"`
	EndTime         time.Time       `json:"end_time"`
	DurationMinutes int             `json:"duration_minutes"`
	SlotType        string          `json:"slot_type"`
	Priority        Priority        `json:"priority"`
	Date            string          `json:"date"`
	Preferences     json.RawMessage `json:"preferences,omitempty"`
	Constraints     json.RawMessage `json:"constraints,omitempty"`
}

// OccupiedSlot is externally booked time. It is never created or removed by
// the editor.
type OccupiedSlot struct {
	ID         string    `json:"id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	EventType  string    `json:"event_type"`
	EventTitle string    `json:"event_title"`
	CanBeMoved bool      `json:"can_be_moved"`
}

// BlackoutDate is an inclusive range of whole days (YYYY-MM-DD).
type BlackoutDate struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason,omitempty"`
}

// Covers reports whether date (YYYY-MM-DD) falls inside the range.
func (b BlackoutDate) Covers(date string) bool {
	return b.StartDate <= date && date <= b.EndDate
}

// HourRange is a local time-of-day range in "HH:MM".
type HourRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SchedulingRules holds per-user scheduling preferences.
type SchedulingRules struct {
	BufferBeforeMinutes int    `json:"buffer_before_minutes"`
	BufferAfterMinutes  int    `json:"buffer_after_minutes"`
	MaxInterviewsPerDay int    `json:"max_interviews_per_day"`
	Timezone            string `json:"timezone,omitempty"`
}

type (
	FreeSlots     []FreeSlot
	OccupiedSlots []OccupiedSlot
	BlackoutDates []BlackoutDate
	// WeeklyWorkingHours maps a lower-case weekday name ("monday") to its ranges.
	WeeklyWorkingHours map[string][]HourRange
)

// Availability is the single availability record of a user.
type Availability struct {
	entity.BaseEntity
	UserID        uuid.UUID          `db:"user_id" json:"user_id"`
	FreeSlots     FreeSlots          `db:"free_slots" json:"free_slots"`
	OccupiedSlots OccupiedSlots      `db:"occupied_slots" json:"occupied_slots"`
	WorkingHours  WeeklyWorkingHours `db:"working_hours" json:"working_hours"`
	BlackoutDates BlackoutDates      `db:"blackout_dates" json:"blackout_dates"`
	Rules         SchedulingRules    `db:"rules" json:"rules"`
}

// NewAvailability returns an empty record for a user with no availability yet.
func NewAvailability(userID uuid.UUID) *Availability {
	return &Availability{
		UserID:        userID,
		FreeSlots:     FreeSlots{},
		OccupiedSlots: OccupiedSlots{},
		WorkingHours:  WeeklyWorkingHours{},
		BlackoutDates: BlackoutDates{},
	}
}

// JSONB columns

func (s FreeSlots) Value() (driver.Value, error) { return jsonValue(s, "[]") }

func (s *FreeSlots) Scan(src any) error { return jsonScan(src, s) }

func (s OccupiedSlots) Value() (driver.Value, error) { return jsonValue(s, "[]") }

func (s *OccupiedSlots) Scan(src any) error { return jsonScan(src, s) }

func (s BlackoutDates) Value() (driver.Value, error) { return jsonValue(s, "[]") }

func (s *BlackoutDates) Scan(src any) error { return jsonScan(src, s) }

func (w WeeklyWorkingHours) Value() (driver.Value, error) { return jsonValue(w, "{}") }

func (w *WeeklyWorkingHours) Scan(src any) error { return jsonScan(src, w) }

func (r SchedulingRules) Value() (driver.Value, error) { return jsonValue(r, "{}") }

func (r *SchedulingRules) Scan(src any) error { return jsonScan(src, r) }

func jsonValue(v any, empty string) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return empty, nil
	}
	return string(b), nil
}

func jsonScan(src any, dest any) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb source %T", src)
	}
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, dest)
}
