package dto

import (
	"encoding/json"
	"time"
)

// ===================== Request DTOs =====================

// SaveAvailabilityRequest replaces the caller's availability record.
// Occupied slots are not accepted; they are kept from the stored record.
type SaveAvailabilityRequest struct {
	FreeSlots     []FreeSlotRequest      `json:"free_slots"`
	WorkingHours  map[string][]HourRange `json:"working_hours"`
	BlackoutDates []BlackoutDateRequest  `json:"blackout_dates"`
	Rules         *SchedulingRules       `json:"rules"`
}

type FreeSlotRequest struct {
	ID          string          `json:"id"`
	StartTime   *string         `json:"start_time"`
	EndTime     *string         `json:"end_time"`
	SlotType    string          `json:"slot_type"`
	Priority    string          `json:"priority"`
	Preferences json.RawMessage `json:"preferences,omitempty"`
	Constraints json.RawMessage `json:"constraints,omitempty"`
}

type HourRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type BlackoutDateRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

type SchedulingRules struct {
	BufferBeforeMinutes int    `json:"buffer_before_minutes"`
	BufferAfterMinutes  int    `json:"buffer_after_minutes"`
	MaxInterviewsPerDay int    `json:"max_interviews_per_day"`
	Timezone            string `json:"timezone"`
}

// GridQuery selects the week shown by the grid endpoint.
type GridQuery struct {
	WeekStart string `query:"week_start"` // YYYY-MM-DD
	Timezone  string `query:"timezone"`   // IANA name
}

// GridEvent is one pointer event against a grid cell.
type GridEvent struct {
	Type string `json:"type"` // down | enter | up
	Date string `json:"date"`
	Hour int    `json:"hour"`
}

// GridEditRequest replays pointer events against the week grid and saves the
// merged result.
type GridEditRequest struct {
	WeekStart         string      `json:"week_start"`
	Timezone          string      `json:"timezone"`
	ApplyWorkingHours bool        `json:"apply_working_hours"`
	Events            []GridEvent `json:"events"`
}

// UpdateFreeSlotRequest moves one free slot.
type UpdateFreeSlotRequest struct {
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

// ===================== Response DTOs =====================

type AvailabilityResponse struct {
	UserID        string                 `json:"user_id"`
	FreeSlots     []FreeSlotResponse     `json:"free_slots"`
	OccupiedSlots []OccupiedSlotResponse `json:"occupied_slots"`
	WorkingHours  map[string][]HourRange `json:"working_hours"`
	BlackoutDates []BlackoutDateRequest  `json:"blackout_dates"`
	Rules         SchedulingRules        `json:"rules"`
	UpdatedAt     *time.Time             `json:"updated_at,omitempty"`
}

type FreeSlotResponse struct {
	ID              string          `json:"id"`
	StartTime       time.Time       `json:"start_time"`
	EndTime         time.Time       `json:"end_time"`
	DurationMinutes int             `json:"duration_minutes"`
	SlotType        string          `json:"slot_type"`
	Priority        string          `json:"priority"`
	Date            string          `json:"date"`
	Preferences     json.RawMessage `json:"preferences,omitempty"`
	Constraints     json.RawMessage `json:"constraints,omitempty"`
}

type OccupiedSlotResponse struct {
	ID         string    `json:"id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	EventType  string    `json:"event_type"`
	EventTitle string    `json:"event_title"`
	CanBeMoved bool      `json:"can_be_moved"`
}

// GridResponse is the week grid in the viewer's local labels.
type GridResponse struct {
	WeekStart string        `json:"week_start"`
	Timezone  string        `json:"timezone"`
	FirstHour int           `json:"first_hour"`
	LastHour  int           `json:"last_hour"`
	Days      []GridDay     `json:"days"`
	Merged    []RangeResult `json:"merged"`
}

type GridDay struct {
	Date    string     `json:"date"`
	Weekday string     `json:"weekday"`
	Cells   []GridCell `json:"cells"`
}

type GridCell struct {
	Hour       int       `json:"hour"`
	Label      string    `json:"label"`
	Instant    time.Time `json:"instant"`
	Selected   bool      `json:"selected"`
	Occupied   bool      `json:"occupied"`
	Past       bool      `json:"past"`
	Blackout   bool      `json:"blackout"`
	Partial    bool      `json:"partial"`
	OccupiedBy string    `json:"occupied_by,omitempty"`
}

type RangeResult struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type GridEditResponse struct {
	FreeSlots []FreeSlotResponse `json:"free_slots"`
	Grid      *GridResponse      `json:"grid"`
}
