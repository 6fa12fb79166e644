package entity

import (
	"time"

	"github.com/lib/pq"
)

// Participant source records. Candidates and interviewers keep their free
// intervals under different shapes; both are read tolerantly and a nil entry
// stands for an element that could not be decoded.

// CandidateFreeSlot is one free interval in a candidate profile.
type CandidateFreeSlot struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// CandidateProfile is the part of candidate_profiles.profile used for scheduling.
type CandidateProfile struct {
	FreeSlots     []*CandidateFreeSlot
	BlackoutDates []*RawBlackout
	Timezone      string
}

type CandidateRecord struct {
	ID      string
	Profile CandidateProfile
}

// InterviewerFreeSlot is one free interval in an interviewer's availability record.
type InterviewerFreeSlot struct {
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

// InterviewerOccupiedSlot is time already taken on an interviewer's record.
type InterviewerOccupiedSlot struct {
	ID        *string `json:"id"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

// InterviewerRules are the scheduling rules read from the availability record.
type InterviewerRules struct {
	BufferBeforeMinutes int
	BufferAfterMinutes  int
	MaxInterviewsPerDay int
}

type InterviewerAvailability struct {
	FreeSlots     []*InterviewerFreeSlot
	OccupiedSlots []*InterviewerOccupiedSlot
	BlackoutDates []*RawBlackout
	Rules         InterviewerRules
	Timezone      string
}

// InterviewerRecord is keyed by the interviewer's user id.
type InterviewerRecord struct {
	ID           string
	Availability InterviewerAvailability
}

// RawBlackout is a blackout range as stored, before date validation.
type RawBlackout struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// BookedInterview is a scheduled interview that one of the looked up
// participants takes part in.
type BookedInterview struct {
	ID             string         `db:"id"`
	StartTime      time.Time      `db:"start_time"`
	EndTime        time.Time      `db:"end_time"`
	CandidateIDs   pq.StringArray `db:"candidate_ids"`
	InterviewerIDs pq.StringArray `db:"interviewer_ids"`
}
