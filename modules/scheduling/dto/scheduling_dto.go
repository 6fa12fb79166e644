package dto

import "time"

// ===================== Request DTOs =====================

// CommonSlotsRequest asks for start times at which all participants are free.
type CommonSlotsRequest struct {
	CandidateIDs    []string `json:"candidate_ids"`
	InterviewerIDs  []string `json:"interviewer_ids"`
	DurationMinutes int      `json:"duration_minutes"`
	Timezone        string   `json:"timezone"` // scoring and display zone
	Limit           int      `json:"limit"`
}

type BookInterviewRequest struct {
	CandidateIDs    []string `json:"candidate_ids"`
	InterviewerIDs  []string `json:"interviewer_ids"`
	StartTime       string   `json:"start_time"`
	DurationMinutes int      `json:"duration_minutes"`
	Title           string   `json:"title"`
	Timezone        string   `json:"timezone"`
}

// ===================== Response DTOs =====================

type CandidateSlotResponse struct {
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	LocalStart     string    `json:"local_start"`
	ParticipantIDs []string  `json:"participant_ids"`
	Score          int       `json:"score"`
}

type CommonSlotsResponse struct {
	DurationMinutes int                     `json:"duration_minutes"`
	Timezone        string                  `json:"timezone"`
	Slots           []CandidateSlotResponse `json:"slots"`
	Total           int                     `json:"total"`
	Message         string                  `json:"message"`
}

type InterviewResponse struct {
	ID              string    `json:"id"`
	OrganizerID     string    `json:"organizer_id"`
	Title           string    `json:"title"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Timezone        string    `json:"timezone"`
	CandidateIDs    []string  `json:"candidate_ids"`
	InterviewerIDs  []string  `json:"interviewer_ids"`
	Status          string    `json:"status"`
	BlockTaskID     *string   `json:"block_task_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
