package entity

import (
	"time"

	"recruit-api/core/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// InterviewStatus represents the status of a booked interview
type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCancelled InterviewStatus = "cancelled"
)

// InterviewSchedule is a booked interview (interview_schedules table)
type InterviewSchedule struct {
	entity.BaseEntity
	OrganizerID     uuid.UUID       `db:"organizer_id" json:"organizer_id"`
	Title           string          `db:"title" json:"title"`
	StartTime       time.Time       `db:"start_time" json:"start_time"`
	EndTime         time.Time       `db:"end_time" json:"end_time"`
	DurationMinutes int             `db:"duration_minutes" json:"duration_minutes"`
	Timezone        string          `db:"timezone" json:"timezone"`
	CandidateIDs    pq.StringArray  `db:"candidate_ids" json:"candidate_ids"`
	InterviewerIDs  pq.StringArray  `db:"interviewer_ids" json:"interviewer_ids"`
	Status          InterviewStatus `db:"status" json:"status"`
	BlockTaskID     *string         `db:"block_task_id" json:"block_task_id,omitempty"`
}
