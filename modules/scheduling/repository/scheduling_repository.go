package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"recruit-api/core/database"
	"recruit-api/core/logger"
	"recruit-api/modules/scheduling/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

//go:generate mockgen -source=scheduling_repository.go -destination=scheduling_repository_mock.go -package=repository

// SchedulingRepositoryInterface defines the repository contract
type SchedulingRepositoryInterface interface {
	GetCandidates(ctx context.Context, ids []string) ([]entity.CandidateRecord, error)
	GetInterviewers(ctx context.Context, ids []string) ([]entity.InterviewerRecord, error)
	GetBookedInterviews(ctx context.Context, participantIDs []string, from time.Time) ([]entity.BookedInterview, error)
	CreateInterview(ctx context.Context, interview *entity.InterviewSchedule) (*entity.InterviewSchedule, error)
	GetInterviewByID(ctx context.Context, id uuid.UUID) (*entity.InterviewSchedule, error)
	SetBlockTask(ctx context.Context, id uuid.UUID, taskID string) error
}

// SchedulingRepository reads participant free/busy data and stores booked interviews
type SchedulingRepository struct {
	DB database.IDatabase
}

// NewSchedulingRepository creates a new repository instance
func NewSchedulingRepository(db database.IDatabase) *SchedulingRepository {
	return &SchedulingRepository{DB: db}
}

type candidateRow struct {
	ID      string `db:"id"`
	Profile []byte `db:"profile"`
}

type interviewerRow struct {
	ID                  string `db:"id"`
	FreeSlots           []byte `db:"free_slots"`
	OccupiedSlots       []byte `db:"occupied_slots"`
	BlackoutDates       []byte `db:"blackout_dates"`
	Timezone            string `db:"timezone"`
	BufferBefore        int    `db:"buffer_before"`
	BufferAfter         int    `db:"buffer_after"`
	MaxInterviewsPerDay int    `db:"max_per_day"`
}

// rawProfile keeps list elements undecoded so one bad element does not spoil the rest.
type rawProfile struct {
	FreeSlots     []json.RawMessage `json:"free_slots"`
	BlackoutDates []json.RawMessage `json:"blackout_dates"`
	Timezone      string            `json:"timezone"`
}

// GetCandidates returns the profiles found for ids. Unknown ids are left out.
func (r *SchedulingRepository) GetCandidates(ctx context.Context, ids []string) ([]entity.CandidateRecord, error) {
	if len(ids) == 0 {
		return []entity.CandidateRecord{}, nil
	}

	var rows []candidateRow
	query := `SELECT id, profile FROM candidate_profiles WHERE id = ANY($1)`
	if err := r.DB.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		logger.Error("SchedulingRepository:GetCandidates", "error", err)
		return nil, err
	}

	records := make([]entity.CandidateRecord, 0, len(rows))
	for _, row := range rows {
		var profile rawProfile
		if err := json.Unmarshal(row.Profile, &profile); err != nil {
			logger.Warn("SchedulingRepository:GetCandidates:MalformedProfile", "candidate_id", row.ID, "error", err)
		}
		records = append(records, entity.CandidateRecord{
			ID: row.ID,
			Profile: entity.CandidateProfile{
				FreeSlots:     decodeEach[entity.CandidateFreeSlot](profile.FreeSlots),
				BlackoutDates: decodeEach[entity.RawBlackout](profile.BlackoutDates),
				Timezone:      profile.Timezone,
			},
		})
	}

	return records, nil
}

// GetInterviewers returns the availability records of the given user ids.
// Ids that are not UUIDs or have no record are left out.
func (r *SchedulingRepository) GetInterviewers(ctx context.Context, ids []string) ([]entity.InterviewerRecord, error) {
	if len(ids) == 0 {
		return []entity.InterviewerRecord{}, nil
	}

	var rows []interviewerRow
	query := `
		SELECT user_id::text AS id, free_slots, occupied_slots, blackout_dates,
			COALESCE(rules->>'timezone', '') AS timezone,
			COALESCE((rules->>'buffer_before_minutes')::int, 0) AS buffer_before,
			COALESCE((rules->>'buffer_after_minutes')::int, 0) AS buffer_after,
			COALESCE((rules->>'max_interviews_per_day')::int, 0) AS max_per_day
		FROM user_availability
		WHERE user_id::text = ANY($1)`
	if err := r.DB.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		logger.Error("SchedulingRepository:GetInterviewers", "error", err)
		return nil, err
	}

	records := make([]entity.InterviewerRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, entity.InterviewerRecord{
			ID: row.ID,
			Availability: entity.InterviewerAvailability{
				FreeSlots:     decodeEach[entity.InterviewerFreeSlot](decodeList(row.ID, row.FreeSlots)),
				OccupiedSlots: decodeEach[entity.InterviewerOccupiedSlot](decodeList(row.ID, row.OccupiedSlots)),
				BlackoutDates: decodeEach[entity.RawBlackout](decodeList(row.ID, row.BlackoutDates)),
				Rules: entity.InterviewerRules{
					BufferBeforeMinutes: row.BufferBefore,
					BufferAfterMinutes:  row.BufferAfter,
					MaxInterviewsPerDay: row.MaxInterviewsPerDay,
				},
				Timezone: row.Timezone,
			},
		})
	}

	return records, nil
}

// GetBookedInterviews returns scheduled interviews ending after from in which
// any of participantIDs is a candidate or an interviewer.
func (r *SchedulingRepository) GetBookedInterviews(ctx context.Context, participantIDs []string, from time.Time) ([]entity.BookedInterview, error) {
	if len(participantIDs) == 0 {
		return []entity.BookedInterview{}, nil
	}

	var booked []entity.BookedInterview
	query := `
		SELECT id::text AS id, start_time, end_time, candidate_ids, interviewer_ids
		FROM interview_schedules
		WHERE status = $1
			AND end_time > $2
			AND (candidate_ids && $3::text[] OR interviewer_ids && $3::text[])
		ORDER BY start_time`
	err := r.DB.SelectContext(ctx, &booked, query, entity.InterviewStatusScheduled, from, pq.Array(participantIDs))
	if err != nil {
		logger.Error("SchedulingRepository:GetBookedInterviews", "error", err)
		return nil, err
	}

	return booked, nil
}

// CreateInterview inserts a booked interview
func (r *SchedulingRepository) CreateInterview(ctx context.Context, interview *entity.InterviewSchedule) (*entity.InterviewSchedule, error) {
	query := `
		INSERT INTO interview_schedules (organizer_id, title, start_time, end_time, duration_minutes, timezone, candidate_ids, interviewer_ids, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, organizer_id, title, start_time, end_time, duration_minutes, timezone, candidate_ids, interviewer_ids, status, block_task_id, created_at, updated_at`

	var created entity.InterviewSchedule
	err := r.DB.GetContext(ctx, &created, query,
		interview.OrganizerID, interview.Title, interview.StartTime, interview.EndTime,
		interview.DurationMinutes, interview.Timezone, interview.CandidateIDs, interview.InterviewerIDs,
		interview.Status)
	if err != nil {
		logger.Error("SchedulingRepository:CreateInterview", "organizer_id", interview.OrganizerID, "error", err)
		return nil, err
	}

	return &created, nil
}

// GetInterviewByID returns nil, nil when no interview has the id
func (r *SchedulingRepository) GetInterviewByID(ctx context.Context, id uuid.UUID) (*entity.InterviewSchedule, error) {
	query := `
		SELECT id, organizer_id, title, start_time, end_time, duration_minutes, timezone, candidate_ids, interviewer_ids, status, block_task_id, created_at, updated_at
		FROM interview_schedules WHERE id = $1`

	var interview entity.InterviewSchedule
	if err := r.DB.GetContext(ctx, &interview, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("SchedulingRepository:GetInterviewByID", "id", id, "error", err)
		return nil, err
	}

	return &interview, nil
}

// SetBlockTask records the id of the task that blocks participant calendars
func (r *SchedulingRepository) SetBlockTask(ctx context.Context, id uuid.UUID, taskID string) error {
	query := `UPDATE interview_schedules SET block_task_id = $2, updated_at = NOW() WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id, taskID); err != nil {
		logger.Error("SchedulingRepository:SetBlockTask", "id", id, "error", err)
		return err
	}
	return nil
}

func decodeList(id string, raw []byte) []json.RawMessage {
	var list []json.RawMessage
	if len(raw) == 0 {
		return list
	}
	if err := json.Unmarshal(raw, &list); err != nil {
		logger.Warn("SchedulingRepository:MalformedList", "participant_id", id, "error", err)
		return nil
	}
	return list
}

// decodeEach decodes every element on its own. Elements that are null or do
// not decode come back as nil entries.
func decodeEach[T any](raw []json.RawMessage) []*T {
	out := make([]*T, 0, len(raw))
	for _, r := range raw {
		var v *T
		if err := json.Unmarshal(r, &v); err != nil {
			out = append(out, nil)
			continue
		}
		out = append(out, v)
	}
	return out
}
