package worker

import (
	"context"
	stdErrors "errors"
	"fmt"
	"time"

	"recruit-api/core/constants"
	"recruit-api/core/logger"
	"recruit-api/core/queue"
	availabilityEntity "recruit-api/modules/availability/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

//go:generate mockgen -source=block_participants.go -destination=block_participants_mock.go -package=worker

// OccupiedAppender records booked time on a user's availability record.
type OccupiedAppender interface {
	BlockTime(ctx context.Context, userID uuid.UUID, slot availabilityEntity.OccupiedSlot) error
}

// BlockParticipantsPayload is the body of an interview:block_participants task.
type BlockParticipantsPayload struct {
	ScheduleID string    `json:"schedule_id"`
	Title      string    `json:"title"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	UserIDs    []string  `json:"user_ids"`
}

// OccupiedSlotID is the id of the occupied slot a booked interview leaves on
// each participant. Retries reuse it so the slot is written once.
func OccupiedSlotID(scheduleID string) string {
	return "interview_" + scheduleID
}

// BlockParticipantsHandler marks a booked interview as occupied time for each participant.
type BlockParticipantsHandler struct {
	appender OccupiedAppender
}

func NewBlockParticipantsHandler(appender OccupiedAppender) *BlockParticipantsHandler {
	return &BlockParticipantsHandler{appender: appender}
}

// Register binds the handler to its task type.
func (h *BlockParticipantsHandler) Register(srv *queue.Server) {
	srv.Handle(constants.TaskInterviewBlockParticipants, h.ProcessTask)
}

func (h *BlockParticipantsHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload BlockParticipantsPayload
	if err := queue.Decode(task, &payload); err != nil {
		logger.Error("Worker:BlockParticipants:Decode", "error", err)
		return err
	}
	if !payload.EndTime.After(payload.StartTime) {
		return fmt.Errorf("schedule %s has no positive duration: %w", payload.ScheduleID, asynq.SkipRetry)
	}

	slot := availabilityEntity.OccupiedSlot{
		ID:         OccupiedSlotID(payload.ScheduleID),
		StartTime:  payload.StartTime.UTC(),
		EndTime:    payload.EndTime.UTC(),
		EventType:  availabilityEntity.EventTypeInterview,
		EventTitle: payload.Title,
		CanBeMoved: false,
	}

	var errs []error
	for _, raw := range payload.UserIDs {
		userID, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("Worker:BlockParticipants:InvalidUserID", "schedule_id", payload.ScheduleID, "user_id", raw)
			continue
		}
		if err := h.appender.BlockTime(ctx, userID, slot); err != nil {
			logger.Error("Worker:BlockParticipants:BlockTime", "schedule_id", payload.ScheduleID, "user_id", userID, "error", err)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return stdErrors.Join(errs...)
	}

	logger.Info("Worker:BlockParticipants:Success", "schedule_id", payload.ScheduleID, "participants", len(payload.UserIDs))
	return nil
}
