package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recruit-api/core/constants"
	"recruit-api/core/errors"
	"recruit-api/core/interval"
	"recruit-api/core/logger"
	"recruit-api/core/queue"
	"recruit-api/modules/scheduling/dto"
	"recruit-api/modules/scheduling/entity"
	"recruit-api/modules/scheduling/mapper"
	"recruit-api/modules/scheduling/repository"
	"recruit-api/modules/scheduling/worker"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MessageNoOverlap is returned with an empty slot list.
const MessageNoOverlap = "no overlapping availability"

// bookedLookback reaches back far enough to cover the whole current local day.
const bookedLookback = 48 * time.Hour

// Options configures slot search.
type Options struct {
	Step            time.Duration
	DefaultTimezone string
	MaxResults      int
	RequestTimeout  time.Duration
	Clock           func() time.Time
}

// SchedulingServiceInterface defines the service contract
type SchedulingServiceInterface interface {
	FindCommonSlots(ctx context.Context, req *dto.CommonSlotsRequest) (*dto.CommonSlotsResponse, *errors.AppError)
	BookInterview(ctx context.Context, organizerID uuid.UUID, req *dto.BookInterviewRequest) (*dto.InterviewResponse, *errors.AppError)
	GetInterview(ctx context.Context, organizerID uuid.UUID, id uuid.UUID) (*dto.InterviewResponse, *errors.AppError)
}

// SchedulingService finds common interview times and books them
type SchedulingService struct {
	repo  repository.SchedulingRepositoryInterface
	queue queue.Enqueuer
	opts  Options
}

// NewSchedulingService creates a new scheduling service
func NewSchedulingService(repo repository.SchedulingRepositoryInterface, q queue.Enqueuer, opts Options) *SchedulingService {
	if opts.Step <= 0 {
		opts.Step = DefaultStep
	}
	if opts.DefaultTimezone == "" {
		opts.DefaultTimezone = "UTC"
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = constants.DefaultRequestTimeout
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &SchedulingService{repo: repo, queue: q, opts: opts}
}

// FindCommonSlots returns the start times at which every listed participant is free
func (s *SchedulingService) FindCommonSlots(ctx context.Context, req *dto.CommonSlotsRequest) (*dto.CommonSlotsResponse, *errors.AppError) {
	loc, appErr := s.location(req.Timezone)
	if appErr != nil {
		return nil, appErr
	}

	resp := &dto.CommonSlotsResponse{
		DurationMinutes: req.DurationMinutes,
		Timezone:        loc.String(),
		Slots:           []dto.CandidateSlotResponse{},
		Message:         MessageNoOverlap,
	}

	candidateIDs, interviewerIDs := uniqueIDs(req.CandidateIDs), uniqueIDs(req.InterviewerIDs)
	if len(candidateIDs)+len(interviewerIDs) == 0 || req.DurationMinutes <= 0 {
		return resp, nil
	}

	participants, appErr := s.loadParticipants(ctx, candidateIDs, interviewerIDs, loc)
	if appErr != nil {
		return nil, appErr
	}

	slots := NewReconciler(s.opts.Step, s.opts.Clock, loc).Reconcile(participants, req.DurationMinutes)
	resp.Total = len(slots)

	limit := req.Limit
	if limit <= 0 || (s.opts.MaxResults > 0 && limit > s.opts.MaxResults) {
		limit = s.opts.MaxResults
	}
	if limit > 0 && len(slots) > limit {
		slots = slots[:limit]
	}

	for _, slot := range slots {
		resp.Slots = append(resp.Slots, mapper.ToCandidateSlotResponse(slot.Start, slot.End, slot.ParticipantIDs, slot.Score, loc))
	}
	if len(resp.Slots) > 0 {
		resp.Message = fmt.Sprintf("Found %d common slots", resp.Total)
	}

	return resp, nil
}

// BookInterview books a start time that is still common to all participants
// and queues blocking the interviewers' calendars.
func (s *SchedulingService) BookInterview(ctx context.Context, organizerID uuid.UUID, req *dto.BookInterviewRequest) (*dto.InterviewResponse, *errors.AppError) {
	// 1. Validate request
	candidateIDs, interviewerIDs := uniqueIDs(req.CandidateIDs), uniqueIDs(req.InterviewerIDs)
	if len(candidateIDs)+len(interviewerIDs) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "At least one participant is required", nil)
	}
	if req.DurationMinutes <= 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "duration_minutes must be positive", nil)
	}
	start, err := interval.ParseInstant(req.StartTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid start_time", err)
	}
	loc, appErr := s.location(req.Timezone)
	if appErr != nil {
		return nil, appErr
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Interview"
	}

	// 2. Re-check the slot against current availability
	participants, appErr := s.loadParticipants(ctx, candidateIDs, interviewerIDs, loc)
	if appErr != nil {
		return nil, appErr
	}
	slots := NewReconciler(s.opts.Step, s.opts.Clock, loc).Reconcile(participants, req.DurationMinutes)
	if !containsStart(slots, start) {
		return nil, errors.NewAppError(errors.ErrConflict, "Selected time is no longer available for all participants", nil)
	}

	// 3. Persist
	createCtx, cancel := context.WithTimeout(ctx, s.opts.RequestTimeout)
	defer cancel()
	created, err := s.repo.CreateInterview(createCtx, &entity.InterviewSchedule{
		OrganizerID:     organizerID,
		Title:           title,
		StartTime:       start,
		EndTime:         interval.AddMinutes(start, req.DurationMinutes),
		DurationMinutes: req.DurationMinutes,
		Timezone:        loc.String(),
		CandidateIDs:    pq.StringArray(candidateIDs),
		InterviewerIDs:  pq.StringArray(interviewerIDs),
		Status:          entity.InterviewStatusScheduled,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to book interview", err)
	}

	// 4. Block interviewer time in the background
	s.enqueueBlock(ctx, created)

	logger.Info("SchedulingService:BookInterview:Success", "interview_id", created.ID, "start", created.StartTime)
	return mapper.ToInterviewResponse(created), nil
}

// GetInterview returns a booked interview visible to its organizer
func (s *SchedulingService) GetInterview(ctx context.Context, organizerID uuid.UUID, id uuid.UUID) (*dto.InterviewResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.RequestTimeout)
	defer cancel()

	interview, err := s.repo.GetInterviewByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get interview", err)
	}
	if interview == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Interview not found", nil)
	}
	if interview.OrganizerID != organizerID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not authorized", nil)
	}

	return mapper.ToInterviewResponse(interview), nil
}

// enqueueBlock failures are logged only; the booking itself stands.
func (s *SchedulingService) enqueueBlock(ctx context.Context, interview *entity.InterviewSchedule) {
	if len(interview.InterviewerIDs) == 0 {
		return
	}

	taskID, err := s.queue.Enqueue(ctx, constants.TaskInterviewBlockParticipants, worker.BlockParticipantsPayload{
		ScheduleID: interview.ID.String(),
		Title:      interview.Title,
		StartTime:  interview.StartTime,
		EndTime:    interview.EndTime,
		UserIDs:    interview.InterviewerIDs,
	})
	if err != nil {
		logger.Error("SchedulingService:enqueueBlock:Enqueue", "interview_id", interview.ID, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.RequestTimeout)
	defer cancel()
	if err := s.repo.SetBlockTask(ctx, interview.ID, taskID); err != nil {
		logger.Warn("SchedulingService:enqueueBlock:SetBlockTask", "interview_id", interview.ID, "error", err)
		return
	}
	interview.BlockTaskID = &taskID
}

// loadParticipants fetches and normalizes every participant. An id without a
// record becomes a participant with no availability. Booked interviews and
// occupied slots are taken out of the free time, interviewers' widened by
// their buffers.
func (s *SchedulingService) loadParticipants(ctx context.Context, candidateIDs, interviewerIDs []string, fallback *time.Location) ([]ParticipantAvailability, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.RequestTimeout)
	defer cancel()

	candidates, err := s.repo.GetCandidates(ctx, candidateIDs)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get candidate availability", err)
	}
	interviewers, err := s.repo.GetInterviewers(ctx, interviewerIDs)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get interviewer availability", err)
	}

	// earlier interviews of the current day still count toward daily limits
	ids := make([]string, 0, len(candidateIDs)+len(interviewerIDs))
	ids = append(append(ids, candidateIDs...), interviewerIDs...)
	booked, err := s.repo.GetBookedInterviews(ctx, ids, s.opts.Clock().Add(-bookedLookback))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get booked interviews", err)
	}
	bookedCandidates, bookedInterviewers := bookedByParticipant(booked)

	byID := make(map[string]ParticipantAvailability, len(candidates)+len(interviewers))
	for _, c := range candidates {
		p := NormalizeCandidate(c)
		p = MaskBlackouts(p, c.Profile.BlackoutDates, zoneOr(c.Profile.Timezone, fallback))
		byID["c:"+c.ID] = SubtractBusy(p, bookedCandidates[c.ID], 0, 0)
	}
	for _, i := range interviewers {
		loc := zoneOr(i.Availability.Timezone, fallback)
		rules := i.Availability.Rules

		p := NormalizeInterviewer(i)
		p = MaskBlackouts(p, i.Availability.BlackoutDates, loc)
		busy := append(OccupiedIntervals(i.Availability.OccupiedSlots), bookedInterviewers[i.ID]...)
		p = SubtractBusy(p, busy,
			time.Duration(rules.BufferBeforeMinutes)*time.Minute,
			time.Duration(rules.BufferAfterMinutes)*time.Minute)
		byID["i:"+i.ID] = MaskFullDays(p, bookedInterviewers[i.ID], rules.MaxInterviewsPerDay, loc)
	}

	participants := make([]ParticipantAvailability, 0, len(candidateIDs)+len(interviewerIDs))
	for _, id := range candidateIDs {
		p, ok := byID["c:"+id]
		if !ok {
			logger.Debug("SchedulingService:loadParticipants:MissingCandidate", "candidate_id", id)
			p = ParticipantAvailability{ID: id}
		}
		participants = append(participants, p)
	}
	for _, id := range interviewerIDs {
		p, ok := byID["i:"+id]
		if !ok {
			logger.Debug("SchedulingService:loadParticipants:MissingInterviewer", "interviewer_id", id)
			p = ParticipantAvailability{ID: id}
		}
		participants = append(participants, p)
	}

	return participants, nil
}

// bookedByParticipant indexes booked interview times by candidate id and by
// interviewer id.
func bookedByParticipant(booked []entity.BookedInterview) (map[string][]interval.Interval, map[string][]interval.Interval) {
	candidates := make(map[string][]interval.Interval)
	interviewers := make(map[string][]interval.Interval)
	for _, b := range booked {
		iv := interval.Interval{Start: b.StartTime.UTC(), End: b.EndTime.UTC()}
		if !iv.Valid() {
			continue
		}
		for _, id := range b.CandidateIDs {
			candidates[id] = append(candidates[id], iv)
		}
		for _, id := range b.InterviewerIDs {
			interviewers[id] = append(interviewers[id], iv)
		}
	}
	return candidates, interviewers
}

func (s *SchedulingService) location(name string) (*time.Location, *errors.AppError) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.opts.DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("Unknown timezone %q", name), err)
	}
	return loc, nil
}

// zoneOr loads name, falling back when it is empty or unknown.
func zoneOr(name string, fallback *time.Location) *time.Location {
	if strings.TrimSpace(name) == "" {
		return fallback
	}
	loc, err := time.LoadLocation(strings.TrimSpace(name))
	if err != nil {
		return fallback
	}
	return loc
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func containsStart(slots []CandidateSlot, start time.Time) bool {
	for _, s := range slots {
		if s.Start.Equal(start) {
			return true
		}
	}
	return false
}
