package service

import (
	"context"
	stdErrors "errors"
	"fmt"
	"strings"
	"time"

	"recruit-api/core/cache"
	"recruit-api/core/constants"
	"recruit-api/core/errors"
	"recruit-api/core/interval"
	"recruit-api/core/logger"
	"recruit-api/core/utils"
	"recruit-api/modules/availability/dto"
	"recruit-api/modules/availability/editor"
	"recruit-api/modules/availability/entity"
	"recruit-api/modules/availability/mapper"
	"recruit-api/modules/availability/repository"

	"github.com/google/uuid"
)

// Options configures the grid and the save lock.
type Options struct {
	FirstHour       int
	LastHour        int
	Days            int
	SaveLockTTL     time.Duration
	RequestTimeout  time.Duration
	DefaultTimezone string
	Clock           func() time.Time
}

// AvailabilityServiceInterface defines the service contract
type AvailabilityServiceInterface interface {
	GetAvailability(ctx context.Context, userID uuid.UUID) (*dto.AvailabilityResponse, *errors.AppError)
	SaveAvailability(ctx context.Context, userID uuid.UUID, req *dto.SaveAvailabilityRequest) (*dto.AvailabilityResponse, *errors.AppError)
	GetGrid(ctx context.Context, userID uuid.UUID, query *dto.GridQuery) (*dto.GridResponse, *errors.AppError)
	ApplyGridEdits(ctx context.Context, userID uuid.UUID, req *dto.GridEditRequest) (*dto.GridEditResponse, *errors.AppError)
	UpdateFreeSlot(ctx context.Context, userID uuid.UUID, slotID string, req *dto.UpdateFreeSlotRequest) (*dto.FreeSlotResponse, *errors.AppError)
	BlockTime(ctx context.Context, userID uuid.UUID, slot entity.OccupiedSlot) error
}

// AvailabilityService handles availability business logic
type AvailabilityService struct {
	repo  repository.AvailabilityRepositoryInterface
	cache cache.Cache
	opts  Options
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(repo repository.AvailabilityRepositoryInterface, c cache.Cache, opts Options) *AvailabilityService {
	if opts.Days <= 0 {
		opts.Days = 7
	}
	if opts.LastHour <= opts.FirstHour {
		opts.FirstHour, opts.LastHour = 0, 24
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = constants.DefaultRequestTimeout
	}
	if opts.SaveLockTTL <= 0 {
		opts.SaveLockTTL = 30 * time.Second
	}
	if opts.DefaultTimezone == "" {
		opts.DefaultTimezone = "UTC"
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &AvailabilityService{repo: repo, cache: c, opts: opts}
}

// GetAvailability returns the caller's record, or an empty one when none exists
func (s *AvailabilityService) GetAvailability(ctx context.Context, userID uuid.UUID) (*dto.AvailabilityResponse, *errors.AppError) {
	record, appErr := s.load(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToAvailabilityResponse(record), nil
}

// SaveAvailability validates and replaces the caller's record in one write
func (s *AvailabilityService) SaveAvailability(ctx context.Context, userID uuid.UUID, req *dto.SaveAvailabilityRequest) (*dto.AvailabilityResponse, *errors.AppError) {
	rules := mapper.ToRulesEntity(req.Rules)
	if appErr := validateRules(rules); appErr != nil {
		return nil, appErr
	}
	loc, appErr := s.location("", rules.Timezone)
	if appErr != nil {
		return nil, appErr
	}

	freeSlots, appErr := buildFreeSlots(req.FreeSlots, loc)
	if appErr != nil {
		return nil, appErr
	}

	workingHours := mapper.ToWorkingHoursEntity(req.WorkingHours)
	if err := editor.ValidateWorkingHours(workingHours); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
	}

	blackouts := mapper.ToBlackoutDatesEntity(req.BlackoutDates)
	if appErr := validateBlackouts(blackouts); appErr != nil {
		return nil, appErr
	}

	var saved *entity.Availability
	appErr = s.withSaveLock(ctx, userID, func() *errors.AppError {
		existing, appErr := s.load(ctx, userID)
		if appErr != nil {
			return appErr
		}

		record := entity.NewAvailability(userID)
		record.FreeSlots = freeSlots
		record.OccupiedSlots = existing.OccupiedSlots
		record.WorkingHours = workingHours
		record.BlackoutDates = blackouts
		record.Rules = rules

		var err error
		saved, err = s.upsert(ctx, record)
		if err != nil {
			return errors.NewAppError(errors.ErrUpdateFailed, "Failed to save availability", err)
		}
		return nil
	})
	if appErr != nil {
		return nil, appErr
	}

	logger.Info("AvailabilityService:SaveAvailability:Success", "user_id", userID, "free_slots", len(saved.FreeSlots))
	return mapper.ToAvailabilityResponse(saved), nil
}

// GetGrid renders one week of the caller's availability as hour cells
func (s *AvailabilityService) GetGrid(ctx context.Context, userID uuid.UUID, query *dto.GridQuery) (*dto.GridResponse, *errors.AppError) {
	record, appErr := s.load(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	grid, weekStart, tz, appErr := s.newGrid(query.WeekStart, query.Timezone, record.Rules.Timezone)
	if appErr != nil {
		return nil, appErr
	}
	grid.Load(record.FreeSlots, record.OccupiedSlots, record.BlackoutDates)

	return mapper.ToGridResponse(grid, weekStart, tz), nil
}

// ApplyGridEdits replays pointer events through an editing session and saves
// the merged selection
func (s *AvailabilityService) ApplyGridEdits(ctx context.Context, userID uuid.UUID, req *dto.GridEditRequest) (*dto.GridEditResponse, *errors.AppError) {
	var resp *dto.GridEditResponse

	appErr := s.withSaveLock(ctx, userID, func() *errors.AppError {
		store := &recordStore{userID: userID, load: s.load, upsert: s.upsert}

		// rules are needed before the grid exists to pick its zone
		existing, appErr := s.load(ctx, userID)
		if appErr != nil {
			return appErr
		}
		grid, weekStart, tz, appErr := s.newGrid(req.WeekStart, req.Timezone, existing.Rules.Timezone)
		if appErr != nil {
			return appErr
		}

		session := editor.NewSession(store, grid, s.opts.RequestTimeout, editor.SlotDefaults{})
		defer session.Close()

		if err := session.Load(ctx); err != nil {
			return errors.NewAppError(errors.ErrGetFailed, "Failed to load availability", err)
		}

		if req.ApplyWorkingHours {
			if err := grid.ApplyWorkingHours(session.Record().WorkingHours); err != nil {
				return errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
			}
		}

		for i, ev := range req.Events {
			if err := replay(grid, ev); err != nil {
				return errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("events[%d]: %v", i, err), err)
			}
		}
		grid.PointerUp()

		set, err := session.Save(ctx)
		if err != nil {
			return errors.NewAppError(errors.ErrUpdateFailed, "Failed to save availability", err)
		}

		resp = &dto.GridEditResponse{
			FreeSlots: mapper.ToFreeSlotResponses(set.FreeSlots),
			Grid:      mapper.ToGridResponse(grid, weekStart, tz),
		}
		return nil
	})
	if appErr != nil {
		return nil, appErr
	}

	return resp, nil
}

// UpdateFreeSlot moves one free slot, keeping its duration consistent
func (s *AvailabilityService) UpdateFreeSlot(ctx context.Context, userID uuid.UUID, slotID string, req *dto.UpdateFreeSlotRequest) (*dto.FreeSlotResponse, *errors.AppError) {
	var updated entity.FreeSlot

	appErr := s.withSaveLock(ctx, userID, func() *errors.AppError {
		record, appErr := s.load(ctx, userID)
		if appErr != nil {
			return appErr
		}

		idx := -1
		for i := range record.FreeSlots {
			if record.FreeSlots[i].ID == slotID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return errors.NewAppError(errors.ErrNotFound, "Free slot not found", nil)
		}

		slot := record.FreeSlots[idx]
		start, end := slot.StartTime, slot.EndTime
		var err error
		if req.StartTime != nil {
			if start, err = interval.ParseInstant(*req.StartTime); err != nil {
				return errors.NewAppError(errors.ErrInvalidInput, "Invalid start_time", err)
			}
		}
		if req.EndTime != nil {
			if end, err = interval.ParseInstant(*req.EndTime); err != nil {
				return errors.NewAppError(errors.ErrInvalidInput, "Invalid end_time", err)
			}
		}

		loc, appErr := s.location("", record.Rules.Timezone)
		if appErr != nil {
			return appErr
		}
		if err := editor.UpdateFreeSlotTimes(&slot, start, end, loc); err != nil {
			return errors.NewAppError(errors.ErrInvalidInput, "end_time must be after start_time", err)
		}

		record.FreeSlots[idx] = slot
		if _, err := s.upsert(ctx, record); err != nil {
			return errors.NewAppError(errors.ErrUpdateFailed, "Failed to update free slot", err)
		}
		updated = slot
		return nil
	})
	if appErr != nil {
		return nil, appErr
	}

	resp := mapper.ToFreeSlotResponses(entity.FreeSlots{updated})[0]
	return &resp, nil
}

// BlockTime records an externally booked interval on the user's record
func (s *AvailabilityService) BlockTime(ctx context.Context, userID uuid.UUID, slot entity.OccupiedSlot) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.RequestTimeout)
	defer cancel()
	return s.repo.AppendOccupied(ctx, userID, slot)
}

// load returns the stored record or an empty one
func (s *AvailabilityService) load(ctx context.Context, userID uuid.UUID) (*entity.Availability, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.RequestTimeout)
	defer cancel()

	record, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error("AvailabilityService:load:Error", "user_id", userID, "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get availability", err)
	}
	if record == nil {
		return entity.NewAvailability(userID), nil
	}
	return record, nil
}

func (s *AvailabilityService) upsert(ctx context.Context, record *entity.Availability) (*entity.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.RequestTimeout)
	defer cancel()
	return s.repo.Upsert(ctx, record)
}

// withSaveLock serializes writes for one user across instances. If Redis is
// unreachable the write goes ahead unlocked and the last write wins.
func (s *AvailabilityService) withSaveLock(ctx context.Context, userID uuid.UUID, fn func() *errors.AppError) *errors.AppError {
	key := constants.RedisKeyAvailabilitySaveLock + userID.String()
	token := utils.GenerateID()

	err := s.cache.AcquireLock(ctx, key, token, s.opts.SaveLockTTL)
	switch {
	case stdErrors.Is(err, cache.ErrLockHeld):
		return errors.NewAppError(errors.ErrConflict, "A save is already in progress", err)
	case err != nil:
		logger.Warn("AvailabilityService:withSaveLock:LockUnavailable", "user_id", userID, "error", err)
		return fn()
	}

	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
		defer cancel()
		if err := s.cache.ReleaseLock(releaseCtx, key, token); err != nil {
			logger.Warn("AvailabilityService:withSaveLock:Release", "user_id", userID, "error", err)
		}
	}()

	return fn()
}

// newGrid resolves the zone and the week shown. Without a week_start the week
// containing today (starting Monday) is used.
func (s *AvailabilityService) newGrid(weekStart, requested, stored string) (*editor.Grid, string, string, *errors.AppError) {
	loc, appErr := s.location(requested, stored)
	if appErr != nil {
		return nil, "", "", appErr
	}

	var start time.Time
	if strings.TrimSpace(weekStart) == "" {
		today := s.opts.Clock().In(loc)
		offset := (int(today.Weekday()) + 6) % 7
		start = time.Date(today.Year(), today.Month(), today.Day()-offset, 0, 0, 0, 0, time.UTC)
	} else {
		var err error
		if start, err = interval.ParseDate(weekStart); err != nil {
			return nil, "", "", errors.NewAppError(errors.ErrInvalidInput, "week_start must be YYYY-MM-DD", err)
		}
	}

	grid, err := editor.NewGrid(editor.GridConfig{
		WeekStart: start,
		Days:      s.opts.Days,
		FirstHour: s.opts.FirstHour,
		LastHour:  s.opts.LastHour,
		Location:  loc,
		Now:       s.opts.Clock,
	})
	if err != nil {
		return nil, "", "", errors.NewAppError(errors.ErrInternalServer, "Invalid grid configuration", err)
	}

	return grid, start.Format(interval.DateFormat), loc.String(), nil
}

// location picks the requested zone, then the stored one, then the default
func (s *AvailabilityService) location(requested, stored string) (*time.Location, *errors.AppError) {
	name := s.opts.DefaultTimezone
	switch {
	case strings.TrimSpace(requested) != "":
		name = strings.TrimSpace(requested)
	case strings.TrimSpace(stored) != "":
		name = strings.TrimSpace(stored)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("Unknown timezone %q", name), err)
	}
	return loc, nil
}

func replay(grid *editor.Grid, ev dto.GridEvent) error {
	switch strings.ToLower(ev.Type) {
	case "down":
		return grid.PointerDown(ev.Date, ev.Hour)
	case "enter":
		return grid.PointerEnter(ev.Date, ev.Hour)
	case "up":
		grid.PointerUp()
		return nil
	}
	return fmt.Errorf("unknown event type %q", ev.Type)
}

// recordStore adapts the repository to an editing session for one user.
type recordStore struct {
	userID  uuid.UUID
	load    func(context.Context, uuid.UUID) (*entity.Availability, *errors.AppError)
	upsert  func(context.Context, *entity.Availability) (*entity.Availability, error)
	current *entity.Availability
}

func (r *recordStore) Load(ctx context.Context) (*entity.Availability, error) {
	record, appErr := r.load(ctx, r.userID)
	if appErr != nil {
		return nil, appErr
	}
	r.current = record
	return record, nil
}

func (r *recordStore) Save(ctx context.Context, set editor.SaveSet) error {
	record := entity.NewAvailability(r.userID)
	if r.current != nil {
		copied := *r.current
		record = &copied
	}
	record.FreeSlots = set.FreeSlots
	record.OccupiedSlots = set.OccupiedSlots

	saved, err := r.upsert(ctx, record)
	if err != nil {
		return err
	}
	r.current = saved
	return nil
}
