package service

import (
	"fmt"
	"strings"
	"time"

	"recruit-api/core/errors"
	"recruit-api/core/interval"
	"recruit-api/core/utils"
	"recruit-api/modules/availability/dto"
	"recruit-api/modules/availability/entity"
)

// buildFreeSlots parses user-submitted slots. Unlike participant data read by
// the scheduler, a malformed slot here rejects the whole request.
func buildFreeSlots(in []dto.FreeSlotRequest, loc *time.Location) (entity.FreeSlots, *errors.AppError) {
	out := make(entity.FreeSlots, 0, len(in))
	seen := make(map[string]bool, len(in))

	for i, req := range in {
		iv, err := interval.ParseInterval(req.StartTime, req.EndTime)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("free_slots[%d]: %v", i, err), err)
		}

		priority := entity.Priority(strings.ToLower(strings.TrimSpace(req.Priority)))
		if priority == "" {
			priority = entity.PriorityMedium
		}
		if !priority.Valid() {
			return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("free_slots[%d]: priority must be high, medium or low", i), nil)
		}

		id := strings.TrimSpace(req.ID)
		if id == "" || seen[id] {
			id = utils.GeneratePrefixedID("fs")
		}
		seen[id] = true

		slotType := strings.TrimSpace(req.SlotType)
		if slotType == "" {
			slotType = entity.SlotTypeAvailable
		}

		date, _ := interval.LocalLabel(iv.Start, loc)
		out = append(out, entity.FreeSlot{
			ID:              id,
			StartTime:       iv.Start,
			EndTime:         iv.End,
			DurationMinutes: interval.DurationMinutes(iv),
			SlotType:        slotType,
			Priority:        priority,
			Date:            date,
			Preferences:     req.Preferences,
			Constraints:     req.Constraints,
		})
	}

	return out, nil
}

func validateBlackouts(blackouts entity.BlackoutDates) *errors.AppError {
	for i, b := range blackouts {
		start, err := interval.ParseDate(b.StartDate)
		if err != nil {
			return errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("blackout_dates[%d]: start_date must be YYYY-MM-DD", i), err)
		}
		end, err := interval.ParseDate(b.EndDate)
		if err != nil {
			return errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("blackout_dates[%d]: end_date must be YYYY-MM-DD", i), err)
		}
		if end.Before(start) {
			return errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("blackout_dates[%d]: end_date is before start_date", i), nil)
		}
	}
	return nil
}

func validateRules(rules entity.SchedulingRules) *errors.AppError {
	if rules.BufferBeforeMinutes < 0 || rules.BufferAfterMinutes < 0 {
		return errors.NewAppError(errors.ErrInvalidInput, "rules: buffers cannot be negative", nil)
	}
	if rules.MaxInterviewsPerDay < 0 {
		return errors.NewAppError(errors.ErrInvalidInput, "rules: max_interviews_per_day cannot be negative", nil)
	}
	if rules.Timezone != "" {
		if _, err := time.LoadLocation(rules.Timezone); err != nil {
			return errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("rules: unknown timezone %q", rules.Timezone), err)
		}
	}
	return nil
}
