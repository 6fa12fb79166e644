package mapper

import (
	"fmt"
	"strings"

	"recruit-api/core/interval"
	"recruit-api/modules/availability/dto"
	"recruit-api/modules/availability/editor"
	"recruit-api/modules/availability/entity"
)

func ToAvailabilityResponse(a *entity.Availability) *dto.AvailabilityResponse {
	resp := &dto.AvailabilityResponse{
		UserID:        a.UserID.String(),
		FreeSlots:     ToFreeSlotResponses(a.FreeSlots),
		OccupiedSlots: make([]dto.OccupiedSlotResponse, 0, len(a.OccupiedSlots)),
		WorkingHours:  make(map[string][]dto.HourRange, len(a.WorkingHours)),
		BlackoutDates: make([]dto.BlackoutDateRequest, 0, len(a.BlackoutDates)),
		Rules: dto.SchedulingRules{
			BufferBeforeMinutes: a.Rules.BufferBeforeMinutes,
			BufferAfterMinutes:  a.Rules.BufferAfterMinutes,
			MaxInterviewsPerDay: a.Rules.MaxInterviewsPerDay,
			Timezone:            a.Rules.Timezone,
		},
	}
	if !a.UpdatedAt.IsZero() {
		updated := a.UpdatedAt
		resp.UpdatedAt = &updated
	}

	for _, o := range a.OccupiedSlots {
		resp.OccupiedSlots = append(resp.OccupiedSlots, dto.OccupiedSlotResponse{
			ID:         o.ID,
			StartTime:  o.StartTime,
			EndTime:    o.EndTime,
			EventType:  o.EventType,
			EventTitle: o.EventTitle,
			CanBeMoved: o.CanBeMoved,
		})
	}
	for day, ranges := range a.WorkingHours {
		out := make([]dto.HourRange, len(ranges))
		for i, r := range ranges {
			out[i] = dto.HourRange{Start: r.Start, End: r.End}
		}
		resp.WorkingHours[day] = out
	}
	for _, b := range a.BlackoutDates {
		resp.BlackoutDates = append(resp.BlackoutDates, dto.BlackoutDateRequest{
			StartDate: b.StartDate,
			EndDate:   b.EndDate,
			Reason:    b.Reason,
		})
	}

	return resp
}

func ToFreeSlotResponses(slots entity.FreeSlots) []dto.FreeSlotResponse {
	out := make([]dto.FreeSlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, dto.FreeSlotResponse{
			ID:              s.ID,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			DurationMinutes: s.DurationMinutes,
			SlotType:        s.SlotType,
			Priority:        string(s.Priority),
			Date:            s.Date,
			Preferences:     s.Preferences,
			Constraints:     s.Constraints,
		})
	}
	return out
}

func ToWorkingHoursEntity(in map[string][]dto.HourRange) entity.WeeklyWorkingHours {
	out := make(entity.WeeklyWorkingHours, len(in))
	for day, ranges := range in {
		converted := make([]entity.HourRange, len(ranges))
		for i, r := range ranges {
			converted[i] = entity.HourRange{Start: r.Start, End: r.End}
		}
		out[strings.ToLower(strings.TrimSpace(day))] = converted
	}
	return out
}

func ToBlackoutDatesEntity(in []dto.BlackoutDateRequest) entity.BlackoutDates {
	out := make(entity.BlackoutDates, 0, len(in))
	for _, b := range in {
		out = append(out, entity.BlackoutDate{
			StartDate: strings.TrimSpace(b.StartDate),
			EndDate:   strings.TrimSpace(b.EndDate),
			Reason:    b.Reason,
		})
	}
	return out
}

func ToRulesEntity(in *dto.SchedulingRules) entity.SchedulingRules {
	if in == nil {
		return entity.SchedulingRules{}
	}
	return entity.SchedulingRules{
		BufferBeforeMinutes: in.BufferBeforeMinutes,
		BufferAfterMinutes:  in.BufferAfterMinutes,
		MaxInterviewsPerDay: in.MaxInterviewsPerDay,
		Timezone:            strings.TrimSpace(in.Timezone),
	}
}

// ToGridResponse renders the grid in its own location's labels.
func ToGridResponse(g *editor.Grid, weekStart string, timezone string) *dto.GridResponse {
	hours := g.Hours()
	resp := &dto.GridResponse{
		WeekStart: weekStart,
		Timezone:  timezone,
		Days:      make([]dto.GridDay, 0),
		Merged:    make([]dto.RangeResult, 0),
	}
	if len(hours) > 0 {
		resp.FirstHour = hours[0]
		resp.LastHour = hours[len(hours)-1] + 1
	}

	for _, row := range g.Cells() {
		if len(row) == 0 {
			continue
		}
		day, _ := interval.ParseDate(row[0].Date)
		gd := dto.GridDay{
			Date:    row[0].Date,
			Weekday: strings.ToLower(day.Weekday().String()),
			Cells:   make([]dto.GridCell, 0, len(row)),
		}
		for _, c := range row {
			cell := dto.GridCell{
				Hour:     c.Hour,
				Label:    fmt.Sprintf("%02d:00", c.Hour),
				Instant:  c.Instant,
				Selected: c.Selected,
				Occupied: c.Occupied,
				Past:     c.Past,
				Blackout: c.Blackout,
				Partial:  c.Partial,
			}
			if c.OccupiedBy != nil {
				cell.OccupiedBy = c.OccupiedBy.ID
			}
			gd.Cells = append(gd.Cells, cell)
		}
		resp.Days = append(resp.Days, gd)
	}

	for _, iv := range g.Merge() {
		resp.Merged = append(resp.Merged, dto.RangeResult{Start: iv.Start, End: iv.End})
	}

	return resp
}
