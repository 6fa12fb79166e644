package service

import (
	"time"

	"recruit-api/core/interval"
	"recruit-api/core/logger"
	"recruit-api/modules/scheduling/entity"
)

// ParticipantAvailability is one participant's free time in canonical form.
type ParticipantAvailability struct {
	ID        string
	Intervals []interval.Interval
}

// NormalizeCandidate converts a candidate profile into canonical intervals.
// Entries that are null, incomplete, malformed or not chronological are dropped.
func NormalizeCandidate(rec entity.CandidateRecord) ParticipantAvailability {
	pairs := make([][2]*string, 0, len(rec.Profile.FreeSlots))
	for _, fs := range rec.Profile.FreeSlots {
		if fs == nil {
			pairs = append(pairs, [2]*string{})
			continue
		}
		pairs = append(pairs, [2]*string{fs.Start, fs.End})
	}
	return normalize(rec.ID, pairs)
}

// NormalizeInterviewer converts an interviewer's free slots into canonical
// intervals, with the same dropping rules as NormalizeCandidate.
func NormalizeInterviewer(rec entity.InterviewerRecord) ParticipantAvailability {
	pairs := make([][2]*string, 0, len(rec.Availability.FreeSlots))
	for _, fs := range rec.Availability.FreeSlots {
		if fs == nil {
			pairs = append(pairs, [2]*string{})
			continue
		}
		pairs = append(pairs, [2]*string{fs.StartTime, fs.EndTime})
	}
	return normalize(rec.ID, pairs)
}

func normalize(id string, pairs [][2]*string) ParticipantAvailability {
	p := ParticipantAvailability{ID: id, Intervals: make([]interval.Interval, 0, len(pairs))}

	dropped := 0
	for _, pair := range pairs {
		iv, err := interval.ParseInterval(pair[0], pair[1])
		if err != nil {
			dropped++
			continue
		}
		p.Intervals = append(p.Intervals, iv)
	}

	if dropped > 0 {
		logger.Debug("Scheduling:Normalize:Dropped", "participant_id", id, "dropped", dropped, "kept", len(p.Intervals))
	}
	return p
}

// MaskBlackouts removes whole local days covered by blackout ranges from the
// participant's intervals. Ranges with bad dates or end before start are ignored.
func MaskBlackouts(p ParticipantAvailability, blackouts []*entity.RawBlackout, loc *time.Location) ParticipantAvailability {
	if len(blackouts) == 0 || len(p.Intervals) == 0 {
		return p
	}
	if loc == nil {
		loc = time.UTC
	}

	cut := make([]interval.Interval, 0, len(blackouts))
	for _, b := range blackouts {
		if b == nil || b.StartDate == nil || b.EndDate == nil {
			continue
		}
		start, err := interval.ParseDate(*b.StartDate)
		if err != nil {
			continue
		}
		end, err := interval.ParseDate(*b.EndDate)
		if err != nil || end.Before(start) {
			continue
		}
		cut = append(cut, interval.Interval{
			Start: interval.LocalDay(start, loc).Start,
			End:   interval.LocalDay(end, loc).End,
		})
	}
	if len(cut) == 0 {
		return p
	}

	return ParticipantAvailability{ID: p.ID, Intervals: interval.Subtract(p.Intervals, cut)}
}

// OccupiedIntervals parses an interviewer's occupied slots. Unusable entries
// are skipped.
func OccupiedIntervals(slots []*entity.InterviewerOccupiedSlot) []interval.Interval {
	out := make([]interval.Interval, 0, len(slots))
	for _, o := range slots {
		if o == nil {
			continue
		}
		iv, err := interval.ParseInterval(o.StartTime, o.EndTime)
		if err != nil {
			continue
		}
		out = append(out, iv)
	}
	return out
}

// SubtractBusy removes busy time from the participant's intervals. Each busy
// interval is first widened by before and after.
func SubtractBusy(p ParticipantAvailability, busy []interval.Interval, before, after time.Duration) ParticipantAvailability {
	if len(busy) == 0 || len(p.Intervals) == 0 {
		return p
	}

	cut := make([]interval.Interval, 0, len(busy))
	for _, b := range busy {
		cut = append(cut, interval.Interval{Start: b.Start.Add(-before), End: b.End.Add(after)})
	}
	return ParticipantAvailability{ID: p.ID, Intervals: interval.Subtract(p.Intervals, cut)}
}

// MaskFullDays removes every local day on which the participant already has
// limit interviews. A limit of zero or less disables the check.
func MaskFullDays(p ParticipantAvailability, booked []interval.Interval, limit int, loc *time.Location) ParticipantAvailability {
	if limit <= 0 || len(booked) < limit || len(p.Intervals) == 0 {
		return p
	}
	if loc == nil {
		loc = time.UTC
	}

	counts := make(map[string]int, len(booked))
	days := make(map[string]interval.Interval, len(booked))
	for _, b := range booked {
		local := b.Start.In(loc)
		key := local.Format(interval.DateFormat)
		counts[key]++
		days[key] = interval.LocalDay(local, loc)
	}

	cut := make([]interval.Interval, 0, len(counts))
	for key, n := range counts {
		if n >= limit {
			cut = append(cut, days[key])
		}
	}
	if len(cut) == 0 {
		return p
	}
	interval.Sort(cut)

	return ParticipantAvailability{ID: p.ID, Intervals: interval.Subtract(p.Intervals, cut)}
}
