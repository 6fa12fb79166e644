package service

import (
	"testing"
	"time"
	_ "time/tzdata"

	"recruit-api/core/interval"
	"recruit-api/modules/scheduling/entity"
)

func sp(s string) *string { return &s }

func TestNormalizeCandidate(t *testing.T) {
	tests := []struct {
		name  string
		slots []*entity.CandidateFreeSlot
		want  []interval.Interval
	}{
		{
			name:  "valid slot",
			slots: []*entity.CandidateFreeSlot{{Start: sp("2026-03-02T09:00:00Z"), End: sp("2026-03-02T10:00:00Z")}},
			want:  []interval.Interval{{Start: at(2, 9, 0), End: at(2, 10, 0)}},
		},
		{
			name:  "offset converted to UTC",
			slots: []*entity.CandidateFreeSlot{{Start: sp("2026-03-02T14:00:00+05:30"), End: sp("2026-03-02T15:00:00+05:30")}},
			want:  []interval.Interval{{Start: at(2, 8, 30), End: at(2, 9, 30)}},
		},
		{
			name: "invalid entries dropped",
			slots: []*entity.CandidateFreeSlot{
				nil,
				{Start: nil, End: sp("2026-03-02T10:00:00Z")},
				{Start: sp("2026-03-02T09:00:00Z")},
				{Start: sp("yesterday"), End: sp("2026-03-02T10:00:00Z")},
				{Start: sp("2026-03-02T10:00:00Z"), End: sp("2026-03-02T10:00:00Z")},
				{Start: sp("2026-03-02T11:00:00Z"), End: sp("2026-03-02T10:00:00Z")},
				{Start: sp("2026-03-02T12:00:00Z"), End: sp("2026-03-02T13:00:00Z")},
			},
			want: []interval.Interval{{Start: at(2, 12, 0), End: at(2, 13, 0)}},
		},
		{
			name:  "no slots",
			slots: nil,
			want:  []interval.Interval{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCandidate(entity.CandidateRecord{ID: "cand", Profile: entity.CandidateProfile{FreeSlots: tt.slots}})
			if got.ID != "cand" {
				t.Errorf("ID = %s", got.ID)
			}
			assertIntervals(t, got.Intervals, tt.want)
		})
	}
}

func TestNormalizeInterviewer(t *testing.T) {
	rec := entity.InterviewerRecord{
		ID: "int",
		Availability: entity.InterviewerAvailability{FreeSlots: []*entity.InterviewerFreeSlot{
			{StartTime: sp("2026-03-02T09:00:00Z"), EndTime: sp("2026-03-02T11:00:00Z")},
			{StartTime: sp("2026-03-02T09:00:00Z"), EndTime: nil},
			nil,
			{StartTime: sp("2026-03-02T13:00:00.000Z"), EndTime: sp("2026-03-02T12:00:00Z")},
		}},
	}

	got := NormalizeInterviewer(rec)
	assertIntervals(t, got.Intervals, []interval.Interval{{Start: at(2, 9, 0), End: at(2, 11, 0)}})
}

func TestMaskBlackouts(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	week := ParticipantAvailability{ID: "p", Intervals: []interval.Interval{{Start: at(2, 0, 0), End: at(6, 0, 0)}}}

	tests := []struct {
		name      string
		blackouts []*entity.RawBlackout
		loc       *time.Location
		want      []interval.Interval
	}{
		{
			name:      "single day in UTC",
			blackouts: []*entity.RawBlackout{{StartDate: sp("2026-03-03"), EndDate: sp("2026-03-03")}},
			loc:       time.UTC,
			want: []interval.Interval{
				{Start: at(2, 0, 0), End: at(3, 0, 0)},
				{Start: at(4, 0, 0), End: at(6, 0, 0)},
			},
		},
		{
			name:      "range in a half hour zone",
			blackouts: []*entity.RawBlackout{{StartDate: sp("2026-03-03"), EndDate: sp("2026-03-04")}},
			loc:       kolkata,
			want: []interval.Interval{
				{Start: at(2, 0, 0), End: at(2, 18, 30)},
				{Start: at(4, 18, 30), End: at(6, 0, 0)},
			},
		},
		{
			name: "invalid ranges ignored",
			blackouts: []*entity.RawBlackout{
				nil,
				{StartDate: sp("2026-03-04")},
				{StartDate: sp("03/04/2026"), EndDate: sp("2026-03-04")},
				{StartDate: sp("2026-03-05"), EndDate: sp("2026-03-03")},
			},
			loc:  time.UTC,
			want: []interval.Interval{{Start: at(2, 0, 0), End: at(6, 0, 0)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskBlackouts(week, tt.blackouts, tt.loc)
			assertIntervals(t, got.Intervals, tt.want)
		})
	}
}

func TestOccupiedIntervals(t *testing.T) {
	got := OccupiedIntervals([]*entity.InterviewerOccupiedSlot{
		{ID: sp("interview_1"), StartTime: sp("2026-03-02T11:00:00Z"), EndTime: sp("2026-03-02T11:30:00Z")},
		nil,
		{StartTime: sp("2026-03-02T12:00:00Z")},
		{StartTime: sp("2026-03-02T13:00:00Z"), EndTime: sp("2026-03-02T12:00:00Z")},
	})
	assertIntervals(t, got, []interval.Interval{span(2, 11, 0, 11, 30)})
}

func TestSubtractBusy(t *testing.T) {
	free := participant("p", span(2, 10, 0, 13, 0))

	tests := []struct {
		name          string
		busy          []interval.Interval
		before, after time.Duration
		want          []interval.Interval
	}{
		{
			name: "no busy time",
			want: []interval.Interval{span(2, 10, 0, 13, 0)},
		},
		{
			name: "booked interval",
			busy: []interval.Interval{span(2, 11, 0, 11, 30)},
			want: []interval.Interval{span(2, 10, 0, 11, 0), span(2, 11, 30, 13, 0)},
		},
		{
			name:   "widened by buffers",
			busy:   []interval.Interval{span(2, 11, 0, 11, 30)},
			before: 15 * time.Minute,
			after:  15 * time.Minute,
			want:   []interval.Interval{span(2, 10, 0, 10, 45), span(2, 11, 45, 13, 0)},
		},
		{
			name:  "buffer reaching outside free time",
			busy:  []interval.Interval{span(2, 12, 30, 13, 30)},
			after: time.Hour,
			want:  []interval.Interval{span(2, 10, 0, 12, 30)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubtractBusy(free, tt.busy, tt.before, tt.after)
			if got.ID != "p" {
				t.Errorf("ID = %q", got.ID)
			}
			assertIntervals(t, got.Intervals, tt.want)
		})
	}
}

func TestMaskFullDays(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	week := participant("p", interval.Interval{Start: at(2, 0, 0), End: at(4, 0, 0)})

	tests := []struct {
		name   string
		booked []interval.Interval
		limit  int
		loc    *time.Location
		want   []interval.Interval
	}{
		{
			name:   "no limit",
			booked: []interval.Interval{span(2, 9, 0, 10, 0), span(2, 11, 0, 12, 0)},
			limit:  0,
			loc:    time.UTC,
			want:   []interval.Interval{{Start: at(2, 0, 0), End: at(4, 0, 0)}},
		},
		{
			name:   "below the limit",
			booked: []interval.Interval{span(2, 9, 0, 10, 0)},
			limit:  2,
			loc:    time.UTC,
			want:   []interval.Interval{{Start: at(2, 0, 0), End: at(4, 0, 0)}},
		},
		{
			name:   "day at the limit",
			booked: []interval.Interval{span(2, 9, 0, 10, 0), span(2, 11, 0, 12, 0), span(3, 9, 0, 10, 0)},
			limit:  2,
			loc:    time.UTC,
			want:   []interval.Interval{{Start: at(3, 0, 0), End: at(4, 0, 0)}},
		},
		{
			name:   "local day in another zone",
			booked: []interval.Interval{span(2, 20, 0, 21, 0)},
			limit:  1,
			loc:    kolkata,
			want: []interval.Interval{
				{Start: at(2, 0, 0), End: at(2, 18, 30)},
				{Start: at(3, 18, 30), End: at(4, 0, 0)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskFullDays(week, tt.booked, tt.limit, tt.loc)
			assertIntervals(t, got.Intervals, tt.want)
		})
	}
}

func assertIntervals(t *testing.T, got, want []interval.Interval) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("intervals = %v, want %v", got, want)
	}
	for i := range want {
		if !got[i].Start.Equal(want[i].Start) || !got[i].End.Equal(want[i].End) {
			t.Errorf("interval[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
