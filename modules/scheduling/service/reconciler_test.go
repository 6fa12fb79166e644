package service

import (
	"reflect"
	"testing"
	"time"

	"recruit-api/core/interval"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2026, 3, day, hour, minute, 0, 0, time.UTC)
}

func fixedNow() time.Time { return at(1, 0, 0) }

func participant(id string, ivs ...interval.Interval) ParticipantAvailability {
	return ParticipantAvailability{ID: id, Intervals: ivs}
}

func span(day, fromHour, fromMinute, toHour, toMinute int) interval.Interval {
	return interval.Interval{Start: at(day, fromHour, fromMinute), End: at(day, toHour, toMinute)}
}

func starts(slots []CandidateSlot) []time.Time {
	out := make([]time.Time, len(slots))
	for i, s := range slots {
		out[i] = s.Start
	}
	return out
}

func TestReconcile(t *testing.T) {
	r := NewReconciler(0, fixedNow, time.UTC)

	tests := []struct {
		name         string
		participants []ParticipantAvailability
		duration     int
		want         []time.Time
	}{
		{
			name:         "no participants",
			participants: nil,
			duration:     60,
			want:         []time.Time{},
		},
		{
			name:         "zero duration",
			participants: []ParticipantAvailability{participant("a", span(2, 9, 0, 12, 0))},
			duration:     0,
			want:         []time.Time{},
		},
		{
			name:         "exact fit yields one start",
			participants: []ParticipantAvailability{participant("a", span(2, 9, 0, 10, 0))},
			duration:     60,
			want:         []time.Time{at(2, 9, 0)},
		},
		{
			name: "every participant must be free",
			participants: []ParticipantAvailability{
				participant("a", span(2, 10, 0, 12, 0)),
				participant("b", span(2, 10, 0, 12, 0)),
				participant("c", span(2, 13, 0, 14, 0)),
			},
			duration: 60,
			want:     []time.Time{},
		},
		{
			name: "overlap stepped by a quarter hour",
			participants: []ParticipantAvailability{
				participant("a", span(2, 9, 0, 12, 0)),
				participant("b", span(2, 10, 0, 13, 0)),
			},
			duration: 60,
			want:     []time.Time{at(2, 10, 0), at(2, 10, 15), at(2, 10, 30), at(2, 10, 45), at(2, 11, 0)},
		},
		{
			name: "participant without intervals blocks everything",
			participants: []ParticipantAvailability{
				participant("a", span(2, 9, 0, 12, 0)),
				participant("b"),
			},
			duration: 30,
			want:     []time.Time{},
		},
		{
			name: "overlapping intervals of one participant",
			participants: []ParticipantAvailability{
				participant("a", span(2, 9, 0, 10, 0), span(2, 9, 30, 10, 30), span(2, 9, 0, 10, 0)),
			},
			duration: 60,
			want:     []time.Time{at(2, 9, 0), at(2, 9, 30)},
		},
		{
			name: "unaligned starts come from the union",
			participants: []ParticipantAvailability{
				participant("a", span(2, 9, 0, 11, 0)),
				participant("b", span(2, 9, 10, 11, 0)),
			},
			duration: 90,
			want:     []time.Time{at(2, 9, 10), at(2, 9, 15), at(2, 9, 25), at(2, 9, 30)},
		},
		{
			name:         "past interval contributes nothing",
			participants: []ParticipantAvailability{participant("a", interval.Interval{Start: at(1, 0, 0).Add(-3 * time.Hour), End: at(1, 0, 0).Add(-time.Hour)})},
			duration:     30,
			want:         []time.Time{},
		},
		{
			name:         "start at now is excluded",
			participants: []ParticipantAvailability{participant("a", interval.Interval{Start: at(1, 0, 0), End: at(1, 1, 0)})},
			duration:     30,
			want:         []time.Time{at(1, 0, 15), at(1, 0, 30)},
		},
		{
			name:         "invalid interval ignored",
			participants: []ParticipantAvailability{participant("a", interval.Interval{Start: at(2, 10, 0), End: at(2, 9, 0)})},
			duration:     30,
			want:         []time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Reconcile(tt.participants, tt.duration)
			if got == nil {
				t.Fatal("Reconcile() = nil, want an empty slice")
			}
			gotStarts := starts(got)
			if len(gotStarts) != len(tt.want) {
				t.Fatalf("starts = %v, want %v", gotStarts, tt.want)
			}
			for i := range tt.want {
				if !gotStarts[i].Equal(tt.want[i]) {
					t.Errorf("start[%d] = %v, want %v", i, gotStarts[i], tt.want[i])
				}
				if !got[i].End.Equal(got[i].Start.Add(time.Duration(tt.duration) * time.Minute)) {
					t.Errorf("slot[%d] end = %v", i, got[i].End)
				}
			}
		})
	}
}

func TestReconcileCarriesParticipantIDs(t *testing.T) {
	r := NewReconciler(0, fixedNow, time.UTC)
	got := r.Reconcile([]ParticipantAvailability{
		participant("zoe", span(2, 9, 0, 10, 0)),
		participant("adam", span(2, 9, 0, 10, 0)),
	}, 60)

	if len(got) != 1 {
		t.Fatalf("Reconcile() = %+v", got)
	}
	if !reflect.DeepEqual(got[0].ParticipantIDs, []string{"adam", "zoe"}) {
		t.Errorf("ParticipantIDs = %v", got[0].ParticipantIDs)
	}
	if got[0].Score != 85 {
		t.Errorf("Score = %d, want 85 for 09:00", got[0].Score)
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	r := NewReconciler(0, fixedNow, time.UTC)
	participants := []ParticipantAvailability{
		participant("a", span(2, 8, 0, 18, 0), span(3, 9, 0, 12, 0)),
		participant("b", span(3, 10, 0, 17, 0), span(2, 13, 0, 16, 0)),
		participant("c", span(2, 8, 0, 20, 0), span(3, 8, 0, 20, 0)),
	}

	first := r.Reconcile(participants, 45)
	second := r.Reconcile(participants, 45)
	if len(first) == 0 {
		t.Fatal("expected common slots")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Reconcile() differs between identical calls:\n%v\n%v", first, second)
	}
	for i := 1; i < len(first); i++ {
		if !first[i-1].Start.Before(first[i].Start) {
			t.Fatalf("slots not in time order at %d", i)
		}
	}
}

func TestScore(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	tests := []struct {
		name string
		t    time.Time
		loc  *time.Location
		want int
	}{
		{name: "10:00", t: at(2, 10, 0), loc: time.UTC, want: 100},
		{name: "11:45", t: at(2, 11, 45), loc: time.UTC, want: 100},
		{name: "12:00", t: at(2, 12, 0), loc: time.UTC, want: 85},
		{name: "09:00", t: at(2, 9, 0), loc: time.UTC, want: 85},
		{name: "13:00", t: at(2, 13, 0), loc: time.UTC, want: 70},
		{name: "14:00", t: at(2, 14, 0), loc: time.UTC, want: 90},
		{name: "15:30", t: at(2, 15, 30), loc: time.UTC, want: 90},
		{name: "16:00", t: at(2, 16, 0), loc: time.UTC, want: 75},
		{name: "17:59", t: at(2, 17, 59), loc: time.UTC, want: 75},
		{name: "18:00", t: at(2, 18, 0), loc: time.UTC, want: 70},
		{name: "08:00", t: at(2, 8, 0), loc: time.UTC, want: 70},
		{name: "local hour is used", t: at(2, 4, 30), loc: kolkata, want: 100},
		{name: "nil location is UTC", t: at(2, 10, 0), loc: nil, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.t, tt.loc); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}
