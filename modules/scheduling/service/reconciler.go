package service

import (
	"sort"
	"time"
)

// DefaultStep is the spacing between candidate start times.
const DefaultStep = 15 * time.Minute

// CandidateSlot is a start time at which every participant is free.
type CandidateSlot struct {
	Start          time.Time
	End            time.Time
	ParticipantIDs []string
	Score          int
}

type scoreBand struct {
	from, to int // local hours, [from, to)
	score    int
}

// scoreBands overlap; the first matching band wins.
var scoreBands = []scoreBand{
	{from: 10, to: 12, score: 100},
	{from: 14, to: 16, score: 90},
	{from: 9, to: 13, score: 85},
	{from: 16, to: 18, score: 75},
}

const defaultScore = 70

// Score rates a start time by its local hour in loc.
func Score(t time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	hour := t.In(loc).Hour()
	for _, b := range scoreBands {
		if hour >= b.from && hour < b.to {
			return b.score
		}
	}
	return defaultScore
}

// Reconciler finds the start times common to all participants. It holds no
// state between calls.
type Reconciler struct {
	Step     time.Duration
	Clock    func() time.Time
	Location *time.Location
}

// NewReconciler creates a reconciler. Zero values fall back to a 15 minute
// step, time.Now and UTC.
func NewReconciler(step time.Duration, clock func() time.Time, loc *time.Location) *Reconciler {
	if step <= 0 {
		step = DefaultStep
	}
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Reconciler{Step: step, Clock: clock, Location: loc}
}

// Reconcile returns every future start time, in time order, at which all
// participants have one interval covering the whole meeting.
func (r *Reconciler) Reconcile(participants []ParticipantAvailability, durationMinutes int) []CandidateSlot {
	slots := []CandidateSlot{}
	if len(participants) == 0 || durationMinutes <= 0 {
		return slots
	}
	d := time.Duration(durationMinutes) * time.Minute
	now := r.Clock()

	// 1. Union of start times stepped through every interval
	candidates := make(map[int64]time.Time)
	for _, p := range participants {
		for _, iv := range p.Intervals {
			if !iv.Valid() {
				continue
			}
			for t := iv.Start; !t.Add(d).After(iv.End); t = t.Add(r.Step) {
				candidates[t.UnixNano()] = t
			}
		}
	}

	ids := participantIDs(participants)

	// 2. Keep the feasible future ones
	for _, t := range candidates {
		if !t.After(now) || !feasible(participants, t, d) {
			continue
		}
		slots = append(slots, CandidateSlot{
			Start:          t,
			End:            t.Add(d),
			ParticipantIDs: append([]string(nil), ids...),
			Score:          Score(t, r.Location),
		})
	}

	// 3. Time order
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})

	return slots
}

// feasible reports whether every participant has one interval covering [t, t+d).
func feasible(participants []ParticipantAvailability, t time.Time, d time.Duration) bool {
	for _, p := range participants {
		covered := false
		for _, iv := range p.Intervals {
			if iv.Valid() && iv.Covers(t, d) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

func participantIDs(participants []ParticipantAvailability) []string {
	seen := make(map[string]struct{}, len(participants))
	ids := make([]string, 0, len(participants))
	for _, p := range participants {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)
	return ids
}
