package interval

import (
	"errors"
	"sort"
	"strings"
	"time"
)

const (
	// DateFormat is the calendar-date layout used for grid days and blackout ranges.
	DateFormat = "2006-01-02"
	// ClockFormat is the local time-of-day layout used by weekly working hours.
	ClockFormat = "15:04"
)

var (
	ErrMissingInstant   = errors.New("instant is missing")
	ErrMalformedInstant = errors.New("instant is not valid ISO-8601")
	ErrNotChronological = errors.New("interval end must be after start")
)

// Interval is a half-open span [Start, End) of absolute UTC instants.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Valid reports whether the interval has a positive length.
func (iv Interval) Valid() bool {
	return iv.End.After(iv.Start)
}

// Duration returns End - Start.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Covers reports whether [start, start+d) lies entirely inside the interval.
func (iv Interval) Covers(start time.Time, d time.Duration) bool {
	return !iv.Start.After(start) && !iv.End.Before(start.Add(d))
}

// Overlaps reports whether two half-open intervals share any instant.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseInstant parses an ISO-8601 timestamp and returns it in UTC.
// Timestamps without an offset are read as UTC.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrMissingInstant
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrMalformedInstant
}

// ParseInterval parses both endpoints and checks that end > start.
func ParseInterval(start, end *string) (Interval, error) {
	if start == nil || end == nil {
		return Interval{}, ErrMissingInstant
	}
	s, err := ParseInstant(*start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseInstant(*end)
	if err != nil {
		return Interval{}, err
	}
	iv := Interval{Start: s, End: e}
	if !iv.Valid() {
		return Interval{}, ErrNotChronological
	}
	return iv, nil
}

// AddMinutes adds n minutes of absolute time.
func AddMinutes(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Minute)
}

// DurationMinutes returns the whole-minute length of the interval.
func DurationMinutes(iv Interval) int {
	return int(iv.Duration() / time.Minute)
}

// HourlyInstants enumerates iv.Start, iv.Start+1h, ... strictly before iv.End.
func HourlyInstants(iv Interval) []time.Time {
	if !iv.Valid() {
		return nil
	}
	out := make([]time.Time, 0, int(iv.Duration()/time.Hour)+1)
	for t := iv.Start.UTC(); t.Before(iv.End); t = t.Add(time.Hour) {
		out = append(out, t)
	}
	return out
}

// MergeHourly run-length encodes hourly instants into the minimal set of
// contiguous ranges. Instants exactly one hour apart share a range; any gap
// starts a new one. The union of the result equals the input set.
func MergeHourly(instants []time.Time) []Interval {
	if len(instants) == 0 {
		return []Interval{}
	}

	sorted := make([]time.Time, len(instants))
	for i, t := range instants {
		sorted[i] = t.UTC()
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})

	merged := []Interval{{Start: sorted[0], End: sorted[0].Add(time.Hour)}}
	for _, t := range sorted[1:] {
		last := &merged[len(merged)-1]
		if t.Before(last.End) {
			// duplicate
			continue
		}
		if t.Equal(last.End) {
			last.End = t.Add(time.Hour)
			continue
		}
		merged = append(merged, Interval{Start: t, End: t.Add(time.Hour)})
	}
	return merged
}

// Sort orders intervals by start, then end.
func Sort(ivs []Interval) {
	sort.Slice(ivs, func(i, j int) bool {
		if ivs[i].Start.Equal(ivs[j].Start) {
			return ivs[i].End.Before(ivs[j].End)
		}
		return ivs[i].Start.Before(ivs[j].Start)
	})
}

// Subtract removes every part of ivs that overlaps any of cut.
func Subtract(ivs []Interval, cut []Interval) []Interval {
	out := make([]Interval, 0, len(ivs))
	for _, iv := range ivs {
		pieces := []Interval{iv}
		for _, c := range cut {
			next := make([]Interval, 0, len(pieces)+1)
			for _, p := range pieces {
				if !p.Overlaps(c) {
					next = append(next, p)
					continue
				}
				if p.Start.Before(c.Start) {
					next = append(next, Interval{Start: p.Start, End: c.Start})
				}
				if c.End.Before(p.End) {
					next = append(next, Interval{Start: c.End, End: p.End})
				}
			}
			pieces = next
		}
		out = append(out, pieces...)
	}
	return out
}

// LocalHour maps a calendar day and an hour-of-day label, read as wall-clock
// time in loc, to its absolute UTC instant.
func LocalHour(day time.Time, hour int, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, loc).UTC()
}

// LocalLabel is the inverse of LocalHour: the wall-clock date and hour of t in loc.
func LocalLabel(t time.Time, loc *time.Location) (string, int) {
	local := t.In(loc)
	return local.Format(DateFormat), local.Hour()
}

// ParseDate parses a YYYY-MM-DD calendar date. The result carries no zone
// meaning; only its year, month and day are used.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, strings.TrimSpace(s))
}

// LocalDay returns the [midnight, next midnight) span of a calendar day in loc.
// Days are stepped with time.Date so 23h and 25h DST days come out right.
func LocalDay(day time.Time, loc *time.Location) Interval {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	end := time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, loc)
	return Interval{Start: start.UTC(), End: end.UTC()}
}

// ParseClock parses "HH:MM" into minutes after midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockFormat, strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
