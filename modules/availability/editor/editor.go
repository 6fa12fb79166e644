package editor

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"recruit-api/core/interval"
	"recruit-api/core/utils"
	"recruit-api/modules/availability/entity"
)

var (
	ErrInvalidGrid    = errors.New("invalid grid configuration")
	ErrCellOutOfRange = errors.New("cell is outside the visible grid")
)

// Mode is the toggle direction fixed at the start of a drag.
type Mode int

const (
	ModeSelect Mode = iota + 1
	ModeDeselect
)

func (m Mode) String() string {
	switch m {
	case ModeSelect:
		return "select"
	case ModeDeselect:
		return "deselect"
	}
	return "none"
}

// DragState is Idle when Active is false, otherwise Dragging(Mode).
type DragState struct {
	Active bool
	Mode   Mode
}

type GridConfig struct {
	// WeekStart is a calendar date; only its year, month and day are read.
	WeekStart time.Time
	Days      int
	FirstHour int
	LastHour  int
	Location  *time.Location
	Now       func() time.Time
}

// Cell is the view of one hour cell.
type Cell struct {
	Date       string               `json:"date"`
	Hour       int                  `json:"hour"`
	Instant    time.Time            `json:"instant"`
	Selected   bool                 `json:"selected"`
	Occupied   bool                 `json:"occupied"`
	Past       bool                 `json:"past"`
	Blackout   bool                 `json:"blackout"`
	// Partial marks an unselected cell that a loaded slot covers in part.
	Partial    bool                 `json:"partial"`
	OccupiedBy *entity.OccupiedSlot `json:"occupied_by,omitempty"`
}

// Inert reports whether the cell ignores pointer input.
func (c Cell) Inert() bool {
	return c.Past || c.Occupied || c.Blackout
}

// SlotDefaults fills the metadata of free slots created from new selections.
type SlotDefaults struct {
	SlotType string
	Priority entity.Priority
}

// SaveSet is what a save hands to the store.
type SaveSet struct {
	FreeSlots     entity.FreeSlots
	OccupiedSlots entity.OccupiedSlots
}

// Grid is the editing state of one user's week. Selections are kept as UTC
// hour instants; cell coordinates are local wall-clock labels in Location.
// A Grid is not safe for concurrent use.
type Grid struct {
	cfg      GridConfig
	days     []time.Time
	selected map[int64]time.Time
	occupied map[int64]*entity.OccupiedSlot
	loaded   map[[2]int64]entity.FreeSlot
	// slots that do not fit whole local hours; saved as loaded unless edited
	fixed    entity.FreeSlots

	occupiedSlots entity.OccupiedSlots
	blackouts     entity.BlackoutDates
	drag          DragState
}

func NewGrid(cfg GridConfig) (*Grid, error) {
	if cfg.Days <= 0 {
		return nil, fmt.Errorf("%w: days must be positive", ErrInvalidGrid)
	}
	if cfg.FirstHour < 0 || cfg.LastHour > 24 || cfg.FirstHour >= cfg.LastHour {
		return nil, fmt.Errorf("%w: hours %d-%d", ErrInvalidGrid, cfg.FirstHour, cfg.LastHour)
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	days := make([]time.Time, cfg.Days)
	for i := range days {
		days[i] = time.Date(cfg.WeekStart.Year(), cfg.WeekStart.Month(), cfg.WeekStart.Day()+i, 0, 0, 0, 0, time.UTC)
	}

	return &Grid{
		cfg:      cfg,
		days:     days,
		selected: make(map[int64]time.Time),
		occupied: make(map[int64]*entity.OccupiedSlot),
		loaded:   make(map[[2]int64]entity.FreeSlot),
	}, nil
}

func (g *Grid) Location() *time.Location {
	return g.cfg.Location
}

// Dates returns the visible calendar dates as YYYY-MM-DD.
func (g *Grid) Dates() []string {
	out := make([]string, len(g.days))
	for i, d := range g.days {
		out[i] = d.Format(interval.DateFormat)
	}
	return out
}

// Hours returns the visible hour labels.
func (g *Grid) Hours() []int {
	out := make([]int, 0, g.cfg.LastHour-g.cfg.FirstHour)
	for h := g.cfg.FirstHour; h < g.cfg.LastHour; h++ {
		out = append(out, h)
	}
	return out
}

// Load replaces the grid state with persisted data. Free intervals are
// expanded into hourly instants, including those outside the visible week,
// so a later save does not drop them.
func (g *Grid) Load(free entity.FreeSlots, occupied entity.OccupiedSlots, blackouts entity.BlackoutDates) {
	g.selected = make(map[int64]time.Time)
	g.occupied = make(map[int64]*entity.OccupiedSlot)
	g.loaded = make(map[[2]int64]entity.FreeSlot)
	g.fixed = entity.FreeSlots{}
	g.drag = DragState{}

	for _, fs := range free {
		iv := interval.Interval{Start: fs.StartTime.UTC(), End: fs.EndTime.UTC()}
		if !iv.Valid() {
			continue
		}
		if !g.onGrid(iv) {
			g.fixed = append(g.fixed, fs)
			continue
		}
		for _, t := range interval.HourlyInstants(iv) {
			g.selected[t.Unix()] = t
		}
		g.loaded[rangeKey(iv)] = fs
	}

	g.occupiedSlots = append(entity.OccupiedSlots{}, occupied...)
	g.blackouts = append(entity.BlackoutDates{}, blackouts...)

	// occupied records block every visible cell they overlap
	for _, day := range g.days {
		for h := g.cfg.FirstHour; h < g.cfg.LastHour; h++ {
			t := interval.LocalHour(day, h, g.cfg.Location)
			cell := interval.Interval{Start: t, End: t.Add(time.Hour)}
			for i := range g.occupiedSlots {
				occ := &g.occupiedSlots[i]
				if cell.Overlaps(interval.Interval{Start: occ.StartTime, End: occ.EndTime}) {
					g.occupied[t.Unix()] = occ
					break
				}
			}
		}
	}
}

// CellInstant maps a calendar date and an hour label, read as wall-clock time
// in the grid's location, to its UTC instant.
func (g *Grid) CellInstant(date string, hour int) (time.Time, error) {
	day, err := g.visibleDay(date, hour)
	if err != nil {
		return time.Time{}, err
	}
	return interval.LocalHour(day, hour, g.cfg.Location), nil
}

func (g *Grid) CellState(date string, hour int) (Cell, error) {
	t, err := g.CellInstant(date, hour)
	if err != nil {
		return Cell{}, err
	}
	return g.cell(date, hour, t), nil
}

// Cells returns every visible cell, day-major.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, len(g.days))
	for i, day := range g.days {
		date := day.Format(interval.DateFormat)
		row := make([]Cell, 0, g.cfg.LastHour-g.cfg.FirstHour)
		for h := g.cfg.FirstHour; h < g.cfg.LastHour; h++ {
			row = append(row, g.cell(date, h, interval.LocalHour(day, h, g.cfg.Location)))
		}
		out[i] = row
	}
	return out
}

func (g *Grid) cell(date string, hour int, t time.Time) Cell {
	_, selected := g.selected[t.Unix()]
	occ := g.occupied[t.Unix()]
	partial := !selected && g.overlapsFixed(interval.Interval{Start: t, End: t.Add(time.Hour)})
	return Cell{
		Date:       date,
		Hour:       hour,
		Instant:    t,
		Selected:   selected,
		Occupied:   occ != nil,
		Past:       !t.After(g.cfg.Now()),
		Blackout:   g.isBlackout(date),
		Partial:    partial,
		OccupiedBy: occ,
	}
}

func (g *Grid) isBlackout(date string) bool {
	for _, b := range g.blackouts {
		if b.Covers(date) {
			return true
		}
	}
	return false
}

func (g *Grid) visibleDay(date string, hour int) (time.Time, error) {
	if hour < g.cfg.FirstHour || hour >= g.cfg.LastHour {
		return time.Time{}, fmt.Errorf("%w: hour %d", ErrCellOutOfRange, hour)
	}
	for _, d := range g.days {
		if d.Format(interval.DateFormat) == strings.TrimSpace(date) {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %q", ErrCellOutOfRange, date)
}

// State returns the current drag state.
func (g *Grid) State() DragState {
	return g.drag
}

// PointerDown toggles the cell and starts a drag in the resulting mode.
// Inert cells neither toggle nor start a drag.
func (g *Grid) PointerDown(date string, hour int) error {
	c, err := g.CellState(date, hour)
	if err != nil {
		return err
	}
	g.drag = DragState{}
	if c.Inert() {
		return nil
	}

	mode := ModeSelect
	if c.Selected {
		mode = ModeDeselect
	}
	g.drag = DragState{Active: true, Mode: mode}
	g.apply(c, mode)
	return nil
}

// PointerEnter extends the active drag to the cell. It is a no-op when idle.
func (g *Grid) PointerEnter(date string, hour int) error {
	c, err := g.CellState(date, hour)
	if err != nil {
		return err
	}
	if !g.drag.Active || c.Inert() {
		return nil
	}
	g.apply(c, g.drag.Mode)
	return nil
}

func (g *Grid) PointerUp() {
	g.drag = DragState{}
}

func (g *Grid) apply(c Cell, mode Mode) {
	switch mode {
	case ModeSelect:
		g.selected[c.Instant.Unix()] = c.Instant
	case ModeDeselect:
		delete(g.selected, c.Instant.Unix())
		g.trimFixed(interval.Interval{Start: c.Instant, End: c.Instant.Add(time.Hour)})
	}
}

// onGrid reports whether iv starts and ends on whole hours of the grid's zone.
func (g *Grid) onGrid(iv interval.Interval) bool {
	start := iv.Start.In(g.cfg.Location)
	return iv.Duration()%time.Hour == 0 && start.Minute() == 0 && start.Second() == 0 && start.Nanosecond() == 0
}

func (g *Grid) overlapsFixed(cell interval.Interval) bool {
	for _, fs := range g.fixed {
		if cell.Overlaps(interval.Interval{Start: fs.StartTime.UTC(), End: fs.EndTime.UTC()}) {
			return true
		}
	}
	return false
}

// trimFixed cuts cell out of the off-grid slots. The first remaining piece of
// a slot keeps its id.
func (g *Grid) trimFixed(cell interval.Interval) {
	kept := make(entity.FreeSlots, 0, len(g.fixed))
	for _, fs := range g.fixed {
		iv := interval.Interval{Start: fs.StartTime.UTC(), End: fs.EndTime.UTC()}
		if !iv.Overlaps(cell) {
			kept = append(kept, fs)
			continue
		}
		for i, piece := range interval.Subtract([]interval.Interval{iv}, []interval.Interval{cell}) {
			trimmed := fs
			if i > 0 {
				trimmed.ID = utils.GeneratePrefixedID("fs")
			}
			_ = UpdateFreeSlotTimes(&trimmed, piece.Start, piece.End, g.cfg.Location)
			kept = append(kept, trimmed)
		}
	}
	g.fixed = kept
}

// ApplyWorkingHours selects every mutable visible cell whose whole hour lies
// inside the weekly template for that weekday.
func (g *Grid) ApplyWorkingHours(wh entity.WeeklyWorkingHours) error {
	if err := ValidateWorkingHours(wh); err != nil {
		return err
	}

	for _, day := range g.days {
		ranges := wh[strings.ToLower(day.Weekday().String())]
		if len(ranges) == 0 {
			continue
		}

		date := day.Format(interval.DateFormat)
		for _, r := range ranges {
			from, to, _ := clockRange(r)

			for h := g.cfg.FirstHour; h < g.cfg.LastHour; h++ {
				if h*60 < from || (h+1)*60 > to {
					continue
				}
				c := g.cell(date, h, interval.LocalHour(day, h, g.cfg.Location))
				if !c.Inert() {
					g.apply(c, ModeSelect)
				}
			}
		}
	}
	return nil
}

// Selected returns the selected instants in chronological order.
func (g *Grid) Selected() []time.Time {
	out := make([]time.Time, 0, len(g.selected))
	for _, t := range g.selected {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Merge run-length encodes the selection into contiguous ranges.
func (g *Grid) Merge() []interval.Interval {
	return interval.MergeHourly(g.Selected())
}

// Serialize turns the merged selection into free slot records. A range that
// matches a loaded slot keeps its id and metadata; new ranges get fresh ids.
// Off-grid slots overlapping a selected range are folded into it, the rest
// and the occupied slots are passed through untouched.
func (g *Grid) Serialize(defaults SlotDefaults) SaveSet {
	if defaults.SlotType == "" {
		defaults.SlotType = entity.SlotTypeAvailable
	}
	if !defaults.Priority.Valid() {
		defaults.Priority = entity.PriorityMedium
	}

	merged, fixed := absorbFixed(g.Merge(), g.fixed)
	free := make(entity.FreeSlots, 0, len(merged)+len(fixed))
	for _, iv := range merged {
		date, _ := interval.LocalLabel(iv.Start, g.cfg.Location)
		if prev, ok := g.loaded[rangeKey(iv)]; ok {
			prev.StartTime, prev.EndTime = iv.Start, iv.End
			prev.DurationMinutes = interval.DurationMinutes(iv)
			prev.Date = date
			free = append(free, prev)
			continue
		}
		free = append(free, entity.FreeSlot{
			ID:              utils.GeneratePrefixedID("fs"),
			StartTime:       iv.Start,
			EndTime:         iv.End,
			DurationMinutes: interval.DurationMinutes(iv),
			SlotType:        defaults.SlotType,
			Priority:        defaults.Priority,
			Date:            date,
		})
	}

	free = append(free, fixed...)
	sort.SliceStable(free, func(i, j int) bool { return free[i].StartTime.Before(free[j].StartTime) })

	return SaveSet{
		FreeSlots:     free,
		OccupiedSlots: append(entity.OccupiedSlots{}, g.occupiedSlots...),
	}
}

// UpdateFreeSlotTimes moves a slot and keeps DurationMinutes consistent.
func UpdateFreeSlotTimes(slot *entity.FreeSlot, start, end time.Time, loc *time.Location) error {
	iv := interval.Interval{Start: start.UTC(), End: end.UTC()}
	if !iv.Valid() {
		return interval.ErrNotChronological
	}
	if loc == nil {
		loc = time.UTC
	}
	slot.StartTime = iv.Start
	slot.EndTime = iv.End
	slot.DurationMinutes = interval.DurationMinutes(iv)
	slot.Date, _ = interval.LocalLabel(iv.Start, loc)
	return nil
}

var weekdays = map[string]bool{
	"sunday": true, "monday": true, "tuesday": true, "wednesday": true,
	"thursday": true, "friday": true, "saturday": true,
}

// ValidateWorkingHours checks weekday names and that every range parses with
// start before end.
func ValidateWorkingHours(wh entity.WeeklyWorkingHours) error {
	for day, ranges := range wh {
		if !weekdays[day] {
			return fmt.Errorf("working hours: unknown weekday %q", day)
		}
		for _, r := range ranges {
			if _, _, err := clockRange(r); err != nil {
				return fmt.Errorf("working hours %s: %w", day, err)
			}
		}
	}
	return nil
}

func clockRange(r entity.HourRange) (int, int, error) {
	from, err := interval.ParseClock(r.Start)
	if err != nil {
		return 0, 0, fmt.Errorf("start %q: %w", r.Start, err)
	}
	to := 24 * 60
	if strings.TrimSpace(r.End) != "24:00" {
		if to, err = interval.ParseClock(r.End); err != nil {
			return 0, 0, fmt.Errorf("end %q: %w", r.End, err)
		}
	}
	if to <= from {
		return 0, 0, fmt.Errorf("range %s-%s: %w", r.Start, r.End, interval.ErrNotChronological)
	}
	return from, to, nil
}

// absorbFixed merges every fixed slot that overlaps a range into that range,
// so a save never holds overlapping free slots. Fixed slots touching no range
// are returned unchanged.
func absorbFixed(merged []interval.Interval, fixed entity.FreeSlots) ([]interval.Interval, entity.FreeSlots) {
	ranges := append([]interval.Interval{}, merged...)
	rest := make(entity.FreeSlots, 0, len(fixed))
	for _, fs := range fixed {
		iv := interval.Interval{Start: fs.StartTime.UTC(), End: fs.EndTime.UTC()}
		absorbed := false
		for _, m := range merged {
			if m.Overlaps(iv) {
				absorbed = true
				break
			}
		}
		if absorbed {
			ranges = append(ranges, iv)
		} else {
			rest = append(rest, fs)
		}
	}
	if len(ranges) == len(merged) {
		return merged, rest
	}

	interval.Sort(ranges)
	out := ranges[:1]
	for _, iv := range ranges[1:] {
		last := &out[len(out)-1]
		if iv.Start.After(last.End) {
			out = append(out, iv)
			continue
		}
		if iv.End.After(last.End) {
			last.End = iv.End
		}
	}
	return out, rest
}

func rangeKey(iv interval.Interval) [2]int64 {
	return [2]int64{iv.Start.Unix(), iv.End.Unix()}
}
