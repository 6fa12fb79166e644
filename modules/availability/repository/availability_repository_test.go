package repository

import (
	"context"
	"testing"
	"time"

	"recruit-api/core/database"
	"recruit-api/core/testutil"
	"recruit-api/modules/availability/entity"

	"github.com/google/uuid"
)

func TestAvailabilityRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	db, cleanup := testutil.SetupPostgresContainer(ctx, t)
	defer cleanup()

	repo := NewAvailabilityRepository(database.New(db))
	userID := uuid.New()

	got, err := repo.GetByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("GetByUserID() error: %v", err)
	}
	if got != nil {
		t.Fatalf("GetByUserID() = %+v, want nil for a new user", got)
	}

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	record := entity.NewAvailability(userID)
	record.FreeSlots = entity.FreeSlots{{
		ID: "fs_1", StartTime: start, EndTime: start.Add(2 * time.Hour), DurationMinutes: 120,
		SlotType: entity.SlotTypeAvailable, Priority: entity.PriorityHigh, Date: "2026-03-02",
	}}
	record.WorkingHours = entity.WeeklyWorkingHours{"monday": {{Start: "09:00", End: "17:00"}}}
	record.Rules = entity.SchedulingRules{BufferBeforeMinutes: 10, Timezone: "Asia/Kolkata"}

	saved, err := repo.Upsert(ctx, record)
	if err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}
	if saved.ID == uuid.Nil || saved.UserID != userID {
		t.Errorf("Upsert() = %+v", saved)
	}

	occupied := entity.OccupiedSlot{
		ID: "interview_1", StartTime: start.Add(24 * time.Hour), EndTime: start.Add(25 * time.Hour),
		EventType: entity.EventTypeInterview, EventTitle: "Onsite",
	}
	for i := 0; i < 2; i++ {
		if err := repo.AppendOccupied(ctx, userID, occupied); err != nil {
			t.Fatalf("AppendOccupied() attempt %d error: %v", i, err)
		}
	}

	got, err = repo.GetByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("GetByUserID() error: %v", err)
	}
	if len(got.FreeSlots) != 1 || !got.FreeSlots[0].StartTime.Equal(start) || got.FreeSlots[0].Priority != entity.PriorityHigh {
		t.Errorf("FreeSlots = %+v", got.FreeSlots)
	}
	if len(got.OccupiedSlots) != 1 || got.OccupiedSlots[0].ID != "interview_1" {
		t.Errorf("OccupiedSlots = %+v, want a single appended slot", got.OccupiedSlots)
	}
	if got.Rules.Timezone != "Asia/Kolkata" || len(got.WorkingHours["monday"]) != 1 {
		t.Errorf("rules/working hours not stored: %+v %+v", got.Rules, got.WorkingHours)
	}

	// a second write replaces the whole record
	record.FreeSlots = entity.FreeSlots{}
	record.OccupiedSlots = got.OccupiedSlots
	if _, err := repo.Upsert(ctx, record); err != nil {
		t.Fatalf("Upsert() replace error: %v", err)
	}
	got, _ = repo.GetByUserID(ctx, userID)
	if len(got.FreeSlots) != 0 || len(got.OccupiedSlots) != 1 {
		t.Errorf("after replace = %+v", got)
	}
}

func TestAppendOccupiedCreatesRecord(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	db, cleanup := testutil.SetupPostgresContainer(ctx, t)
	defer cleanup()

	repo := NewAvailabilityRepository(database.New(db))
	userID := uuid.New()

	slot := entity.OccupiedSlot{ID: "interview_2", StartTime: time.Now().UTC(), EndTime: time.Now().UTC().Add(time.Hour)}
	if err := repo.AppendOccupied(ctx, userID, slot); err != nil {
		t.Fatalf("AppendOccupied() error: %v", err)
	}

	got, err := repo.GetByUserID(ctx, userID)
	if err != nil || got == nil {
		t.Fatalf("GetByUserID() = %v, %v", got, err)
	}
	if len(got.OccupiedSlots) != 1 || len(got.FreeSlots) != 0 {
		t.Errorf("record = %+v", got)
	}
}

func TestUpsertKeepsAppendedOccupiedSlots(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	db, cleanup := testutil.SetupPostgresContainer(ctx, t)
	defer cleanup()

	repo := NewAvailabilityRepository(database.New(db))
	userID := uuid.New()

	if _, err := repo.Upsert(ctx, entity.NewAvailability(userID)); err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}

	// an editor reads the record before the booking lands
	stale, err := repo.GetByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("GetByUserID() error: %v", err)
	}

	start := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)
	booked := entity.OccupiedSlot{
		ID: "interview_abc", StartTime: start, EndTime: start.Add(45 * time.Minute),
		EventType: entity.EventTypeInterview,
	}
	if err := repo.AppendOccupied(ctx, userID, booked); err != nil {
		t.Fatalf("AppendOccupied() error: %v", err)
	}

	stale.FreeSlots = entity.FreeSlots{{
		ID: "fs_1", StartTime: start.Add(-30 * time.Minute), EndTime: start.Add(90 * time.Minute), DurationMinutes: 120,
		SlotType: entity.SlotTypeAvailable, Priority: entity.PriorityMedium, Date: "2026-03-02",
	}}
	saved, err := repo.Upsert(ctx, stale)
	if err != nil {
		t.Fatalf("Upsert() stale error: %v", err)
	}
	if len(saved.OccupiedSlots) != 1 || saved.OccupiedSlots[0].ID != "interview_abc" {
		t.Errorf("Upsert() occupied = %+v, want the appended booking", saved.OccupiedSlots)
	}

	got, err := repo.GetByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("GetByUserID() error: %v", err)
	}
	if len(got.FreeSlots) != 1 || len(got.OccupiedSlots) != 1 {
		t.Errorf("record = %+v", got)
	}
}
