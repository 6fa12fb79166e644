package service

import (
	"context"
	stdErrors "errors"
	"testing"
	"time"
	_ "time/tzdata"

	"recruit-api/core/cache"
	"recruit-api/core/errors"
	"recruit-api/modules/availability/dto"
	"recruit-api/modules/availability/entity"
	"recruit-api/modules/availability/repository"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func utc(day, hour, minute int) time.Time {
	return time.Date(2026, 3, day, hour, minute, 0, 0, time.UTC)
}

type fixture struct {
	svc   *AvailabilityService
	repo  *repository.MockAvailabilityRepositoryInterface
	cache *cache.MockCache
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := repository.NewMockAvailabilityRepositoryInterface(ctrl)
	c := cache.NewMockCache(ctrl)

	svc := NewAvailabilityService(repo, c, Options{
		FirstHour:       0,
		LastHour:        24,
		Days:            7,
		SaveLockTTL:     time.Minute,
		RequestTimeout:  time.Second,
		DefaultTimezone: "UTC",
		Clock:           func() time.Time { return now },
	})
	return &fixture{svc: svc, repo: repo, cache: c}
}

func (f *fixture) expectLock() {
	f.cache.EXPECT().AcquireLock(gomock.Any(), gomock.Any(), gomock.Any(), time.Minute).Return(nil)
	f.cache.EXPECT().ReleaseLock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
}

func echoUpsert(_ context.Context, a *entity.Availability) (*entity.Availability, error) {
	return a, nil
}

func TestGetAvailabilityWithoutRecord(t *testing.T) {
	f := newFixture(t, utc(1, 0, 0))
	userID := uuid.New()
	f.repo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, nil)

	resp, appErr := f.svc.GetAvailability(context.Background(), userID)
	if appErr != nil {
		t.Fatalf("GetAvailability() error: %v", appErr)
	}
	if resp.UserID != userID.String() || resp.FreeSlots == nil || len(resp.FreeSlots) != 0 {
		t.Errorf("GetAvailability() = %+v, want an empty record", resp)
	}
}

func TestGetAvailabilityFetchFailure(t *testing.T) {
	f := newFixture(t, utc(1, 0, 0))
	f.repo.EXPECT().GetByUserID(gomock.Any(), gomock.Any()).Return(nil, stdErrors.New("connection refused"))

	_, appErr := f.svc.GetAvailability(context.Background(), uuid.New())
	if appErr == nil || appErr.Code != errors.ErrGetFailed {
		t.Fatalf("GetAvailability() error = %v, want ErrGetFailed", appErr)
	}
}

func TestSaveAvailability(t *testing.T) {
	f := newFixture(t, utc(1, 0, 0))
	userID := uuid.New()
	booked := entity.OccupiedSlot{ID: "interview_1", StartTime: utc(5, 9, 0), EndTime: utc(5, 10, 0)}

	f.expectLock()
	f.repo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&entity.Availability{
		UserID:        userID,
		OccupiedSlots: entity.OccupiedSlots{booked},
	}, nil)
	f.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *entity.Availability) (*entity.Availability, error) {
		if len(a.OccupiedSlots) != 1 || a.OccupiedSlots[0].ID != "interview_1" {
			t.Errorf("occupied slots not preserved: %+v", a.OccupiedSlots)
		}
		if len(a.FreeSlots) != 1 {
			t.Fatalf("FreeSlots = %+v", a.FreeSlots)
		}
		fs := a.FreeSlots[0]
		if fs.DurationMinutes != 90 || fs.Date != "2026-03-03" || fs.Priority != entity.PriorityMedium || fs.ID == "" {
			t.Errorf("free slot = %+v", fs)
		}
		return a, nil
	})

	req := &dto.SaveAvailabilityRequest{
		FreeSlots: []dto.FreeSlotRequest{{
			StartTime: strPtr("2026-03-02T20:00:00Z"),
			EndTime:   strPtr("2026-03-02T21:30:00Z"),
		}},
		WorkingHours:  map[string][]dto.HourRange{"Monday": {{Start: "09:00", End: "17:00"}}},
		BlackoutDates: []dto.BlackoutDateRequest{{StartDate: "2026-04-01", EndDate: "2026-04-03"}},
		Rules:         &dto.SchedulingRules{Timezone: "Asia/Kolkata"},
	}

	resp, appErr := f.svc.SaveAvailability(context.Background(), userID, req)
	if appErr != nil {
		t.Fatalf("SaveAvailability() error: %v", appErr)
	}
	if len(resp.WorkingHours["monday"]) != 1 {
		t.Errorf("working hours = %+v, want a normalized monday key", resp.WorkingHours)
	}
}

func TestSaveAvailabilityValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *dto.SaveAvailabilityRequest
	}{
		{
			name: "end before start",
			req: &dto.SaveAvailabilityRequest{FreeSlots: []dto.FreeSlotRequest{{
				StartTime: strPtr("2026-03-02T10:00:00Z"), EndTime: strPtr("2026-03-02T09:00:00Z"),
			}}},
		},
		{
			name: "missing end",
			req:  &dto.SaveAvailabilityRequest{FreeSlots: []dto.FreeSlotRequest{{StartTime: strPtr("2026-03-02T10:00:00Z")}}},
		},
		{
			name: "unknown priority",
			req: &dto.SaveAvailabilityRequest{FreeSlots: []dto.FreeSlotRequest{{
				StartTime: strPtr("2026-03-02T09:00:00Z"), EndTime: strPtr("2026-03-02T10:00:00Z"), Priority: "urgent",
			}}},
		},
		{
			name: "inverted blackout",
			req:  &dto.SaveAvailabilityRequest{BlackoutDates: []dto.BlackoutDateRequest{{StartDate: "2026-03-05", EndDate: "2026-03-01"}}},
		},
		{
			name: "bad working hours",
			req:  &dto.SaveAvailabilityRequest{WorkingHours: map[string][]dto.HourRange{"monday": {{Start: "18:00", End: "09:00"}}}},
		},
		{
			name: "unknown timezone",
			req:  &dto.SaveAvailabilityRequest{Rules: &dto.SchedulingRules{Timezone: "Mars/Olympus"}},
		},
		{
			name: "negative buffer",
			req:  &dto.SaveAvailabilityRequest{Rules: &dto.SchedulingRules{BufferBeforeMinutes: -5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, utc(1, 0, 0))
			_, appErr := f.svc.SaveAvailability(context.Background(), uuid.New(), tt.req)
			if appErr == nil || appErr.Code != errors.ErrInvalidInput {
				t.Errorf("SaveAvailability() error = %v, want ErrInvalidInput", appErr)
			}
		})
	}
}

func TestSaveAvailabilityLockHeld(t *testing.T) {
	f := newFixture(t, utc(1, 0, 0))
	f.cache.EXPECT().AcquireLock(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.ErrLockHeld)

	_, appErr := f.svc.SaveAvailability(context.Background(), uuid.New(), &dto.SaveAvailabilityRequest{})
	if appErr == nil || appErr.Code != errors.ErrConflict {
		t.Fatalf("SaveAvailability() error = %v, want ErrConflict", appErr)
	}
}

func TestSaveAvailabilityWithoutRedis(t *testing.T) {
	f := newFixture(t, utc(1, 0, 0))
	f.cache.EXPECT().AcquireLock(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(stdErrors.New("dial tcp: connection refused"))
	f.repo.EXPECT().GetByUserID(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(echoUpsert)

	if _, appErr := f.svc.SaveAvailability(context.Background(), uuid.New(), &dto.SaveAvailabilityRequest{}); appErr != nil {
		t.Fatalf("SaveAvailability() error: %v", appErr)
	}
}

func TestApplyGridEdits(t *testing.T) {
	f := newFixture(t, utc(1, 0, 0))
	userID := uuid.New()

	f.expectLock()
	f.repo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, nil).Times(2)
	f.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *entity.Availability) (*entity.Availability, error) {
		if len(a.FreeSlots) != 1 {
			t.Fatalf("FreeSlots = %+v, want one merged slot", a.FreeSlots)
		}
		fs := a.FreeSlots[0]
		// 14:00-16:00 in UTC+5:30
		if !fs.StartTime.Equal(utc(3, 8, 30)) || !fs.EndTime.Equal(utc(3, 10, 30)) || fs.DurationMinutes != 120 {
			t.Errorf("free slot = %+v", fs)
		}
		if fs.Date != "2026-03-03" {
			t.Errorf("free slot date = %s", fs.Date)
		}
		return a, nil
	})

	resp, appErr := f.svc.ApplyGridEdits(context.Background(), userID, &dto.GridEditRequest{
		WeekStart: "2026-03-02",
		Timezone:  "Asia/Kolkata",
		Events: []dto.GridEvent{
			{Type: "down", Date: "2026-03-03", Hour: 14},
			{Type: "enter", Date: "2026-03-03", Hour: 15},
			{Type: "up"},
		},
	})
	if appErr != nil {
		t.Fatalf("ApplyGridEdits() error: %v", appErr)
	}
	if len(resp.FreeSlots) != 1 || resp.Grid == nil || len(resp.Grid.Merged) != 1 {
		t.Errorf("ApplyGridEdits() = %+v", resp)
	}
	if resp.Grid.Timezone != "Asia/Kolkata" {
		t.Errorf("grid timezone = %s", resp.Grid.Timezone)
	}
}

func TestApplyGridEditsRejectsBadEvents(t *testing.T) {
	tests := []struct {
		name  string
		event dto.GridEvent
	}{
		{name: "unknown type", event: dto.GridEvent{Type: "click", Date: "2026-03-03", Hour: 9}},
		{name: "outside the week", event: dto.GridEvent{Type: "down", Date: "2026-03-20", Hour: 9}},
		{name: "hour out of range", event: dto.GridEvent{Type: "down", Date: "2026-03-03", Hour: 24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, utc(1, 0, 0))
			f.expectLock()
			f.repo.EXPECT().GetByUserID(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

			_, appErr := f.svc.ApplyGridEdits(context.Background(), uuid.New(), &dto.GridEditRequest{
				WeekStart: "2026-03-02",
				Events:    []dto.GridEvent{tt.event},
			})
			if appErr == nil || appErr.Code != errors.ErrInvalidInput {
				t.Errorf("ApplyGridEdits() error = %v, want ErrInvalidInput", appErr)
			}
		})
	}
}

func TestApplyGridEditsSaveFailure(t *testing.T) {
	f := newFixture(t, utc(1, 0, 0))
	f.expectLock()
	f.repo.EXPECT().GetByUserID(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	f.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil, stdErrors.New("write failed"))

	_, appErr := f.svc.ApplyGridEdits(context.Background(), uuid.New(), &dto.GridEditRequest{
		WeekStart: "2026-03-02",
		Events:    []dto.GridEvent{{Type: "down", Date: "2026-03-03", Hour: 9}},
	})
	if appErr == nil || appErr.Code != errors.ErrUpdateFailed {
		t.Fatalf("ApplyGridEdits() error = %v, want ErrUpdateFailed", appErr)
	}
}

func TestGetGridDefaultsToCurrentWeek(t *testing.T) {
	// Wednesday
	f := newFixture(t, utc(4, 12, 0))
	f.repo.EXPECT().GetByUserID(gomock.Any(), gomock.Any()).Return(&entity.Availability{
		FreeSlots: entity.FreeSlots{{ID: "fs", StartTime: utc(5, 9, 0), EndTime: utc(5, 11, 0)}},
	}, nil)

	resp, appErr := f.svc.GetGrid(context.Background(), uuid.New(), &dto.GridQuery{})
	if appErr != nil {
		t.Fatalf("GetGrid() error: %v", appErr)
	}
	if resp.WeekStart != "2026-03-02" {
		t.Errorf("WeekStart = %s, want 2026-03-02", resp.WeekStart)
	}
	if len(resp.Days) != 7 || len(resp.Days[0].Cells) != 24 {
		t.Fatalf("grid shape = %d days", len(resp.Days))
	}
	if resp.Days[0].Weekday != "monday" {
		t.Errorf("first weekday = %s", resp.Days[0].Weekday)
	}
	thursday := resp.Days[3]
	if !thursday.Cells[9].Selected || !thursday.Cells[10].Selected || thursday.Cells[11].Selected {
		t.Errorf("thursday cells 9-11 = %v %v %v", thursday.Cells[9].Selected, thursday.Cells[10].Selected, thursday.Cells[11].Selected)
	}
	if thursday.Cells[9].Label != "09:00" {
		t.Errorf("label = %s", thursday.Cells[9].Label)
	}
	if !resp.Days[2].Cells[11].Past || resp.Days[2].Cells[13].Past {
		t.Errorf("past flags around now are wrong")
	}
}

func TestGetGridRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		query dto.GridQuery
	}{
		{name: "bad week", query: dto.GridQuery{WeekStart: "next monday"}},
		{name: "bad zone", query: dto.GridQuery{WeekStart: "2026-03-02", Timezone: "Nowhere/City"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, utc(1, 0, 0))
			f.repo.EXPECT().GetByUserID(gomock.Any(), gomock.Any()).Return(nil, nil)

			_, appErr := f.svc.GetGrid(context.Background(), uuid.New(), &tt.query)
			if appErr == nil || appErr.Code != errors.ErrInvalidInput {
				t.Errorf("GetGrid() error = %v, want ErrInvalidInput", appErr)
			}
		})
	}
}

func TestUpdateFreeSlot(t *testing.T) {
	userID := uuid.New()
	record := func() *entity.Availability {
		return &entity.Availability{
			UserID: userID,
			FreeSlots: entity.FreeSlots{{
				ID: "fs_1", StartTime: utc(3, 9, 0), EndTime: utc(3, 10, 0), DurationMinutes: 60, Priority: entity.PriorityLow,
			}},
		}
	}

	tests := []struct {
		name     string
		slotID   string
		req      *dto.UpdateFreeSlotRequest
		wantCode errors.ErrorCode
		wantDur  int
	}{
		{name: "extend end", slotID: "fs_1", req: &dto.UpdateFreeSlotRequest{EndTime: strPtr("2026-03-03T11:30:00Z")}, wantDur: 150},
		{name: "move both", slotID: "fs_1", req: &dto.UpdateFreeSlotRequest{
			StartTime: strPtr("2026-03-03T13:00:00Z"), EndTime: strPtr("2026-03-03T13:45:00Z"),
		}, wantDur: 45},
		{name: "unknown slot", slotID: "fs_9", req: &dto.UpdateFreeSlotRequest{}, wantCode: errors.ErrNotFound},
		{name: "end before start", slotID: "fs_1", req: &dto.UpdateFreeSlotRequest{EndTime: strPtr("2026-03-03T08:00:00Z")}, wantCode: errors.ErrInvalidInput},
		{name: "malformed", slotID: "fs_1", req: &dto.UpdateFreeSlotRequest{StartTime: strPtr("tomorrow")}, wantCode: errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, utc(1, 0, 0))
			f.expectLock()
			f.repo.EXPECT().GetByUserID(gomock.Any(), userID).Return(record(), nil)
			if tt.wantCode == "" {
				f.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(echoUpsert)
			}

			resp, appErr := f.svc.UpdateFreeSlot(context.Background(), userID, tt.slotID, tt.req)
			if tt.wantCode != "" {
				if appErr == nil || appErr.Code != tt.wantCode {
					t.Fatalf("UpdateFreeSlot() error = %v, want %s", appErr, tt.wantCode)
				}
				return
			}
			if appErr != nil {
				t.Fatalf("UpdateFreeSlot() error: %v", appErr)
			}
			if resp.DurationMinutes != tt.wantDur || resp.Priority != string(entity.PriorityLow) {
				t.Errorf("UpdateFreeSlot() = %+v, want duration %d", resp, tt.wantDur)
			}
		})
	}
}

func TestBlockTime(t *testing.T) {
	f := newFixture(t, utc(1, 0, 0))
	userID := uuid.New()
	slot := entity.OccupiedSlot{ID: "interview_1"}
	f.repo.EXPECT().AppendOccupied(gomock.Any(), userID, slot).Return(nil)

	if err := f.svc.BlockTime(context.Background(), userID, slot); err != nil {
		t.Fatalf("BlockTime() error: %v", err)
	}
}
