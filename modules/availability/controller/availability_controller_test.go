package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"recruit-api/core/cache"
	"recruit-api/core/constants"
	"recruit-api/core/middleware"
	"recruit-api/core/utils"
	"recruit-api/modules/availability/controller"
	"recruit-api/modules/availability/entity"
	"recruit-api/modules/availability/repository"
	"recruit-api/modules/availability/router"
	"recruit-api/modules/availability/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret"

type testServer struct {
	e     *echo.Echo
	repo  *repository.MockAvailabilityRepositoryInterface
	cache *cache.MockCache
	user  uuid.UUID
	token string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := repository.NewMockAvailabilityRepositoryInterface(ctrl)
	c := cache.NewMockCache(ctrl)

	svc := service.NewAvailabilityService(repo, c, service.Options{
		SaveLockTTL: time.Minute,
		Clock:       func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) },
	})

	e := echo.New()
	mw := middleware.NewMiddleware(func(token string) (*utils.TokenClaims, error) {
		return utils.ValidateTokenWithSecret(testSecret, token)
	})
	router.NewAvailabilityRouter(controller.NewAvailabilityController(svc)).Setup(e, mw)

	user := uuid.New()
	token, err := utils.GenerateTokenWithSecret(testSecret, "recruit-api", user, nil, constants.ScopeTokenAccess, time.Hour)
	if err != nil {
		t.Fatalf("GenerateTokenWithSecret() error: %v", err)
	}

	return &testServer{e: e, repo: repo, cache: c, user: user, token: token}
}

func (s *testServer) do(method, path, body string, auth bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if auth {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func TestAvailabilityRequiresAuth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/private/availability", "", false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestGetAvailabilityEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.repo.EXPECT().GetByUserID(gomock.Any(), s.user).Return(nil, nil)

	rec := s.do(http.MethodGet, "/api/v1/private/availability", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			UserID    string            `json:"user_id"`
			FreeSlots []json.RawMessage `json:"free_slots"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.UserID != s.user.String() || body.Data.FreeSlots == nil {
		t.Errorf("data = %+v", body.Data)
	}
}

func TestSaveAvailabilityEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(s *testServer)
		wantStatus int
	}{
		{
			name: "saved",
			body: `{"free_slots":[{"start_time":"2026-03-03T09:00:00Z","end_time":"2026-03-03T10:00:00Z"}]}`,
			setup: func(s *testServer) {
				s.cache.EXPECT().AcquireLock(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				s.cache.EXPECT().ReleaseLock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				s.repo.EXPECT().GetByUserID(gomock.Any(), gomock.Any()).Return(nil, nil)
				s.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *entity.Availability) (*entity.Availability, error) {
					return a, nil
				})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed json",
			body:       `{"free_slots":`,
			setup:      func(s *testServer) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid slot",
			body:       `{"free_slots":[{"start_time":"2026-03-03T10:00:00Z","end_time":"2026-03-03T09:00:00Z"}]}`,
			setup:      func(s *testServer) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "save in progress",
			body: `{}`,
			setup: func(s *testServer) {
				s.cache.EXPECT().AcquireLock(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.ErrLockHeld)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			tt.setup(s)

			rec := s.do(http.MethodPut, "/api/v1/private/availability", tt.body, true)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body = %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestGetGridEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.repo.EXPECT().GetByUserID(gomock.Any(), s.user).Return(nil, nil)

	rec := s.do(http.MethodGet, "/api/v1/private/availability/grid?week_start=2026-03-02&timezone=UTC", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			WeekStart string `json:"week_start"`
			Days      []struct {
				Date string `json:"date"`
			} `json:"days"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.WeekStart != "2026-03-02" || len(body.Data.Days) != 7 || body.Data.Days[6].Date != "2026-03-08" {
		t.Errorf("grid = %+v", body.Data)
	}
}

func TestUpdateFreeSlotNotFound(t *testing.T) {
	s := newTestServer(t)
	s.cache.EXPECT().AcquireLock(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.cache.EXPECT().ReleaseLock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.repo.EXPECT().GetByUserID(gomock.Any(), s.user).Return(nil, nil)

	rec := s.do(http.MethodPatch, "/api/v1/private/availability/free-slots/missing", `{}`, true)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
