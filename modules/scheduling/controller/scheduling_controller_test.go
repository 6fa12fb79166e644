package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"recruit-api/core/constants"
	"recruit-api/core/middleware"
	"recruit-api/core/queue"
	"recruit-api/core/utils"
	"recruit-api/modules/scheduling/controller"
	"recruit-api/modules/scheduling/entity"
	"recruit-api/modules/scheduling/repository"
	"recruit-api/modules/scheduling/router"
	"recruit-api/modules/scheduling/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret"

func setup(t *testing.T) (*echo.Echo, *repository.MockSchedulingRepositoryInterface, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := repository.NewMockSchedulingRepositoryInterface(ctrl)

	svc := service.NewSchedulingService(repo, queue.NewMockEnqueuer(ctrl), service.Options{
		Clock: func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) },
	})

	e := echo.New()
	mw := middleware.NewMiddleware(func(token string) (*utils.TokenClaims, error) {
		return utils.ValidateTokenWithSecret(testSecret, token)
	})
	router.NewSchedulingRouter(controller.NewSchedulingController(svc)).Setup(e, mw)

	token, err := utils.GenerateTokenWithSecret(testSecret, "recruit-api", uuid.New(), nil, constants.ScopeTokenAccess, time.Hour)
	if err != nil {
		t.Fatalf("GenerateTokenWithSecret() error: %v", err)
	}
	return e, repo, token
}

func post(e *echo.Echo, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestFindCommonSlotsEndpoint(t *testing.T) {
	e, repo, token := setup(t)
	start, end := "2026-03-02T10:00:00Z", "2026-03-02T11:00:00Z"
	repo.EXPECT().GetCandidates(gomock.Any(), []string{"cand_1"}).Return([]entity.CandidateRecord{{
		ID:      "cand_1",
		Profile: entity.CandidateProfile{FreeSlots: []*entity.CandidateFreeSlot{{Start: &start, End: &end}}},
	}}, nil)
	repo.EXPECT().GetInterviewers(gomock.Any(), gomock.Any()).Return([]entity.InterviewerRecord{}, nil)
	repo.EXPECT().GetBookedInterviews(gomock.Any(), []string{"cand_1"}, gomock.Any()).Return(nil, nil)

	rec := post(e, "/api/v1/private/scheduling/common-slots", `{"candidate_ids":["cand_1"],"duration_minutes":60}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			Slots []struct {
				Start time.Time `json:"start"`
				Score int       `json:"score"`
			} `json:"slots"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data.Slots) != 1 || body.Data.Slots[0].Score != 100 {
		t.Errorf("slots = %+v", body.Data.Slots)
	}
}

func TestSchedulingEndpointErrors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		auth       bool
		wantStatus int
	}{
		{name: "no token", path: "/api/v1/private/scheduling/common-slots", body: `{}`, wantStatus: http.StatusUnauthorized},
		{name: "malformed body", path: "/api/v1/private/scheduling/common-slots", body: `[`, auth: true, wantStatus: http.StatusBadRequest},
		{name: "bad timezone", path: "/api/v1/private/scheduling/common-slots", body: `{"timezone":"Nowhere/Town"}`, auth: true, wantStatus: http.StatusBadRequest},
		{name: "booking without participants", path: "/api/v1/private/scheduling/interviews", body: `{"start_time":"2026-03-02T10:00:00Z","duration_minutes":30}`, auth: true, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, token := setup(t)
			if !tt.auth {
				token = ""
			}
			rec := post(e, tt.path, tt.body, token)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body = %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}
