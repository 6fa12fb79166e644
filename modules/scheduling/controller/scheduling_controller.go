package controller

import (
	"recruit-api/core/controller"
	"recruit-api/core/errors"
	"recruit-api/modules/scheduling/dto"
	"recruit-api/modules/scheduling/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SchedulingController handles scheduling HTTP requests
type SchedulingController struct {
	controller.BaseController
	SchedulingService service.SchedulingServiceInterface
}

// NewSchedulingController creates a new controller
func NewSchedulingController(svc service.SchedulingServiceInterface) *SchedulingController {
	return &SchedulingController{
		BaseController:    controller.NewBaseController(),
		SchedulingService: svc,
	}
}

// FindCommonSlots handles POST /scheduling/common-slots
// @Summary Find common slots
// @Description Intersects candidate and interviewer availability and returns ranked slots of the requested duration
// @Tags Scheduling
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CommonSlotsRequest true "Participants and duration"
// @Success 200 {object} dto.CommonSlotsResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/scheduling/common-slots [post]
func (c *SchedulingController) FindCommonSlots(ctx echo.Context) error {
	if _, appErr := c.CurrentUserID(ctx); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	var req dto.CommonSlotsRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.SchedulingService.FindCommonSlots(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, result.Message)
}

// BookInterview handles POST /scheduling/interviews
// @Summary Book interview
// @Description Re-checks the slot against current availability and books it
// @Tags Scheduling
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BookInterviewRequest true "Interview payload"
// @Success 200 {object} dto.InterviewResponse
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /private/scheduling/interviews [post]
func (c *SchedulingController) BookInterview(ctx echo.Context) error {
	organizerID, appErr := c.CurrentUserID(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	var req dto.BookInterviewRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.SchedulingService.BookInterview(ctx.Request().Context(), organizerID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Interview booked successfully")
}

// GetInterview handles GET /scheduling/interviews/:id
// @Summary Get interview
// @Description Returns an interview booked by the caller
// @Tags Scheduling
// @Security BearerAuth
// @Produce json
// @Param id path string true "Interview ID"
// @Success 200 {object} dto.InterviewResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/scheduling/interviews/{id} [get]
func (c *SchedulingController) GetInterview(ctx echo.Context) error {
	organizerID, appErr := c.CurrentUserID(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid interview ID")
	}

	result, appErr := c.SchedulingService.GetInterview(ctx.Request().Context(), organizerID, id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
