package controller

import (
	"strings"

	"recruit-api/core/controller"
	"recruit-api/core/errors"
	"recruit-api/modules/availability/dto"
	"recruit-api/modules/availability/service"

	"github.com/labstack/echo/v4"
)

// AvailabilityController handles availability HTTP requests
type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityServiceInterface
}

// NewAvailabilityController creates a new controller
func NewAvailabilityController(svc service.AvailabilityServiceInterface) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: svc,
	}
}

// GetAvailability handles GET /availability
// @Summary Get availability
// @Description Returns the caller's free slots, occupied slots, working hours, blackout dates and rules
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 401 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/availability [get]
func (c *AvailabilityController) GetAvailability(ctx echo.Context) error {
	userID, appErr := c.CurrentUserID(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	result, appErr := c.AvailabilityService.GetAvailability(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// SaveAvailability handles PUT /availability
// @Summary Save availability
// @Description Replaces free slots, working hours, blackout dates and rules. Occupied slots are left untouched
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SaveAvailabilityRequest true "Availability payload"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /private/availability [put]
func (c *AvailabilityController) SaveAvailability(ctx echo.Context) error {
	userID, appErr := c.CurrentUserID(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	var req dto.SaveAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.AvailabilityService.SaveAvailability(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Availability saved successfully")
}

// GetGrid handles GET /availability/grid
// @Summary Get weekly grid
// @Description Projects the caller's availability onto an hour grid for one week
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Param week_start query string false "Week start date (YYYY-MM-DD)"
// @Param timezone query string false "IANA timezone name"
// @Success 200 {object} dto.GridResponse
// @Failure 400 {object} errors.AppError
// @Router /private/availability/grid [get]
func (c *AvailabilityController) GetGrid(ctx echo.Context) error {
	userID, appErr := c.CurrentUserID(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	var query dto.GridQuery
	if err := ctx.Bind(&query); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid query parameters")
	}

	result, appErr := c.AvailabilityService.GetGrid(ctx.Request().Context(), userID, &query)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ApplyGridEdits handles POST /availability/grid/edits
// @Summary Apply grid edits
// @Description Replays pointer events on the weekly grid and saves the merged free slots
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.GridEditRequest true "Grid events"
// @Success 200 {object} dto.GridEditResponse
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /private/availability/grid/edits [post]
func (c *AvailabilityController) ApplyGridEdits(ctx echo.Context) error {
	userID, appErr := c.CurrentUserID(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	var req dto.GridEditRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.AvailabilityService.ApplyGridEdits(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Availability saved successfully")
}

// UpdateFreeSlot handles PATCH /availability/free-slots/:id
// @Summary Update free slot times
// @Description Moves or resizes a single free slot
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Free slot ID"
// @Param request body dto.UpdateFreeSlotRequest true "New start and end time"
// @Success 200 {object} dto.FreeSlotResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/availability/free-slots/{id} [patch]
func (c *AvailabilityController) UpdateFreeSlot(ctx echo.Context) error {
	userID, appErr := c.CurrentUserID(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	slotID := strings.TrimSpace(ctx.Param("id"))
	if slotID == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid free slot ID")
	}

	var req dto.UpdateFreeSlotRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.AvailabilityService.UpdateFreeSlot(ctx.Request().Context(), userID, slotID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Free slot updated successfully")
}
