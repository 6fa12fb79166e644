package router

import (
	"recruit-api/core/middleware"
	"recruit-api/modules/availability/controller"

	"github.com/labstack/echo/v4"
)

// AvailabilityRouter handles availability routes
type AvailabilityRouter struct {
	AvailabilityController *controller.AvailabilityController
}

// NewAvailabilityRouter creates a new router
func NewAvailabilityRouter(availabilityController *controller.AvailabilityController) *AvailabilityRouter {
	return &AvailabilityRouter{
		AvailabilityController: availabilityController,
	}
}

// Setup registers availability routes
func (r *AvailabilityRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	availabilityRoutes := privateRoutes.Group("/availability", mw.AuthMiddleware())

	// Whole record
	availabilityRoutes.GET("", r.AvailabilityController.GetAvailability)
	availabilityRoutes.PUT("", r.AvailabilityController.SaveAvailability)

	// Week grid
	availabilityRoutes.GET("/grid", r.AvailabilityController.GetGrid)
	availabilityRoutes.POST("/grid/edits", r.AvailabilityController.ApplyGridEdits)

	availabilityRoutes.PATCH("/free-slots/:id", r.AvailabilityController.UpdateFreeSlot)
}
