package router

import (
	"recruit-api/core/middleware"
	"recruit-api/modules/scheduling/controller"

	"github.com/labstack/echo/v4"
)

// SchedulingRouter handles scheduling routes
type SchedulingRouter struct {
	SchedulingController *controller.SchedulingController
}

// NewSchedulingRouter creates a new router
func NewSchedulingRouter(schedulingController *controller.SchedulingController) *SchedulingRouter {
	return &SchedulingRouter{
		SchedulingController: schedulingController,
	}
}

// Setup registers scheduling routes
func (r *SchedulingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	schedulingRoutes := privateRoutes.Group("/scheduling", mw.AuthMiddleware())

	schedulingRoutes.POST("/common-slots", r.SchedulingController.FindCommonSlots)
	schedulingRoutes.POST("/interviews", r.SchedulingController.BookInterview)
	schedulingRoutes.GET("/interviews/:id", r.SchedulingController.GetInterview)
}
