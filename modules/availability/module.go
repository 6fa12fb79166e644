package availability

import (
	"recruit-api/core/cache"
	"recruit-api/core/database"
	"recruit-api/core/middleware"
	"recruit-api/modules/availability/controller"
	"recruit-api/modules/availability/repository"
	"recruit-api/modules/availability/router"
	"recruit-api/modules/availability/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the availability module and registers routes. The service
// is returned so other modules can record bookings against it.
func Init(e *echo.Echo, db database.IDatabase, c cache.Cache, mw *middleware.Middleware, opts service.Options) service.AvailabilityServiceInterface {
	repo := repository.NewAvailabilityRepository(db)
	svc := service.NewAvailabilityService(repo, c, opts)
	ctrl := controller.NewAvailabilityController(svc)
	rtr := router.NewAvailabilityRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
