package scheduling

import (
	"recruit-api/core/database"
	"recruit-api/core/middleware"
	"recruit-api/core/queue"
	"recruit-api/modules/scheduling/controller"
	"recruit-api/modules/scheduling/repository"
	"recruit-api/modules/scheduling/router"
	"recruit-api/modules/scheduling/service"
	"recruit-api/modules/scheduling/worker"

	"github.com/labstack/echo/v4"
)

// Init initializes the scheduling module and registers routes
func Init(e *echo.Echo, db database.IDatabase, q queue.Enqueuer, mw *middleware.Middleware, opts service.Options) {
	repo := repository.NewSchedulingRepository(db)
	svc := service.NewSchedulingService(repo, q, opts)
	ctrl := controller.NewSchedulingController(svc)
	rtr := router.NewSchedulingRouter(ctrl)

	rtr.Setup(e, mw)
}

// InitWorker registers the background handlers that record bookings on
// participant availability.
func InitWorker(srv *queue.Server, appender worker.OccupiedAppender) {
	worker.NewBlockParticipantsHandler(appender).Register(srv)
}
