package timeslot

import (
	"guest-order-api/core/cache"
	"guest-order-api/core/database"
	"guest-order-api/core/middleware"
	"guest-order-api/modules/timeslot/controller"
	"guest-order-api/modules/timeslot/repository"
	"guest-order-api/modules/timeslot/router"
	"guest-order-api/modules/timeslot/service"

	"github.com/labstack/echo/v4"
)

// Init wires the time slot module and returns the pieces other modules need:
// the service (for default provisioning on signup) and the watcher registry
// (for availability snapshots).
func Init(e *echo.Group, db database.IDatabase, cache cache.Cache, mw *middleware.Middleware) (*service.TimeSlotService, *service.WatcherRegistry) {
	repo := repository.NewTimeSlotRepository(db, cache)
	svc := service.NewTimeSlotService(repo)
	registry := service.NewWatcherRegistry(repo)
	ctrl := controller.NewTimeSlotController(svc)

	router.NewTimeSlotRouter(ctrl).Register(e, mw)

	return svc, registry
}
