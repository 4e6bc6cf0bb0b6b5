package menu

import (
	"guest-order-api/core/database"
	"guest-order-api/core/middleware"
	"guest-order-api/core/storage"
	"guest-order-api/modules/menu/controller"
	"guest-order-api/modules/menu/repository"
	"guest-order-api/modules/menu/router"
	"guest-order-api/modules/menu/service"
	tsService "guest-order-api/modules/timeslot/service"

	"github.com/labstack/echo/v4"
)

// Init wires the menu module. The returned service is shared with the order
// module for per-line orderability checks.
func Init(e *echo.Group, db database.IDatabase, registry *tsService.WatcherRegistry, uploader *storage.Uploader, mw *middleware.Middleware) *service.MenuService {
	items := repository.NewMenuRepository(db)
	specials := repository.NewSpecialRepository(db)
	svc := service.NewMenuService(items, specials, registry, uploader)
	ctrl := controller.NewMenuController(svc)

	router.NewMenuRouter(ctrl).Register(e, mw)

	return svc
}
