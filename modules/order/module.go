package order

import (
	"guest-order-api/core/database"
	"guest-order-api/core/middleware"
	menuService "guest-order-api/modules/menu/service"
	"guest-order-api/modules/order/controller"
	"guest-order-api/modules/order/repository"
	"guest-order-api/modules/order/router"
	"guest-order-api/modules/order/service"
	tenantService "guest-order-api/modules/tenant/service"
	tsService "guest-order-api/modules/timeslot/service"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

func Init(
	e *echo.Group,
	db database.IDatabase,
	menu *menuService.MenuService,
	registry *tsService.WatcherRegistry,
	tenants *tenantService.TenantService,
	queue *asynq.Client,
	mw *middleware.Middleware,
) *service.OrderService {
	repo := repository.NewOrderRepository(db)
	svc := service.NewOrderService(repo, menu, registry, tenants, queue)
	ctrl := controller.NewOrderController(svc)

	router.NewOrderRouter(ctrl).Register(e, mw)

	return svc
}
