package tenant

import (
	"guest-order-api/core/database"
	"guest-order-api/core/middleware"
	"guest-order-api/modules/tenant/controller"
	"guest-order-api/modules/tenant/repository"
	"guest-order-api/modules/tenant/router"
	"guest-order-api/modules/tenant/service"

	"github.com/labstack/echo/v4"
)

// NewService builds the tenant service early so the middleware stack can use
// it as its resolver before any routes are registered.
func NewService(db database.IDatabase) *service.TenantService {
	return service.NewTenantService(repository.NewTenantRepository(db))
}

func Init(e *echo.Group, svc *service.TenantService, mw *middleware.Middleware) *service.TenantService {
	ctrl := controller.NewTenantController(svc)
	router.NewTenantRouter(ctrl).Register(e, mw)
	return svc
}
