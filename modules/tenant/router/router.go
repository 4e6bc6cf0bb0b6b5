package router

import (
	"guest-order-api/core/middleware"
	"guest-order-api/modules/tenant/controller"

	"github.com/labstack/echo/v4"
)

type TenantRouter struct {
	controller *controller.TenantController
}

func NewTenantRouter(controller *controller.TenantController) *TenantRouter {
	return &TenantRouter{controller: controller}
}

func (r *TenantRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	e.GET("/tenant", r.controller.GetPublicConfig)

	admin := e.Group("/private/tenant", mw.AuthMiddleware(), mw.RequireRole("owner", "admin"))
	admin.GET("", r.controller.Get)
	admin.PUT("/settings", r.controller.UpdateSettings)

	owner := e.Group("/private/tenant", mw.AuthMiddleware(), mw.RequireRole("owner"))
	owner.PUT("/tier", r.controller.ChangeTier)
}
