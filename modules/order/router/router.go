package router

import (
	"guest-order-api/core/middleware"
	"guest-order-api/modules/order/controller"

	"github.com/labstack/echo/v4"
)

type OrderRouter struct {
	controller *controller.OrderController
}

func NewOrderRouter(controller *controller.OrderController) *OrderRouter {
	return &OrderRouter{controller: controller}
}

func (r *OrderRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	e.POST("/orders", r.controller.Create)

	admin := e.Group("/private", mw.AuthMiddleware(), mw.RequireRole("owner", "admin", "staff"))
	admin.GET("/orders", r.controller.List)
	admin.GET("/orders/:id", r.controller.Get)
	admin.PUT("/orders/:id/status", r.controller.UpdateStatus)

	analytics := e.Group("/private/analytics", mw.AuthMiddleware(), mw.RequireRole("owner", "admin"))
	analytics.GET("/sales", r.controller.Sales)
}
