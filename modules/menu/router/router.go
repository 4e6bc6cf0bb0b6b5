package router

import (
	"guest-order-api/core/middleware"
	"guest-order-api/modules/menu/controller"

	"github.com/labstack/echo/v4"
)

type MenuRouter struct {
	controller *controller.MenuController
}

func NewMenuRouter(controller *controller.MenuController) *MenuRouter {
	return &MenuRouter{controller: controller}
}

func (r *MenuRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	// Guest surface, tenant-scoped by subdomain.
	e.GET("/menu", r.controller.GetGuestMenu)
	e.GET("/specials", r.controller.GetCurrentSpecials)

	admin := e.Group("/private", mw.AuthMiddleware(), mw.RequireRole("owner", "admin"))
	admin.GET("/menu-items", r.controller.ListItems)
	admin.POST("/menu-items", r.controller.CreateItem)
	admin.PUT("/menu-items/:id", r.controller.UpdateItem)
	admin.DELETE("/menu-items/:id", r.controller.DeleteItem)

	admin.GET("/specials", r.controller.ListSpecials)
	admin.POST("/specials", r.controller.CreateSpecial)
	admin.PUT("/specials/:id", r.controller.UpdateSpecial)
	admin.DELETE("/specials/:id", r.controller.DeleteSpecial)
	admin.POST("/specials/:id/copy", r.controller.CopySpecial)

	admin.POST("/menu-images", r.controller.UploadImage)
}
