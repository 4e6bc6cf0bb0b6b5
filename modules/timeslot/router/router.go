package router

import (
	"guest-order-api/core/middleware"
	"guest-order-api/modules/timeslot/controller"

	"github.com/labstack/echo/v4"
)

type TimeSlotRouter struct {
	controller *controller.TimeSlotController
}

func NewTimeSlotRouter(controller *controller.TimeSlotController) *TimeSlotRouter {
	return &TimeSlotRouter{controller: controller}
}

func (r *TimeSlotRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	group := e.Group("/private/time-slots", mw.AuthMiddleware(), mw.RequireRole("owner", "admin"))
	group.GET("", r.controller.List)
	group.POST("", r.controller.Create)
	group.PUT("/:id", r.controller.Update)
	group.DELETE("/:id", r.controller.Delete)
}
