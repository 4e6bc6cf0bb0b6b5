package router

import (
	"guest-order-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{controller: controller}
}

func (r *AuthRouter) Register(e *echo.Group) {
	group := e.Group("/auth")
	group.POST("/signup", r.controller.Signup)
	group.GET("/verify", r.controller.Verify)
	group.POST("/signin", r.controller.Signin)
}
