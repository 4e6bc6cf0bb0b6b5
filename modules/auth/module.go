package auth

import (
	"guest-order-api/core/database"
	"guest-order-api/modules/auth/controller"
	"guest-order-api/modules/auth/repository"
	"guest-order-api/modules/auth/router"
	"guest-order-api/modules/auth/service"
	tenantService "guest-order-api/modules/tenant/service"
	tsService "guest-order-api/modules/timeslot/service"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, db database.IDatabase, tenants *tenantService.TenantService, slots *tsService.TimeSlotService, queue *asynq.Client) *service.AuthService {
	users := repository.NewUserRepository(db)
	svc := service.NewAuthService(users, tenants, slots, queue)
	ctrl := controller.NewAuthController(svc)

	router.NewAuthRouter(ctrl).Register(e)

	return svc
}
