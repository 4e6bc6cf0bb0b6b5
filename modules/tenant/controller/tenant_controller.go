package controller

import (
	"guest-order-api/core/controller"
	"guest-order-api/core/errors"
	"guest-order-api/core/middleware"
	"guest-order-api/modules/tenant/dto"
	"guest-order-api/modules/tenant/service"

	"github.com/labstack/echo/v4"
)

type TenantController struct {
	service *service.TenantService
	controller.BaseController
}

func NewTenantController(service *service.TenantService) *TenantController {
	return &TenantController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// GetPublicConfig returns the storefront configuration of the resolved tenant
// @Summary Public tenant config
// @Tags Tenant
// @Produce json
// @Success 200 {object} dto.PublicTenantResponse
// @Router /tenant [get]
func (c *TenantController) GetPublicConfig(ctx echo.Context) error {
	tenant := middleware.GetTenant(ctx)
	if tenant == nil {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrTenantNotFound, "tenant not resolved", nil))
	}

	config, err := c.service.PublicConfig(ctx.Request().Context(), tenant.ID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, config, "Tenant configuration retrieved successfully")
}

// Get returns the authenticated admin's tenant
// @Summary Current tenant
// @Tags Tenant
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /private/tenant [get]
func (c *TenantController) Get(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)
	tenant, err := c.service.Get(ctx.Request().Context(), token.TenantID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, tenant, "Tenant retrieved successfully")
}

// UpdateSettings replaces the tenant's settings blob
// @Summary Update tenant settings
// @Tags Tenant
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} map[string]interface{}
// @Router /private/tenant/settings [put]
func (c *TenantController) UpdateSettings(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)

	req := new(dto.UpdateSettingsRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	tenant, err := c.service.UpdateSettings(ctx.Request().Context(), token.TenantID, req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, tenant, "Tenant settings updated successfully")
}

// ChangeTier switches the tenant's subscription tier
// @Summary Change subscription tier
// @Tags Tenant
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ChangeTierRequest true "Tier"
// @Success 200 {object} map[string]interface{}
// @Router /private/tenant/tier [put]
func (c *TenantController) ChangeTier(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)

	req := new(dto.ChangeTierRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	tenant, err := c.service.ChangeTier(ctx.Request().Context(), token.TenantID, req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, tenant, "Subscription tier updated successfully")
}
