package controller

import (
	"time"

	"guest-order-api/core/controller"
	"guest-order-api/core/errors"
	"guest-order-api/core/middleware"
	"guest-order-api/core/params"
	"guest-order-api/modules/order/dto"
	"guest-order-api/modules/order/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type OrderController struct {
	service *service.OrderService
	controller.BaseController
}

func NewOrderController(service *service.OrderService) *OrderController {
	return &OrderController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// Create places a guest order
// @Summary Place order
// @Tags Order
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Order"
// @Success 201 {object} map[string]interface{}
// @Router /orders [post]
func (c *OrderController) Create(ctx echo.Context) error {
	tenant := middleware.GetTenant(ctx)
	if tenant == nil {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrTenantNotFound, "tenant not resolved", nil))
	}

	req := new(dto.CreateOrderRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	order, err := c.service.Create(ctx.Request().Context(), tenant.ID, req, time.Now())
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, order, "Order placed successfully")
}

// List returns a page of the tenant's orders
// @Summary List orders
// @Tags Order
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Router /private/orders [get]
func (c *OrderController) List(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)
	page, err := c.service.List(ctx.Request().Context(), token.TenantID, params.NewQueryParams(ctx))
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, page, "Orders retrieved successfully")
}

// Get returns a single order with its lines
// @Summary Get order
// @Tags Order
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]interface{}
// @Router /private/orders/{id} [get]
func (c *OrderController) Get(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid order id", nil)
	}

	order, svcErr := c.service.Get(ctx.Request().Context(), token.TenantID, id)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}
	return c.SuccessResponse(ctx, order, "Order retrieved successfully")
}

// UpdateStatus advances an order through its lifecycle
// @Summary Update order status
// @Tags Order
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.UpdateStatusRequest true "Status"
// @Success 200 {object} map[string]interface{}
// @Router /private/orders/{id}/status [put]
func (c *OrderController) UpdateStatus(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid order id", nil)
	}

	req := new(dto.UpdateStatusRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	order, svcErr := c.service.UpdateStatus(ctx.Request().Context(), token.TenantID, id, req)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}
	return c.SuccessResponse(ctx, order, "Order status updated successfully")
}

// Sales returns per-item sales aggregation
// @Summary Sales analytics
// @Tags Order
// @Security BearerAuth
// @Produce json
// @Param range query string false "today, yesterday, week or month"
// @Param category query string false "all, food or drinks"
// @Success 200 {object} dto.SalesResponse
// @Router /private/analytics/sales [get]
func (c *OrderController) Sales(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)

	query := new(dto.SalesQuery)
	if err := ctx.Bind(query); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid query parameters", nil)
	}
	if err := ctx.Validate(query); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp, err := c.service.Sales(ctx.Request().Context(), token.TenantID, query, time.Now())
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Sales retrieved successfully")
}
