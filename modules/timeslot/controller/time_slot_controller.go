package controller

import (
	"guest-order-api/core/controller"
	"guest-order-api/core/errors"
	"guest-order-api/core/middleware"
	"guest-order-api/modules/timeslot/dto"
	"guest-order-api/modules/timeslot/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type TimeSlotController struct {
	service *service.TimeSlotService
	controller.BaseController
}

func NewTimeSlotController(service *service.TimeSlotService) *TimeSlotController {
	return &TimeSlotController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// List returns the tenant's time slots ordered by start time
// @Summary List time slots
// @Tags TimeSlot
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /private/time-slots [get]
func (c *TimeSlotController) List(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)
	slots, err := c.service.List(ctx.Request().Context(), token.TenantID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, slots, "Time slots retrieved successfully")
}

// Create adds a time slot
// @Summary Create time slot
// @Tags TimeSlot
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTimeSlotRequest true "Time slot"
// @Success 201 {object} map[string]interface{}
// @Router /private/time-slots [post]
func (c *TimeSlotController) Create(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)

	req := new(dto.CreateTimeSlotRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	slot, err := c.service.Create(ctx.Request().Context(), token.TenantID, req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, slot, "Time slot created successfully")
}

// Update modifies a time slot
// @Summary Update time slot
// @Tags TimeSlot
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Time slot ID"
// @Param request body dto.UpdateTimeSlotRequest true "Time slot"
// @Success 200 {object} map[string]interface{}
// @Router /private/time-slots/{id} [put]
func (c *TimeSlotController) Update(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid time slot id", nil)
	}

	req := new(dto.UpdateTimeSlotRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	slot, svcErr := c.service.Update(ctx.Request().Context(), token.TenantID, id, req)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}
	return c.SuccessResponse(ctx, slot, "Time slot updated successfully")
}

// Delete removes a time slot
// @Summary Delete time slot
// @Tags TimeSlot
// @Security BearerAuth
// @Param id path string true "Time slot ID"
// @Success 200 {object} map[string]string
// @Router /private/time-slots/{id} [delete]
func (c *TimeSlotController) Delete(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid time slot id", nil)
	}

	if err := c.service.Delete(ctx.Request().Context(), token.TenantID, id); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Time slot deleted successfully")
}
