package controller

import (
	"time"

	"guest-order-api/core/controller"
	"guest-order-api/core/errors"
	"guest-order-api/core/middleware"
	"guest-order-api/modules/menu/dto"
	"guest-order-api/modules/menu/entity"
	"guest-order-api/modules/menu/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type MenuController struct {
	service *service.MenuService
	controller.BaseController
}

func NewMenuController(service *service.MenuService) *MenuController {
	return &MenuController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// GetGuestMenu returns the grouped menu for the resolved tenant
// @Summary Guest menu
// @Tags Menu
// @Produce json
// @Param category query string false "breakfast, lunch, dinner or drinks"
// @Param search query string false "search term"
// @Param sub_category query string false "sub category filter"
// @Success 200 {object} map[string]interface{}
// @Router /menu [get]
func (c *MenuController) GetGuestMenu(ctx echo.Context) error {
	tenant := middleware.GetTenant(ctx)
	if tenant == nil {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrTenantNotFound, "tenant not resolved", nil))
	}

	category := entity.Category(ctx.QueryParam("category"))
	switch category {
	case "", entity.CategoryBreakfast, entity.CategoryLunch, entity.CategoryDinner, entity.CategoryDrinks:
	default:
		return c.BadRequest(errors.ErrInvalidInput, "Invalid category", nil)
	}

	menu, err := c.service.GetGuestMenu(
		ctx.Request().Context(),
		tenant.ID,
		category,
		ctx.QueryParam("search"),
		ctx.QueryParam("sub_category"),
		time.Now(),
	)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, menu, "Menu retrieved successfully")
}

// GetCurrentSpecials returns specials valid right now
// @Summary Current specials
// @Tags Menu
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /specials [get]
func (c *MenuController) GetCurrentSpecials(ctx echo.Context) error {
	tenant := middleware.GetTenant(ctx)
	if tenant == nil {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrTenantNotFound, "tenant not resolved", nil))
	}

	specials, err := c.service.GetCurrentSpecials(ctx.Request().Context(), tenant.ID, time.Now())
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, specials, "Specials retrieved successfully")
}

// ListItems returns every menu item, including unavailable ones
// @Summary List menu items
// @Tags Menu
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /private/menu-items [get]
func (c *MenuController) ListItems(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)
	items, err := c.service.ListItems(ctx.Request().Context(), token.TenantID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, items, "Menu items retrieved successfully")
}

// CreateItem adds a menu item
// @Summary Create menu item
// @Tags Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} map[string]interface{}
// @Router /private/menu-items [post]
func (c *MenuController) CreateItem(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)

	req := new(dto.CreateMenuItemRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	item, err := c.service.CreateItem(ctx.Request().Context(), token.TenantID, req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, item, "Menu item created successfully")
}

// UpdateItem modifies a menu item
// @Summary Update menu item
// @Tags Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param request body dto.UpdateMenuItemRequest true "Menu item"
// @Success 200 {object} map[string]interface{}
// @Router /private/menu-items/{id} [put]
func (c *MenuController) UpdateItem(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid menu item id", nil)
	}

	req := new(dto.UpdateMenuItemRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	item, svcErr := c.service.UpdateItem(ctx.Request().Context(), token.TenantID, id, req)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}
	return c.SuccessResponse(ctx, item, "Menu item updated successfully")
}

// DeleteItem removes a menu item unless orders reference it
// @Summary Delete menu item
// @Tags Menu
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 200 {object} map[string]string
// @Router /private/menu-items/{id} [delete]
func (c *MenuController) DeleteItem(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid menu item id", nil)
	}

	if err := c.service.DeleteItem(ctx.Request().Context(), token.TenantID, id); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Menu item deleted successfully")
}

// ListSpecials returns every special regardless of validity
// @Summary List specials
// @Tags Menu
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /private/specials [get]
func (c *MenuController) ListSpecials(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)
	specials, err := c.service.ListSpecials(ctx.Request().Context(), token.TenantID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, specials, "Specials retrieved successfully")
}

// CreateSpecial adds a daily special
// @Summary Create special
// @Tags Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSpecialRequest true "Special"
// @Success 201 {object} map[string]interface{}
// @Router /private/specials [post]
func (c *MenuController) CreateSpecial(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)

	req := new(dto.CreateSpecialRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	special, err := c.service.CreateSpecial(ctx.Request().Context(), token.TenantID, req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, special, "Special created successfully")
}

// UpdateSpecial modifies a daily special
// @Summary Update special
// @Tags Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Special ID"
// @Param request body dto.UpdateSpecialRequest true "Special"
// @Success 200 {object} map[string]interface{}
// @Router /private/specials/{id} [put]
func (c *MenuController) UpdateSpecial(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid special id", nil)
	}

	req := new(dto.UpdateSpecialRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	special, svcErr := c.service.UpdateSpecial(ctx.Request().Context(), token.TenantID, id, req)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}
	return c.SuccessResponse(ctx, special, "Special updated successfully")
}

// DeleteSpecial removes a daily special
// @Summary Delete special
// @Tags Menu
// @Security BearerAuth
// @Param id path string true "Special ID"
// @Success 200 {object} map[string]string
// @Router /private/specials/{id} [delete]
func (c *MenuController) DeleteSpecial(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid special id", nil)
	}

	if err := c.service.DeleteSpecial(ctx.Request().Context(), token.TenantID, id); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Special deleted successfully")
}

// CopySpecial duplicates a special with a fresh validity window
// @Summary Copy special
// @Tags Menu
// @Security BearerAuth
// @Produce json
// @Param id path string true "Special ID"
// @Success 201 {object} map[string]interface{}
// @Router /private/specials/{id}/copy [post]
func (c *MenuController) CopySpecial(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid special id", nil)
	}

	special, svcErr := c.service.CopySpecial(ctx.Request().Context(), token.TenantID, id)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}
	return c.CreatedResponse(ctx, special, "Special copied successfully")
}

// UploadImage stores an image and returns its public URL
// @Summary Upload image
// @Tags Menu
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} dto.UploadImageResponse
// @Router /private/menu-images [post]
func (c *MenuController) UploadImage(ctx echo.Context) error {
	token := middleware.GetTokenData(ctx)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Missing file upload", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Unable to read file upload", nil)
	}
	defer file.Close()

	url, svcErr := c.service.UploadImage(
		ctx.Request().Context(),
		token.TenantID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}
	return c.SuccessResponse(ctx, dto.UploadImageResponse{URL: url}, "Image uploaded successfully")
}
