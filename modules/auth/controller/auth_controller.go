package controller

import (
	"guest-order-api/core/controller"
	"guest-order-api/core/errors"
	"guest-order-api/modules/auth/dto"
	"guest-order-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	service *service.AuthService
	controller.BaseController
}

func NewAuthController(service *service.AuthService) *AuthController {
	return &AuthController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// Signup registers a hotel and its owner account
// @Summary Sign up
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup"
// @Success 201 {object} dto.SignupResponse
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx echo.Context) error {
	req := new(dto.SignupRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp, err := c.service.Signup(ctx.Request().Context(), req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, resp, "Account created, check your email to verify")
}

// Verify consumes an email verification token
// @Summary Verify email
// @Tags Auth
// @Produce json
// @Param token query string true "Verification token"
// @Success 200 {object} map[string]string
// @Router /auth/verify [get]
func (c *AuthController) Verify(ctx echo.Context) error {
	token := ctx.QueryParam("token")
	if token == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Missing verification token", nil)
	}

	if err := c.service.Verify(ctx.Request().Context(), token); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Email verified, your hotel is now active")
}

// Signin exchanges credentials for an access token
// @Summary Sign in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SigninRequest true "Signin"
// @Success 200 {object} dto.SigninResponse
// @Router /auth/signin [post]
func (c *AuthController) Signin(ctx echo.Context) error {
	req := new(dto.SigninRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp, err := c.service.Signin(ctx.Request().Context(), req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Signed in successfully")
}
