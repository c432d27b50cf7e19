package controller

import (
	"net/http"

	"surfplan-api/core/constants"
	"surfplan-api/core/controller"
	"surfplan-api/core/errors"
	"surfplan-api/modules/auth/dto"
	"surfplan-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(authService service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    authService,
	}
}

// Register handles POST /auth/register
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account details"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} errors.AppError
// @Router /public/auth/register [post]
func (c *AuthController) Register(ctx echo.Context) error {
	var req dto.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	result, appErr := c.AuthService.Register(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Registered successfully")
}

// Login handles POST /auth/login
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} errors.AppError
// @Router /public/auth/login [post]
func (c *AuthController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	result, appErr := c.AuthService.Login(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Logged in successfully")
}

// RefreshToken handles POST /auth/refresh
// @Summary Rotate a refresh token into a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} errors.AppError
// @Router /public/auth/refresh [post]
func (c *AuthController) RefreshToken(ctx echo.Context) error {
	var req dto.RefreshTokenRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	result, appErr := c.AuthService.RefreshToken(ctx.Request().Context(), req.RefreshToken)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Token refreshed successfully")
}

// Logout handles POST /auth/logout
// @Summary Revoke the current access token
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /private/auth/logout [post]
func (c *AuthController) Logout(ctx echo.Context) error {
	token, ok := ctx.Get(constants.ContextBearerToken).(string)
	if !ok || token == "" {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	if appErr := c.AuthService.Logout(ctx.Request().Context(), token); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Logged out successfully")
}

// GoogleLogin handles GET /auth/google
// @Summary Redirect to the Google consent page
// @Tags Auth
// @Success 307
// @Router /public/auth/google [get]
func (c *AuthController) GoogleLogin(ctx echo.Context) error {
	url, appErr := c.AuthService.GoogleAuthURL(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return ctx.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback handles GET /auth/google/callback
// @Summary Complete the Google login flow
// @Tags Auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "OAuth state"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} errors.AppError
// @Router /public/auth/google/callback [get]
func (c *AuthController) GoogleCallback(ctx echo.Context) error {
	code := ctx.QueryParam("code")
	state := ctx.QueryParam("state")
	if code == "" || state == "" {
		return c.BadRequest(errors.ErrInvalidInput, "code and state are required")
	}

	result, appErr := c.AuthService.HandleGoogleCallback(ctx.Request().Context(), code, state)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Logged in successfully")
}
