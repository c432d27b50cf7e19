package controller

import (
	"strconv"

	"surfplan-api/core/constants"
	"surfplan-api/core/controller"
	"surfplan-api/core/errors"
	"surfplan-api/core/utils"
	"surfplan-api/modules/planner/dto"
	"surfplan-api/modules/planner/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PlannerController handles session planning HTTP requests
type PlannerController struct {
	controller.BaseController
	PlannerService service.PlannerServiceInterface
}

func NewPlannerController(svc service.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		BaseController: controller.NewBaseController(),
		PlannerService: svc,
	}
}

// getUserIDFromContext extracts user ID from JWT context
func (c *PlannerController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims.UserID, nil
}

// PlanSessions handles GET /planner/sessions
// @Summary Plan surf sessions
// @Description Ranked session windows across the user's preferred spots
// @Tags Planner
// @Security BearerAuth
// @Produce json
// @Param region query string false "Region filter"
// @Param days query int false "Horizon in days, 1-7 (default 7)"
// @Param timezone query string true "IANA timezone for the availability grid"
// @Success 200 {object} dto.PlanSessionsResponse
// @Failure 400 {object} errors.AppError
// @Router /private/planner/sessions [get]
func (c *PlannerController) PlanSessions(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	req := dto.PlanSessionsRequest{
		Region:   ctx.QueryParam("region"),
		Timezone: ctx.QueryParam("timezone"),
	}
	if raw := ctx.QueryParam("days"); raw != "" {
		days, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return c.BadRequest(errors.ErrInvalidInput, "days must be an integer")
		}
		req.Days = days
	}
	if req.Timezone == "" {
		return c.BadRequest(errors.ErrInvalidInput, "timezone is required")
	}

	result, appErr := c.PlannerService.PlanSessions(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// BriefSessions handles POST /planner/sessions/brief
// @Summary Natural-language briefing of the top sessions
// @Tags Planner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BriefRequest true "Briefing query"
// @Success 200 {object} dto.BriefResponse
// @Failure 400 {object} errors.AppError
// @Router /private/planner/sessions/brief [post]
func (c *PlannerController) BriefSessions(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.BriefRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	result, appErr := c.PlannerService.BriefSessions(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
