package controller

import (
	"surfplan-api/core/constants"
	"surfplan-api/core/controller"
	"surfplan-api/core/errors"
	"surfplan-api/core/utils"
	"surfplan-api/modules/preference/dto"
	"surfplan-api/modules/preference/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PreferenceController handles preference and availability HTTP requests
type PreferenceController struct {
	controller.BaseController
	PreferenceService service.PreferenceServiceInterface
}

func NewPreferenceController(svc service.PreferenceServiceInterface) *PreferenceController {
	return &PreferenceController{
		BaseController:    controller.NewBaseController(),
		PreferenceService: svc,
	}
}

// getUserIDFromContext extracts user ID from JWT context
func (c *PreferenceController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// ListPreferences handles GET /preferences
// @Summary List spot preferences
// @Tags Preference
// @Security BearerAuth
// @Produce json
// @Param region query string false "Region filter"
// @Success 200 {array} entity.SpotPreferenceView
// @Router /private/preferences [get]
func (c *PreferenceController) ListPreferences(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, listErr := c.PreferenceService.ListPreferences(ctx.Request().Context(), userID, ctx.QueryParam("region"))
	if listErr != nil {
		return c.InternalServerError(errors.ErrInternalServer, "failed to list preferences")
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// GetPreference handles GET /preferences/:spotId
// @Summary Get the preference profile for one spot
// @Tags Preference
// @Security BearerAuth
// @Produce json
// @Param spotId path string true "Spot ID"
// @Success 200 {object} entity.SpotPreference
// @Failure 404 {object} errors.AppError
// @Router /private/preferences/{spotId} [get]
func (c *PreferenceController) GetPreference(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	spotID, err := uuid.Parse(ctx.Param("spotId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid spot ID")
	}

	result, appErr := c.PreferenceService.Get(ctx.Request().Context(), userID, spotID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// UpsertPreference handles PUT /preferences/:spotId
// @Summary Create or replace the preference profile for one spot
// @Tags Preference
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param spotId path string true "Spot ID"
// @Param request body dto.UpsertPreferenceRequest true "Preference profile"
// @Success 200 {object} entity.SpotPreference
// @Failure 400 {object} errors.AppError
// @Router /private/preferences/{spotId} [put]
func (c *PreferenceController) UpsertPreference(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	spotID, err := uuid.Parse(ctx.Param("spotId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid spot ID")
	}

	var req dto.UpsertPreferenceRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	result, appErr := c.PreferenceService.Upsert(ctx.Request().Context(), userID, spotID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Preference saved successfully")
}

// DeletePreference handles DELETE /preferences/:spotId
// @Summary Remove the preference profile for one spot
// @Tags Preference
// @Security BearerAuth
// @Param spotId path string true "Spot ID"
// @Success 200 {object} map[string]string
// @Router /private/preferences/{spotId} [delete]
func (c *PreferenceController) DeletePreference(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	spotID, err := uuid.Parse(ctx.Param("spotId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid spot ID")
	}

	if appErr := c.PreferenceService.Delete(ctx.Request().Context(), userID, spotID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Preference deleted successfully")
}

// GetAvailability handles GET /availability
// @Summary Get the weekly availability grid
// @Tags Preference
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AvailabilityResponse
// @Router /private/availability [get]
func (c *PreferenceController) GetAvailability(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	slots, listErr := c.PreferenceService.ListAvailability(ctx.Request().Context(), userID)
	if listErr != nil {
		return c.InternalServerError(errors.ErrInternalServer, "failed to list availability")
	}
	return c.SuccessResponse(ctx, dto.AvailabilityResponse{Slots: slots}, "Success")
}

// SetAvailability handles PUT /availability
// @Summary Replace the weekly availability grid
// @Tags Preference
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SetAvailabilityRequest true "Weekly slots"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} errors.AppError
// @Router /private/availability [put]
func (c *PreferenceController) SetAvailability(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.SetAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	slots, appErr := c.PreferenceService.SetAvailability(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, dto.AvailabilityResponse{Slots: slots}, "Availability saved successfully")
}
