package controller

import (
	stderrors "errors"
	"strconv"

	"surfplan-api/core/constants"
	"surfplan-api/core/controller"
	"surfplan-api/core/errors"
	"surfplan-api/modules/forecast/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ForecastController handles forecast HTTP requests
type ForecastController struct {
	controller.BaseController
	ForecastService service.ForecastServiceInterface
}

func NewForecastController(svc service.ForecastServiceInterface) *ForecastController {
	return &ForecastController{
		BaseController:  controller.NewBaseController(),
		ForecastService: svc,
	}
}

// GetSpotForecast handles GET /spots/:id/forecast
// @Summary Hourly forecast for a spot
// @Description Cached hourly marine conditions, fetched on demand when cold
// @Tags Forecast
// @Security BearerAuth
// @Produce json
// @Param id path string true "Spot ID"
// @Param hours query int false "Horizon in hours (default 72, max 168)"
// @Success 200 {array} entity.ForecastHour
// @Failure 404 {object} errors.AppError
// @Failure 503 {object} errors.AppError
// @Router /private/spots/{id}/forecast [get]
func (c *ForecastController) GetSpotForecast(ctx echo.Context) error {
	spotID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid spot ID")
	}

	horizonHours := 72
	if raw := ctx.QueryParam("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > constants.MaxWindowDays*24 {
			return c.BadRequest(errors.ErrInvalidInput, "hours must be between 1 and 168")
		}
		horizonHours = parsed
	}

	hours, err := c.ForecastService.GetSeries(ctx.Request().Context(), spotID, horizonHours)
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrSpotNotFound):
			return c.NotFound(errors.ErrNotFound, "spot not found")
		case stderrors.Is(err, service.ErrSpotNoCoordinates):
			return c.BadRequest(errors.ErrInvalidInput, "spot has no coordinates yet")
		case stderrors.Is(err, service.ErrNotYetAvailable):
			return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrForecastUnavailable, "forecast not yet available", err))
		default:
			return c.InternalServerError(errors.ErrInternalServer, "failed to load forecast")
		}
	}
	return c.SuccessResponse(ctx, hours, "Success")
}
