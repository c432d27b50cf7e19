package controller

import (
	"surfplan-api/core/controller"
	"surfplan-api/core/errors"
	"surfplan-api/modules/spot/dto"
	"surfplan-api/modules/spot/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SpotController handles surf spot HTTP requests
type SpotController struct {
	controller.BaseController
	SpotService service.SpotServiceInterface
}

func NewSpotController(svc service.SpotServiceInterface) *SpotController {
	return &SpotController{
		BaseController: controller.NewBaseController(),
		SpotService:    svc,
	}
}

// ListSpots handles GET /spots
// @Summary List surf spots
// @Description List active surf spots, optionally filtered by region
// @Tags Spot
// @Security BearerAuth
// @Produce json
// @Param region query string false "Region filter"
// @Success 200 {array} entity.Spot
// @Router /private/spots [get]
func (c *SpotController) ListSpots(ctx echo.Context) error {
	result, appErr := c.SpotService.List(ctx.Request().Context(), ctx.QueryParam("region"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// GetSpot handles GET /spots/:id
// @Summary Get a surf spot
// @Tags Spot
// @Security BearerAuth
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} entity.Spot
// @Failure 404 {object} errors.AppError
// @Router /private/spots/{id} [get]
func (c *SpotController) GetSpot(ctx echo.Context) error {
	spotID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid spot ID")
	}

	result, appErr := c.SpotService.Get(ctx.Request().Context(), spotID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// CreateSpot handles POST /spots
// @Summary Add a surf spot
// @Tags Spot
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSpotRequest true "Spot details"
// @Success 200 {object} entity.Spot
// @Failure 400 {object} errors.AppError
// @Router /private/spots [post]
func (c *SpotController) CreateSpot(ctx echo.Context) error {
	var req dto.CreateSpotRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	result, appErr := c.SpotService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Spot created successfully")
}
