package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// QueryParams holds pagination read from the request.
type QueryParams struct {
	PageNumber int
	PageSize   int
}

// NewQueryParams reads page and limit query parameters, clamping to bounds.
func NewQueryParams(ctx echo.Context) *QueryParams {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}

	return &QueryParams{PageNumber: page, PageSize: limit}
}
