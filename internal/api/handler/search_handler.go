package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/innovatube/video-api/internal/api/metrics"
	"github.com/innovatube/video-api/internal/core/domain"
	"github.com/innovatube/video-api/internal/core/ports"
)

// SearchHandler proxies video searches for authenticated users.
type SearchHandler struct {
	service ports.SearchService
}

func NewSearchHandler(service ports.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// Search handles GET /api/search?q=.
//
// @Summary      Search videos
// @Tags         search
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  true  "Search query"
// @Success      200  {array}   videoResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/search [get]
func (h *SearchHandler) Search(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	videos, err := h.service.Search(c.Request().Context(), userID, c.QueryParam("q"))
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuery) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	metrics.SearchesTotal.Inc()

	return c.JSON(http.StatusOK, toVideoListResponse(videos))
}
