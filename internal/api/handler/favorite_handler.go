package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/innovatube/video-api/internal/api/metrics"
	"github.com/innovatube/video-api/internal/core/domain"
	"github.com/innovatube/video-api/internal/core/ports"
)

// FavoriteHandler handles HTTP requests for the favorites store. Every
// operation is scoped to the user id carried by the bearer token.
type FavoriteHandler struct {
	service ports.FavoriteService
}

func NewFavoriteHandler(service ports.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

// List handles GET /api/favorites?q=.
//
// @Summary      List the caller's favorites
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Case-insensitive substring filter on title or channel"
// @Success      200  {array}   favoriteResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	favorites, err := h.service.List(c.Request().Context(), userID, c.QueryParam("q"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toFavoriteListResponse(favorites))
}

// Add handles POST /api/favorites.
//
// @Summary      Save a video as favorite
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addFavoriteRequest  true  "Video reference"
// @Success      201   {object}  favoriteResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/favorites [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fav, err := h.service.Add(c.Request().Context(), userID, ports.AddFavoriteInput{
		VideoID:      req.VideoID,
		Title:        req.Title,
		ThumbnailURL: req.ThumbnailURL,
		ChannelTitle: req.ChannelTitle,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingVideoID) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	metrics.FavoritesMutationsTotal.WithLabelValues("add").Inc()

	return c.JSON(http.StatusCreated, toFavoriteResponse(*fav))
}

// Remove handles DELETE /api/favorites/:videoId. Removing a favorite that
// was never added still returns 204.
//
// @Summary      Remove a favorite
// @Tags         favorites
// @Security     BearerAuth
// @Param        videoId  path  string  true  "External video id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/favorites/{videoId} [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), userID, c.Param("videoId")); err != nil {
		return err
	}

	metrics.FavoritesMutationsTotal.WithLabelValues("remove").Inc()

	return c.NoContent(http.StatusNoContent)
}
