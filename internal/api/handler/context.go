package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUser extracts the session claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a positive user id
// proves the middleware ran and decoded a usable token.
func ctxUser(c echo.Context) (userID int64, username string, err error) {
	userID, _ = c.Get("user_id").(int64)
	if userID <= 0 {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ = c.Get("username").(string)
	return userID, username, nil
}
