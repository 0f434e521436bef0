package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// walletFromContext returns the authenticated wallet address set by the auth
// middleware, or "" when the request is unauthenticated
func walletFromContext(c echo.Context) string {
	if addr, ok := c.Get("walletAddress").(string); ok {
		return addr
	}
	return ""
}

// postIDParam parses the :id route parameter as a post id
func postIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
