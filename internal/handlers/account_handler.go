package handlers

import (
	"net/http"

	"github.com/atharvabaodhankar/socio3-ledger/internal/repositories"
	"github.com/labstack/echo/v4"
)

// AccountHandler exposes balance reads and the development faucet
type AccountHandler struct {
	accounts     repositories.AccountRepository
	faucetAmount int64
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accounts repositories.AccountRepository, faucetAmount int64) *AccountHandler {
	return &AccountHandler{accounts: accounts, faucetAmount: faucetAmount}
}

// RegisterAccountRoutes registers account-related routes
func (h *AccountHandler) RegisterAccountRoutes(g *echo.Group) {
	g.GET("/users/:address/balance", h.GetBalance)
	g.POST("/users/:address/balance/faucet", h.Faucet)
}

// GetBalance returns the balance for an address, 0 for unknown addresses
func (h *AccountHandler) GetBalance(c echo.Context) error {
	address := c.Param("address")

	balance, err := h.accounts.GetBalance(address)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"address": address, "balance": balance})
}

// Faucet credits the configured amount to an address so tips can be exercised
// without an external funding source
func (h *AccountHandler) Faucet(c echo.Context) error {
	address := c.Param("address")

	if err := h.accounts.Credit(address, h.faucetAmount); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	balance, err := h.accounts.GetBalance(address)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"address": address, "credited": h.faucetAmount, "balance": balance})
}
