package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/atharvabaodhankar/socio3-ledger/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// AuthHandler issues wallet session tokens. Signature verification happens in
// the wallet layer before a session is requested; this service only binds the
// claimed address into a short-lived token. That trust boundary mirrors the
// contract's msg.sender model: the ledger believes whatever identity the
// transport layer vouches for.
type AuthHandler struct {
	jwtSecret string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler() *AuthHandler {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "supersecretjwtkey"
	}
	return &AuthHandler{jwtSecret: jwtSecret}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/session", h.CreateSession)
}

// CreateSession issues a JWT carrying the wallet address
func (h *AuthHandler) CreateSession(c echo.Context) error {
	var req models.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	claims := &models.WalletClaims{
		Address: req.Address,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to sign session token")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": signed, "address": req.Address})
}
