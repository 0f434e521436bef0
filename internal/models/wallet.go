package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// WalletClaims are custom claims extending standard jwt.RegisteredClaims. The
// address is the caller identity for every mutating ledger operation.
type WalletClaims struct {
	Address string `json:"address"`
	jwt.RegisteredClaims
}

// CreateSessionRequest defines the request body for opening a wallet session.
// Signature verification happens in the wallet layer before this service is
// reached; the ledger only needs the address.
type CreateSessionRequest struct {
	Address string `json:"address" validate:"required,eth_addr"`
}
