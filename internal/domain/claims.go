package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

// Claims are carried by the bearer tokens that protect the /v1 API. The
// token holder is identified by the registered "sub" claim.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
