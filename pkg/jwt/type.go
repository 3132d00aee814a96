package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds JWT manager configuration.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  []string
	TTL       time.Duration
}

// managerImpl implements IManager.
type managerImpl struct {
	secretKey []byte
	issuer    string
	audience  []string
	ttl       time.Duration
}

// Claims represents the JWT claims structure for internal callers.
type Claims struct {
	Service string `json:"service,omitempty"`
	jwt.RegisteredClaims
}
