package jwt

import "fmt"

const (
	// MinSecretKeyLen is the minimum length for the HS256 secret key.
	MinSecretKeyLen = 32
)

// IManager defines the interface for JWT token generation and verification.
// Implementations are safe for concurrent use.
type IManager interface {
	GenerateToken(service string) (string, error)
	VerifyToken(tokenString string) (*Claims, error)
}

// New creates a new JWT manager with an HS256 symmetric key. Returns the interface.
func New(cfg Config) (IManager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, fmt.Errorf("secret key must be at least %d characters long, got %d", MinSecretKeyLen, len(cfg.SecretKey))
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       cfg.TTL,
	}, nil
}
