package services

import (
	"crypto/rsa"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sharespace/sharespace-service/internal/core/domain"
)

const sessionTokenTTL = 24 * time.Hour

// signToken issues the session JWT attached by clients to every
// authenticated call.
func signToken(privateKey *rsa.PrivateKey, subject string, role domain.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": string(role),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(sessionTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(privateKey)
}
