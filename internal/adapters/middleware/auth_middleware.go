package middleware

import (
	"context"
	"crypto/rsa"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

type AuthMiddleware struct {
	publicKey *rsa.PublicKey
	denyList  ports.TokenDenyList
}

func NewAuthMiddleware(publicKey *rsa.PublicKey, denyList ports.TokenDenyList) *AuthMiddleware {
	return &AuthMiddleware{
		publicKey: publicKey,
		denyList:  denyList,
	}
}

type contextKey string

const (
	SubjectKey contextKey = "subject"
	RoleKey    contextKey = "role"
	TokenKey   contextKey = "token"
	ExpiryKey  contextKey = "expiry"
)

func (m *AuthMiddleware) RequireRole(roles []domain.Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Printf("Missing Authorization header")
			http.Error(w, "missing authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Printf("Invalid Authorization header format")
			http.Error(w, "invalid authorization header", http.StatusUnauthorized)
			return
		}

		tokenString := parts[1]

		if m.denyList != nil && m.denyList.IsDenied(r.Context(), tokenString) {
			log.Printf("Token has been revoked")
			http.Error(w, "token revoked", http.StatusUnauthorized)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.publicKey, nil
		})

		if err != nil {
			log.Printf("Token parse error: %v", err)
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		if !token.Valid {
			log.Printf("Token not valid")
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			log.Printf("Failed to extract claims")
			http.Error(w, "invalid token claims", http.StatusUnauthorized)
			return
		}

		subject, ok := claims["sub"].(string)
		if !ok || subject == "" {
			log.Printf("Missing or invalid 'sub' claim: %v", claims["sub"])
			http.Error(w, "invalid token: missing subject", http.StatusUnauthorized)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role == "" {
			log.Printf("Missing or invalid 'role' claim: %v", claims["role"])
			http.Error(w, "invalid token: missing role", http.StatusUnauthorized)
			return
		}

		allowed := false
		for _, want := range roles {
			if domain.Role(role) == want {
				allowed = true
				break
			}
		}
		if !allowed {
			log.Printf("Role mismatch: required one of %v, got %s", roles, role)
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var expiry time.Time
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			expiry = exp.Time
		}

		ctx := context.WithValue(r.Context(), SubjectKey, subject)
		ctx = context.WithValue(ctx, RoleKey, domain.Role(role))
		ctx = context.WithValue(ctx, TokenKey, tokenString)
		ctx = context.WithValue(ctx, ExpiryKey, expiry)

		next(w, r.WithContext(ctx))
	}
}
