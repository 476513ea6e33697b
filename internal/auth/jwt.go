package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stockops/stock-manager/internal/models"
)

var jwtSecret = []byte("super-secret-key") // overridden from config at startup

var ErrInvalidToken = errors.New("invalid session token")

// SetSecret replaces the signing secret. Call once during startup.
func SetSecret(secret string) {
	jwtSecret = []byte(secret)
}

// GenerateToken issues the session token for a logged-in user. The claims
// carry only the display name; there are no credentials to encode.
func GenerateToken(session models.Session) (string, error) {
	claims := jwt.MapClaims{
		"first_name": session.FirstName,
		"last_name":  session.LastName,
		"exp":        time.Now().Add(12 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken validates a raw token string.
func ParseToken(tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return jwtSecret, nil
	})
}

// TokenClaims extracts the claims from an Authorization header value.
func TokenClaims(authorization string) (*jwt.Token, jwt.MapClaims, error) {
	if !strings.HasPrefix(authorization, "Bearer ") {
		return nil, nil, ErrInvalidToken
	}
	token, err := ParseToken(strings.TrimPrefix(authorization, "Bearer "))
	if err != nil || !token.Valid {
		return nil, nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil, ErrInvalidToken
	}
	return token, claims, nil
}

// SessionFromRequestHeader rebuilds the session from an Authorization
// header value.
func SessionFromRequestHeader(authorization string) (models.Session, error) {
	_, claims, err := TokenClaims(authorization)
	if err != nil {
		return models.Session{}, err
	}
	session := models.Session{}
	if first, ok := claims["first_name"].(string); ok {
		session.FirstName = first
	}
	if last, ok := claims["last_name"].(string); ok {
		session.LastName = last
	}
	return session, nil
}
