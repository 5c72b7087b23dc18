package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims is the payload stored inside issued tokens.
type UserClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed JWTs. The signing key
// comes from configuration, never from source.
type TokenService struct {
	key      []byte
	issuer   string
	duration time.Duration
}

func NewTokenService(key []byte, issuer string, duration time.Duration) *TokenService {
	return &TokenService{key: key, issuer: issuer, duration: duration}
}

// Generate creates a signed token for the user.
func (s *TokenService) Generate(userID, username string) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Validate parses the token and verifies its signature and expiry.
func (s *TokenService) Validate(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
