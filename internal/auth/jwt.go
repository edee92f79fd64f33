package auth

import (
	"time"

	"todo-api/models"

	"github.com/dgrijalva/jwt-go"
)

// Claims is the token payload. The username travels in the standard "sub"
// claim alongside the expiry.
type Claims struct {
	jwt.StandardClaims
}

// TokenService issues and parses signed bearer tokens. Secret and TTL are
// injected at construction so tests can shrink the validity window.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService with the given signing secret and
// token lifetime.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Generate signs a token carrying the username as subject, expiring at
// now + TTL.
func (s *TokenService) Generate(username string) (string, error) {
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   username,
			ExpiresAt: time.Now().Add(s.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies a token and returns its subject. Every failure mode — bad
// signature, malformed payload, wrong signing method, missing subject,
// expiry — collapses into models.ErrInvalidToken, and no claims leak out
// alongside the error.
func (s *TokenService) Parse(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, models.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", models.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", models.ErrInvalidToken
	}
	// The library accepts exp == now; treat the boundary as expired.
	if claims.ExpiresAt <= time.Now().Unix() {
		return "", models.ErrInvalidToken
	}
	return claims.Subject, nil
}
