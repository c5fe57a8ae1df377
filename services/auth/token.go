package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenTTL is how long an issued identity token stays valid.
const TokenTTL = time.Hour

// ErrInvalidToken covers every verification failure: bad signature, expiry,
// malformed input. Callers are not told which, on purpose.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies identity tokens binding a caller to an
// email address. Verification is purely cryptographic; there is no
// server-side revocation list.
type TokenService interface {
	Issue(email string) (string, error)
	Verify(tokenString string) (string, error)
}

// JWTTokenService signs HS256 tokens with a shared secret.
type JWTTokenService struct {
	secret []byte
}

// NewJWTTokenService creates a TokenService with the given signing secret.
func NewJWTTokenService(secret string) *JWTTokenService {
	return &JWTTokenService{secret: []byte(secret)}
}

// Issue signs a token carrying the caller's email, valid for TokenTTL.
func (s *JWTTokenService) Issue(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string and returns the email it binds.
func (s *JWTTokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}
