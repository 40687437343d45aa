package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

// TimeNow is swapped out in tests to freeze expiry checks.
var TimeNow = time.Now

var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")

type TokenInfo struct {
	Username string
	Subject  string
	TTL      time.Duration
}

type JWTService struct {
	issuer string
	secret []byte
}

func NewJWTService(issuer string, secret []byte) *JWTService {
	return &JWTService{
		issuer: issuer,
		secret: secret,
	}
}

// Generate builds an unsigned HS512 token carrying the subject and username
// claims, expiring after info.TTL.
func (s *JWTService) Generate(info TokenInfo) *jwt.Token {
	now := TimeNow()
	claims := jwt.MapClaims{
		"iss":      s.issuer,
		"sub":      info.Subject,
		"iat":      now.Unix(),
		"exp":      now.Add(info.TTL).Unix(),
		"username": info.Username,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
}

func (s *JWTService) Sign(token *jwt.Token) (string, error) {
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a signed token, returning its claims.
func (s *JWTService) Validate(token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt parse: %w", errors.Join(err, ErrTokenNotValid))
	}

	if !parsed.Valid {
		return nil, ErrTokenNotValid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("jwt claims type assertion failed")
	}

	if exp, ok := claims["exp"].(float64); ok {
		if int64(exp) < TimeNow().Unix() {
			return nil, fmt.Errorf("token expired at %v: %w", time.Unix(int64(exp), 0), ErrTokenExpired)
		}
	}

	return claims, nil
}
