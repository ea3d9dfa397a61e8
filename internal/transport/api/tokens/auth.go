// Package tokens выпускает и проверяет bearer токены участников. Токен несет только id
// пользователя; выпускает его чат-транспорт, владеющий общим секретом.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired  = errors.New("token expired")
	ErrInvalidClaims = errors.New("invalid claims")
)

type ActorClaims struct {
	jwt.RegisteredClaims
	ID int64 `json:"uid"`
}

func GenerateUserJWT(id int64, expire time.Duration, key []byte) (string, error) {
	now := time.Now()
	claims := ActorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
		ID: id,
	}
	token, err := generateJWT(claims, key)
	if err != nil {
		return "", fmt.Errorf("generating user jwt token: %s", err.Error())
	}
	return token, nil
}

// ParseActorID проверяет подпись и срок действия токена и возвращает id участника.
func ParseActorID(tokenString string, key []byte) (int64, error) {
	token, err := validateJWT(tokenString, new(ActorClaims), key)
	if err != nil {
		return 0, fmt.Errorf("validating user jwt token: %w", err)
	}

	claims, ok := token.Claims.(*ActorClaims)
	if !ok || claims.ID <= 0 {
		return 0, ErrInvalidClaims
	}
	return claims.ID, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %s", err.Error())
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	return token, nil
}
