package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PaymentProviderSubject subject токена, которым платежный провайдер подтверждает оплату.
const PaymentProviderSubject = "payment-provider"

// GenerateServiceJWT выпускает токен внутреннего сервиса. Ключ должен отличаться от ключа участников.
func GenerateServiceJWT(subject string, expire time.Duration, key []byte) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
	}
	token, err := generateJWT(claims, key)
	if err != nil {
		return "", fmt.Errorf("generating service jwt token: %s", err.Error())
	}
	return token, nil
}

// ParseServiceSubject проверяет подпись и срок действия токена сервиса и возвращает его subject.
func ParseServiceSubject(tokenString string, key []byte) (string, error) {
	token, err := validateJWT(tokenString, new(jwt.RegisteredClaims), key)
	if err != nil {
		return "", fmt.Errorf("validating service jwt token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidClaims
	}
	return claims.Subject, nil
}
