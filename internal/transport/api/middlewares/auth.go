package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fsdevblog/groph-market/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
)

var (
	ErrTokenNotExist     = errors.New("token not exist")
	ErrForeignServiceJWT = errors.New("token issued for another service")
)

const CurrentUserIDKey = "currentUserID"

func bearerToken(c *gin.Context) (string, error) {
	tokenHeader := c.GetHeader("Authorization")
	const bearer = "Bearer "

	if !strings.HasPrefix(tokenHeader, bearer) {
		return "", ErrTokenNotExist
	}
	return tokenHeader[len(bearer):], nil
}

// checkAuthorization извлекает токен из заголовка Authorization и возвращает id участника. Если токен не передан,
// вернется ошибка ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (int64, error) {
	token, err := bearerToken(c)
	if err != nil {
		return 0, err
	}

	id, err := tokens.ParseActorID(token, jwtTokenSecret)
	if err != nil {
		return 0, fmt.Errorf("check authorization: %w", err)
	}
	return id, nil
}

// AuthRequired проверяет, что запрос авторизован. Записывает в контекст (поле CurrentUserIDKey) id участника.
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			_ = c.AbortWithError(http.StatusUnauthorized, err).SetType(gin.ErrorTypePrivate)
			return
		}
		c.Set(CurrentUserIDKey, id)
		c.Next()
	}
}

// CurrentUserID id участника, установленный AuthRequired. 0, если значения в контексте нет.
func CurrentUserID(c *gin.Context) int64 {
	return c.GetInt64(CurrentUserIDKey)
}

// ServiceRequired пропускает только запросы внутреннего сервиса с токеном, подписанным serviceSecret,
// и с заданным subject. Токены участников подписаны другим ключом и здесь не проходят.
func ServiceRequired(serviceSecret []byte, subject string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err != nil {
			_ = c.AbortWithError(http.StatusUnauthorized, err).SetType(gin.ErrorTypePrivate)
			return
		}
		got, err := tokens.ParseServiceSubject(token, serviceSecret)
		if err != nil {
			_ = c.AbortWithError(http.StatusUnauthorized, fmt.Errorf("check service authorization: %w", err)).
				SetType(gin.ErrorTypePrivate)
			return
		}
		if got != subject {
			_ = c.AbortWithError(http.StatusForbidden, ErrForeignServiceJWT).SetType(gin.ErrorTypePrivate)
			return
		}
		c.Next()
	}
}
