package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/gin-gonic/gin"
)

const guardTimeout = 2 * time.Second

type BanChecker interface {
	IsBanned(ctx context.Context, id int64) (bool, error)
}

type AdminChecker interface {
	IsAdmin(ctx context.Context, id int64) (bool, error)
}

// BanGuard отклоняет любые действия заблокированного участника. Должен стоять после AuthRequired.
func BanGuard(checker BanChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, guardTimeout)
		defer cancel()

		banned, err := checker.IsBanned(ctx, CurrentUserID(c))
		if err != nil {
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
			return
		}
		if banned {
			_ = c.AbortWithError(http.StatusForbidden, domain.ErrAccountBanned).
				SetType(gin.ErrorTypePublic).
				SetMeta("banned")
			return
		}
		c.Next()
	}
}

// AdminRequired пропускает только администраторов.
func AdminRequired(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, guardTimeout)
		defer cancel()

		isAdmin, err := checker.IsAdmin(ctx, CurrentUserID(c))
		if err != nil {
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
			return
		}
		if !isAdmin {
			_ = c.AbortWithError(http.StatusForbidden, domain.ErrForbidden).
				SetType(gin.ErrorTypePublic).
				SetMeta("forbidden")
			return
		}
		c.Next()
	}
}
