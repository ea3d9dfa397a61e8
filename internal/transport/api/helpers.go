package api

import (
	"github.com/fsdevblog/groph-market/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// getUserIDFromContext берет из контекста gin ID текущего участника. ID устанавливается в
// middlewares.AuthRequired. Если значения в контексте нет, вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	return middlewares.CurrentUserID(c)
}

type idURI struct {
	ID int64 `binding:"required,min=1" uri:"id"`
}

// bindID разбирает :id из пути. При ошибке запрос уже прерван.
func bindID(c *gin.Context) (int64, bool) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		abortWithBindError(c, err)
		return 0, false
	}
	return uri.ID, true
}

type pageQuery struct {
	Page    uint `form:"page"`
	PerPage uint `form:"per_page"`
}

type limitQuery struct {
	Limit uint `form:"limit"`
}

func bindQuery[T any](c *gin.Context) (T, bool) {
	var q T
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithBindError(c, err)
		return q, false
	}
	return q, true
}
