package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/session"
	"github.com/gin-gonic/gin"
)

type SessionsHandler struct {
	store SessionStorer
}

func NewSessionsHandler(store SessionStorer) *SessionsHandler {
	return &SessionsHandler{store: store}
}

type chatURI struct {
	ChatID int64 `binding:"required" uri:"chat"`
}

func bindChat(c *gin.Context) (int64, bool) {
	var uri chatURI
	if err := c.ShouldBindUri(&uri); err != nil {
		abortWithBindError(c, err)
		return 0, false
	}
	return uri.ChatID, true
}

// Show GET RouteGroup + SessionRoute. Пустая карта, если сессии нет.
func (h *SessionsHandler) Show(c *gin.Context) {
	chatID, ok := bindChat(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	values, err := h.store.Get(reqCtx, getUserIDFromContext(c), chatID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

// Update PUT RouteGroup + SessionRoute. Дописывает поля в состояние и продлевает TTL.
func (h *SessionsHandler) Update(c *gin.Context) {
	chatID, ok := bindChat(c)
	if !ok {
		return
	}
	var values map[string]string
	if bindErr := c.ShouldBindJSON(&values); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	err := h.store.Set(reqCtx, getUserIDFromContext(c), chatID, values)
	if errors.Is(err, session.ErrEmptyState) {
		abortWithServiceError(c, domain.NewValidationError("session state must not be empty"))
		return
	}
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete DELETE RouteGroup + SessionRoute.
func (h *SessionsHandler) Delete(c *gin.Context) {
	chatID, ok := bindChat(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.store.Clear(reqCtx, getUserIDFromContext(c), chatID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
