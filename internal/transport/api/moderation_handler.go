package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	QueueListings    = "listings"
	QueueSellers     = "sellers"
	QueueWithdrawals = "withdrawals"
	QueueTickets     = "tickets"
)

var errUnknownQueue = errors.New("unknown moderation queue")

type ModerationHandler struct {
	queues map[string]Moderator
}

func NewModerationHandler(queues map[string]Moderator) *ModerationHandler {
	return &ModerationHandler{queues: queues}
}

type moderationURI struct {
	Queue string `binding:"required"       uri:"queue"`
	ID    int64  `binding:"required,min=1" uri:"id"`
}

// bindTarget разбирает очередь и id элемента. При ошибке запрос уже прерван.
func (h *ModerationHandler) bindTarget(c *gin.Context) (Moderator, int64, bool) {
	var uri moderationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		abortWithBindError(c, err)
		return nil, 0, false
	}
	queue, ok := h.queues[uri.Queue]
	if !ok {
		_ = c.AbortWithError(http.StatusNotFound, errUnknownQueue).
			SetType(gin.ErrorTypePublic).
			SetMeta("not_found")
		return nil, 0, false
	}
	return queue, uri.ID, true
}

type ModerationResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// Claim POST RouteGroup + ModerationClaimRoute. Захватывает элемент за текущим ревьюером.
func (h *ModerationHandler) Claim(c *gin.Context) {
	queue, itemID, ok := h.bindTarget(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := queue.Claim(reqCtx, itemID, getUserIDFromContext(c)); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModerationResponse{ID: itemID, Status: "claimed"})
}

type DecideParams struct {
	Verdict string `binding:"required,oneof=approve reject" json:"verdict"`
	Note    string `binding:"max_bytes=4000"                json:"note"`
}

// Decide POST RouteGroup + ModerationDecideRoute. Решение может принять только владелец захвата.
func (h *ModerationHandler) Decide(c *gin.Context) {
	queue, itemID, ok := h.bindTarget(c)
	if !ok {
		return
	}
	var params DecideParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	verdict := domain.VerdictType(params.Verdict)
	if err := queue.Decide(reqCtx, itemID, getUserIDFromContext(c), verdict, params.Note); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModerationResponse{ID: itemID, Status: string(verdict)})
}
