package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type SupportHandler struct {
	support SupportServicer
}

func NewSupportHandler(support SupportServicer) *SupportHandler {
	return &SupportHandler{support: support}
}

type OpenTicketParams struct {
	Message string `binding:"required,max_bytes=4000" json:"message"`
}

type TicketResponse struct {
	ID        int64     `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Create POST RouteGroup + SupportTicketsRoute.
func (h *SupportHandler) Create(c *gin.Context) {
	var params OpenTicketParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ticket, err := h.support.OpenTicket(reqCtx, getUserIDFromContext(c), params.Message)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, TicketResponse{
		ID:        ticket.ID,
		Status:    string(ticket.Status),
		CreatedAt: ticket.CreatedAt,
	})
}
