package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/gin-gonic/gin"
)

type SellerHandler struct {
	sellers     SellerServicer
	withdrawals WithdrawServicer
}

func NewSellerHandler(sellers SellerServicer, withdrawals WithdrawServicer) *SellerHandler {
	return &SellerHandler{
		sellers:     sellers,
		withdrawals: withdrawals,
	}
}

// Apply POST RouteGroup + SellerApplyRoute. Заявка на статус продавца, нужен подтвержденный телефон.
func (h *SellerHandler) Apply(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := h.sellers.Apply(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, newAccountResponse(account))
}

type WithdrawParams struct {
	Amount        int64  `binding:"required,min=1"         json:"amount"`
	Reason        string `binding:"required,max_bytes=255" json:"reason"`
	PayoutDetails string `binding:"required,payout"        json:"payout_details"`
}

type WithdrawResponse struct {
	ID            int64      `json:"id"`
	Amount        int64      `json:"amount"`
	Reason        string     `json:"reason"`
	PayoutDetails string     `json:"payout_details"`
	Status        string     `json:"status"`
	ReviewNote    *string    `json:"review_note,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
}

func newWithdrawResponse(w *domain.WithdrawRequest) WithdrawResponse {
	return WithdrawResponse{
		ID:            w.ID,
		Amount:        w.Amount,
		Reason:        w.Reason,
		PayoutDetails: w.PayoutDetails,
		Status:        string(w.Status),
		ReviewNote:    w.ReviewNote,
		CreatedAt:     w.CreatedAt,
		ReviewedAt:    w.ReviewedAt,
	}
}

// Withdraw POST RouteGroup + WithdrawalsRoute. Баланс на этом шаге только проверяется.
func (h *SellerHandler) Withdraw(c *gin.Context) {
	var params WithdrawParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	request, err := h.withdrawals.Submit(reqCtx, service.SubmitWithdrawArgs{
		UserID:        getUserIDFromContext(c),
		Amount:        params.Amount,
		Reason:        params.Reason,
		PayoutDetails: params.PayoutDetails,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newWithdrawResponse(request))
}

// Withdrawals GET RouteGroup + WithdrawalsRoute.
func (h *SellerHandler) Withdrawals(c *gin.Context) {
	q, ok := bindQuery[limitQuery](c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	requests, err := h.withdrawals.ListByUser(reqCtx, getUserIDFromContext(c), q.Limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]WithdrawResponse, len(requests))
	for i := range requests {
		response[i] = newWithdrawResponse(&requests[i])
	}
	c.JSON(http.StatusOK, response)
}
