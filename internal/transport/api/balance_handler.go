package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/gin-gonic/gin"
)

type BalanceHandler struct {
	ledger   LedgerServicer
	payments PaymentServicer
}

func NewBalanceHandler(ledger LedgerServicer, payments PaymentServicer) *BalanceHandler {
	return &BalanceHandler{
		ledger:   ledger,
		payments: payments,
	}
}

type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

// Index GET RouteGroup + BalanceRoute.
func (b *BalanceHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := b.ledger.GetBalance(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{Balance: balance})
}

type BalanceEventResponse struct {
	ID        int64     `json:"id"`
	Delta     int64     `json:"delta"`
	EventType string    `json:"event_type"`
	Reason    string    `json:"reason"`
	RefType   *string   `json:"ref_type,omitempty"`
	RefID     *int64    `json:"ref_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Events GET RouteGroup + BalanceEventsRoute. Последние движения баланса, новые первыми.
func (b *BalanceHandler) Events(c *gin.Context) {
	q, ok := bindQuery[limitQuery](c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	events, err := b.ledger.ListBalanceEvents(reqCtx, getUserIDFromContext(c), q.Limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]BalanceEventResponse, len(events))
	for i, e := range events {
		response[i] = BalanceEventResponse{
			ID:        e.ID,
			Delta:     e.Delta,
			EventType: string(e.EventType),
			Reason:    e.Reason,
			RefType:   e.RefType,
			RefID:     e.RefID,
			CreatedAt: e.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, response)
}

type CreateTopupParams struct {
	Amount     int64   `binding:"required,min=1"                json:"amount"`
	Method     string  `binding:"required,max_bytes=32"         json:"method"`
	ExternalID *string `binding:"omitempty,min=1,max_bytes=128" json:"external_id"`
}

type TopupResponse struct {
	ID         int64      `json:"id"`
	Amount     int64      `json:"amount"`
	Method     string     `json:"method"`
	Payload    string     `json:"payload"`
	ExternalID *string    `json:"external_id,omitempty"`
	Status     string     `json:"status"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
}

func newTopupResponse(p *domain.TopupPayment) TopupResponse {
	return TopupResponse{
		ID:         p.ID,
		Amount:     p.Amount,
		Method:     p.Method,
		Payload:    p.Payload,
		ExternalID: p.ExternalID,
		Status:     string(p.Status),
		PaidAt:     p.PaidAt,
	}
}

// CreateTopup POST RouteGroup + TopupsRoute. Регистрирует ожидаемое пополнение.
func (b *BalanceHandler) CreateTopup(c *gin.Context) {
	var params CreateTopupParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payment, err := b.payments.CreateTopup(reqCtx, service.CreateTopupArgs{
		UserID:     getUserIDFromContext(c),
		Amount:     params.Amount,
		Method:     params.Method,
		ExternalID: params.ExternalID,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newTopupResponse(payment))
}

type CompletePaymentParams struct {
	Payload string `binding:"required,max_bytes=255" json:"payload"`
	Amount  int64  `binding:"required,min=1"         json:"amount"`
}

// CompletePayment POST ProviderGroup + PaymentsCompleteRoute. Подтверждение оплаты от платежного провайдера,
// доступно только с токеном провайдера.
func (b *BalanceHandler) CompletePayment(c *gin.Context) {
	var params CompletePaymentParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payment, err := b.payments.CompletePayment(reqCtx, params.Payload, params.Amount)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTopupResponse(payment))
}
