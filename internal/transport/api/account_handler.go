package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accounts AccountServicer
	ledger   LedgerServicer
}

func NewAccountHandler(accounts AccountServicer, ledger LedgerServicer) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		ledger:   ledger,
	}
}

type AccountResponse struct {
	ID            int64     `json:"id"`
	Username      *string   `json:"username,omitempty"`
	Balance       int64     `json:"balance"`
	PhoneVerified bool      `json:"phone_verified"`
	SellerStatus  string    `json:"seller_status"`
	IsSeller      bool      `json:"is_seller"`
	IsAdmin       bool      `json:"is_admin"`
	IsBanned      bool      `json:"is_banned"`
	CreatedAt     time.Time `json:"created_at"`
}

func newAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:            a.ID,
		Username:      a.Username,
		Balance:       a.Balance,
		PhoneVerified: a.PhoneVerified,
		SellerStatus:  string(a.SellerStatus),
		IsSeller:      a.IsSeller,
		IsAdmin:       a.IsAdmin,
		IsBanned:      a.IsBanned,
		CreatedAt:     a.CreatedAt,
	}
}

type EnsureAccountParams struct {
	Username *string `binding:"omitempty,max_bytes=64" json:"username"`
}

// Ensure POST RouteGroup + AccountMeRoute. Создает учетную запись при первом обращении.
func (h *AccountHandler) Ensure(c *gin.Context) {
	var params EnsureAccountParams
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
			abortWithBindError(c, bindErr)
			return
		}
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := h.accounts.EnsureAccount(ctx, getUserIDFromContext(c), params.Username)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAccountResponse(account))
}

// Me GET RouteGroup + AccountMeRoute.
func (h *AccountHandler) Me(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := h.accounts.GetAccount(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAccountResponse(account))
}

type VerifyPhoneParams struct {
	Phone string `binding:"required,max_bytes=32" json:"phone"`
}

// VerifyPhone POST RouteGroup + AccountPhoneRoute. Номер приходит уже подтвержденным чат-транспортом.
func (h *AccountHandler) VerifyPhone(c *gin.Context) {
	var params VerifyPhoneParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := h.accounts.VerifyPhone(ctx, getUserIDFromContext(c), params.Phone)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAccountResponse(account))
}

// Show GET RouteGroup + AdminGroup + AdminAccountRoute.
func (h *AccountHandler) Show(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := h.accounts.GetAccount(ctx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAccountResponse(account))
}

type SetBalanceParams struct {
	Balance *int64 `binding:"required,min=0" json:"balance"`
	Reason  string `binding:"max_bytes=255"  json:"reason"`
}

// SetBalance PUT RouteGroup + AdminGroup + AdminBalanceRoute. Разница записывается в журнал как admin_adjustment.
func (h *AccountHandler) SetBalance(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var params SetBalanceParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.ledger.SetBalance(ctx, id, *params.Balance, getUserIDFromContext(c), params.Reason)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, BalanceResponse{Balance: balance})
}

type FlagParams struct {
	Value *bool `binding:"required" json:"value"`
}

// SetBanned PUT RouteGroup + AdminGroup + AdminBanRoute.
func (h *AccountHandler) SetBanned(c *gin.Context) {
	h.setFlag(c, h.accounts.SetBanned)
}

// SetAdmin PUT RouteGroup + AdminGroup + AdminAdminRoute.
func (h *AccountHandler) SetAdmin(c *gin.Context) {
	h.setFlag(c, h.accounts.SetAdmin)
}

func (h *AccountHandler) setFlag(
	c *gin.Context,
	set func(ctx context.Context, actorID, id int64, value bool) (*domain.Account, error),
) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var params FlagParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := set(ctx, getUserIDFromContext(c), id, *params.Value)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAccountResponse(account))
}

type LedgerCheckResponse struct {
	AccountID  int64 `json:"account_id"`
	Balance    int64 `json:"balance"`
	Consistent bool  `json:"consistent"`
}

// VerifyLedger GET RouteGroup + AdminGroup + AdminLedgerRoute. Сверяет баланс с суммой журнала.
func (h *AccountHandler) VerifyLedger(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	verifyErr := h.ledger.VerifyConservation(ctx, id)
	if verifyErr != nil && !errors.Is(verifyErr, domain.ErrLedgerMismatch) {
		abortWithServiceError(c, verifyErr)
		return
	}
	balance, err := h.ledger.GetBalance(ctx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, LedgerCheckResponse{
		AccountID:  id,
		Balance:    balance,
		Consistent: verifyErr == nil,
	})
}
