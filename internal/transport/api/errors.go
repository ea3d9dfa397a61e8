package api

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// errorMappings порядок важен: проверка идет сверху вниз до первого совпадения.
var errorMappings = []errorMapping{
	{domain.ErrValidation, http.StatusBadRequest, "validation"},

	{domain.ErrInsufficientFunds, http.StatusPaymentRequired, "insufficient_funds"},
	{domain.ErrInsufficientBalance, http.StatusPaymentRequired, "insufficient_balance"},

	{domain.ErrNotSeller, http.StatusForbidden, "not_seller"},
	{domain.ErrNotBuyer, http.StatusForbidden, "not_buyer"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrNotClaimOwner, http.StatusForbidden, "not_claim_owner"},
	{domain.ErrAccountBanned, http.StatusForbidden, "banned"},

	{domain.ErrRecordNotFound, http.StatusNotFound, "not_found"},

	{domain.ErrListingUnavailable, http.StatusConflict, "listing_unavailable"},
	{domain.ErrSelfPurchase, http.StatusConflict, "self_purchase"},
	{domain.ErrInvalidStatus, http.StatusConflict, "invalid_status"},
	{domain.ErrOwnedByOther, http.StatusConflict, "owned_by_other"},
	{domain.ErrAlreadyOwnedBySelf, http.StatusConflict, "already_owned_by_self"},
	{domain.ErrAlreadyPaid, http.StatusConflict, "already_paid"},
	{domain.ErrDuplicateReview, http.StatusConflict, "duplicate_review"},
	{domain.ErrTooLate, http.StatusConflict, "too_late"},
	{domain.ErrAlreadyApplied, http.StatusConflict, "already_applied"},
	{domain.ErrPaymentOnReview, http.StatusConflict, "payment_on_review"},

	{domain.ErrProtectedAccount, http.StatusUnprocessableEntity, "protected_account"},
	{domain.ErrPhoneNotVerified, http.StatusUnprocessableEntity, "phone_not_verified"},
	{domain.ErrPaymentAmountMismatch, http.StatusUnprocessableEntity, "payment_amount_mismatch"},
}

// publicError текст, который увидит клиент. Для ошибок с данными (валидация, статус, владелец)
// отдается полный текст, для остальных только текст бизнес-ошибки без контекста операции.
func publicError(err error, target error) error {
	var (
		ownedErr  *domain.OwnedByOtherError
		statusErr *domain.InvalidStatusError
	)
	switch {
	case errors.Is(target, domain.ErrValidation):
		return err
	case errors.As(err, &ownedErr):
		return ownedErr
	case errors.As(err, &statusErr):
		return statusErr
	default:
		return target
	}
}

func resolveServiceError(err error) (errorMapping, bool) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m, true
		}
	}
	return errorMapping{}, false
}

// abortWithServiceError прерывает запрос со статусом, соответствующим ошибке сервиса.
// Неизвестные ошибки становятся приватными 500.
func abortWithServiceError(c *gin.Context, err error) {
	m, ok := resolveServiceError(err)
	if !ok {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	_ = c.AbortWithError(m.status, publicError(err, m.target)).
		SetType(gin.ErrorTypePublic).
		SetMeta(m.code)
}

// abortWithBindError ошибки валидатора отдаются клиенту, ошибки разбора тела нет.
func abortWithBindError(c *gin.Context, bindErr error) {
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypePublic).
			SetMeta("validation")
		return
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
}
