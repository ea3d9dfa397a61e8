package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("forbidden")

	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrLedgerMismatch      = errors.New("ledger mismatch")

	ErrListingUnavailable = errors.New("listing unavailable")
	ErrSelfPurchase       = errors.New("self purchase")
	ErrNotSeller          = errors.New("not seller")
	ErrNotBuyer           = errors.New("not buyer")
	ErrTooLate            = errors.New("too late")

	ErrInvalidStatus      = errors.New("invalid status")
	ErrAlreadyOwnedBySelf = errors.New("already owned by self")
	ErrOwnedByOther       = errors.New("owned by other")
	ErrNotClaimOwner      = errors.New("not claim owner")

	ErrDuplicateReview = errors.New("duplicate review")

	ErrAlreadyPaid           = errors.New("already paid")
	ErrPaymentAmountMismatch = errors.New("payment amount mismatch")
	ErrPaymentOnReview       = errors.New("payment on review")

	ErrProtectedAccount = errors.New("protected account")
	ErrPhoneNotVerified = errors.New("phone not verified")
	ErrAlreadyApplied   = errors.New("already applied")
	ErrAccountBanned    = errors.New("account banned")
)

// NewValidationError оборачивает текст ошибки валидации в ErrValidation.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// OwnedByOtherError элемент уже захвачен другим ревьюером.
type OwnedByOtherError struct {
	OwnerID int64
}

func NewOwnedByOtherError(ownerID int64) error {
	return &OwnedByOtherError{OwnerID: ownerID}
}

func (e *OwnedByOtherError) Error() string {
	return fmt.Sprintf("owned by other reviewer %d", e.OwnerID)
}

func (e *OwnedByOtherError) Unwrap() error {
	return ErrOwnedByOther
}

// InvalidStatusError сущность находится не в том статусе, который ожидает операция.
type InvalidStatusError struct {
	Current string
}

func NewInvalidStatusError[T ~string](current T) error {
	return &InvalidStatusError{Current: string(current)}
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status %q", e.Current)
}

func (e *InvalidStatusError) Unwrap() error {
	return ErrInvalidStatus
}
