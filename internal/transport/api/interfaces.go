package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/service"
)

// AccountServicer интерфейсы ниже исключительно для моков.
type AccountServicer interface {
	EnsureAccount(ctx context.Context, id int64, username *string) (*domain.Account, error)
	GetAccount(ctx context.Context, id int64) (*domain.Account, error)
	VerifyPhone(ctx context.Context, id int64, phone string) (*domain.Account, error)
	IsAdmin(ctx context.Context, id int64) (bool, error)
	IsBanned(ctx context.Context, id int64) (bool, error)
	SetBanned(ctx context.Context, actorID, id int64, banned bool) (*domain.Account, error)
	SetAdmin(ctx context.Context, actorID, id int64, admin bool) (*domain.Account, error)
}

type LedgerServicer interface {
	GetBalance(ctx context.Context, accountID int64) (int64, error)
	ListBalanceEvents(ctx context.Context, accountID int64, limit uint) ([]domain.BalanceEvent, error)
	SetBalance(ctx context.Context, accountID, newValue, actorID int64, reason string) (int64, error)
	VerifyConservation(ctx context.Context, accountID int64) error
}

type PaymentServicer interface {
	CreateTopup(ctx context.Context, args service.CreateTopupArgs) (*domain.TopupPayment, error)
	CompletePayment(ctx context.Context, payload string, amount int64) (*domain.TopupPayment, error)
}

type ListingServicer interface {
	Submit(ctx context.Context, args service.SubmitListingArgs) (*domain.Listing, error)
	Get(ctx context.Context, id int64) (*domain.Listing, error)
	ListApproved(ctx context.Context, category *string, page, perPage uint) ([]domain.Listing, int64, error)
	ListBySeller(ctx context.Context, sellerID int64, page, perPage uint) ([]domain.Listing, error)
}

type OrderServicer interface {
	Buy(ctx context.Context, listingID, buyerID int64) (*domain.Order, error)
	MarkDelivered(ctx context.Context, orderID, sellerID int64) (*domain.Order, error)
	CancelBySeller(ctx context.Context, orderID, sellerID int64) (*domain.Order, error)
	ConfirmReceipt(ctx context.Context, orderID, buyerID int64) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID, actorID int64) (*domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID int64, limit uint) ([]domain.Order, error)
	ListBySeller(ctx context.Context, sellerID int64, limit uint) ([]domain.Order, error)
	CountCompletedAsSeller(ctx context.Context, sellerID int64) (int64, error)
}

type ReviewServicer interface {
	SubmitReview(ctx context.Context, args service.SubmitReviewArgs) (*domain.Review, error)
	GetRating(ctx context.Context, targetID int64, role domain.RoleType) (*domain.Rating, error)
	ListReceived(ctx context.Context, targetID int64, role domain.RoleType, page, perPage uint) ([]domain.Review, error)
	ListAuthored(ctx context.Context, authorID int64, limit uint) ([]domain.Review, error)
}

type SellerServicer interface {
	Apply(ctx context.Context, userID int64) (*domain.Account, error)
}

type WithdrawServicer interface {
	Submit(ctx context.Context, args service.SubmitWithdrawArgs) (*domain.WithdrawRequest, error)
	ListByUser(ctx context.Context, userID int64, limit uint) ([]domain.WithdrawRequest, error)
}

type SupportServicer interface {
	OpenTicket(ctx context.Context, userID int64, message string) (*domain.SupportTicket, error)
}

// Moderator одна очередь модерации: захват элемента и решение по нему.
type Moderator interface {
	Claim(ctx context.Context, itemID, reviewerID int64) error
	Decide(ctx context.Context, itemID, reviewerID int64, verdict domain.VerdictType, note string) error
}

type SessionStorer interface {
	Get(ctx context.Context, userID, chatID int64) (map[string]string, error)
	Set(ctx context.Context, userID, chatID int64, values map[string]string) error
	Clear(ctx context.Context, userID, chatID int64) error
}
