package service

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type AccountRepository interface {
	Ensure(ctx context.Context, args repoargs.EnsureAccount) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	SetBanned(ctx context.Context, id int64, banned bool) (*domain.Account, error)
	SetAdmin(ctx context.Context, id int64, admin bool) (*domain.Account, error)
	SetVerifiedPhone(ctx context.Context, id int64, phone string) (*domain.Account, error)
	TransitionSellerStatus(
		ctx context.Context,
		id int64,
		from []domain.SellerStatusType,
		to domain.SellerStatusType,
	) (*domain.Account, error)
	ListAdminIDs(ctx context.Context) ([]int64, error)
}

type LedgerRepository interface {
	ApplyDelta(ctx context.Context, args repoargs.ApplyDelta) (int64, error)
	GetBalance(ctx context.Context, accountID int64) (int64, error)
	GetBalanceForUpdate(ctx context.Context, accountID int64) (int64, error)
	ListEvents(ctx context.Context, accountID int64, limit uint) ([]domain.BalanceEvent, error)
	Totals(ctx context.Context, accountID int64) (*repoargs.LedgerTotals, error)
}

type ListingRepository interface {
	Create(ctx context.Context, args repoargs.CreateListing) (*domain.Listing, error)
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Listing, error)
	Transition(ctx context.Context, args repoargs.TransitionListing) (*domain.Listing, error)
	ListApproved(ctx context.Context, args repoargs.ListApproved) ([]domain.Listing, error)
	CountApproved(ctx context.Context, category *string) (int64, error)
	ListBySeller(ctx context.Context, sellerID int64, page repoargs.Pagination) ([]domain.Listing, error)
}

type OrderRepository interface {
	Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Order, error)
	Transition(ctx context.Context, args repoargs.TransitionOrder) (*domain.Order, error)
	HasOpenForListing(ctx context.Context, listingID int64) (bool, error)
	ListByBuyer(ctx context.Context, buyerID int64, limit uint) ([]domain.Order, error)
	ListBySeller(ctx context.Context, sellerID int64, limit uint) ([]domain.Order, error)
	CountCompletedBySeller(ctx context.Context, sellerID int64) (int64, error)
}

type WithdrawRepository interface {
	Create(ctx context.Context, args repoargs.CreateWithdraw) (*domain.WithdrawRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.WithdrawRequest, error)
	Resolve(ctx context.Context, args repoargs.ResolveWithdraw) (*domain.WithdrawRequest, error)
	ListByUser(ctx context.Context, userID int64, limit uint) ([]domain.WithdrawRequest, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, args repoargs.CreateReview) (*domain.Review, error)
	Aggregate(ctx context.Context, targetID int64, role domain.RoleType) (*repoargs.RatingAggregation, error)
	ListReceived(
		ctx context.Context,
		targetID int64,
		role domain.RoleType,
		page repoargs.Pagination,
	) ([]domain.Review, error)
	ListAuthored(ctx context.Context, authorID int64, limit uint) ([]domain.Review, error)
}

type ClaimRepository interface {
	TryClaim(ctx context.Context, target repoargs.ClaimTarget, itemID, reviewerID int64) (bool, error)
	State(ctx context.Context, target repoargs.ClaimTarget, itemID int64, lock bool) (*repoargs.ClaimState, error)
	Release(ctx context.Context, target repoargs.ClaimTarget, itemID int64) error
}

type PaymentRepository interface {
	Create(ctx context.Context, args repoargs.CreateTopup) (*domain.TopupPayment, error)
	GetByPayload(ctx context.Context, payload string) (*domain.TopupPayment, error)
	MarkPaid(ctx context.Context, payload string, at time.Time) (*domain.TopupPayment, error)
	MarkReview(ctx context.Context, payload string) (*domain.TopupPayment, error)
	ListPendingExternal(ctx context.Context, limit uint) ([]domain.TopupPayment, error)
}

type TicketRepository interface {
	Create(ctx context.Context, userID int64, message string) (*domain.SupportTicket, error)
	GetByID(ctx context.Context, id int64) (*domain.SupportTicket, error)
	Resolve(ctx context.Context, args repoargs.ResolveTicket) (*domain.SupportTicket, error)
}

// Notifier доставляет события переходов состояния в транспортный слой.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// ReviewerPool множество пользователей, которые могут разбирать очередь.
type ReviewerPool interface {
	Reviewers(ctx context.Context) ([]int64, error)
	IsReviewer(ctx context.Context, userID int64) (bool, error)
}
