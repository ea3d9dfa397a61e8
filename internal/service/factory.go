package service

import (
	"fmt"
	"time"

	"github.com/fsdevblog/groph-market/internal/clock"
	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	Accounts    *AccountService
	Ledger      *LedgerService
	Orders      *OrderService
	Listings    *ListingService
	Sellers     *SellerService
	Withdrawals *WithdrawService
	Support     *SupportService
	Reviews     *ReviewService
	Payments    *PaymentService

	ListingQueue  *Queue[domain.Listing]
	SellerQueue   *Queue[domain.Account]
	WithdrawQueue *Queue[domain.WithdrawRequest]
	TicketQueue   *Queue[domain.SupportTicket]
}

type FactoryArgs struct {
	UOW               uow.UOW
	Notifier          Notifier
	Clock             clock.Clock
	Logger            *logrus.Logger
	SuperAdminID      int64
	AdminIDs          []int64
	SupportIDs        []int64
	SellerCancelGrace time.Duration
}

func Factory(args FactoryArgs) (*AppServices, error) {
	if args.Clock == nil {
		args.Clock = clock.NewSystem()
	}

	accountRepo, err := poolRepo[AccountRepository](args.UOW, repoargs.AccountRepoName)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}
	admins := NewAdminPool(accountRepo, append([]int64{args.SuperAdminID}, args.AdminIDs...)...)
	support := NewStaticPool(args.SupportIDs...)

	listingQueue := NewQueue(QueueArgs[domain.Listing]{
		UOW:      args.UOW,
		Registry: NewClaimRegistry(repoargs.ListingClaimTarget),
		Pool:     admins,
		Decider:  ListingDecider{},
		Notifier: args.Notifier,
		Logger:   args.Logger,
	})
	sellerQueue := NewQueue(QueueArgs[domain.Account]{
		UOW:      args.UOW,
		Registry: NewClaimRegistry(repoargs.SellerApplicationClaimTarget),
		Pool:     admins,
		Decider:  SellerDecider{},
		Notifier: args.Notifier,
		Logger:   args.Logger,
	})
	withdrawQueue := NewQueue(QueueArgs[domain.WithdrawRequest]{
		UOW:      args.UOW,
		Registry: NewClaimRegistry(repoargs.WithdrawClaimTarget),
		// заявки на вывод приходят через поддержку, разбирают их агенты поддержки и администраторы.
		Pool:     UnionPool{support, admins},
		Decider:  WithdrawDecider{Clock: args.Clock},
		Notifier: args.Notifier,
		Logger:   args.Logger,
	})
	ticketQueue := NewQueue(QueueArgs[domain.SupportTicket]{
		UOW:      args.UOW,
		Registry: NewClaimRegistry(repoargs.TicketClaimTarget),
		Pool:     support,
		Decider:  TicketDecider{Clock: args.Clock},
		Notifier: args.Notifier,
		Logger:   args.Logger,
	})

	accounts, err := NewAccountService(args.UOW, admins, args.SuperAdminID)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}
	ledger, err := NewLedgerService(args.UOW)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}
	orders, err := NewOrderService(OrderServiceArgs{
		UOW:      args.UOW,
		Clock:    args.Clock,
		Grace:    args.SellerCancelGrace,
		Notifier: args.Notifier,
		Logger:   args.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}
	listings, err := NewListingService(args.UOW, listingQueue)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}
	withdrawals, err := NewWithdrawService(args.UOW, withdrawQueue)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}
	supportSvc, err := NewSupportService(args.UOW, ticketQueue)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}
	reviews, err := NewReviewService(args.UOW)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}
	payments, err := NewPaymentService(PaymentServiceArgs{
		UOW:      args.UOW,
		Clock:    args.Clock,
		Notifier: args.Notifier,
		Logger:   args.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}

	return &AppServices{
		Accounts:      accounts,
		Ledger:        ledger,
		Orders:        orders,
		Listings:      listings,
		Sellers:       NewSellerService(args.UOW, sellerQueue),
		Withdrawals:   withdrawals,
		Support:       supportSvc,
		Reviews:       reviews,
		Payments:      payments,
		ListingQueue:  listingQueue,
		SellerQueue:   sellerQueue,
		WithdrawQueue: withdrawQueue,
		TicketQueue:   ticketQueue,
	}, nil
}
