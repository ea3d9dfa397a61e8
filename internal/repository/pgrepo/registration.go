package pgrepo

import (
	"fmt"

	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

// Register регистрирует фабрики всех postgres репозиториев в unit of work.
func Register(u uow.UOW) error {
	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.AccountRepoName:  func(dbtx uow.DBTX) uow.Repository { return NewAccountRepository(dbtx) },
		repoargs.LedgerRepoName:   func(dbtx uow.DBTX) uow.Repository { return NewLedgerRepository(dbtx) },
		repoargs.ListingRepoName:  func(dbtx uow.DBTX) uow.Repository { return NewListingRepository(dbtx) },
		repoargs.OrderRepoName:    func(dbtx uow.DBTX) uow.Repository { return NewOrderRepository(dbtx) },
		repoargs.WithdrawRepoName: func(dbtx uow.DBTX) uow.Repository { return NewWithdrawRepository(dbtx) },
		repoargs.ReviewRepoName:   func(dbtx uow.DBTX) uow.Repository { return NewReviewRepository(dbtx) },
		repoargs.ClaimRepoName:    func(dbtx uow.DBTX) uow.Repository { return NewClaimRepository(dbtx) },
		repoargs.PaymentRepoName:  func(dbtx uow.DBTX) uow.Repository { return NewPaymentRepository(dbtx) },
		repoargs.TicketRepoName:   func(dbtx uow.DBTX) uow.Repository { return NewTicketRepository(dbtx) },
	}
	for name, factory := range factories {
		if regErr := u.Register(uow.RepositoryName(name), factory); regErr != nil {
			return fmt.Errorf("register %s repository: %w", name, regErr)
		}
	}
	return nil
}
