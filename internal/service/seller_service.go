package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type SellerService struct {
	uow   uow.UOW
	queue *Queue[domain.Account]
}

func NewSellerService(u uow.UOW, queue *Queue[domain.Account]) *SellerService {
	return &SellerService{uow: u, queue: queue}
}

// Apply подает заявку на статус продавца. Нужен подтвержденный телефон, а текущий статус
// должен быть none или rejected.
func (s *SellerService) Apply(ctx context.Context, userID int64) (*domain.Account, error) {
	var account *domain.Account
	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		accountRepo, repoErr := txRepo[AccountRepository](tx, repoargs.AccountRepoName)
		if repoErr != nil {
			return repoErr
		}
		current, getErr := accountRepo.GetByID(ctx, userID)
		if getErr != nil {
			return getErr //nolint:wrapcheck
		}
		if !current.PhoneVerified {
			return domain.ErrPhoneNotVerified
		}

		var trErr error
		account, trErr = accountRepo.TransitionSellerStatus(
			ctx,
			userID,
			[]domain.SellerStatusType{domain.SellerStatusNone, domain.SellerStatusRejected},
			domain.SellerStatusApplied,
		)
		if trErr == nil {
			return nil
		}
		if !isNotFound(trErr) {
			return trErr //nolint:wrapcheck
		}
		if current.SellerStatus == domain.SellerStatusApplied {
			return domain.ErrAlreadyApplied
		}
		return domain.NewInvalidStatusError(current.SellerStatus)
	})
	if err != nil {
		return nil, fmt.Errorf("apply for seller: %w", err)
	}

	s.queue.Announce(ctx, account.ID, account.ID)
	return account, nil
}

// SellerDecider выдает или отклоняет статус продавца.
type SellerDecider struct{}

func (SellerDecider) transition(
	ctx context.Context,
	tx uow.TX,
	userID int64,
	to domain.SellerStatusType,
) (*domain.Account, error) {
	accountRepo, err := txRepo[AccountRepository](tx, repoargs.AccountRepoName)
	if err != nil {
		return nil, err
	}
	if to == domain.SellerStatusSeller {
		account, getErr := accountRepo.GetByID(ctx, userID)
		if getErr != nil {
			return nil, fmt.Errorf("decide seller %d: %w", userID, getErr)
		}
		if !account.PhoneVerified {
			return nil, fmt.Errorf("decide seller %d: %w", userID, domain.ErrPhoneNotVerified)
		}
	}
	account, trErr := accountRepo.TransitionSellerStatus(
		ctx, userID, []domain.SellerStatusType{domain.SellerStatusApplied}, to,
	)
	if trErr != nil {
		if isNotFound(trErr) {
			return nil, fmt.Errorf("decide seller %d: %w", userID, domain.ErrInvalidStatus)
		}
		return nil, fmt.Errorf("decide seller %d: %w", userID, trErr)
	}
	return account, nil
}

func (d SellerDecider) Approve(ctx context.Context, tx uow.TX, itemID, _ int64, _ string) (*domain.Account, error) {
	return d.transition(ctx, tx, itemID, domain.SellerStatusSeller)
}

func (d SellerDecider) Reject(ctx context.Context, tx uow.TX, itemID, _ int64, _ string) (*domain.Account, error) {
	return d.transition(ctx, tx, itemID, domain.SellerStatusRejected)
}

func (SellerDecider) Subject(item *domain.Account) int64 {
	return item.ID
}
