package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-market/internal/clock"
	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type WithdrawService struct {
	uow          uow.UOW
	withdrawRepo WithdrawRepository
	queue        *Queue[domain.WithdrawRequest]
}

func NewWithdrawService(u uow.UOW, queue *Queue[domain.WithdrawRequest]) (*WithdrawService, error) {
	withdrawRepo, err := poolRepo[WithdrawRepository](u, repoargs.WithdrawRepoName)
	if err != nil {
		return nil, err
	}
	return &WithdrawService{uow: u, withdrawRepo: withdrawRepo, queue: queue}, nil
}

type SubmitWithdrawArgs struct {
	UserID        int64
	Amount        int64
	Reason        string
	PayoutDetails string
}

// Submit создает заявку на вывод. Баланс проверяется, но не списывается: списание происходит
// при одобрении заявки.
func (s *WithdrawService) Submit(ctx context.Context, args SubmitWithdrawArgs) (*domain.WithdrawRequest, error) {
	switch {
	case args.Amount <= 0:
		return nil, domain.NewValidationError("amount must be positive")
	case strings.TrimSpace(args.Reason) == "":
		return nil, domain.NewValidationError("reason is required")
	case strings.TrimSpace(args.PayoutDetails) == "":
		return nil, domain.NewValidationError("payout details are required")
	}

	var request *domain.WithdrawRequest
	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		accountRepo, repoErr := txRepo[AccountRepository](tx, repoargs.AccountRepoName)
		if repoErr != nil {
			return repoErr
		}
		withdrawRepo, repoErr := txRepo[WithdrawRepository](tx, repoargs.WithdrawRepoName)
		if repoErr != nil {
			return repoErr
		}

		account, getErr := accountRepo.GetByID(ctx, args.UserID)
		if getErr != nil {
			return getErr //nolint:wrapcheck
		}
		if !account.IsSeller {
			return domain.ErrNotSeller
		}
		if account.Balance < args.Amount {
			return domain.ErrInsufficientBalance
		}

		var createErr error
		request, createErr = withdrawRepo.Create(ctx, repoargs.CreateWithdraw{
			UserID:        args.UserID,
			Amount:        args.Amount,
			Reason:        strings.TrimSpace(args.Reason),
			PayoutDetails: strings.TrimSpace(args.PayoutDetails),
		})
		return createErr //nolint:wrapcheck
	})
	if err != nil {
		return nil, fmt.Errorf("submit withdraw: %w", err)
	}

	s.queue.Announce(ctx, request.ID, request.UserID)
	return request, nil
}

func (s *WithdrawService) ListByUser(ctx context.Context, userID int64, limit uint) ([]domain.WithdrawRequest, error) {
	list, err := s.withdrawRepo.ListByUser(ctx, userID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	return list, nil
}

// WithdrawDecider одобряет заявку со списанием средств или отклоняет ее.
type WithdrawDecider struct {
	Clock clock.Clock
}

func (d WithdrawDecider) Approve(
	ctx context.Context,
	tx uow.TX,
	itemID, reviewerID int64,
	note string,
) (*domain.WithdrawRequest, error) {
	withdrawRepo, err := txRepo[WithdrawRepository](tx, repoargs.WithdrawRepoName)
	if err != nil {
		return nil, err
	}
	request, getErr := withdrawRepo.GetByID(ctx, itemID)
	if getErr != nil {
		return nil, fmt.Errorf("approve withdraw %d: %w", itemID, getErr)
	}
	if request.Status != domain.WithdrawStatusPending {
		return nil, fmt.Errorf("approve withdraw %d: %w", itemID, domain.NewInvalidStatusError(request.Status))
	}

	// баланс мог уменьшиться с момента подачи заявки, проверка и списание выполняются одним условным UPDATE.
	_, adjErr := adjustBalance(ctx, tx, repoargs.ApplyDelta{
		AccountID: request.UserID,
		Delta:     -request.Amount,
		EventType: domain.EventWithdrawApproved,
		Reason:    request.Reason,
		ActorID:   &reviewerID,
		Ref:       &domain.Ref{Type: domain.RefWithdraw, ID: request.ID},
	})
	if adjErr != nil {
		if errors.Is(adjErr, domain.ErrInsufficientFunds) {
			return nil, fmt.Errorf("approve withdraw %d: %w", itemID, domain.ErrInsufficientBalance)
		}
		return nil, fmt.Errorf("approve withdraw %d: %w", itemID, adjErr)
	}

	return d.resolve(ctx, withdrawRepo, itemID, domain.WithdrawStatusApproved, note)
}

func (d WithdrawDecider) Reject(
	ctx context.Context,
	tx uow.TX,
	itemID, _ int64,
	note string,
) (*domain.WithdrawRequest, error) {
	withdrawRepo, err := txRepo[WithdrawRepository](tx, repoargs.WithdrawRepoName)
	if err != nil {
		return nil, err
	}
	return d.resolve(ctx, withdrawRepo, itemID, domain.WithdrawStatusRejected, note)
}

func (d WithdrawDecider) resolve(
	ctx context.Context,
	withdrawRepo WithdrawRepository,
	itemID int64,
	status domain.WithdrawStatusType,
	note string,
) (*domain.WithdrawRequest, error) {
	var notePtr *string
	if note != "" {
		notePtr = &note
	}
	request, err := withdrawRepo.Resolve(ctx, repoargs.ResolveWithdraw{
		ID:     itemID,
		Status: status,
		Note:   notePtr,
		At:     d.Clock.Now(),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("resolve withdraw %d: %w", itemID, domain.ErrInvalidStatus)
		}
		return nil, fmt.Errorf("resolve withdraw %d: %w", itemID, err)
	}
	return request, nil
}

func (WithdrawDecider) Subject(item *domain.WithdrawRequest) int64 {
	return item.UserID
}
