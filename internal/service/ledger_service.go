package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

// LedgerService хранилище балансов. Любое изменение баланса сопровождается ровно одной записью
// BalanceEvent в той же транзакции, поэтому для каждого аккаунта balance == sum(delta).
type LedgerService struct {
	uow        uow.UOW
	ledgerRepo LedgerRepository
}

func NewLedgerService(u uow.UOW) (*LedgerService, error) {
	ledgerRepo, err := poolRepo[LedgerRepository](u, repoargs.LedgerRepoName)
	if err != nil {
		return nil, err
	}
	return &LedgerService{
		uow:        u,
		ledgerRepo: ledgerRepo,
	}, nil
}

type AdjustBalanceArgs struct {
	AccountID int64
	Delta     int64
	EventType domain.EventType
	Reason    string
	ActorID   *int64
	Ref       *domain.Ref
}

// AdjustBalance изменяет баланс на Delta. Списание, уводящее баланс в минус, отклоняется
// ошибкой domain.ErrInsufficientFunds, при этом ни баланс, ни журнал не меняются.
func (s *LedgerService) AdjustBalance(ctx context.Context, args AdjustBalanceArgs) (int64, error) {
	if args.Delta == 0 {
		return 0, domain.NewValidationError("delta must not be zero")
	}
	if args.EventType == "" {
		return 0, domain.NewValidationError("event type is required")
	}

	var newBalance int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		var adjErr error
		newBalance, adjErr = adjustBalance(ctx, tx, repoargs.ApplyDelta{
			AccountID: args.AccountID,
			Delta:     args.Delta,
			EventType: args.EventType,
			Reason:    args.Reason,
			ActorID:   args.ActorID,
			Ref:       args.Ref,
		})
		return adjErr
	})
	if err != nil {
		return 0, fmt.Errorf("adjust balance: %w", err)
	}
	return newBalance, nil
}

// SetBalance привилегированная установка баланса. Разница со старым значением пишется в журнал
// как admin_adjustment, нулевая разница не пишется.
func (s *LedgerService) SetBalance(ctx context.Context, accountID, newValue, actorID int64, reason string) (int64, error) {
	if newValue < 0 {
		return 0, domain.NewValidationError("balance must not be negative")
	}
	if reason == "" {
		reason = "admin set balance"
	}

	var result int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		ledgerRepo, repoErr := txRepo[LedgerRepository](tx, repoargs.LedgerRepoName)
		if repoErr != nil {
			return repoErr
		}
		current, balErr := ledgerRepo.GetBalanceForUpdate(ctx, accountID)
		if balErr != nil {
			return balErr //nolint:wrapcheck
		}
		delta := newValue - current
		if delta == 0 {
			result = current
			return nil
		}
		var adjErr error
		result, adjErr = adjustBalance(ctx, tx, repoargs.ApplyDelta{
			AccountID: accountID,
			Delta:     delta,
			EventType: domain.EventAdminAdjustment,
			Reason:    reason,
			ActorID:   &actorID,
		})
		return adjErr
	})
	if err != nil {
		return 0, fmt.Errorf("set balance: %w", err)
	}
	return result, nil
}

func (s *LedgerService) GetBalance(ctx context.Context, accountID int64) (int64, error) {
	balance, err := s.ledgerRepo.GetBalance(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// ListBalanceEvents последние события журнала, новые первыми. limit=0 означает значение по умолчанию (30).
func (s *LedgerService) ListBalanceEvents(ctx context.Context, accountID int64, limit uint) ([]domain.BalanceEvent, error) {
	events, err := s.ledgerRepo.ListEvents(ctx, accountID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list balance events: %w", err)
	}
	return events, nil
}

// VerifyConservation проверяет, что баланс аккаунта равен сумме дельт его журнала.
func (s *LedgerService) VerifyConservation(ctx context.Context, accountID int64) error {
	totals, err := s.ledgerRepo.Totals(ctx, accountID)
	if err != nil {
		return fmt.Errorf("verify conservation: %w", err)
	}
	if totals.Balance != totals.EventsSum {
		return fmt.Errorf(
			"verify conservation: %w: balance %d, events sum %d",
			domain.ErrLedgerMismatch, totals.Balance, totals.EventsSum,
		)
	}
	return nil
}
