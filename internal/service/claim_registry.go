package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

// ClaimRegistry закрепляет ожидающий элемент за единственным ревьюером. Точка сериализации -
// один условный UPDATE, распределенные блокировки не нужны.
type ClaimRegistry struct {
	target repoargs.ClaimTarget
}

func NewClaimRegistry(target repoargs.ClaimTarget) ClaimRegistry {
	return ClaimRegistry{target: target}
}

func (c ClaimRegistry) Target() repoargs.ClaimTarget {
	return c.target
}

// Claim захватывает элемент. Если условный UPDATE ничего не изменил, по текущему состоянию строки
// определяется причина: domain.ErrAlreadyOwnedBySelf, *domain.OwnedByOtherError,
// *domain.InvalidStatusError или domain.ErrRecordNotFound.
func (c ClaimRegistry) Claim(ctx context.Context, tx uow.TX, itemID, reviewerID int64) error {
	claimRepo, err := txRepo[ClaimRepository](tx, repoargs.ClaimRepoName)
	if err != nil {
		return err
	}

	claimed, claimErr := claimRepo.TryClaim(ctx, c.target, itemID, reviewerID)
	if claimErr != nil {
		return fmt.Errorf("claim %s %d: %w", c.target.Name, itemID, claimErr)
	}
	if claimed {
		return nil
	}

	state, stateErr := claimRepo.State(ctx, c.target, itemID, false)
	if stateErr != nil {
		return fmt.Errorf("claim %s %d: %w", c.target.Name, itemID, stateErr)
	}

	switch {
	case state.OwnerID != nil && *state.OwnerID == reviewerID:
		return fmt.Errorf("claim %s %d: %w", c.target.Name, itemID, domain.ErrAlreadyOwnedBySelf)
	case state.OwnerID != nil:
		return fmt.Errorf("claim %s %d: %w", c.target.Name, itemID, domain.NewOwnedByOtherError(*state.OwnerID))
	default:
		return fmt.Errorf("claim %s %d: %w", c.target.Name, itemID, domain.NewInvalidStatusError(state.Status))
	}
}

// Authorize true, только если элемент захвачен и его владелец reviewerID. Строка блокируется до конца
// транзакции, так что решение принимается над тем же состоянием, которое было проверено.
func (c ClaimRegistry) Authorize(ctx context.Context, tx uow.TX, itemID, reviewerID int64) (bool, error) {
	claimRepo, err := txRepo[ClaimRepository](tx, repoargs.ClaimRepoName)
	if err != nil {
		return false, err
	}
	state, stateErr := claimRepo.State(ctx, c.target, itemID, true)
	if stateErr != nil {
		return false, fmt.Errorf("authorize %s %d: %w", c.target.Name, itemID, stateErr)
	}
	return state.Status == c.target.ClaimedStatus && state.OwnerID != nil && *state.OwnerID == reviewerID, nil
}

// Release снимает захват после решения.
func (c ClaimRegistry) Release(ctx context.Context, tx uow.TX, itemID int64) error {
	claimRepo, err := txRepo[ClaimRepository](tx, repoargs.ClaimRepoName)
	if err != nil {
		return err
	}
	if releaseErr := claimRepo.Release(ctx, c.target, itemID); releaseErr != nil {
		return fmt.Errorf("release %s %d: %w", c.target.Name, itemID, releaseErr)
	}
	return nil
}
