package service

import (
	"context"
	"fmt"
	"slices"
)

// StaticPool пул ревьюеров с фиксированным составом, например агенты поддержки из конфигурации.
type StaticPool struct {
	ids []int64
}

func NewStaticPool(ids ...int64) *StaticPool {
	return &StaticPool{ids: uniqueIDs(ids)}
}

func (p *StaticPool) Reviewers(_ context.Context) ([]int64, error) {
	return slices.Clone(p.ids), nil
}

func (p *StaticPool) IsReviewer(_ context.Context, userID int64) (bool, error) {
	return slices.Contains(p.ids, userID), nil
}

// AdminPool администраторы: супер-админ и ADMIN_IDS из конфигурации плюс аккаунты с флагом is_admin.
type AdminPool struct {
	static      []int64
	accountRepo AccountRepository
}

func NewAdminPool(accountRepo AccountRepository, staticIDs ...int64) *AdminPool {
	return &AdminPool{
		static:      uniqueIDs(staticIDs),
		accountRepo: accountRepo,
	}
}

func (p *AdminPool) Reviewers(ctx context.Context) ([]int64, error) {
	fromDB, err := p.accountRepo.ListAdminIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return uniqueIDs(append(slices.Clone(p.static), fromDB...)), nil
}

func (p *AdminPool) IsReviewer(ctx context.Context, userID int64) (bool, error) {
	if slices.Contains(p.static, userID) {
		return true, nil
	}
	account, err := p.accountRepo.GetByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check admin: %w", err)
	}
	return account.IsAdmin, nil
}

// UnionPool объединение пулов: ревьюер любого из них допускается к очереди.
type UnionPool []ReviewerPool

func (p UnionPool) Reviewers(ctx context.Context) ([]int64, error) {
	var ids []int64
	for _, pool := range p {
		reviewers, err := pool.Reviewers(ctx)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		ids = append(ids, reviewers...)
	}
	return uniqueIDs(ids), nil
}

func (p UnionPool) IsReviewer(ctx context.Context, userID int64) (bool, error) {
	for _, pool := range p {
		ok, err := pool.IsReviewer(ctx, userID)
		if err != nil {
			return false, err //nolint:wrapcheck
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func uniqueIDs(ids []int64) []int64 {
	res := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id != 0 {
			res = append(res, id)
		}
	}
	slices.Sort(res)
	return slices.Compact(res)
}
