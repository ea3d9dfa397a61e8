package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/sirupsen/logrus"
)

const (
	defaultListLimit uint = 30
	maxListLimit     uint = 100
)

// txRepo достает из транзакции репозиторий нужного типа.
func txRepo[T any](tx uow.TX, name repoargs.RepositoryName) (T, error) {
	r, err := uow.GetAs[T](tx, uow.RepositoryName(name))
	if err != nil {
		return r, fmt.Errorf("resolve %s repository: %w", name, err)
	}
	return r, nil
}

// poolRepo достает репозиторий, работающий вне транзакции.
func poolRepo[T any](u uow.UOW, name repoargs.RepositoryName) (T, error) {
	r, err := uow.GetRepositoryAs[T](u, uow.RepositoryName(name))
	if err != nil {
		return r, fmt.Errorf("resolve %s repository: %w", name, err)
	}
	return r, nil
}

// adjustBalance единственная точка изменения баланса. Вызывается внутри транзакции вызывающего сервиса,
// чтобы движение денег и смена статуса сущности фиксировались вместе.
func adjustBalance(ctx context.Context, tx uow.TX, args repoargs.ApplyDelta) (int64, error) {
	if args.Delta == 0 {
		return 0, domain.NewValidationError("delta must not be zero")
	}
	ledgerRepo, err := txRepo[LedgerRepository](tx, repoargs.LedgerRepoName)
	if err != nil {
		return 0, err
	}
	newBalance, applyErr := ledgerRepo.ApplyDelta(ctx, args)
	if applyErr != nil {
		return 0, fmt.Errorf("adjust balance of %d by %d: %w", args.AccountID, args.Delta, applyErr)
	}
	return newBalance, nil
}

func normalizeLimit(limit uint) uint {
	switch {
	case limit == 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}

func paginate(page, perPage uint) repoargs.Pagination {
	perPage = normalizeLimit(perPage)
	if page == 0 {
		page = 1
	}
	return repoargs.Pagination{Limit: perPage, Offset: (page - 1) * perPage}
}

// notifyAll отправляет уведомления после фиксации транзакции. Ошибки доставки только логируются:
// состояние уже изменено и откатываться не должно.
func notifyAll(ctx context.Context, n Notifier, l *logrus.Entry, notifications ...domain.Notification) {
	if n == nil {
		return
	}
	for _, item := range notifications {
		if err := n.Notify(ctx, item); err != nil {
			l.WithError(err).WithFields(logrus.Fields{
				"kind":      item.Kind,
				"recipient": item.RecipientID,
				"entity":    item.Entity,
				"entityID":  item.EntityID,
			}).Warn("notification delivery failed")
		}
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrRecordNotFound)
}

func componentLogger(l *logrus.Logger, module string) *logrus.Entry {
	if l == nil {
		l = logrus.New()
	}
	return l.WithFields(logrus.Fields{
		"component": "service",
		"module":    module,
	})
}
