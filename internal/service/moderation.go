package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/sirupsen/logrus"
)

// Decider применяет решение ревьюера к конкретной сущности. Вызывается внутри транзакции,
// в которой уже проверено владение захватом.
type Decider[T any] interface {
	Approve(ctx context.Context, tx uow.TX, itemID, reviewerID int64, note string) (*T, error)
	Reject(ctx context.Context, tx uow.TX, itemID, reviewerID int64, note string) (*T, error)
	// Subject пользователь, которому сообщается о решении.
	Subject(item *T) int64
}

// Queue очередь модерации: submit -> claim -> decide. Одна реализация обслуживает объявления,
// заявки продавцов, заявки на вывод и обращения в поддержку.
type Queue[T any] struct {
	uow      uow.UOW
	registry ClaimRegistry
	pool     ReviewerPool
	decider  Decider[T]
	notifier Notifier
	l        *logrus.Entry
}

type QueueArgs[T any] struct {
	UOW      uow.UOW
	Registry ClaimRegistry
	Pool     ReviewerPool
	Decider  Decider[T]
	Notifier Notifier
	Logger   *logrus.Logger
}

func NewQueue[T any](args QueueArgs[T]) *Queue[T] {
	return &Queue[T]{
		uow:      args.UOW,
		registry: args.Registry,
		pool:     args.Pool,
		decider:  args.Decider,
		notifier: args.Notifier,
		l:        componentLogger(args.Logger, "queue").WithField("queue", args.Registry.Target().Name),
	}
}

func (q *Queue[T]) entity() string {
	return q.registry.Target().Name
}

// Announce сообщает всем ревьюерам о новом элементе в очереди.
func (q *Queue[T]) Announce(ctx context.Context, itemID, authorID int64) {
	reviewers, err := q.pool.Reviewers(ctx)
	if err != nil {
		q.l.WithError(err).WithField("itemID", itemID).Warn("load reviewers")
		return
	}
	notifications := make([]domain.Notification, 0, len(reviewers))
	for _, id := range reviewers {
		notifications = append(notifications, domain.Notification{
			Kind:        domain.NotifyItemSubmitted,
			RecipientID: id,
			Entity:      q.entity(),
			EntityID:    itemID,
			Payload:     map[string]any{"author_id": authorID},
		})
	}
	notifyAll(ctx, q.notifier, q.l, notifications...)
}

// Claim закрепляет элемент за ревьюером и сообщает остальным ревьюерам, кто его взял.
func (q *Queue[T]) Claim(ctx context.Context, itemID, reviewerID int64) error {
	allowed, err := q.pool.IsReviewer(ctx, reviewerID)
	if err != nil {
		return fmt.Errorf("claim: %w", err)
	}
	if !allowed {
		return fmt.Errorf("claim: %w", domain.ErrForbidden)
	}

	if doErr := q.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		return q.registry.Claim(ctx, tx, itemID, reviewerID)
	}); doErr != nil {
		return doErr //nolint:wrapcheck
	}

	reviewers, rErr := q.pool.Reviewers(ctx)
	if rErr != nil {
		q.l.WithError(rErr).Warn("load reviewers")
		return nil
	}
	notifications := make([]domain.Notification, 0, len(reviewers))
	for _, id := range reviewers {
		if id == reviewerID {
			continue
		}
		notifications = append(notifications, domain.Notification{
			Kind:        domain.NotifyClaimTaken,
			RecipientID: id,
			Entity:      q.entity(),
			EntityID:    itemID,
			Payload:     map[string]any{"reviewer_id": reviewerID},
		})
	}
	notifyAll(ctx, q.notifier, q.l, notifications...)
	return nil
}

// Decide применяет решение. Разрешено только текущему владельцу захвата, который все еще состоит в пуле
// ревьюеров. После решения захват снимается.
func (q *Queue[T]) Decide(ctx context.Context, itemID, reviewerID int64, verdict domain.VerdictType, note string) error {
	if verdict != domain.VerdictApprove && verdict != domain.VerdictReject {
		return domain.NewValidationError("unknown verdict %q", verdict)
	}
	// права могли отозвать после захвата.
	allowed, err := q.pool.IsReviewer(ctx, reviewerID)
	if err != nil {
		return fmt.Errorf("decide: %w", err)
	}
	if !allowed {
		return fmt.Errorf("decide %s %d: %w", q.entity(), itemID, domain.ErrForbidden)
	}

	var item *T
	err = q.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		owner, authErr := q.registry.Authorize(ctx, tx, itemID, reviewerID)
		if authErr != nil {
			return authErr
		}
		if !owner {
			return fmt.Errorf("decide %s %d: %w", q.entity(), itemID, domain.ErrNotClaimOwner)
		}

		var decideErr error
		if verdict == domain.VerdictApprove {
			item, decideErr = q.decider.Approve(ctx, tx, itemID, reviewerID, note)
		} else {
			item, decideErr = q.decider.Reject(ctx, tx, itemID, reviewerID, note)
		}
		if decideErr != nil {
			return decideErr
		}
		return q.registry.Release(ctx, tx, itemID)
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	payload := map[string]any{"verdict": verdict, "reviewer_id": reviewerID}
	if note != "" {
		payload["note"] = note
	}
	notifyAll(ctx, q.notifier, q.l, domain.Notification{
		Kind:        domain.NotifyItemDecided,
		RecipientID: q.decider.Subject(item),
		Entity:      q.entity(),
		EntityID:    itemID,
		Payload:     payload,
	})
	return nil
}
