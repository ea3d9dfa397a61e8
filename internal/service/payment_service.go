package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-market/internal/clock"
	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	MaxTopupAmount    int64 = 1_000_000_000
	maxMethodLength         = 16
	topupPayloadScope       = "topup"
)

// PaymentService пополнения баланса через внешних платежных провайдеров.
type PaymentService struct {
	uow         uow.UOW
	paymentRepo PaymentRepository
	clock       clock.Clock
	notifier    Notifier
	l           *logrus.Entry
}

type PaymentServiceArgs struct {
	UOW      uow.UOW
	Clock    clock.Clock
	Notifier Notifier
	Logger   *logrus.Logger
}

func NewPaymentService(args PaymentServiceArgs) (*PaymentService, error) {
	paymentRepo, err := poolRepo[PaymentRepository](args.UOW, repoargs.PaymentRepoName)
	if err != nil {
		return nil, err
	}
	c := args.Clock
	if c == nil {
		c = clock.NewSystem()
	}
	return &PaymentService{
		uow:         args.UOW,
		paymentRepo: paymentRepo,
		clock:       c,
		notifier:    args.Notifier,
		l:           componentLogger(args.Logger, "payments"),
	}, nil
}

type CreateTopupArgs struct {
	UserID     int64
	Amount     int64
	Method     string
	ExternalID *string
}

// CreateTopup регистрирует ожидаемый платеж с уникальным payload вида
// topup:<user>:<hex>:<amount>:<method>, по которому провайдер потом подтвердит оплату.
func (s *PaymentService) CreateTopup(ctx context.Context, args CreateTopupArgs) (*domain.TopupPayment, error) {
	method := strings.TrimSpace(args.Method)
	switch {
	case args.Amount <= 0 || args.Amount > MaxTopupAmount:
		return nil, domain.NewValidationError("amount must be in [1, %d]", MaxTopupAmount)
	case method == "" || len(method) > maxMethodLength || strings.Contains(method, ":"):
		return nil, domain.NewValidationError("invalid payment method %q", args.Method)
	}

	payload := fmt.Sprintf("%s:%d:%s:%d:%s",
		topupPayloadScope, args.UserID, strings.ReplaceAll(uuid.NewString(), "-", ""), args.Amount, method,
	)
	payment, err := s.paymentRepo.Create(ctx, repoargs.CreateTopup{
		UserID:     args.UserID,
		Amount:     args.Amount,
		Method:     method,
		Payload:    payload,
		ExternalID: args.ExternalID,
	})
	if err != nil {
		return nil, fmt.Errorf("create topup: %w", err)
	}
	return payment, nil
}

// CompletePayment зачисляет подтвержденный платеж. Идемпотентна по payload: повторный вызов
// возвращает domain.ErrAlreadyPaid и баланс не меняет.
func (s *PaymentService) CompletePayment(ctx context.Context, payload string, amount int64) (*domain.TopupPayment, error) {
	if payload == "" {
		return nil, domain.NewValidationError("payload is required")
	}

	var payment *domain.TopupPayment
	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		paymentRepo, repoErr := txRepo[PaymentRepository](tx, repoargs.PaymentRepoName)
		if repoErr != nil {
			return repoErr
		}

		current, getErr := paymentRepo.GetByPayload(ctx, payload)
		if getErr != nil {
			return getErr //nolint:wrapcheck
		}
		switch current.Status {
		case domain.PaymentStatusPaid:
			return domain.ErrAlreadyPaid
		case domain.PaymentStatusReview:
			return domain.ErrPaymentOnReview
		}
		if amount < current.Amount {
			return fmt.Errorf("%w: got %d, want %d", domain.ErrPaymentAmountMismatch, amount, current.Amount)
		}

		var markErr error
		payment, markErr = paymentRepo.MarkPaid(ctx, payload, s.clock.Now())
		if markErr != nil {
			// параллельный вызов успел отметить платеж первым.
			if isNotFound(markErr) {
				return domain.ErrAlreadyPaid
			}
			return markErr //nolint:wrapcheck
		}

		_, adjErr := adjustBalance(ctx, tx, repoargs.ApplyDelta{
			AccountID: payment.UserID,
			Delta:     payment.Amount,
			EventType: domain.EventTopup,
			Reason:    fmt.Sprintf("topup via %s", payment.Method),
			Ref:       &domain.Ref{Type: domain.RefTopup, ID: payment.ID},
		})
		return adjErr
	})
	if err != nil {
		return nil, fmt.Errorf("complete payment: %w", err)
	}

	notifyAll(ctx, s.notifier, s.l, domain.Notification{
		Kind:        domain.NotifyPaymentCompleted,
		RecipientID: payment.UserID,
		Entity:      "topup",
		EntityID:    payment.ID,
		Payload:     map[string]any{"amount": payment.Amount, "method": payment.Method},
	})
	return payment, nil
}

// HoldForReview снимает ожидающий платеж с автоматической проверки. Баланс не меняется.
func (s *PaymentService) HoldForReview(ctx context.Context, payload string) (*domain.TopupPayment, error) {
	payment, err := s.paymentRepo.MarkReview(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("hold payment for review: %w", err)
	}
	return payment, nil
}

// PendingForCheck ожидающие платежи с внешним идентификатором, которые можно проверить у провайдера.
func (s *PaymentService) PendingForCheck(ctx context.Context, limit uint) ([]domain.TopupPayment, error) {
	list, err := s.paymentRepo.ListPendingExternal(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("pending payments: %w", err)
	}
	return list, nil
}
