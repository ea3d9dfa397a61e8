package payments

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/transport/payments/client"
)

type Client interface {
	GetPaymentStatus(ctx context.Context, externalID string) (*client.Response, error)
}

type Servicer interface {
	PendingForCheck(ctx context.Context, limit uint) ([]domain.TopupPayment, error)
	CompletePayment(ctx context.Context, payload string, amount int64) (*domain.TopupPayment, error)
	HoldForReview(ctx context.Context, payload string) (*domain.TopupPayment, error)
}
