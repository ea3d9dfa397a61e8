package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/shopspring/decimal"
)

const (
	minRating       = 1
	maxRating       = 5
	maxReviewLength = 2000
	ratingPrecision = 2
)

type ReviewService struct {
	uow        uow.UOW
	reviewRepo ReviewRepository
}

func NewReviewService(u uow.UOW) (*ReviewService, error) {
	reviewRepo, err := poolRepo[ReviewRepository](u, repoargs.ReviewRepoName)
	if err != nil {
		return nil, err
	}
	return &ReviewService{uow: u, reviewRepo: reviewRepo}, nil
}

type SubmitReviewArgs struct {
	OrderID    int64
	AuthorID   int64
	TargetID   int64
	TargetRole domain.RoleType
	Rating     int
	Text       *string
}

func (a SubmitReviewArgs) validate() error {
	switch {
	case a.Rating < minRating || a.Rating > maxRating:
		return domain.NewValidationError("rating must be in [%d, %d]", minRating, maxRating)
	case !a.TargetRole.Valid():
		return domain.NewValidationError("unknown role %q", a.TargetRole)
	case a.AuthorID == a.TargetID:
		return domain.NewValidationError("author and target must differ")
	case a.Text != nil && len(*a.Text) > maxReviewLength:
		return domain.NewValidationError("text must be at most %d bytes", maxReviewLength)
	}
	return nil
}

// SubmitReview оставляет отзыв по завершенному заказу. Автор должен быть участником заказа,
// цель и роль - второй стороной. Повторный отзыв с тем же (заказ, автор, роль) возвращает
// domain.ErrDuplicateReview и не перезаписывает первый.
func (s *ReviewService) SubmitReview(ctx context.Context, args SubmitReviewArgs) (*domain.Review, error) {
	if err := args.validate(); err != nil {
		return nil, err
	}
	if args.Text != nil {
		trimmed := strings.TrimSpace(*args.Text)
		if trimmed == "" {
			args.Text = nil
		} else {
			args.Text = &trimmed
		}
	}

	var review *domain.Review
	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		orderRepo, repoErr := txRepo[OrderRepository](tx, repoargs.OrderRepoName)
		if repoErr != nil {
			return repoErr
		}
		reviewRepo, repoErr := txRepo[ReviewRepository](tx, repoargs.ReviewRepoName)
		if repoErr != nil {
			return repoErr
		}

		order, getErr := orderRepo.GetByID(ctx, args.OrderID)
		if getErr != nil {
			return getErr //nolint:wrapcheck
		}
		if order.Status != domain.OrderStatusCompleted {
			return domain.NewInvalidStatusError(order.Status)
		}

		var wantTarget int64
		var wantRole domain.RoleType
		switch args.AuthorID {
		case order.BuyerID:
			wantTarget, wantRole = order.SellerID, domain.RoleSeller
		case order.SellerID:
			wantTarget, wantRole = order.BuyerID, domain.RoleBuyer
		default:
			return domain.ErrForbidden
		}
		if args.TargetID != wantTarget || args.TargetRole != wantRole {
			return domain.NewValidationError("review target must be the %s of the order", wantRole)
		}

		var createErr error
		review, createErr = reviewRepo.Create(ctx, repoargs.CreateReview{
			OrderID:    args.OrderID,
			AuthorID:   args.AuthorID,
			TargetID:   args.TargetID,
			TargetRole: args.TargetRole,
			Rating:     args.Rating,
			Text:       args.Text,
		})
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			return domain.ErrDuplicateReview
		}
		return createErr //nolint:wrapcheck
	})
	if err != nil {
		return nil, fmt.Errorf("submit review: %w", err)
	}
	return review, nil
}

// GetRating средняя оценка (2 знака после запятой) и количество отзывов для пары (пользователь, роль).
func (s *ReviewService) GetRating(ctx context.Context, targetID int64, role domain.RoleType) (*domain.Rating, error) {
	if !role.Valid() {
		return nil, domain.NewValidationError("unknown role %q", role)
	}
	agg, err := s.reviewRepo.Aggregate(ctx, targetID, role)
	if err != nil {
		return nil, fmt.Errorf("get rating: %w", err)
	}
	rating := &domain.Rating{Average: decimal.Zero, Count: agg.Count}
	if agg.Count > 0 {
		rating.Average = decimal.NewFromInt(agg.Sum).
			DivRound(decimal.NewFromInt(agg.Count), ratingPrecision)
	}
	return rating, nil
}

func (s *ReviewService) ListReceived(
	ctx context.Context,
	targetID int64,
	role domain.RoleType,
	page, perPage uint,
) ([]domain.Review, error) {
	if !role.Valid() {
		return nil, domain.NewValidationError("unknown role %q", role)
	}
	list, err := s.reviewRepo.ListReceived(ctx, targetID, role, paginate(page, perPage))
	if err != nil {
		return nil, fmt.Errorf("list received reviews: %w", err)
	}
	return list, nil
}

func (s *ReviewService) ListAuthored(ctx context.Context, authorID int64, limit uint) ([]domain.Review, error) {
	list, err := s.reviewRepo.ListAuthored(ctx, authorID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list authored reviews: %w", err)
	}
	return list, nil
}
