package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

const (
	maxTitleLength    = 255
	maxCategoryLength = 64
)

type ListingService struct {
	uow         uow.UOW
	listingRepo ListingRepository
	queue       *Queue[domain.Listing]
}

func NewListingService(u uow.UOW, queue *Queue[domain.Listing]) (*ListingService, error) {
	listingRepo, err := poolRepo[ListingRepository](u, repoargs.ListingRepoName)
	if err != nil {
		return nil, err
	}
	return &ListingService{uow: u, listingRepo: listingRepo, queue: queue}, nil
}

type SubmitListingArgs struct {
	SellerID    int64
	Category    string
	Amount      *int64
	Title       string
	Description string
	Price       int64
}

func (a SubmitListingArgs) validate() error {
	switch {
	case a.Price <= 0:
		return domain.NewValidationError("price must be positive")
	case strings.TrimSpace(a.Title) == "" || len(a.Title) > maxTitleLength:
		return domain.NewValidationError("title is required and must be at most %d bytes", maxTitleLength)
	case strings.TrimSpace(a.Category) == "" || len(a.Category) > maxCategoryLength:
		return domain.NewValidationError("category is required and must be at most %d bytes", maxCategoryLength)
	case a.Amount != nil && *a.Amount <= 0:
		return domain.NewValidationError("amount must be positive")
	}
	return nil
}

// Submit создает объявление в статусе pending и ставит его в очередь модерации.
// Размещать объявления могут только подтвержденные продавцы.
func (s *ListingService) Submit(ctx context.Context, args SubmitListingArgs) (*domain.Listing, error) {
	if err := args.validate(); err != nil {
		return nil, err
	}

	var listing *domain.Listing
	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		accountRepo, repoErr := txRepo[AccountRepository](tx, repoargs.AccountRepoName)
		if repoErr != nil {
			return repoErr
		}
		listingRepo, repoErr := txRepo[ListingRepository](tx, repoargs.ListingRepoName)
		if repoErr != nil {
			return repoErr
		}

		seller, getErr := accountRepo.GetByID(ctx, args.SellerID)
		if getErr != nil {
			return getErr //nolint:wrapcheck
		}
		if !seller.IsSeller {
			return domain.ErrNotSeller
		}

		var createErr error
		listing, createErr = listingRepo.Create(ctx, repoargs.CreateListing{
			SellerID:    args.SellerID,
			Category:    strings.TrimSpace(args.Category),
			Amount:      args.Amount,
			Title:       strings.TrimSpace(args.Title),
			Description: args.Description,
			Price:       args.Price,
		})
		return createErr //nolint:wrapcheck
	})
	if err != nil {
		return nil, fmt.Errorf("submit listing: %w", err)
	}

	s.queue.Announce(ctx, listing.ID, listing.SellerID)
	return listing, nil
}

func (s *ListingService) Get(ctx context.Context, id int64) (*domain.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return listing, nil
}

// ListApproved каталог опубликованных объявлений. Возвращает страницу и общее количество.
func (s *ListingService) ListApproved(
	ctx context.Context,
	category *string,
	page, perPage uint,
) ([]domain.Listing, int64, error) {
	if category != nil && strings.TrimSpace(*category) == "" {
		category = nil
	}
	listings, err := s.listingRepo.ListApproved(ctx, repoargs.ListApproved{
		Category:   category,
		Pagination: paginate(page, perPage),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list approved: %w", err)
	}
	total, countErr := s.listingRepo.CountApproved(ctx, category)
	if countErr != nil {
		return nil, 0, fmt.Errorf("list approved: %w", countErr)
	}
	return listings, total, nil
}

func (s *ListingService) ListBySeller(ctx context.Context, sellerID int64, page, perPage uint) ([]domain.Listing, error) {
	listings, err := s.listingRepo.ListBySeller(ctx, sellerID, paginate(page, perPage))
	if err != nil {
		return nil, fmt.Errorf("list by seller: %w", err)
	}
	return listings, nil
}

// ListingDecider публикует или отклоняет объявление, находящееся на проверке.
type ListingDecider struct{}

func (ListingDecider) transition(
	ctx context.Context,
	tx uow.TX,
	itemID int64,
	to domain.ListingStatusType,
) (*domain.Listing, error) {
	listingRepo, err := txRepo[ListingRepository](tx, repoargs.ListingRepoName)
	if err != nil {
		return nil, err
	}
	listing, trErr := listingRepo.Transition(ctx, repoargs.TransitionListing{
		ID:   itemID,
		From: domain.ListingStatusInReview,
		To:   to,
	})
	if trErr != nil {
		if isNotFound(trErr) {
			return nil, fmt.Errorf("decide listing %d: %w", itemID, domain.ErrInvalidStatus)
		}
		return nil, fmt.Errorf("decide listing %d: %w", itemID, trErr)
	}
	return listing, nil
}

func (d ListingDecider) Approve(ctx context.Context, tx uow.TX, itemID, _ int64, _ string) (*domain.Listing, error) {
	return d.transition(ctx, tx, itemID, domain.ListingStatusApproved)
}

func (d ListingDecider) Reject(ctx context.Context, tx uow.TX, itemID, _ int64, _ string) (*domain.Listing, error) {
	return d.transition(ctx, tx, itemID, domain.ListingStatusRejected)
}

func (ListingDecider) Subject(item *domain.Listing) int64 {
	return item.SellerID
}
