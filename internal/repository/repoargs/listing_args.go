package repoargs

import "github.com/fsdevblog/groph-market/internal/domain"

type CreateListing struct {
	SellerID    int64
	Category    string
	Amount      *int64
	Title       string
	Description string
	Price       int64
}

type ListApproved struct {
	Category *string
	Pagination
}

// TransitionListing условный переход статуса: From -> To.
type TransitionListing struct {
	ID   int64
	From domain.ListingStatusType
	To   domain.ListingStatusType
}
