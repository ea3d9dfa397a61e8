package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
)

type CreateOrder struct {
	ListingID int64
	BuyerID   int64
	SellerID  int64
	Price     int64
	CreatedAt time.Time
}

// TransitionOrder условный переход статуса заказа. At записывается в поле времени, соответствующее To.
type TransitionOrder struct {
	ID   int64
	From domain.OrderStatusType
	To   domain.OrderStatusType
	At   time.Time
}
