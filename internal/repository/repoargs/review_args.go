package repoargs

import "github.com/fsdevblog/groph-market/internal/domain"

type CreateReview struct {
	OrderID    int64
	AuthorID   int64
	TargetID   int64
	TargetRole domain.RoleType
	Rating     int
	Text       *string
}

type RatingAggregation struct {
	Sum   int64
	Count int64
}
