package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const reviewColumns = `id, created_at, order_id, author_id, target_id, target_role, rating, text`

type ReviewRepository struct {
	conn uow.DBTX
}

func NewReviewRepository(conn uow.DBTX) *ReviewRepository {
	return &ReviewRepository{conn: conn}
}

func scanReview(row pgx.Row) (*domain.Review, error) {
	var rv domain.Review
	err := row.Scan(
		&rv.ID, &rv.CreatedAt, &rv.OrderID, &rv.AuthorID, &rv.TargetID, &rv.TargetRole, &rv.Rating, &rv.Text,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &rv, nil
}

func collectReviews(rows pgx.Rows) ([]domain.Review, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Review, error) { //nolint:wrapcheck
		rv, err := scanReview(row)
		if err != nil {
			return domain.Review{}, err
		}
		return *rv, nil
	})
}

// Create вставляет отзыв. Повтор по (order_id, author_id, target_role) отклоняется уникальным
// ограничением и возвращается как domain.ErrDuplicateKey, существующий отзыв не перезаписывается.
func (r *ReviewRepository) Create(ctx context.Context, args repoargs.CreateReview) (*domain.Review, error) {
	rv, err := scanReview(r.conn.QueryRow(ctx, `
		INSERT INTO reviews (order_id, author_id, target_id, target_role, rating, text)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+reviewColumns,
		args.OrderID, args.AuthorID, args.TargetID, string(args.TargetRole), args.Rating, args.Text,
	))
	if err != nil {
		return nil, convertErr(err, "review.Create order=%d author=%d", args.OrderID, args.AuthorID)
	}
	return rv, nil
}

func (r *ReviewRepository) Aggregate(
	ctx context.Context,
	targetID int64,
	role domain.RoleType,
) (*repoargs.RatingAggregation, error) {
	var agg repoargs.RatingAggregation
	err := r.conn.QueryRow(ctx,
		`SELECT COALESCE(SUM(rating), 0)::bigint, COUNT(*) FROM reviews WHERE target_id = $1 AND target_role = $2`,
		targetID, string(role),
	).Scan(&agg.Sum, &agg.Count)
	if err != nil {
		return nil, convertErr(err, "review.Aggregate target=%d role=%s", targetID, role)
	}
	return &agg, nil
}

func (r *ReviewRepository) ListReceived(
	ctx context.Context,
	targetID int64,
	role domain.RoleType,
	page repoargs.Pagination,
) ([]domain.Review, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+reviewColumns+` FROM reviews
		WHERE target_id = $1 AND target_role = $2
		ORDER BY id DESC
		LIMIT $3 OFFSET $4`,
		targetID, string(role), page.Limit, page.Offset,
	)
	if err != nil {
		return nil, convertErr(err, "review.ListReceived target=%d", targetID)
	}
	list, collectErr := collectReviews(rows)
	if collectErr != nil {
		return nil, convertErr(collectErr, "review.ListReceived target=%d", targetID)
	}
	return list, nil
}

func (r *ReviewRepository) ListAuthored(ctx context.Context, authorID int64, limit uint) ([]domain.Review, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE author_id = $1 ORDER BY id DESC LIMIT $2`,
		authorID, limit,
	)
	if err != nil {
		return nil, convertErr(err, "review.ListAuthored author=%d", authorID)
	}
	list, collectErr := collectReviews(rows)
	if collectErr != nil {
		return nil, convertErr(collectErr, "review.ListAuthored author=%d", authorID)
	}
	return list, nil
}
