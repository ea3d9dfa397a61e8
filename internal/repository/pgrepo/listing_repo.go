package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const listingColumns = `id, created_at, seller_id, category, amount, title, description, price, status, review_owner`

type ListingRepository struct {
	conn uow.DBTX
}

func NewListingRepository(conn uow.DBTX) *ListingRepository {
	return &ListingRepository{conn: conn}
}

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var l domain.Listing
	err := row.Scan(
		&l.ID, &l.CreatedAt, &l.SellerID, &l.Category, &l.Amount,
		&l.Title, &l.Description, &l.Price, &l.Status, &l.ReviewOwner,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &l, nil
}

func collectListings(rows pgx.Rows) ([]domain.Listing, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Listing, error) { //nolint:wrapcheck
		l, err := scanListing(row)
		if err != nil {
			return domain.Listing{}, err
		}
		return *l, nil
	})
}

func (r *ListingRepository) Create(ctx context.Context, args repoargs.CreateListing) (*domain.Listing, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO listings (seller_id, category, amount, title, description, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+listingColumns,
		args.SellerID, args.Category, args.Amount, args.Title, args.Description, args.Price,
	)
	l, err := scanListing(row)
	if err != nil {
		return nil, convertErr(err, "listing.Create seller=%d", args.SellerID)
	}
	return l, nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	l, err := scanListing(r.conn.QueryRow(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "listing.GetByID id=%d", id)
	}
	return l, nil
}

// GetForUpdate читает объявление и блокирует строку до конца транзакции.
func (r *ListingRepository) GetForUpdate(ctx context.Context, id int64) (*domain.Listing, error) {
	l, err := scanListing(r.conn.QueryRow(ctx,
		`SELECT `+listingColumns+` FROM listings WHERE id = $1 FOR UPDATE`, id,
	))
	if err != nil {
		return nil, convertErr(err, "listing.GetForUpdate id=%d", id)
	}
	return l, nil
}

// Transition выполняет условный переход статуса. Если объявление не в статусе args.From,
// возвращается domain.ErrRecordNotFound.
func (r *ListingRepository) Transition(ctx context.Context, args repoargs.TransitionListing) (*domain.Listing, error) {
	l, err := scanListing(r.conn.QueryRow(ctx, `
		UPDATE listings SET status = $3
		WHERE id = $1 AND status = $2
		RETURNING `+listingColumns,
		args.ID, string(args.From), string(args.To),
	))
	if err != nil {
		return nil, convertErr(err, "listing.Transition id=%d %s->%s", args.ID, args.From, args.To)
	}
	return l, nil
}

func (r *ListingRepository) ListApproved(ctx context.Context, args repoargs.ListApproved) ([]domain.Listing, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE status = 'approved' AND ($1::text IS NULL OR category = $1)
		ORDER BY id DESC
		LIMIT $2 OFFSET $3`,
		args.Category, args.Limit, args.Offset,
	)
	if err != nil {
		return nil, convertErr(err, "listing.ListApproved")
	}
	listings, collectErr := collectListings(rows)
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing.ListApproved")
	}
	return listings, nil
}

func (r *ListingRepository) CountApproved(ctx context.Context, category *string) (int64, error) {
	var count int64
	err := r.conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM listings WHERE status = 'approved' AND ($1::text IS NULL OR category = $1)`,
		category,
	).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "listing.CountApproved")
	}
	return count, nil
}

func (r *ListingRepository) ListBySeller(
	ctx context.Context,
	sellerID int64,
	page repoargs.Pagination,
) ([]domain.Listing, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE seller_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3`,
		sellerID, page.Limit, page.Offset,
	)
	if err != nil {
		return nil, convertErr(err, "listing.ListBySeller seller=%d", sellerID)
	}
	listings, collectErr := collectListings(rows)
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing.ListBySeller seller=%d", sellerID)
	}
	return listings, nil
}
