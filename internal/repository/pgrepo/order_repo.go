package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, created_at, updated_at, listing_id, buyer_id, seller_id, price, status,
	delivered_at, completed_at`

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.CreatedAt, &o.UpdatedAt, &o.ListingID, &o.BuyerID, &o.SellerID,
		&o.Price, &o.Status, &o.DeliveredAt, &o.CompletedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Order, error) { //nolint:wrapcheck
		o, err := scanOrder(row)
		if err != nil {
			return domain.Order{}, err
		}
		return *o, nil
	})
}

// Create создает заказ в статусе paid. Второй открытый заказ на то же объявление отклоняется
// частичным уникальным индексом и возвращается как domain.ErrDuplicateKey.
func (r *OrderRepository) Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	o, err := scanOrder(r.conn.QueryRow(ctx, `
		INSERT INTO orders (created_at, updated_at, listing_id, buyer_id, seller_id, price, status)
		VALUES ($1, $1, $2, $3, $4, $5, 'paid')
		RETURNING `+orderColumns,
		args.CreatedAt, args.ListingID, args.BuyerID, args.SellerID, args.Price,
	))
	if err != nil {
		return nil, convertErr(err, "order.Create listing=%d buyer=%d", args.ListingID, args.BuyerID)
	}
	return o, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := scanOrder(r.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "order.GetByID id=%d", id)
	}
	return o, nil
}

// GetForUpdate читает заказ и блокирует строку до конца транзакции.
func (r *OrderRepository) GetForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := scanOrder(r.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, convertErr(err, "order.GetForUpdate id=%d", id)
	}
	return o, nil
}

// Transition условный переход статуса (WHERE status = From). Если заказ уже не в статусе From,
// возвращается domain.ErrRecordNotFound.
func (r *OrderRepository) Transition(ctx context.Context, args repoargs.TransitionOrder) (*domain.Order, error) {
	o, err := scanOrder(r.conn.QueryRow(ctx, `
		UPDATE orders
		SET status = $3::text,
		    updated_at = $4,
		    delivered_at = CASE WHEN $3::text = 'delivered' THEN $4 ELSE delivered_at END,
		    completed_at = CASE WHEN $3::text = 'completed' THEN $4 ELSE completed_at END
		WHERE id = $1 AND status = $2
		RETURNING `+orderColumns,
		args.ID, string(args.From), string(args.To), args.At,
	))
	if err != nil {
		return nil, convertErr(err, "order.Transition id=%d %s->%s", args.ID, args.From, args.To)
	}
	return o, nil
}

func (r *OrderRepository) HasOpenForListing(ctx context.Context, listingID int64) (bool, error) {
	var exists bool
	err := r.conn.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM orders WHERE listing_id = $1 AND status IN ('paid', 'delivered'))`,
		listingID,
	).Scan(&exists)
	if err != nil {
		return false, convertErr(err, "order.HasOpenForListing listing=%d", listingID)
	}
	return exists, nil
}

func (r *OrderRepository) ListByBuyer(ctx context.Context, buyerID int64, limit uint) ([]domain.Order, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE buyer_id = $1 ORDER BY id DESC LIMIT $2`,
		buyerID, limit,
	)
	if err != nil {
		return nil, convertErr(err, "order.ListByBuyer buyer=%d", buyerID)
	}
	orders, collectErr := collectOrders(rows)
	if collectErr != nil {
		return nil, convertErr(collectErr, "order.ListByBuyer buyer=%d", buyerID)
	}
	return orders, nil
}

func (r *OrderRepository) ListBySeller(ctx context.Context, sellerID int64, limit uint) ([]domain.Order, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE seller_id = $1 ORDER BY id DESC LIMIT $2`,
		sellerID, limit,
	)
	if err != nil {
		return nil, convertErr(err, "order.ListBySeller seller=%d", sellerID)
	}
	orders, collectErr := collectOrders(rows)
	if collectErr != nil {
		return nil, convertErr(collectErr, "order.ListBySeller seller=%d", sellerID)
	}
	return orders, nil
}

func (r *OrderRepository) CountCompletedBySeller(ctx context.Context, sellerID int64) (int64, error) {
	var count int64
	err := r.conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE seller_id = $1 AND status = 'completed'`, sellerID,
	).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "order.CountCompletedBySeller seller=%d", sellerID)
	}
	return count, nil
}
