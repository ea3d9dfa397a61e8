package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, created_at, user_id, amount, method, payload, external_id, status, paid_at`

type PaymentRepository struct {
	conn uow.DBTX
}

func NewPaymentRepository(conn uow.DBTX) *PaymentRepository {
	return &PaymentRepository{conn: conn}
}

func scanPayment(row pgx.Row) (*domain.TopupPayment, error) {
	var p domain.TopupPayment
	err := row.Scan(&p.ID, &p.CreatedAt, &p.UserID, &p.Amount, &p.Method, &p.Payload, &p.ExternalID, &p.Status, &p.PaidAt)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &p, nil
}

func (r *PaymentRepository) Create(ctx context.Context, args repoargs.CreateTopup) (*domain.TopupPayment, error) {
	p, err := scanPayment(r.conn.QueryRow(ctx, `
		INSERT INTO topup_payments (user_id, amount, method, payload, external_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+paymentColumns,
		args.UserID, args.Amount, args.Method, args.Payload, args.ExternalID,
	))
	if err != nil {
		return nil, convertErr(err, "payment.Create user=%d", args.UserID)
	}
	return p, nil
}

func (r *PaymentRepository) GetByPayload(ctx context.Context, payload string) (*domain.TopupPayment, error) {
	p, err := scanPayment(r.conn.QueryRow(ctx, `SELECT `+paymentColumns+` FROM topup_payments WHERE payload = $1`, payload))
	if err != nil {
		return nil, convertErr(err, "payment.GetByPayload")
	}
	return p, nil
}

// MarkPaid переводит платеж pending -> paid. Если платеж уже оплачен или не существует,
// возвращается domain.ErrRecordNotFound.
func (r *PaymentRepository) MarkPaid(ctx context.Context, payload string, at time.Time) (*domain.TopupPayment, error) {
	p, err := scanPayment(r.conn.QueryRow(ctx, `
		UPDATE topup_payments SET status = 'paid', paid_at = $2
		WHERE payload = $1 AND status = 'pending'
		RETURNING `+paymentColumns,
		payload, at,
	))
	if err != nil {
		return nil, convertErr(err, "payment.MarkPaid")
	}
	return p, nil
}

// MarkReview снимает платеж с опроса: pending -> review. Если платеж не в статусе pending,
// возвращается domain.ErrRecordNotFound.
func (r *PaymentRepository) MarkReview(ctx context.Context, payload string) (*domain.TopupPayment, error) {
	p, err := scanPayment(r.conn.QueryRow(ctx, `
		UPDATE topup_payments SET status = 'review'
		WHERE payload = $1 AND status = 'pending'
		RETURNING `+paymentColumns,
		payload,
	))
	if err != nil {
		return nil, convertErr(err, "payment.MarkReview")
	}
	return p, nil
}

// ListPendingExternal возвращает ожидающие оплаты платежи, которые можно проверить у провайдера.
func (r *PaymentRepository) ListPendingExternal(ctx context.Context, limit uint) ([]domain.TopupPayment, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+paymentColumns+` FROM topup_payments
		WHERE status = 'pending' AND external_id IS NOT NULL
		ORDER BY id
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, convertErr(err, "payment.ListPendingExternal")
	}
	list, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TopupPayment, error) {
		p, scanErr := scanPayment(row)
		if scanErr != nil {
			return domain.TopupPayment{}, scanErr
		}
		return *p, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "payment.ListPendingExternal")
	}
	return list, nil
}
