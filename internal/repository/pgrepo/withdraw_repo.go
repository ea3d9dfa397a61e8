package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const withdrawColumns = `id, created_at, user_id, amount, reason, payout_details, status,
	review_owner, reviewed_at, review_note`

type WithdrawRepository struct {
	conn uow.DBTX
}

func NewWithdrawRepository(conn uow.DBTX) *WithdrawRepository {
	return &WithdrawRepository{conn: conn}
}

func scanWithdraw(row pgx.Row) (*domain.WithdrawRequest, error) {
	var w domain.WithdrawRequest
	err := row.Scan(
		&w.ID, &w.CreatedAt, &w.UserID, &w.Amount, &w.Reason, &w.PayoutDetails,
		&w.Status, &w.ReviewOwner, &w.ReviewedAt, &w.ReviewNote,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &w, nil
}

func (r *WithdrawRepository) Create(ctx context.Context, args repoargs.CreateWithdraw) (*domain.WithdrawRequest, error) {
	w, err := scanWithdraw(r.conn.QueryRow(ctx, `
		INSERT INTO withdraw_requests (user_id, amount, reason, payout_details)
		VALUES ($1, $2, $3, $4)
		RETURNING `+withdrawColumns,
		args.UserID, args.Amount, args.Reason, args.PayoutDetails,
	))
	if err != nil {
		return nil, convertErr(err, "withdraw.Create user=%d", args.UserID)
	}
	return w, nil
}

func (r *WithdrawRepository) GetByID(ctx context.Context, id int64) (*domain.WithdrawRequest, error) {
	w, err := scanWithdraw(r.conn.QueryRow(ctx, `SELECT `+withdrawColumns+` FROM withdraw_requests WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "withdraw.GetByID id=%d", id)
	}
	return w, nil
}

// Resolve переводит заявку из pending в конечный статус. Повторное решение по той же заявке
// вернет domain.ErrRecordNotFound.
func (r *WithdrawRepository) Resolve(ctx context.Context, args repoargs.ResolveWithdraw) (*domain.WithdrawRequest, error) {
	w, err := scanWithdraw(r.conn.QueryRow(ctx, `
		UPDATE withdraw_requests
		SET status = $2, reviewed_at = $3, review_note = $4
		WHERE id = $1 AND status = 'pending'
		RETURNING `+withdrawColumns,
		args.ID, string(args.Status), args.At, args.Note,
	))
	if err != nil {
		return nil, convertErr(err, "withdraw.Resolve id=%d", args.ID)
	}
	return w, nil
}

func (r *WithdrawRepository) ListByUser(ctx context.Context, userID int64, limit uint) ([]domain.WithdrawRequest, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+withdrawColumns+` FROM withdraw_requests WHERE user_id = $1 ORDER BY id DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, convertErr(err, "withdraw.ListByUser user=%d", userID)
	}
	list, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WithdrawRequest, error) {
		w, scanErr := scanWithdraw(row)
		if scanErr != nil {
			return domain.WithdrawRequest{}, scanErr
		}
		return *w, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "withdraw.ListByUser user=%d", userID)
	}
	return list, nil
}
