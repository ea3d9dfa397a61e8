package pgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type LedgerRepository struct {
	conn uow.DBTX
}

func NewLedgerRepository(conn uow.DBTX) *LedgerRepository {
	return &LedgerRepository{conn: conn}
}

// ApplyDelta атомарно изменяет баланс и добавляет запись в журнал событий.
// Списание выполняется условным UPDATE (balance + delta >= 0), поэтому проверка и изменение баланса
// не разделены во времени. Если средств недостаточно, возвращается domain.ErrInsufficientFunds.
//
// Обе команды должны выполняться в одной транзакции, метод вызывается только внутри uow.Do.
func (r *LedgerRepository) ApplyDelta(ctx context.Context, args repoargs.ApplyDelta) (int64, error) {
	var newBalance int64
	err := r.conn.QueryRow(ctx, `
		UPDATE accounts SET balance = balance + $2, updated_at = now()
		WHERE id = $1 AND balance + $2 >= 0
		RETURNING balance`,
		args.AccountID, args.Delta,
	).Scan(&newBalance)

	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, convertErr(err, "ledger.ApplyDelta account=%d", args.AccountID)
		}
		// строка не обновилась: либо нет аккаунта, либо не хватает средств.
		var exists bool
		if existsErr := r.conn.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM accounts WHERE id = $1)`, args.AccountID,
		).Scan(&exists); existsErr != nil {
			return 0, convertErr(existsErr, "ledger.ApplyDelta account=%d", args.AccountID)
		}
		if !exists {
			return 0, fmt.Errorf("[repository/ledger.ApplyDelta account=%d] %w", args.AccountID, domain.ErrRecordNotFound)
		}
		return 0, fmt.Errorf(
			"[repository/ledger.ApplyDelta account=%d] %w", args.AccountID, domain.ErrInsufficientFunds,
		)
	}

	var refType *string
	var refID *int64
	if args.Ref != nil {
		refType = &args.Ref.Type
		refID = &args.Ref.ID
	}

	_, insErr := r.conn.Exec(ctx, `
		INSERT INTO balance_events (account_id, delta, event_type, reason, actor_id, ref_type, ref_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		args.AccountID, args.Delta, string(args.EventType), args.Reason, args.ActorID, refType, refID,
	)
	if insErr != nil {
		return 0, convertErr(insErr, "ledger.ApplyDelta insert event account=%d", args.AccountID)
	}

	return newBalance, nil
}

func (r *LedgerRepository) GetBalance(ctx context.Context, accountID int64) (int64, error) {
	var balance int64
	err := r.conn.QueryRow(ctx, `SELECT balance FROM accounts WHERE id = $1`, accountID).Scan(&balance)
	if err != nil {
		return 0, convertErr(err, "ledger.GetBalance account=%d", accountID)
	}
	return balance, nil
}

// GetBalanceForUpdate читает баланс с блокировкой строки до конца транзакции.
func (r *LedgerRepository) GetBalanceForUpdate(ctx context.Context, accountID int64) (int64, error) {
	var balance int64
	err := r.conn.QueryRow(ctx,
		`SELECT balance FROM accounts WHERE id = $1 FOR UPDATE`, accountID,
	).Scan(&balance)
	if err != nil {
		return 0, convertErr(err, "ledger.GetBalanceForUpdate account=%d", accountID)
	}
	return balance, nil
}

func (r *LedgerRepository) ListEvents(ctx context.Context, accountID int64, limit uint) ([]domain.BalanceEvent, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT id, created_at, account_id, delta, event_type, reason, actor_id, ref_type, ref_id
		FROM balance_events
		WHERE account_id = $1
		ORDER BY id DESC
		LIMIT $2`,
		accountID, limit,
	)
	if err != nil {
		return nil, convertErr(err, "ledger.ListEvents account=%d", accountID)
	}
	events, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BalanceEvent, error) {
		var e domain.BalanceEvent
		scanErr := row.Scan(
			&e.ID, &e.CreatedAt, &e.AccountID, &e.Delta, &e.EventType, &e.Reason, &e.ActorID, &e.RefType, &e.RefID,
		)
		return e, scanErr
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "ledger.ListEvents account=%d", accountID)
	}
	return events, nil
}

// Totals возвращает текущий баланс и сумму дельт журнала для аккаунта.
func (r *LedgerRepository) Totals(ctx context.Context, accountID int64) (*repoargs.LedgerTotals, error) {
	var t repoargs.LedgerTotals
	err := r.conn.QueryRow(ctx, `
		SELECT a.balance, COALESCE((SELECT SUM(e.delta) FROM balance_events e WHERE e.account_id = a.id), 0)::bigint
		FROM accounts a
		WHERE a.id = $1`,
		accountID,
	).Scan(&t.Balance, &t.EventsSum)
	if err != nil {
		return nil, convertErr(err, "ledger.Totals account=%d", accountID)
	}
	return &t, nil
}
