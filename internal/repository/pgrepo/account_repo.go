package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `id, created_at, updated_at, username, balance, phone, phone_verified,
	seller_status, is_seller, is_admin, is_banned, review_owner`

type AccountRepository struct {
	conn uow.DBTX
}

func NewAccountRepository(conn uow.DBTX) *AccountRepository {
	return &AccountRepository{conn: conn}
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.Username,
		&a.Balance,
		&a.Phone,
		&a.PhoneVerified,
		&a.SellerStatus,
		&a.IsSeller,
		&a.IsAdmin,
		&a.IsBanned,
		&a.ReviewOwner,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &a, nil
}

// Ensure создает учетную запись, если ее нет. Для существующей записи обновляется только username.
func (r *AccountRepository) Ensure(ctx context.Context, args repoargs.EnsureAccount) (*domain.Account, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO accounts (id, username) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE
			SET username = COALESCE(EXCLUDED.username, accounts.username)
		RETURNING `+accountColumns,
		args.ID, args.Username,
	)
	a, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "account.Ensure id=%d", args.ID)
	}
	return a, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	a, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "account.GetByID id=%d", id)
	}
	return a, nil
}

func (r *AccountRepository) SetBanned(ctx context.Context, id int64, banned bool) (*domain.Account, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE accounts SET is_banned = $2, updated_at = now() WHERE id = $1
		RETURNING `+accountColumns,
		id, banned,
	)
	a, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "account.SetBanned id=%d", id)
	}
	return a, nil
}

func (r *AccountRepository) SetAdmin(ctx context.Context, id int64, admin bool) (*domain.Account, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE accounts SET is_admin = $2, updated_at = now() WHERE id = $1
		RETURNING `+accountColumns,
		id, admin,
	)
	a, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "account.SetAdmin id=%d", id)
	}
	return a, nil
}

func (r *AccountRepository) SetVerifiedPhone(ctx context.Context, id int64, phone string) (*domain.Account, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE accounts SET phone = $2, phone_verified = TRUE, updated_at = now() WHERE id = $1
		RETURNING `+accountColumns,
		id, phone,
	)
	a, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "account.SetVerifiedPhone id=%d", id)
	}
	return a, nil
}

// TransitionSellerStatus меняет статус продавца, только если текущий статус входит в from.
// Переход в SellerStatusSeller также выставляет флаг is_seller. Если строка не подошла под условие,
// возвращается domain.ErrRecordNotFound.
func (r *AccountRepository) TransitionSellerStatus(
	ctx context.Context,
	id int64,
	from []domain.SellerStatusType,
	to domain.SellerStatusType,
) (*domain.Account, error) {
	fromStr := make([]string, len(from))
	for i, s := range from {
		fromStr[i] = string(s)
	}
	row := r.conn.QueryRow(ctx, `
		UPDATE accounts
		SET seller_status = $3,
		    is_seller = is_seller OR $3 = 'seller',
		    updated_at = now()
		WHERE id = $1 AND seller_status = ANY($2::text[])
		RETURNING `+accountColumns,
		id, fromStr, string(to),
	)
	a, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "account.TransitionSellerStatus id=%d to=%s", id, to)
	}
	return a, nil
}

func (r *AccountRepository) ListAdminIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.conn.Query(ctx, `SELECT id FROM accounts WHERE is_admin ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "account.ListAdminIDs")
	}
	ids, collectErr := pgx.CollectRows(rows, pgx.RowTo[int64])
	if collectErr != nil {
		return nil, convertErr(collectErr, "account.ListAdminIDs")
	}
	return ids, nil
}
