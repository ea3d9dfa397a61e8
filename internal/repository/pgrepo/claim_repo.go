package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/jackc/pgx/v5"
)

// ClaimRepository реализует примитивы захвата для любой таблицы, описанной repoargs.ClaimTarget.
type ClaimRepository struct {
	conn uow.DBTX
}

func NewClaimRepository(conn uow.DBTX) *ClaimRepository {
	return &ClaimRepository{conn: conn}
}

type claimIdents struct {
	table, id, status, owner string
}

func identsOf(t repoargs.ClaimTarget) claimIdents {
	return claimIdents{
		table:  pgx.Identifier{t.Table}.Sanitize(),
		id:     pgx.Identifier{t.IDColumn}.Sanitize(),
		status: pgx.Identifier{t.StatusColumn}.Sanitize(),
		owner:  pgx.Identifier{t.OwnerColumn}.Sanitize(),
	}
}

// TryClaim одним условным UPDATE назначает владельца свободной строке в статусе PendingStatus.
// Возвращает true, если строка была захвачена этим вызовом.
func (r *ClaimRepository) TryClaim(
	ctx context.Context,
	target repoargs.ClaimTarget,
	itemID, reviewerID int64,
) (bool, error) {
	i := identsOf(target)
	query := fmt.Sprintf(
		`UPDATE %[1]s SET %[4]s = $2, %[3]s = $3 WHERE %[2]s = $1 AND %[3]s = $4 AND %[4]s IS NULL`,
		i.table, i.id, i.status, i.owner,
	)
	tag, err := r.conn.Exec(ctx, query, itemID, reviewerID, target.ClaimedStatus, target.PendingStatus)
	if err != nil {
		return false, convertErr(err, "claim.TryClaim %s id=%d", target.Name, itemID)
	}
	return tag.RowsAffected() == 1, nil
}

// State читает статус и владельца строки. При lock=true строка блокируется до конца транзакции.
func (r *ClaimRepository) State(
	ctx context.Context,
	target repoargs.ClaimTarget,
	itemID int64,
	lock bool,
) (*repoargs.ClaimState, error) {
	i := identsOf(target)
	query := fmt.Sprintf(`SELECT %[3]s, %[4]s FROM %[1]s WHERE %[2]s = $1`, i.table, i.id, i.status, i.owner)
	if lock {
		query += " FOR UPDATE"
	}
	var state repoargs.ClaimState
	if err := r.conn.QueryRow(ctx, query, itemID).Scan(&state.Status, &state.OwnerID); err != nil {
		return nil, convertErr(err, "claim.State %s id=%d", target.Name, itemID)
	}
	return &state, nil
}

// Release снимает владельца со строки независимо от того, кто принимал решение.
func (r *ClaimRepository) Release(ctx context.Context, target repoargs.ClaimTarget, itemID int64) error {
	i := identsOf(target)
	query := fmt.Sprintf(`UPDATE %[1]s SET %[3]s = NULL WHERE %[2]s = $1`, i.table, i.id, i.owner)
	if _, err := r.conn.Exec(ctx, query, itemID); err != nil {
		return convertErr(err, "claim.Release %s id=%d", target.Name, itemID)
	}
	return nil
}
