package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const ticketColumns = `id, created_at, user_id, message, answer, status, review_owner, resolved_at`

type TicketRepository struct {
	conn uow.DBTX
}

func NewTicketRepository(conn uow.DBTX) *TicketRepository {
	return &TicketRepository{conn: conn}
}

func scanTicket(row pgx.Row) (*domain.SupportTicket, error) {
	var t domain.SupportTicket
	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UserID, &t.Message, &t.Answer, &t.Status, &t.ReviewOwner, &t.ResolvedAt); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &t, nil
}

func (r *TicketRepository) Create(ctx context.Context, userID int64, message string) (*domain.SupportTicket, error) {
	t, err := scanTicket(r.conn.QueryRow(ctx,
		`INSERT INTO support_tickets (user_id, message) VALUES ($1, $2) RETURNING `+ticketColumns,
		userID, message,
	))
	if err != nil {
		return nil, convertErr(err, "ticket.Create user=%d", userID)
	}
	return t, nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id int64) (*domain.SupportTicket, error) {
	t, err := scanTicket(r.conn.QueryRow(ctx, `SELECT `+ticketColumns+` FROM support_tickets WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "ticket.GetByID id=%d", id)
	}
	return t, nil
}

// Resolve закрывает обращение, находящееся в работе.
func (r *TicketRepository) Resolve(ctx context.Context, args repoargs.ResolveTicket) (*domain.SupportTicket, error) {
	t, err := scanTicket(r.conn.QueryRow(ctx, `
		UPDATE support_tickets SET status = $2, answer = $3, resolved_at = $4
		WHERE id = $1 AND status = 'in_progress'
		RETURNING `+ticketColumns,
		args.ID, string(args.Status), args.Answer, args.At,
	))
	if err != nil {
		return nil, convertErr(err, "ticket.Resolve id=%d", args.ID)
	}
	return t, nil
}
