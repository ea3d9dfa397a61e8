package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-market/internal/clock"
	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

const maxTicketMessageLength = 4000

type SupportService struct {
	ticketRepo TicketRepository
	queue      *Queue[domain.SupportTicket]
}

func NewSupportService(u uow.UOW, queue *Queue[domain.SupportTicket]) (*SupportService, error) {
	ticketRepo, err := poolRepo[TicketRepository](u, repoargs.TicketRepoName)
	if err != nil {
		return nil, err
	}
	return &SupportService{ticketRepo: ticketRepo, queue: queue}, nil
}

// OpenTicket создает обращение и рассылает его агентам поддержки.
func (s *SupportService) OpenTicket(ctx context.Context, userID int64, message string) (*domain.SupportTicket, error) {
	message = strings.TrimSpace(message)
	if message == "" || len(message) > maxTicketMessageLength {
		return nil, domain.NewValidationError("message is required and must be at most %d bytes", maxTicketMessageLength)
	}
	ticket, err := s.ticketRepo.Create(ctx, userID, message)
	if err != nil {
		return nil, fmt.Errorf("open ticket: %w", err)
	}
	s.queue.Announce(ctx, ticket.ID, userID)
	return ticket, nil
}

// TicketDecider approve означает ответ пользователю (текст ответа обязателен), reject закрывает обращение без ответа.
type TicketDecider struct {
	Clock clock.Clock
}

func (d TicketDecider) resolve(
	ctx context.Context,
	tx uow.TX,
	itemID int64,
	status domain.TicketStatusType,
	answer *string,
) (*domain.SupportTicket, error) {
	ticketRepo, err := txRepo[TicketRepository](tx, repoargs.TicketRepoName)
	if err != nil {
		return nil, err
	}
	ticket, resErr := ticketRepo.Resolve(ctx, repoargs.ResolveTicket{
		ID:     itemID,
		Status: status,
		Answer: answer,
		At:     d.Clock.Now(),
	})
	if resErr != nil {
		if isNotFound(resErr) {
			return nil, fmt.Errorf("resolve ticket %d: %w", itemID, domain.ErrInvalidStatus)
		}
		return nil, fmt.Errorf("resolve ticket %d: %w", itemID, resErr)
	}
	return ticket, nil
}

func (d TicketDecider) Approve(ctx context.Context, tx uow.TX, itemID, _ int64, note string) (*domain.SupportTicket, error) {
	answer := strings.TrimSpace(note)
	if answer == "" {
		return nil, domain.NewValidationError("answer is required")
	}
	return d.resolve(ctx, tx, itemID, domain.TicketStatusAnswered, &answer)
}

func (d TicketDecider) Reject(ctx context.Context, tx uow.TX, itemID, _ int64, _ string) (*domain.SupportTicket, error) {
	return d.resolve(ctx, tx, itemID, domain.TicketStatusDismissed, nil)
}

func (TicketDecider) Subject(item *domain.SupportTicket) int64 {
	return item.UserID
}
