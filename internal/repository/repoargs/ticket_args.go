package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
)

type ResolveTicket struct {
	ID     int64
	Status domain.TicketStatusType
	Answer *string
	At     time.Time
}
