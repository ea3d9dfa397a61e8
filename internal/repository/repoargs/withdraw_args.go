package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
)

type CreateWithdraw struct {
	UserID        int64
	Amount        int64
	Reason        string
	PayoutDetails string
}

type ResolveWithdraw struct {
	ID     int64
	Status domain.WithdrawStatusType
	Note   *string
	At     time.Time
}
