package repoargs

import "github.com/fsdevblog/groph-market/internal/domain"

// ApplyDelta аргументы атомарного изменения баланса с записью события в журнал.
type ApplyDelta struct {
	AccountID int64
	Delta     int64
	EventType domain.EventType
	Reason    string
	ActorID   *int64
	Ref       *domain.Ref
}

// LedgerTotals пара значений для проверки сохранения баланса.
type LedgerTotals struct {
	Balance   int64
	EventsSum int64
}
