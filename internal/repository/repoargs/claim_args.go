package repoargs

// ClaimTarget описывает таблицу, строки которой разбираются ревьюерами по схеме "захватить, затем решить".
// Любая таблица со столбцами статуса и владельца может быть целью.
type ClaimTarget struct {
	Name          string
	Table         string
	IDColumn      string
	StatusColumn  string
	OwnerColumn   string
	PendingStatus string
	ClaimedStatus string
}

var (
	ListingClaimTarget = ClaimTarget{
		Name:          "listing",
		Table:         "listings",
		IDColumn:      "id",
		StatusColumn:  "status",
		OwnerColumn:   "review_owner",
		PendingStatus: "pending",
		ClaimedStatus: "in_review",
	}
	SellerApplicationClaimTarget = ClaimTarget{
		Name:          "seller_application",
		Table:         "accounts",
		IDColumn:      "id",
		StatusColumn:  "seller_status",
		OwnerColumn:   "review_owner",
		PendingStatus: "applied",
		ClaimedStatus: "applied",
	}
	WithdrawClaimTarget = ClaimTarget{
		Name:          "withdraw",
		Table:         "withdraw_requests",
		IDColumn:      "id",
		StatusColumn:  "status",
		OwnerColumn:   "review_owner",
		PendingStatus: "pending",
		ClaimedStatus: "pending",
	}
	TicketClaimTarget = ClaimTarget{
		Name:          "ticket",
		Table:         "support_tickets",
		IDColumn:      "id",
		StatusColumn:  "status",
		OwnerColumn:   "review_owner",
		PendingStatus: "open",
		ClaimedStatus: "in_progress",
	}
)

// ClaimState текущее состояние захвата строки.
type ClaimState struct {
	Status  string
	OwnerID *int64
}
