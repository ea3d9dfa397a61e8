package repoargs

type RepositoryName string

const (
	AccountRepoName  RepositoryName = "account"
	LedgerRepoName   RepositoryName = "ledger"
	ListingRepoName  RepositoryName = "listing"
	OrderRepoName    RepositoryName = "order"
	WithdrawRepoName RepositoryName = "withdraw"
	ReviewRepoName   RepositoryName = "review"
	ClaimRepoName    RepositoryName = "claim"
	PaymentRepoName  RepositoryName = "payment"
	TicketRepoName   RepositoryName = "ticket"
)

// Pagination параметры постраничной выборки.
type Pagination struct {
	Limit  uint
	Offset uint
}
