package repoargs

type EnsureAccount struct {
	ID       int64
	Username *string
}
