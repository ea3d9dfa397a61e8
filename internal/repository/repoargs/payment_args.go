package repoargs

type CreateTopup struct {
	UserID     int64
	Amount     int64
	Method     string
	Payload    string
	ExternalID *string
}
