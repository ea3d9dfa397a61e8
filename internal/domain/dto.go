package domain

import "github.com/shopspring/decimal"

type VerdictType string

const (
	VerdictApprove VerdictType = "approve"
	VerdictReject  VerdictType = "reject"
)

// Rating агрегат отзывов по паре (пользователь, роль).
type Rating struct {
	Average decimal.Decimal
	Count   int64
}

// Ref ссылка на сущность, породившую движение баланса.
type Ref struct {
	Type string
	ID   int64
}

const (
	RefOrder    = "order"
	RefWithdraw = "withdraw"
	RefTopup    = "topup"
)

type NotificationKind string

const (
	NotifyOrderCreated     NotificationKind = "order_created"
	NotifyOrderDelivered   NotificationKind = "order_delivered"
	NotifyOrderCanceled    NotificationKind = "order_canceled"
	NotifyOrderCompleted   NotificationKind = "order_completed"
	NotifyItemSubmitted    NotificationKind = "item_submitted"
	NotifyClaimTaken       NotificationKind = "claim_taken"
	NotifyItemDecided      NotificationKind = "item_decided"
	NotifyPaymentCompleted NotificationKind = "payment_completed"
)

// Notification событие перехода состояния, которое транспорт превращает в сообщение в чате.
type Notification struct {
	Kind        NotificationKind `json:"kind"`
	RecipientID int64            `json:"recipient_id"`
	Entity      string           `json:"entity"`
	EntityID    int64            `json:"entity_id"`
	Payload     map[string]any   `json:"payload,omitempty"`
}
