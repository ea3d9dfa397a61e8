package domain

import (
	"time"
)

type SellerStatusType string

const (
	SellerStatusNone     SellerStatusType = "none"
	SellerStatusApplied  SellerStatusType = "applied"
	SellerStatusSeller   SellerStatusType = "seller"
	SellerStatusRejected SellerStatusType = "rejected"
)

// Account учетная запись пользователя. Создается лениво при первом обращении и никогда не удаляется.
type Account struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Username      *string
	Balance       int64
	Phone         *string
	PhoneVerified bool
	SellerStatus  SellerStatusType
	IsSeller      bool
	IsAdmin       bool
	IsBanned      bool
	ReviewOwner   *int64
}

type EventType string

const (
	EventTopup            EventType = "topup"
	EventOrderPayment     EventType = "order_payment"
	EventOrderIncome      EventType = "order_income"
	EventOrderRefund      EventType = "order_refund"
	EventWithdrawApproved EventType = "withdraw_approved"
	EventAdminAdjustment  EventType = "admin_adjustment"
	EventManualAdjustment EventType = "manual_adjustment"
)

// BalanceEvent неизменяемая запись об одном изменении баланса.
type BalanceEvent struct {
	ID        int64
	CreatedAt time.Time
	AccountID int64
	Delta     int64
	EventType EventType
	Reason    string
	ActorID   *int64
	RefType   *string
	RefID     *int64
}

type ListingStatusType string

const (
	ListingStatusPending  ListingStatusType = "pending"
	ListingStatusInReview ListingStatusType = "in_review"
	ListingStatusApproved ListingStatusType = "approved"
	ListingStatusRejected ListingStatusType = "rejected"
	ListingStatusSold     ListingStatusType = "sold"
)

type Listing struct {
	ID          int64
	CreatedAt   time.Time
	SellerID    int64
	Category    string
	Amount      *int64
	Title       string
	Description string
	Price       int64
	Status      ListingStatusType
	ReviewOwner *int64
}

type OrderStatusType string

const (
	OrderStatusPaid             OrderStatusType = "paid"
	OrderStatusDelivered        OrderStatusType = "delivered"
	OrderStatusCompleted        OrderStatusType = "completed"
	OrderStatusCanceledBySeller OrderStatusType = "canceled_by_seller"
)

// IsOpen заказ считается открытым, пока средства удерживаются платформой.
func (s OrderStatusType) IsOpen() bool {
	return s == OrderStatusPaid || s == OrderStatusDelivered
}

type Order struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ListingID   int64
	BuyerID     int64
	SellerID    int64
	Price       int64
	Status      OrderStatusType
	DeliveredAt *time.Time
	CompletedAt *time.Time
}

type WithdrawStatusType string

const (
	WithdrawStatusPending  WithdrawStatusType = "pending"
	WithdrawStatusApproved WithdrawStatusType = "approved"
	WithdrawStatusRejected WithdrawStatusType = "rejected"
)

type WithdrawRequest struct {
	ID            int64
	CreatedAt     time.Time
	UserID        int64
	Amount        int64
	Reason        string
	PayoutDetails string
	Status        WithdrawStatusType
	ReviewOwner   *int64
	ReviewedAt    *time.Time
	ReviewNote    *string
}

type RoleType string

const (
	RoleBuyer  RoleType = "buyer"
	RoleSeller RoleType = "seller"
)

func (r RoleType) Valid() bool {
	return r == RoleBuyer || r == RoleSeller
}

type Review struct {
	ID         int64
	CreatedAt  time.Time
	OrderID    int64
	AuthorID   int64
	TargetID   int64
	TargetRole RoleType
	Rating     int
	Text       *string
}

type PaymentStatusType string

const (
	PaymentStatusPending PaymentStatusType = "pending"
	PaymentStatusPaid    PaymentStatusType = "paid"
	// PaymentStatusReview провайдер подтвердил сумму меньше ожидаемой, нужен разбор вручную.
	PaymentStatusReview PaymentStatusType = "review"
)

type TopupPayment struct {
	ID         int64
	CreatedAt  time.Time
	UserID     int64
	Amount     int64
	Method     string
	Payload    string
	ExternalID *string
	Status     PaymentStatusType
	PaidAt     *time.Time
}

type TicketStatusType string

const (
	TicketStatusOpen       TicketStatusType = "open"
	TicketStatusInProgress TicketStatusType = "in_progress"
	TicketStatusAnswered   TicketStatusType = "answered"
	TicketStatusDismissed  TicketStatusType = "dismissed"
)

type SupportTicket struct {
	ID          int64
	CreatedAt   time.Time
	UserID      int64
	Message     string
	Answer      *string
	Status      TicketStatusType
	ReviewOwner *int64
	ResolvedAt  *time.Time
}
