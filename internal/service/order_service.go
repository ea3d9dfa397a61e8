package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-market/internal/clock"
	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/sirupsen/logrus"
)

// DefaultSellerCancelGrace окно, в течение которого продавец может отменить оплаченный заказ.
const DefaultSellerCancelGrace = 300 * time.Second

// OrderService эскроу-заказы. Переходы:
//
//	(none) --Buy--> paid --MarkDelivered--> delivered --ConfirmReceipt--> completed
//	paid --CancelBySeller (в пределах grace)--> canceled_by_seller
//
// Деньги двигаются только через журнал баланса и в той же транзакции, что и смена статуса.
// Автоматического освобождения средств по таймауту нет: продавец получает деньги только после
// подтверждения покупателем.
type OrderService struct {
	uow       uow.UOW
	orderRepo OrderRepository
	clock     clock.Clock
	grace     time.Duration
	notifier  Notifier
	l         *logrus.Entry
}

type OrderServiceArgs struct {
	UOW      uow.UOW
	Clock    clock.Clock
	Grace    time.Duration
	Notifier Notifier
	Logger   *logrus.Logger
}

func NewOrderService(args OrderServiceArgs) (*OrderService, error) {
	orderRepo, err := poolRepo[OrderRepository](args.UOW, repoargs.OrderRepoName)
	if err != nil {
		return nil, err
	}
	grace := args.Grace
	if grace <= 0 {
		grace = DefaultSellerCancelGrace
	}
	c := args.Clock
	if c == nil {
		c = clock.NewSystem()
	}
	return &OrderService{
		uow:       args.UOW,
		orderRepo: orderRepo,
		clock:     c,
		grace:     grace,
		notifier:  args.Notifier,
		l:         componentLogger(args.Logger, "orders"),
	}, nil
}

type orderRepos struct {
	orders   OrderRepository
	listings ListingRepository
}

func resolveOrderRepos(tx uow.TX) (*orderRepos, error) {
	orders, err := txRepo[OrderRepository](tx, repoargs.OrderRepoName)
	if err != nil {
		return nil, err
	}
	listings, err := txRepo[ListingRepository](tx, repoargs.ListingRepoName)
	if err != nil {
		return nil, err
	}
	return &orderRepos{orders: orders, listings: listings}, nil
}

// Buy покупка объявления. В одной транзакции: объявление approved -> sold, создается заказ paid,
// с покупателя списывается цена (order_payment). Ошибки: domain.ErrListingUnavailable,
// domain.ErrSelfPurchase, domain.ErrInsufficientFunds.
func (s *OrderService) Buy(ctx context.Context, listingID, buyerID int64) (*domain.Order, error) {
	var order *domain.Order
	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repos, repoErr := resolveOrderRepos(tx)
		if repoErr != nil {
			return repoErr
		}

		listing, getErr := repos.listings.GetForUpdate(ctx, listingID)
		if getErr != nil {
			if isNotFound(getErr) {
				return domain.ErrListingUnavailable
			}
			return getErr //nolint:wrapcheck
		}
		if listing.SellerID == buyerID {
			return domain.ErrSelfPurchase
		}
		if listing.Status != domain.ListingStatusApproved {
			return domain.ErrListingUnavailable
		}
		hasOpen, openErr := repos.orders.HasOpenForListing(ctx, listingID)
		if openErr != nil {
			return openErr //nolint:wrapcheck
		}
		if hasOpen {
			return domain.ErrListingUnavailable
		}

		// условный переход approved -> sold: из двух конкурентных покупок пройдет только одна.
		if _, trErr := repos.listings.Transition(ctx, repoargs.TransitionListing{
			ID:   listingID,
			From: domain.ListingStatusApproved,
			To:   domain.ListingStatusSold,
		}); trErr != nil {
			if isNotFound(trErr) {
				return domain.ErrListingUnavailable
			}
			return trErr //nolint:wrapcheck
		}

		var createErr error
		order, createErr = repos.orders.Create(ctx, repoargs.CreateOrder{
			ListingID: listingID,
			BuyerID:   buyerID,
			SellerID:  listing.SellerID,
			Price:     listing.Price,
			CreatedAt: s.clock.Now(),
		})
		if createErr != nil {
			if errors.Is(createErr, domain.ErrDuplicateKey) {
				return domain.ErrListingUnavailable
			}
			return createErr //nolint:wrapcheck
		}

		_, adjErr := adjustBalance(ctx, tx, repoargs.ApplyDelta{
			AccountID: buyerID,
			Delta:     -listing.Price,
			EventType: domain.EventOrderPayment,
			Reason:    fmt.Sprintf("order #%d payment", order.ID),
			ActorID:   &buyerID,
			Ref:       &domain.Ref{Type: domain.RefOrder, ID: order.ID},
		})
		return adjErr
	})
	if err != nil {
		return nil, fmt.Errorf("buy listing %d: %w", listingID, err)
	}

	notifyAll(ctx, s.notifier, s.l,
		orderNotification(domain.NotifyOrderCreated, order.SellerID, order),
		orderNotification(domain.NotifyOrderCreated, order.BuyerID, order),
	)
	return order, nil
}

// MarkDelivered продавец отмечает передачу товара. Баланс не меняется, средства остаются на удержании.
func (s *OrderService) MarkDelivered(ctx context.Context, orderID, sellerID int64) (*domain.Order, error) {
	var order *domain.Order
	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repos, repoErr := resolveOrderRepos(tx)
		if repoErr != nil {
			return repoErr
		}
		current, getErr := repos.orders.GetForUpdate(ctx, orderID)
		if getErr != nil {
			return getErr //nolint:wrapcheck
		}
		if current.SellerID != sellerID {
			return domain.ErrNotSeller
		}
		var trErr error
		order, trErr = s.transition(ctx, repos.orders, current, domain.OrderStatusPaid, domain.OrderStatusDelivered)
		return trErr
	})
	if err != nil {
		return nil, fmt.Errorf("mark delivered %d: %w", orderID, err)
	}

	notifyAll(ctx, s.notifier, s.l, orderNotification(domain.NotifyOrderDelivered, order.BuyerID, order))
	return order, nil
}

// CancelBySeller отмена продавцом в пределах grace с момента оплаты. Покупателю возвращается цена
// (order_refund), объявление снова становится approved. Время сравнивается внутри той же транзакции,
// в которой меняется статус.
func (s *OrderService) CancelBySeller(ctx context.Context, orderID, sellerID int64) (*domain.Order, error) {
	var order *domain.Order
	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repos, repoErr := resolveOrderRepos(tx)
		if repoErr != nil {
			return repoErr
		}
		current, getErr := repos.orders.GetForUpdate(ctx, orderID)
		if getErr != nil {
			return getErr //nolint:wrapcheck
		}
		if current.SellerID != sellerID {
			return domain.ErrNotSeller
		}
		if current.Status != domain.OrderStatusPaid {
			return domain.NewInvalidStatusError(current.Status)
		}
		if s.clock.Now().Sub(current.CreatedAt) > s.grace {
			return domain.ErrTooLate
		}

		var trErr error
		order, trErr = s.transition(ctx, repos.orders, current, domain.OrderStatusPaid, domain.OrderStatusCanceledBySeller)
		if trErr != nil {
			return trErr
		}

		if _, adjErr := adjustBalance(ctx, tx, repoargs.ApplyDelta{
			AccountID: order.BuyerID,
			Delta:     order.Price,
			EventType: domain.EventOrderRefund,
			Reason:    fmt.Sprintf("order #%d canceled by seller", order.ID),
			ActorID:   &sellerID,
			Ref:       &domain.Ref{Type: domain.RefOrder, ID: order.ID},
		}); adjErr != nil {
			return adjErr
		}

		// объявление возвращается в каталог, только если оно все еще sold.
		_, listingErr := repos.listings.Transition(ctx, repoargs.TransitionListing{
			ID:   order.ListingID,
			From: domain.ListingStatusSold,
			To:   domain.ListingStatusApproved,
		})
		if listingErr != nil && !isNotFound(listingErr) {
			return listingErr //nolint:wrapcheck
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cancel order %d: %w", orderID, err)
	}

	notifyAll(ctx, s.notifier, s.l, orderNotification(domain.NotifyOrderCanceled, order.BuyerID, order))
	return order, nil
}

// ConfirmReceipt покупатель подтверждает получение. Единственный путь, по которому удержанные
// средства зачисляются продавцу (order_income).
func (s *OrderService) ConfirmReceipt(ctx context.Context, orderID, buyerID int64) (*domain.Order, error) {
	var order *domain.Order
	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repos, repoErr := resolveOrderRepos(tx)
		if repoErr != nil {
			return repoErr
		}
		current, getErr := repos.orders.GetForUpdate(ctx, orderID)
		if getErr != nil {
			return getErr //nolint:wrapcheck
		}
		if current.BuyerID != buyerID {
			return domain.ErrNotBuyer
		}

		var trErr error
		order, trErr = s.transition(ctx, repos.orders, current, domain.OrderStatusDelivered, domain.OrderStatusCompleted)
		if trErr != nil {
			return trErr
		}

		_, adjErr := adjustBalance(ctx, tx, repoargs.ApplyDelta{
			AccountID: order.SellerID,
			Delta:     order.Price,
			EventType: domain.EventOrderIncome,
			Reason:    fmt.Sprintf("order #%d income", order.ID),
			ActorID:   &buyerID,
			Ref:       &domain.Ref{Type: domain.RefOrder, ID: order.ID},
		})
		return adjErr
	})
	if err != nil {
		return nil, fmt.Errorf("confirm order %d: %w", orderID, err)
	}

	notifyAll(ctx, s.notifier, s.l, orderNotification(domain.NotifyOrderCompleted, order.SellerID, order))
	return order, nil
}

// transition проверяет статус заблокированной строки и выполняет условный UPDATE.
func (s *OrderService) transition(
	ctx context.Context,
	orders OrderRepository,
	current *domain.Order,
	from, to domain.OrderStatusType,
) (*domain.Order, error) {
	if current.Status != from {
		return nil, domain.NewInvalidStatusError(current.Status)
	}
	order, err := orders.Transition(ctx, repoargs.TransitionOrder{
		ID:   current.ID,
		From: from,
		To:   to,
		At:   s.clock.Now(),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, domain.NewInvalidStatusError(current.Status)
		}
		return nil, err //nolint:wrapcheck
	}
	return order, nil
}

// GetOrder заказ доступен только его участникам.
func (s *OrderService) GetOrder(ctx context.Context, orderID, actorID int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order.BuyerID != actorID && order.SellerID != actorID {
		return nil, fmt.Errorf("get order: %w", domain.ErrForbidden)
	}
	return order, nil
}

func (s *OrderService) ListByBuyer(ctx context.Context, buyerID int64, limit uint) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListByBuyer(ctx, buyerID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list buyer orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) ListBySeller(ctx context.Context, sellerID int64, limit uint) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListBySeller(ctx, sellerID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list seller orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) CountCompletedAsSeller(ctx context.Context, sellerID int64) (int64, error) {
	count, err := s.orderRepo.CountCompletedBySeller(ctx, sellerID)
	if err != nil {
		return 0, fmt.Errorf("count completed: %w", err)
	}
	return count, nil
}

func orderNotification(kind domain.NotificationKind, recipient int64, o *domain.Order) domain.Notification {
	return domain.Notification{
		Kind:        kind,
		RecipientID: recipient,
		Entity:      "order",
		EntityID:    o.ID,
		Payload: map[string]any{
			"listing_id": o.ListingID,
			"price":      o.Price,
			"status":     o.Status,
		},
	}
}
