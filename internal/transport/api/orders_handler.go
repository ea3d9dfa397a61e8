package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/gin-gonic/gin"
)

type OrdersHandler struct {
	orderSvs  OrderServicer
	reviewSvs ReviewServicer
}

func NewOrdersHandler(orderSvs OrderServicer, reviewSvs ReviewServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs:  orderSvs,
		reviewSvs: reviewSvs,
	}
}

type OrderResponse struct {
	ID          int64      `json:"id"`
	ListingID   int64      `json:"listing_id"`
	BuyerID     int64      `json:"buyer_id"`
	SellerID    int64      `json:"seller_id"`
	Price       int64      `json:"price"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func newOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		ListingID:   o.ListingID,
		BuyerID:     o.BuyerID,
		SellerID:    o.SellerID,
		Price:       o.Price,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		DeliveredAt: o.DeliveredAt,
		CompletedAt: o.CompletedAt,
	}
}

type OrdersQuery struct {
	Role  string `binding:"omitempty,oneof=buyer seller" form:"role"`
	Limit uint   `form:"limit"`
}

// Index GET RouteGroup + OrdersRoute. role=buyer (по умолчанию) - покупки, role=seller - продажи.
func (o *OrdersHandler) Index(c *gin.Context) {
	q, ok := bindQuery[OrdersQuery](c)
	if !ok {
		return
	}
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	var (
		orders []domain.Order
		err    error
	)
	if domain.RoleType(q.Role) == domain.RoleSeller {
		orders, err = o.orderSvs.ListBySeller(reqCtx, currentUserID, q.Limit)
	} else {
		orders, err = o.orderSvs.ListByBuyer(reqCtx, currentUserID, q.Limit)
	}
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if len(orders) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	var response = make([]OrderResponse, len(orders))
	for i := range orders {
		response[i] = newOrderResponse(&orders[i])
	}

	c.JSON(http.StatusOK, response)
}

// Show GET RouteGroup + OrderRoute. Заказ виден только его участникам.
func (o *OrdersHandler) Show(c *gin.Context) {
	o.handle(c, o.orderSvs.GetOrder, http.StatusOK)
}

// Deliver POST RouteGroup + OrderDeliverRoute.
func (o *OrdersHandler) Deliver(c *gin.Context) {
	o.handle(c, o.orderSvs.MarkDelivered, http.StatusOK)
}

// Cancel POST RouteGroup + OrderCancelRoute. Отмена продавцом с возвратом средств покупателю.
func (o *OrdersHandler) Cancel(c *gin.Context) {
	o.handle(c, o.orderSvs.CancelBySeller, http.StatusOK)
}

// Confirm POST RouteGroup + OrderConfirmRoute. Подтверждение получения, средства уходят продавцу.
func (o *OrdersHandler) Confirm(c *gin.Context) {
	o.handle(c, o.orderSvs.ConfirmReceipt, http.StatusOK)
}

// handle общий путь для операций вида (orderID, actorID) -> *domain.Order.
func (o *OrdersHandler) handle(
	c *gin.Context,
	op func(ctx context.Context, orderID, actorID int64) (*domain.Order, error),
	status int,
) {
	orderID, ok := bindID(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := op(reqCtx, orderID, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(status, newOrderResponse(order))
}

type SubmitReviewParams struct {
	Rating int     `binding:"required,min=1,max=5"     json:"rating"`
	Text   *string `binding:"omitempty,max_bytes=2000" json:"text"`
}

type ReviewResponse struct {
	ID         int64     `json:"id"`
	OrderID    int64     `json:"order_id"`
	AuthorID   int64     `json:"author_id"`
	TargetID   int64     `json:"target_id"`
	TargetRole string    `json:"target_role"`
	Rating     int       `json:"rating"`
	Text       *string   `json:"text,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func newReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		OrderID:    r.OrderID,
		AuthorID:   r.AuthorID,
		TargetID:   r.TargetID,
		TargetRole: string(r.TargetRole),
		Rating:     r.Rating,
		Text:       r.Text,
		CreatedAt:  r.CreatedAt,
	}
}

// CreateReview POST RouteGroup + OrderReviewsRoute. Адресат отзыва - вторая сторона заказа.
func (o *OrdersHandler) CreateReview(c *gin.Context) {
	orderID, ok := bindID(c)
	if !ok {
		return
	}
	var params SubmitReviewParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.GetOrder(reqCtx, orderID, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	args := service.SubmitReviewArgs{
		OrderID:    orderID,
		AuthorID:   currentUserID,
		TargetID:   order.SellerID,
		TargetRole: domain.RoleSeller,
		Rating:     params.Rating,
		Text:       params.Text,
	}
	if currentUserID == order.SellerID {
		args.TargetID, args.TargetRole = order.BuyerID, domain.RoleBuyer
	}

	review, err := o.reviewSvs.SubmitReview(reqCtx, args)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newReviewResponse(review))
}
