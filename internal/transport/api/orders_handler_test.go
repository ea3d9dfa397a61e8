package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type OrderHandlerTestSuite struct {
	handlerSuite
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func testOrder(id, buyerID, sellerID int64, status domain.OrderStatusType) *domain.Order {
	return &domain.Order{
		ID:        id,
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		ListingID: 10,
		BuyerID:   buyerID,
		SellerID:  sellerID,
		Price:     500,
		Status:    status,
	}
}

func (s *OrderHandlerTestSuite) TestBuy() {
	var buyerID int64 = 3

	s.orders.EXPECT().
		Buy(gomock.Any(), int64(10), buyerID).
		Return(testOrder(5, buyerID, 4, domain.OrderStatusPaid), nil).
		Times(1)

	res := s.request(http.MethodPost, RouteGroup+"/listings/10/buy", buyerID, nil)
	s.Require().Equal(http.StatusCreated, res.StatusCode)

	var order OrderResponse
	s.decode(res, &order)
	s.Equal(int64(5), order.ID)
	s.Equal(int64(500), order.Price)
	s.Equal("paid", order.Status)
}

func (s *OrderHandlerTestSuite) TestBuyRejected() {
	cases := []struct {
		name       string
		listingID  int64
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "insufficient funds",
			listingID:  11,
			err:        fmt.Errorf("buy: %w", domain.ErrInsufficientFunds),
			wantStatus: http.StatusPaymentRequired,
			wantCode:   "insufficient_funds",
		}, {
			name:       "listing unavailable",
			listingID:  12,
			err:        fmt.Errorf("buy: %w", domain.ErrListingUnavailable),
			wantStatus: http.StatusConflict,
			wantCode:   "listing_unavailable",
		}, {
			name:       "self purchase",
			listingID:  13,
			err:        fmt.Errorf("buy: %w", domain.ErrSelfPurchase),
			wantStatus: http.StatusConflict,
			wantCode:   "self_purchase",
		}, {
			name:       "listing not found",
			listingID:  14,
			err:        fmt.Errorf("buy: %w", domain.ErrRecordNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			s.orders.EXPECT().Buy(gomock.Any(), t.listingID, int64(3)).Return(nil, t.err).Times(1)

			res := s.request(http.MethodPost, fmt.Sprintf("%s/listings/%d/buy", RouteGroup, t.listingID), 3, nil)
			s.Equal(t.wantStatus, res.StatusCode)
			s.Equal(t.wantCode, s.errorBody(res).Code)
		})
	}
}

func (s *OrderHandlerTestSuite) TestAuthAndBan() {
	s.orders.EXPECT().Buy(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.Run("not authorized", func() {
		res := s.request(http.MethodPost, RouteGroup+"/listings/10/buy", 0, nil)
		s.Equal(http.StatusUnauthorized, res.StatusCode)
	})
	s.Run("banned", func() {
		res := s.request(http.MethodPost, RouteGroup+"/listings/10/buy", bannedUserID, nil)
		s.Equal(http.StatusForbidden, res.StatusCode)
		s.Equal("banned", s.errorBody(res).Code)
	})
	s.Run("bad id", func() {
		res := s.request(http.MethodPost, RouteGroup+"/listings/abc/buy", 3, nil)
		s.Equal(http.StatusBadRequest, res.StatusCode)
	})
}

func (s *OrderHandlerTestSuite) TestIndex() {
	var userID int64 = 3
	var noOrdersUserID int64 = 4

	s.orders.EXPECT().
		ListBySeller(gomock.Any(), userID, uint(5)).
		Return([]domain.Order{*testOrder(1, 9, userID, domain.OrderStatusDelivered)}, nil).
		Times(1)
	s.orders.EXPECT().ListByBuyer(gomock.Any(), noOrdersUserID, uint(0)).Return([]domain.Order{}, nil).Times(1)

	cases := []struct {
		name       string
		url        string
		userID     int64
		wantStatus int
	}{
		{
			name:       "seller orders",
			url:        RouteGroup + OrdersRoute + "?role=seller&limit=5",
			userID:     userID,
			wantStatus: http.StatusOK,
		}, {
			name:       "no orders",
			url:        RouteGroup + OrdersRoute,
			userID:     noOrdersUserID,
			wantStatus: http.StatusNoContent,
		}, {
			name:       "unknown role",
			url:        RouteGroup + OrdersRoute + "?role=admin",
			userID:     userID,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.request(http.MethodGet, t.url, t.userID, nil)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *OrderHandlerTestSuite) TestTransitions() {
	var sellerID, buyerID int64 = 4, 3

	s.orders.EXPECT().
		MarkDelivered(gomock.Any(), int64(1), buyerID).
		Return(nil, fmt.Errorf("mark delivered: %w", domain.ErrNotSeller))
	s.orders.EXPECT().
		CancelBySeller(gomock.Any(), int64(1), sellerID).
		Return(nil, fmt.Errorf("cancel order 1: %w", domain.ErrTooLate))
	s.orders.EXPECT().
		CancelBySeller(gomock.Any(), int64(2), sellerID).
		Return(nil, domain.NewInvalidStatusError(domain.OrderStatusDelivered))
	s.orders.EXPECT().
		ConfirmReceipt(gomock.Any(), int64(1), buyerID).
		Return(testOrder(1, buyerID, sellerID, domain.OrderStatusCompleted), nil)
	s.orders.EXPECT().
		GetOrder(gomock.Any(), int64(1), int64(99)).
		Return(nil, fmt.Errorf("get order: %w", domain.ErrForbidden))

	cases := []struct {
		name       string
		method     string
		url        string
		userID     int64
		wantStatus int
		wantCode   string
	}{
		{"deliver by buyer", http.MethodPost, "/orders/1/deliver", buyerID, http.StatusForbidden, "not_seller"},
		{"cancel too late", http.MethodPost, "/orders/1/cancel", sellerID, http.StatusConflict, "too_late"},
		{"cancel delivered", http.MethodPost, "/orders/2/cancel", sellerID, http.StatusConflict, "invalid_status"},
		{"confirm", http.MethodPost, "/orders/1/confirm", buyerID, http.StatusOK, ""},
		{"show to outsider", http.MethodGet, "/orders/1", 99, http.StatusForbidden, "forbidden"},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.request(t.method, RouteGroup+t.url, t.userID, nil)
			s.Require().Equal(t.wantStatus, res.StatusCode)
			if t.wantCode != "" {
				s.Equal(t.wantCode, s.errorBody(res).Code)
			}
		})
	}
}

func (s *OrderHandlerTestSuite) TestCreateReview() {
	var buyerID, sellerID int64 = 3, 4
	order := testOrder(1, buyerID, sellerID, domain.OrderStatusCompleted)
	s.orders.EXPECT().GetOrder(gomock.Any(), int64(1), gomock.Any()).Return(order, nil).AnyTimes()

	s.Run("buyer reviews seller", func() {
		s.reviews.EXPECT().
			SubmitReview(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args service.SubmitReviewArgs) (*domain.Review, error) {
				s.Equal(buyerID, args.AuthorID)
				s.Equal(sellerID, args.TargetID)
				s.Equal(domain.RoleSeller, args.TargetRole)
				s.Equal(5, args.Rating)
				return &domain.Review{ID: 7, OrderID: 1, AuthorID: buyerID, TargetID: sellerID,
					TargetRole: domain.RoleSeller, Rating: 5}, nil
			})

		res := s.request(http.MethodPost, RouteGroup+"/orders/1/reviews", buyerID, jsonBody{"rating": 5, "text": "fast"})
		s.Require().Equal(http.StatusCreated, res.StatusCode)
		var review ReviewResponse
		s.decode(res, &review)
		s.Equal("seller", review.TargetRole)
	})

	s.Run("seller reviews buyer", func() {
		s.reviews.EXPECT().
			SubmitReview(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args service.SubmitReviewArgs) (*domain.Review, error) {
				s.Equal(buyerID, args.TargetID)
				s.Equal(domain.RoleBuyer, args.TargetRole)
				return nil, fmt.Errorf("submit review: %w", domain.ErrDuplicateReview)
			})

		res := s.request(http.MethodPost, RouteGroup+"/orders/1/reviews", sellerID, jsonBody{"rating": 4})
		s.Equal(http.StatusConflict, res.StatusCode)
		s.Equal("duplicate_review", s.errorBody(res).Code)
	})

	s.Run("rating out of range", func() {
		res := s.request(http.MethodPost, RouteGroup+"/orders/1/reviews", buyerID, jsonBody{"rating": 6})
		s.Equal(http.StatusBadRequest, res.StatusCode)
		s.Equal("validation", s.errorBody(res).Code)
	})
}
