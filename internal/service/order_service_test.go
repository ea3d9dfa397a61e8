package service

import (
	"errors"
	"testing"
	"time"

	"github.com/fsdevblog/groph-market/internal/clock"
	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/service/mocks"
	"github.com/fsdevblog/groph-market/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-market/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockOrderRepo   *mocks.MockOrderRepository
	mockListingRepo *mocks.MockListingRepository
	mockLedgerRepo  *mocks.MockLedgerRepository
	mockNotifier    *mocks.MockNotifier
	now             time.Time
	orderService    *OrderService
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(s.mockCtrl)
	s.mockListingRepo = mocks.NewMockListingRepository(s.mockCtrl)
	s.mockLedgerRepo = mocks.NewMockLedgerRepository(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)
	s.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()

	expectTx(s.mockUOW, s.mockTX)
	expectTxRepo(s.mockTX, repoargs.OrderRepoName, s.mockOrderRepo)
	expectTxRepo(s.mockTX, repoargs.ListingRepoName, s.mockListingRepo)
	expectTxRepo(s.mockTX, repoargs.LedgerRepoName, s.mockLedgerRepo)

	orderService, err := NewOrderService(OrderServiceArgs{
		UOW:      s.mockUOW,
		Clock:    clock.NewFixed(s.now),
		Notifier: s.mockNotifier,
	})
	s.Require().NoError(err)
	s.orderService = orderService
}

func (s *OrderServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *OrderServiceTestSuite) approvedListing() *domain.Listing {
	return &domain.Listing{
		ID:       11,
		SellerID: 200,
		Category: "steam",
		Title:    "key",
		Price:    500,
		Status:   domain.ListingStatusApproved,
	}
}

func (s *OrderServiceTestSuite) paidOrder(createdAt time.Time) *domain.Order {
	return &domain.Order{
		ID:        7,
		CreatedAt: createdAt,
		ListingID: 11,
		BuyerID:   100,
		SellerID:  200,
		Price:     500,
		Status:    domain.OrderStatusPaid,
	}
}

func (s *OrderServiceTestSuite) TestBuy() {
	listing := s.approvedListing()
	order := s.paidOrder(s.now)

	s.mockListingRepo.EXPECT().GetForUpdate(gomock.Any(), listing.ID).Return(listing, nil)
	s.mockOrderRepo.EXPECT().HasOpenForListing(gomock.Any(), listing.ID).Return(false, nil)
	s.mockListingRepo.EXPECT().Transition(gomock.Any(), repoargs.TransitionListing{
		ID:   listing.ID,
		From: domain.ListingStatusApproved,
		To:   domain.ListingStatusSold,
	}).Return(listing, nil)
	s.mockOrderRepo.EXPECT().Create(gomock.Any(), repoargs.CreateOrder{
		ListingID: listing.ID,
		BuyerID:   100,
		SellerID:  200,
		Price:     500,
		CreatedAt: s.now,
	}).Return(order, nil)
	s.mockLedgerRepo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args repoargs.ApplyDelta) (int64, error) {
			s.Equal(int64(100), args.AccountID)
			s.Equal(int64(-500), args.Delta)
			s.Equal(domain.EventOrderPayment, args.EventType)
			s.Require().NotNil(args.Ref)
			s.Equal(domain.Ref{Type: domain.RefOrder, ID: order.ID}, *args.Ref)
			return 0, nil
		})

	var recipients []int64
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, n domain.Notification) error {
			s.Equal(domain.NotifyOrderCreated, n.Kind)
			recipients = append(recipients, n.RecipientID)
			return nil
		}).Times(2)

	res, err := s.orderService.Buy(s.T().Context(), listing.ID, 100)
	s.Require().NoError(err)
	s.Equal(order, res)
	s.ElementsMatch([]int64{100, 200}, recipients)
}

func (s *OrderServiceTestSuite) TestBuy_SelfPurchase() {
	listing := s.approvedListing()
	s.mockListingRepo.EXPECT().GetForUpdate(gomock.Any(), listing.ID).Return(listing, nil)

	_, err := s.orderService.Buy(s.T().Context(), listing.ID, listing.SellerID)
	s.Require().ErrorIs(err, domain.ErrSelfPurchase)
}

func (s *OrderServiceTestSuite) TestBuy_Unavailable() {
	cases := []struct {
		name  string
		setup func(listing *domain.Listing)
	}{
		{
			name: "not found",
			setup: func(listing *domain.Listing) {
				s.mockListingRepo.EXPECT().GetForUpdate(gomock.Any(), listing.ID).
					Return(nil, domain.ErrRecordNotFound)
			},
		},
		{
			name: "already sold",
			setup: func(listing *domain.Listing) {
				listing.Status = domain.ListingStatusSold
				s.mockListingRepo.EXPECT().GetForUpdate(gomock.Any(), listing.ID).Return(listing, nil)
			},
		},
		{
			name: "open order exists",
			setup: func(listing *domain.Listing) {
				s.mockListingRepo.EXPECT().GetForUpdate(gomock.Any(), listing.ID).Return(listing, nil)
				s.mockOrderRepo.EXPECT().HasOpenForListing(gomock.Any(), listing.ID).Return(true, nil)
			},
		},
		{
			name: "lost the race on transition",
			setup: func(listing *domain.Listing) {
				s.mockListingRepo.EXPECT().GetForUpdate(gomock.Any(), listing.ID).Return(listing, nil)
				s.mockOrderRepo.EXPECT().HasOpenForListing(gomock.Any(), listing.ID).Return(false, nil)
				s.mockListingRepo.EXPECT().Transition(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrRecordNotFound)
			},
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			listing := s.approvedListing()
			tc.setup(listing)

			_, err := s.orderService.Buy(s.T().Context(), listing.ID, 100)
			s.Require().ErrorIs(err, domain.ErrListingUnavailable)
		})
	}
}

func (s *OrderServiceTestSuite) TestBuy_InsufficientFunds() {
	listing := s.approvedListing()

	s.mockListingRepo.EXPECT().GetForUpdate(gomock.Any(), listing.ID).Return(listing, nil)
	s.mockOrderRepo.EXPECT().HasOpenForListing(gomock.Any(), listing.ID).Return(false, nil)
	s.mockListingRepo.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(listing, nil)
	s.mockOrderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(s.paidOrder(s.now), nil)
	s.mockLedgerRepo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any()).Return(int64(0), domain.ErrInsufficientFunds)
	// уведомления не отправляются: транзакция откатывается.
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.orderService.Buy(s.T().Context(), listing.ID, 100)
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
}

func (s *OrderServiceTestSuite) TestMarkDelivered() {
	order := s.paidOrder(s.now)
	delivered := *order
	delivered.Status = domain.OrderStatusDelivered

	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)
	s.mockOrderRepo.EXPECT().Transition(gomock.Any(), repoargs.TransitionOrder{
		ID:   order.ID,
		From: domain.OrderStatusPaid,
		To:   domain.OrderStatusDelivered,
		At:   s.now,
	}).Return(&delivered, nil)
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, n domain.Notification) error {
			s.Equal(domain.NotifyOrderDelivered, n.Kind)
			s.Equal(order.BuyerID, n.RecipientID)
			return nil
		})

	res, err := s.orderService.MarkDelivered(s.T().Context(), order.ID, order.SellerID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusDelivered, res.Status)
}

func (s *OrderServiceTestSuite) TestMarkDelivered_NotSeller() {
	order := s.paidOrder(s.now)
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)

	_, err := s.orderService.MarkDelivered(s.T().Context(), order.ID, order.BuyerID)
	s.Require().ErrorIs(err, domain.ErrNotSeller)
}

func (s *OrderServiceTestSuite) TestCancelBySeller_GraceBoundary() {
	cases := []struct {
		name    string
		elapsed time.Duration
		wantErr error
	}{
		{name: "exactly at grace", elapsed: 300 * time.Second},
		{name: "one second late", elapsed: 301 * time.Second, wantErr: domain.ErrTooLate},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			order := s.paidOrder(s.now.Add(-tc.elapsed))
			s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)

			if tc.wantErr == nil {
				canceled := *order
				canceled.Status = domain.OrderStatusCanceledBySeller

				s.mockOrderRepo.EXPECT().Transition(gomock.Any(), repoargs.TransitionOrder{
					ID:   order.ID,
					From: domain.OrderStatusPaid,
					To:   domain.OrderStatusCanceledBySeller,
					At:   s.now,
				}).Return(&canceled, nil)
				s.mockLedgerRepo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, args repoargs.ApplyDelta) (int64, error) {
						s.Equal(order.BuyerID, args.AccountID)
						s.Equal(order.Price, args.Delta)
						s.Equal(domain.EventOrderRefund, args.EventType)
						return order.Price, nil
					})
				s.mockListingRepo.EXPECT().Transition(gomock.Any(), repoargs.TransitionListing{
					ID:   order.ListingID,
					From: domain.ListingStatusSold,
					To:   domain.ListingStatusApproved,
				}).Return(&domain.Listing{ID: order.ListingID, Status: domain.ListingStatusApproved}, nil)
				s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
			}

			res, err := s.orderService.CancelBySeller(s.T().Context(), order.ID, order.SellerID)
			if tc.wantErr != nil {
				s.Require().ErrorIs(err, tc.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Equal(domain.OrderStatusCanceledBySeller, res.Status)
		})
	}
}

func (s *OrderServiceTestSuite) TestCancelBySeller_WrongStatus() {
	order := s.paidOrder(s.now)
	order.Status = domain.OrderStatusDelivered
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)

	_, err := s.orderService.CancelBySeller(s.T().Context(), order.ID, order.SellerID)
	s.Require().ErrorIs(err, domain.ErrInvalidStatus)

	var statusErr *domain.InvalidStatusError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(string(domain.OrderStatusDelivered), statusErr.Current)
}

func (s *OrderServiceTestSuite) TestConfirmReceipt() {
	order := s.paidOrder(s.now.Add(-time.Hour))
	order.Status = domain.OrderStatusDelivered
	completed := *order
	completed.Status = domain.OrderStatusCompleted

	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)
	s.mockOrderRepo.EXPECT().Transition(gomock.Any(), repoargs.TransitionOrder{
		ID:   order.ID,
		From: domain.OrderStatusDelivered,
		To:   domain.OrderStatusCompleted,
		At:   s.now,
	}).Return(&completed, nil)
	s.mockLedgerRepo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args repoargs.ApplyDelta) (int64, error) {
			s.Equal(order.SellerID, args.AccountID)
			s.Equal(order.Price, args.Delta)
			s.Equal(domain.EventOrderIncome, args.EventType)
			return order.Price, nil
		})
	// ошибка доставки уведомления не влияет на результат операции.
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("chat unavailable"))

	res, err := s.orderService.ConfirmReceipt(s.T().Context(), order.ID, order.BuyerID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusCompleted, res.Status)
}

func (s *OrderServiceTestSuite) TestConfirmReceipt_Rejected() {
	s.Run("not buyer", func() {
		order := s.paidOrder(s.now)
		order.Status = domain.OrderStatusDelivered
		s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)

		_, err := s.orderService.ConfirmReceipt(s.T().Context(), order.ID, order.SellerID)
		s.Require().ErrorIs(err, domain.ErrNotBuyer)
	})

	s.Run("not delivered yet", func() {
		order := s.paidOrder(s.now)
		s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)

		_, err := s.orderService.ConfirmReceipt(s.T().Context(), order.ID, order.BuyerID)
		s.Require().ErrorIs(err, domain.ErrInvalidStatus)
	})
}

func (s *OrderServiceTestSuite) TestGetOrder_OnlyParticipants() {
	order := s.paidOrder(s.now)
	s.mockOrderRepo.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil).Times(2)

	res, err := s.orderService.GetOrder(s.T().Context(), order.ID, order.BuyerID)
	s.Require().NoError(err)
	s.Equal(order.ID, res.ID)

	_, err = s.orderService.GetOrder(s.T().Context(), order.ID, 999)
	s.Require().ErrorIs(err, domain.ErrForbidden)
}
