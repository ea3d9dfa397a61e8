package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type BalanceHandlerTestSuite struct {
	handlerSuite
}

func TestBalanceHandlerSuite(t *testing.T) {
	suite.Run(t, new(BalanceHandlerTestSuite))
}

func (s *BalanceHandlerTestSuite) TestIndexAndEvents() {
	refType := domain.RefOrder
	var refID int64 = 5

	s.ledger.EXPECT().GetBalance(gomock.Any(), int64(3)).Return(int64(1200), nil)
	s.ledger.EXPECT().ListBalanceEvents(gomock.Any(), int64(3), uint(10)).Return([]domain.BalanceEvent{
		{ID: 2, AccountID: 3, Delta: -500, EventType: domain.EventOrderPayment, RefType: &refType, RefID: &refID},
		{ID: 1, AccountID: 3, Delta: 1700, EventType: domain.EventTopup},
	}, nil)

	res := s.request(http.MethodGet, RouteGroup+BalanceRoute, 3, nil)
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var balance BalanceResponse
	s.decode(res, &balance)
	s.Equal(int64(1200), balance.Balance)

	eventsRes := s.request(http.MethodGet, RouteGroup+BalanceEventsRoute+"?limit=10", 3, nil)
	s.Require().Equal(http.StatusOK, eventsRes.StatusCode)
	var events []BalanceEventResponse
	s.decode(eventsRes, &events)
	s.Require().Len(events, 2)
	s.Equal("order_payment", events[0].EventType)
	s.Equal(int64(-500), events[0].Delta)
	s.Require().NotNil(events[0].RefID)
	s.Equal(refID, *events[0].RefID)
}

func (s *BalanceHandlerTestSuite) TestCreateTopup() {
	s.payments.EXPECT().
		CreateTopup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.CreateTopupArgs) (*domain.TopupPayment, error) {
			s.Equal(int64(3), args.UserID)
			s.Equal(int64(1500), args.Amount)
			s.Equal("card", args.Method)
			return &domain.TopupPayment{
				ID:      1,
				UserID:  3,
				Amount:  1500,
				Method:  "card",
				Payload: "topup:3:abc:1500:card",
				Status:  domain.PaymentStatusPending,
			}, nil
		})

	res := s.request(http.MethodPost, RouteGroup+TopupsRoute, 3, jsonBody{"amount": 1500, "method": "card"})
	s.Require().Equal(http.StatusCreated, res.StatusCode)
	var topup TopupResponse
	s.decode(res, &topup)
	s.Equal("topup:3:abc:1500:card", topup.Payload)
	s.Equal("pending", topup.Status)

	invalid := s.request(http.MethodPost, RouteGroup+TopupsRoute, 3, jsonBody{"amount": -1, "method": "card"})
	s.Equal(http.StatusBadRequest, invalid.StatusCode)
}

func (s *BalanceHandlerTestSuite) TestCompletePayment() {
	payload := "topup:3:abc:1500:card"
	url := ProviderGroup + PaymentsCompleteRoute

	s.payments.EXPECT().CompletePayment(gomock.Any(), payload, int64(1500)).
		Return(&domain.TopupPayment{ID: 1, Payload: payload, Status: domain.PaymentStatusPaid}, nil).
		Times(1)
	s.payments.EXPECT().CompletePayment(gomock.Any(), payload, int64(1600)).
		Return(nil, fmt.Errorf("complete payment: %w", domain.ErrAlreadyPaid)).
		Times(1)

	paid := s.requestWithToken(http.MethodPost, url, s.providerToken(), jsonBody{"payload": payload, "amount": 1500})
	s.Require().Equal(http.StatusOK, paid.StatusCode)
	var topup TopupResponse
	s.decode(paid, &topup)
	s.Equal("paid", topup.Status)

	replay := s.requestWithToken(http.MethodPost, url, s.providerToken(), jsonBody{"payload": payload, "amount": 1600})
	s.Require().Equal(http.StatusConflict, replay.StatusCode)
	s.Equal("already_paid", s.errorBody(replay).Code)
}

// Участник не может сам подтвердить свое пополнение: ни через маршрут провайдера, ни внутри своей группы.
func (s *BalanceHandlerTestSuite) TestCompletePayment_ActorRejected() {
	s.payments.EXPECT().CompletePayment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	body := jsonBody{"payload": "topup:3:abc:1500:card", "amount": 1500}

	asProvider := s.request(http.MethodPost, ProviderGroup+PaymentsCompleteRoute, 3, body)
	s.Equal(http.StatusUnauthorized, asProvider.StatusCode)

	anonymous := s.requestWithToken(http.MethodPost, ProviderGroup+PaymentsCompleteRoute, "", body)
	s.Equal(http.StatusUnauthorized, anonymous.StatusCode)

	inActorGroup := s.request(http.MethodPost, RouteGroup+PaymentsCompleteRoute, 3, body)
	s.Equal(http.StatusNotFound, inActorGroup.StatusCode)
}

// Без ключа провайдера маршрут подтверждения не регистрируется.
func (s *BalanceHandlerTestSuite) TestCompletePayment_DisabledWithoutProviderKey() {
	args := s.routerArgs()
	args.ProviderSecretKey = nil
	s.router = New(args)

	res := s.requestWithToken(http.MethodPost, ProviderGroup+PaymentsCompleteRoute, s.providerToken(),
		jsonBody{"payload": "topup:3:abc:1500:card", "amount": 1500})
	s.Equal(http.StatusNotFound, res.StatusCode)
}

func (s *BalanceHandlerTestSuite) TestWithdraw() {
	s.withdrawals.EXPECT().
		Submit(gomock.Any(), service.SubmitWithdrawArgs{
			UserID:        4,
			Amount:        700,
			Reason:        "payout",
			PayoutDetails: "card 4111",
		}).
		Return(nil, fmt.Errorf("submit withdraw: %w", domain.ErrInsufficientBalance)).
		Times(1)
	s.withdrawals.EXPECT().ListByUser(gomock.Any(), int64(4), uint(0)).Return([]domain.WithdrawRequest{
		{ID: 1, UserID: 4, Amount: 100, Status: domain.WithdrawStatusPending},
	}, nil)

	res := s.request(http.MethodPost, RouteGroup+WithdrawalsRoute, 4, jsonBody{
		"amount": 700, "reason": "payout", "payout_details": "card 4111",
	})
	s.Equal(http.StatusPaymentRequired, res.StatusCode)
	s.Equal("insufficient_balance", s.errorBody(res).Code)

	badPayout := s.request(http.MethodPost, RouteGroup+WithdrawalsRoute, 4, jsonBody{
		"amount": 700, "reason": "payout", "payout_details": "card\n4111",
	})
	s.Equal(http.StatusBadRequest, badPayout.StatusCode)

	list := s.request(http.MethodGet, RouteGroup+WithdrawalsRoute, 4, nil)
	s.Require().Equal(http.StatusOK, list.StatusCode)
	var requests []WithdrawResponse
	s.decode(list, &requests)
	s.Require().Len(requests, 1)
	s.Equal("pending", requests[0].Status)
}

func (s *BalanceHandlerTestSuite) TestOpenTicket() {
	s.support.EXPECT().
		OpenTicket(gomock.Any(), int64(3), "where is my order").
		Return(&domain.SupportTicket{ID: 8, UserID: 3, Status: domain.TicketStatusOpen}, nil)

	res := s.request(http.MethodPost, RouteGroup+SupportTicketsRoute, 3, jsonBody{"message": "where is my order"})
	s.Require().Equal(http.StatusCreated, res.StatusCode)
	var ticket TicketResponse
	s.decode(res, &ticket)
	s.Equal(int64(8), ticket.ID)
	s.Equal("open", ticket.Status)
}
