package payments

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/transport/payments/client"
	"github.com/fsdevblog/groph-market/internal/transport/payments/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor      *Processor
	mockHTTPClient *mocks.MockClient
	mockService    *mocks.MockServicer
	ctrl           *gomock.Controller
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockHTTPClient = mocks.NewMockClient(s.ctrl)
	s.mockService = mocks.NewMockServicer(s.ctrl)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	s.processor = New(s.mockService, "", logger).SetWorkers(2)
	s.processor.client = s.mockHTTPClient
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func extID(v string) *string {
	return &v
}

func (s *ProcessorTestSuite) TestProcess_NoPayments() {
	s.mockService.EXPECT().
		PendingForCheck(gomock.Any(), s.processor.limitPerIteration).
		Return([]domain.TopupPayment{}, nil)

	err := s.processor.process(s.T().Context())
	s.ErrorIs(err, ErrNoPayments)
}

func (s *ProcessorTestSuite) TestProcess() {
	pending := []domain.TopupPayment{
		{ID: 1, UserID: 10, Amount: 100, Payload: "p1", ExternalID: extID("e1"), Status: domain.PaymentStatusPending},
		{ID: 2, UserID: 11, Amount: 200, Payload: "p2", ExternalID: extID("e2"), Status: domain.PaymentStatusPending},
		{ID: 3, UserID: 12, Amount: 300, Payload: "p3", ExternalID: extID("e3"), Status: domain.PaymentStatusPending},
		{ID: 4, UserID: 13, Amount: 400, Payload: "p4", ExternalID: extID("e4"), Status: domain.PaymentStatusPending},
	}
	s.mockService.EXPECT().
		PendingForCheck(gomock.Any(), s.processor.limitPerIteration).
		Return(pending, nil)

	// e1 оплачен.
	s.mockHTTPClient.EXPECT().GetPaymentStatus(gomock.Any(), "e1").
		Return(&client.Response{ExternalID: "e1", Status: client.StatusPaid, Amount: decimal.NewFromInt(100)}, nil)
	// e2 еще ожидает оплаты.
	s.mockHTTPClient.EXPECT().GetPaymentStatus(gomock.Any(), "e2").
		Return(&client.Response{ExternalID: "e2", Status: client.StatusPending}, nil)
	// e3 сначала упирается в лимит запросов, после паузы оплачен.
	gomock.InOrder(
		s.mockHTTPClient.EXPECT().GetPaymentStatus(gomock.Any(), "e3").
			Return(nil, client.NewTooManyRequestError(10*time.Millisecond)),
		s.mockHTTPClient.EXPECT().GetPaymentStatus(gomock.Any(), "e3").
			Return(&client.Response{ExternalID: "e3", Status: client.StatusPaid, Amount: decimal.NewFromInt(300)}, nil),
	)
	// шлюз не знает e4.
	s.mockHTTPClient.EXPECT().GetPaymentStatus(gomock.Any(), "e4").
		Return(nil, client.NewStatusCodeError(http.StatusNotFound))

	s.mockService.EXPECT().CompletePayment(gomock.Any(), "p1", int64(100)).
		Return(&pending[0], nil)
	// повторное подтверждение не считается ошибкой.
	s.mockService.EXPECT().CompletePayment(gomock.Any(), "p3", int64(300)).
		Return(nil, domain.ErrAlreadyPaid)

	s.Require().NoError(s.processor.process(s.T().Context()))
}

func (s *ProcessorTestSuite) TestProcess_ServiceError() {
	s.mockService.EXPECT().
		PendingForCheck(gomock.Any(), s.processor.limitPerIteration).
		Return(nil, errors.New("db is down"))

	err := s.processor.process(s.T().Context())
	s.Require().Error(err)
	s.NotErrorIs(err, ErrNoPayments)
}

func (s *ProcessorTestSuite) TestProcess_AmountMismatchHeldOnce() {
	pending := []domain.TopupPayment{
		{ID: 5, UserID: 14, Amount: 500, Payload: "p5", ExternalID: extID("e5"), Status: domain.PaymentStatusPending},
	}
	held := pending[0]
	held.Status = domain.PaymentStatusReview

	gomock.InOrder(
		s.mockService.EXPECT().
			PendingForCheck(gomock.Any(), s.processor.limitPerIteration).
			Return(pending, nil),
		// после перевода в review платеж в выборку не попадает.
		s.mockService.EXPECT().
			PendingForCheck(gomock.Any(), s.processor.limitPerIteration).
			Return([]domain.TopupPayment{}, nil),
	)
	s.mockHTTPClient.EXPECT().GetPaymentStatus(gomock.Any(), "e5").
		Return(&client.Response{ExternalID: "e5", Status: client.StatusPaid, Amount: decimal.NewFromInt(300)}, nil).
		Times(1)
	s.mockService.EXPECT().CompletePayment(gomock.Any(), "p5", int64(300)).
		Return(nil, fmt.Errorf("complete payment: %w", domain.ErrPaymentAmountMismatch)).
		Times(1)
	s.mockService.EXPECT().HoldForReview(gomock.Any(), "p5").Return(&held, nil).Times(1)

	s.Require().NoError(s.processor.process(s.T().Context()))
	s.Require().ErrorIs(s.processor.process(s.T().Context()), ErrNoPayments)
}

func (s *ProcessorTestSuite) TestProcess_AmountMismatchHoldFailed() {
	pending := []domain.TopupPayment{
		{ID: 6, UserID: 15, Amount: 600, Payload: "p6", ExternalID: extID("e6"), Status: domain.PaymentStatusPending},
	}
	s.mockService.EXPECT().
		PendingForCheck(gomock.Any(), s.processor.limitPerIteration).
		Return(pending, nil)
	s.mockHTTPClient.EXPECT().GetPaymentStatus(gomock.Any(), "e6").
		Return(&client.Response{ExternalID: "e6", Status: client.StatusPaid, Amount: decimal.NewFromInt(100)}, nil)
	s.mockService.EXPECT().CompletePayment(gomock.Any(), "p6", int64(100)).
		Return(nil, domain.ErrPaymentAmountMismatch)
	s.mockService.EXPECT().HoldForReview(gomock.Any(), "p6").Return(nil, errors.New("db is down"))

	s.Require().NoError(s.processor.process(s.T().Context()))
}
