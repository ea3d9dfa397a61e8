package service

import (
	"strings"
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

type PaymentServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockPaymentRepo *mocks.MockPaymentRepository
	mockLedgerRepo  *mocks.MockLedgerRepository
	mockNotifier    *mocks.MockNotifier
	now             time.Time
	service         *PaymentService
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockPaymentRepo = mocks.NewMockPaymentRepository(s.mockCtrl)
	s.mockLedgerRepo = mocks.NewMockLedgerRepository(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)
	s.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.PaymentRepoName)).
		Return(s.mockPaymentRepo, nil).AnyTimes()
	expectTx(s.mockUOW, s.mockTX)
	expectTxRepo(s.mockTX, repoargs.PaymentRepoName, s.mockPaymentRepo)
	expectTxRepo(s.mockTX, repoargs.LedgerRepoName, s.mockLedgerRepo)

	var err error
	s.service, err = NewPaymentService(PaymentServiceArgs{
		UOW:      s.mockUOW,
		Clock:    clock.NewFixed(s.now),
		Notifier: s.mockNotifier,
	})
	s.Require().NoError(err)
}

func (s *PaymentServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *PaymentServiceTestSuite) TestCreateTopup_Payload() {
	s.mockPaymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args repoargs.CreateTopup) (*domain.TopupPayment, error) {
			parts := strings.Split(args.Payload, ":")
			s.Require().Len(parts, 5)
			s.Equal("topup", parts[0])
			s.Equal("42", parts[1])
			s.Len(parts[2], 32)
			s.Equal("1500", parts[3])
			s.Equal("card", parts[4])
			return &domain.TopupPayment{ID: 1, UserID: 42, Amount: 1500, Payload: args.Payload}, nil
		})

	_, err := s.service.CreateTopup(s.T().Context(), CreateTopupArgs{UserID: 42, Amount: 1500, Method: " card "})
	s.Require().NoError(err)
}

func (s *PaymentServiceTestSuite) TestCreateTopup_Invalid() {
	_, err := s.service.CreateTopup(s.T().Context(), CreateTopupArgs{UserID: 42, Amount: 0, Method: "card"})
	s.Require().ErrorIs(err, domain.ErrValidation)

	_, err = s.service.CreateTopup(s.T().Context(), CreateTopupArgs{UserID: 42, Amount: 10, Method: "a:b"})
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *PaymentServiceTestSuite) TestCompletePayment() {
	pending := &domain.TopupPayment{ID: 8, UserID: 42, Amount: 1500, Method: "card", Payload: "p", Status: domain.PaymentStatusPending}
	paid := *pending
	paid.Status = domain.PaymentStatusPaid

	s.mockPaymentRepo.EXPECT().GetByPayload(gomock.Any(), "p").Return(pending, nil)
	s.mockPaymentRepo.EXPECT().MarkPaid(gomock.Any(), "p", s.now).Return(&paid, nil)
	s.mockLedgerRepo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args repoargs.ApplyDelta) (int64, error) {
			s.Equal(int64(42), args.AccountID)
			s.Equal(int64(1500), args.Delta)
			s.Equal(domain.EventTopup, args.EventType)
			s.Equal(domain.Ref{Type: domain.RefTopup, ID: 8}, *args.Ref)
			return 1500, nil
		})
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.service.CompletePayment(s.T().Context(), "p", 1500)
	s.Require().NoError(err)
	s.Equal(domain.PaymentStatusPaid, res.Status)
}

func (s *PaymentServiceTestSuite) TestCompletePayment_AlreadyPaid() {
	s.mockPaymentRepo.EXPECT().GetByPayload(gomock.Any(), "p").
		Return(&domain.TopupPayment{ID: 8, Amount: 1500, Status: domain.PaymentStatusPaid}, nil)
	s.mockLedgerRepo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.CompletePayment(s.T().Context(), "p", 1500)
	s.Require().ErrorIs(err, domain.ErrAlreadyPaid)
}

func (s *PaymentServiceTestSuite) TestCompletePayment_ConcurrentMark() {
	s.mockPaymentRepo.EXPECT().GetByPayload(gomock.Any(), "p").
		Return(&domain.TopupPayment{ID: 8, Amount: 1500, Status: domain.PaymentStatusPending}, nil)
	s.mockPaymentRepo.EXPECT().MarkPaid(gomock.Any(), "p", s.now).Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.CompletePayment(s.T().Context(), "p", 1500)
	s.Require().ErrorIs(err, domain.ErrAlreadyPaid)
}

func (s *PaymentServiceTestSuite) TestCompletePayment_AmountMismatch() {
	s.mockPaymentRepo.EXPECT().GetByPayload(gomock.Any(), "p").
		Return(&domain.TopupPayment{ID: 8, Amount: 1500, Status: domain.PaymentStatusPending}, nil)

	_, err := s.service.CompletePayment(s.T().Context(), "p", 1000)
	s.Require().ErrorIs(err, domain.ErrPaymentAmountMismatch)
}

func (s *PaymentServiceTestSuite) TestCompletePayment_OnReview() {
	s.mockPaymentRepo.EXPECT().GetByPayload(gomock.Any(), "p").
		Return(&domain.TopupPayment{ID: 8, Amount: 1500, Status: domain.PaymentStatusReview}, nil)
	s.mockPaymentRepo.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockLedgerRepo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.CompletePayment(s.T().Context(), "p", 1500)
	s.Require().ErrorIs(err, domain.ErrPaymentOnReview)
}

func (s *PaymentServiceTestSuite) TestHoldForReview() {
	s.mockPaymentRepo.EXPECT().MarkReview(gomock.Any(), "p").
		Return(&domain.TopupPayment{ID: 8, Amount: 1500, Payload: "p", Status: domain.PaymentStatusReview}, nil)
	s.mockLedgerRepo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any()).Times(0)

	res, err := s.service.HoldForReview(s.T().Context(), "p")
	s.Require().NoError(err)
	s.Equal(domain.PaymentStatusReview, res.Status)

	s.mockPaymentRepo.EXPECT().MarkReview(gomock.Any(), "gone").Return(nil, domain.ErrRecordNotFound)
	_, err = s.service.HoldForReview(s.T().Context(), "gone")
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}
