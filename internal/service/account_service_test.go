package service

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/service/mocks"
	"github.com/fsdevblog/groph-market/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-market/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

const testSuperAdminID int64 = 1

type AccountServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockAccountRepo *mocks.MockAccountRepository
	mockListingRepo *mocks.MockListingRepository
	mockPool        *mocks.MockReviewerPool
	mockNotifier    *mocks.MockNotifier
	service         *AccountService
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockListingRepo = mocks.NewMockListingRepository(s.mockCtrl)
	s.mockPool = mocks.NewMockReviewerPool(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.ListingRepoName)).
		Return(s.mockListingRepo, nil).AnyTimes()
	expectTx(s.mockUOW, s.mockTX)
	expectTxRepo(s.mockTX, repoargs.AccountRepoName, s.mockAccountRepo)
	expectTxRepo(s.mockTX, repoargs.ListingRepoName, s.mockListingRepo)

	var err error
	s.service, err = NewAccountService(s.mockUOW, s.mockPool, testSuperAdminID)
	s.Require().NoError(err)
}

func (s *AccountServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AccountServiceTestSuite) TestEnsureAccount() {
	username := gofakeit.Username()
	s.mockAccountRepo.EXPECT().
		Ensure(gomock.Any(), repoargs.EnsureAccount{ID: 10, Username: &username}).
		Return(&domain.Account{ID: 10, Username: &username, SellerStatus: domain.SellerStatusNone}, nil)

	account, err := s.service.EnsureAccount(s.T().Context(), 10, &username)
	s.Require().NoError(err)
	s.Equal(int64(10), account.ID)

	_, err = s.service.EnsureAccount(s.T().Context(), 0, nil)
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *AccountServiceTestSuite) TestSuperAdminProtected() {
	_, err := s.service.SetBanned(s.T().Context(), 2, testSuperAdminID, true)
	s.Require().ErrorIs(err, domain.ErrProtectedAccount)

	_, err = s.service.SetBanned(s.T().Context(), 2, 2, true)
	s.Require().ErrorIs(err, domain.ErrProtectedAccount)

	_, err = s.service.SetAdmin(s.T().Context(), 2, testSuperAdminID, false)
	s.Require().ErrorIs(err, domain.ErrProtectedAccount)
}

func (s *AccountServiceTestSuite) TestSetAdmin_OnlySuperAdmin() {
	_, err := s.service.SetAdmin(s.T().Context(), 2, 99, true)
	s.Require().ErrorIs(err, domain.ErrForbidden)

	_, err = s.service.SetAdmin(s.T().Context(), 2, 3, false)
	s.Require().ErrorIs(err, domain.ErrForbidden)

	s.mockAccountRepo.EXPECT().SetAdmin(gomock.Any(), int64(99), true).
		Return(&domain.Account{ID: 99, IsAdmin: true}, nil)

	account, err := s.service.SetAdmin(s.T().Context(), testSuperAdminID, 99, true)
	s.Require().NoError(err)
	s.True(account.IsAdmin)
}

func (s *AccountServiceTestSuite) TestSetBanned() {
	s.mockAccountRepo.EXPECT().SetBanned(gomock.Any(), int64(5), true).
		Return(&domain.Account{ID: 5, IsBanned: true}, nil)

	account, err := s.service.SetBanned(s.T().Context(), testSuperAdminID, 5, true)
	s.Require().NoError(err)
	s.True(account.IsBanned)
}

func (s *AccountServiceTestSuite) TestIsAdmin() {
	ok, err := s.service.IsAdmin(s.T().Context(), testSuperAdminID)
	s.Require().NoError(err)
	s.True(ok)

	s.mockPool.EXPECT().IsReviewer(gomock.Any(), int64(7)).Return(false, nil)
	ok, err = s.service.IsAdmin(s.T().Context(), 7)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *AccountServiceTestSuite) TestIsBanned_UnknownAccount() {
	s.mockAccountRepo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, domain.ErrRecordNotFound)

	banned, err := s.service.IsBanned(s.T().Context(), 9)
	s.Require().NoError(err)
	s.False(banned)
}

func (s *AccountServiceTestSuite) sellerQueue() *Queue[domain.Account] {
	return NewQueue(QueueArgs[domain.Account]{
		UOW:      s.mockUOW,
		Registry: NewClaimRegistry(repoargs.SellerApplicationClaimTarget),
		Pool:     NewStaticPool(testSuperAdminID),
		Decider:  SellerDecider{},
		Notifier: s.mockNotifier,
	})
}

func (s *AccountServiceTestSuite) TestSellerApply() {
	sellers := NewSellerService(s.mockUOW, s.sellerQueue())

	s.mockAccountRepo.EXPECT().GetByID(gomock.Any(), int64(5)).
		Return(&domain.Account{ID: 5, PhoneVerified: true, SellerStatus: domain.SellerStatusNone}, nil)
	s.mockAccountRepo.EXPECT().TransitionSellerStatus(
		gomock.Any(),
		int64(5),
		[]domain.SellerStatusType{domain.SellerStatusNone, domain.SellerStatusRejected},
		domain.SellerStatusApplied,
	).Return(&domain.Account{ID: 5, PhoneVerified: true, SellerStatus: domain.SellerStatusApplied}, nil)
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, n domain.Notification) error {
			s.Equal(domain.NotifyItemSubmitted, n.Kind)
			s.Equal(testSuperAdminID, n.RecipientID)
			return nil
		})

	account, err := sellers.Apply(s.T().Context(), 5)
	s.Require().NoError(err)
	s.Equal(domain.SellerStatusApplied, account.SellerStatus)
}

func (s *AccountServiceTestSuite) TestSellerApply_Rejected() {
	sellers := NewSellerService(s.mockUOW, s.sellerQueue())

	s.Run("phone not verified", func() {
		s.mockAccountRepo.EXPECT().GetByID(gomock.Any(), int64(5)).
			Return(&domain.Account{ID: 5, SellerStatus: domain.SellerStatusNone}, nil)

		_, err := sellers.Apply(s.T().Context(), 5)
		s.Require().ErrorIs(err, domain.ErrPhoneNotVerified)
	})

	s.Run("already applied", func() {
		s.mockAccountRepo.EXPECT().GetByID(gomock.Any(), int64(5)).
			Return(&domain.Account{ID: 5, PhoneVerified: true, SellerStatus: domain.SellerStatusApplied}, nil)
		s.mockAccountRepo.EXPECT().TransitionSellerStatus(gomock.Any(), int64(5), gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrRecordNotFound)

		_, err := sellers.Apply(s.T().Context(), 5)
		s.Require().ErrorIs(err, domain.ErrAlreadyApplied)
	})

	s.Run("already seller", func() {
		s.mockAccountRepo.EXPECT().GetByID(gomock.Any(), int64(5)).
			Return(&domain.Account{ID: 5, PhoneVerified: true, SellerStatus: domain.SellerStatusSeller}, nil)
		s.mockAccountRepo.EXPECT().TransitionSellerStatus(gomock.Any(), int64(5), gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrRecordNotFound)

		_, err := sellers.Apply(s.T().Context(), 5)
		s.Require().ErrorIs(err, domain.ErrInvalidStatus)
	})
}

func (s *AccountServiceTestSuite) TestListingSubmit_NotSeller() {
	listings, err := NewListingService(s.mockUOW, NewQueue(QueueArgs[domain.Listing]{
		UOW:      s.mockUOW,
		Registry: NewClaimRegistry(repoargs.ListingClaimTarget),
		Pool:     NewStaticPool(testSuperAdminID),
		Decider:  ListingDecider{},
		Notifier: s.mockNotifier,
	}))
	s.Require().NoError(err)

	s.mockAccountRepo.EXPECT().GetByID(gomock.Any(), int64(5)).
		Return(&domain.Account{ID: 5, SellerStatus: domain.SellerStatusApplied}, nil)
	s.mockListingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err = listings.Submit(s.T().Context(), SubmitListingArgs{
		SellerID: 5,
		Category: "steam",
		Title:    gofakeit.ProductName(),
		Price:    100,
	})
	s.Require().ErrorIs(err, domain.ErrNotSeller)
}
