package service

import (
	"testing"
	"time"

	"github.com/fsdevblog/groph-market/internal/clock"
	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/service/mocks"
	uowmocks "github.com/fsdevblog/groph-market/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ModerationTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockUOW          *uowmocks.MockUOW
	mockTX           *uowmocks.MockTX
	mockClaimRepo    *mocks.MockClaimRepository
	mockListingRepo  *mocks.MockListingRepository
	mockWithdrawRepo *mocks.MockWithdrawRepository
	mockLedgerRepo   *mocks.MockLedgerRepository
	mockNotifier     *mocks.MockNotifier
	registry         ClaimRegistry
	listingQueue     *Queue[domain.Listing]
}

func TestModerationSuite(t *testing.T) {
	suite.Run(t, new(ModerationTestSuite))
}

func (s *ModerationTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockClaimRepo = mocks.NewMockClaimRepository(s.mockCtrl)
	s.mockListingRepo = mocks.NewMockListingRepository(s.mockCtrl)
	s.mockWithdrawRepo = mocks.NewMockWithdrawRepository(s.mockCtrl)
	s.mockLedgerRepo = mocks.NewMockLedgerRepository(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)

	expectTx(s.mockUOW, s.mockTX)
	expectTxRepo(s.mockTX, repoargs.ClaimRepoName, s.mockClaimRepo)
	expectTxRepo(s.mockTX, repoargs.ListingRepoName, s.mockListingRepo)
	expectTxRepo(s.mockTX, repoargs.WithdrawRepoName, s.mockWithdrawRepo)
	expectTxRepo(s.mockTX, repoargs.LedgerRepoName, s.mockLedgerRepo)

	s.registry = NewClaimRegistry(repoargs.ListingClaimTarget)
	s.listingQueue = NewQueue(QueueArgs[domain.Listing]{
		UOW:      s.mockUOW,
		Registry: s.registry,
		Pool:     NewStaticPool(1, 2, 3),
		Decider:  ListingDecider{},
		Notifier: s.mockNotifier,
	})
}

func (s *ModerationTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ModerationTestSuite) TestRegistryClaim_Outcomes() {
	target := repoargs.ListingClaimTarget
	const itemID, reviewerID = int64(5), int64(1)

	cases := []struct {
		name   string
		state  *repoargs.ClaimState
		assert func(err error)
	}{
		{
			name:  "already owned by self",
			state: &repoargs.ClaimState{Status: target.ClaimedStatus, OwnerID: ptr(reviewerID)},
			assert: func(err error) {
				s.Require().ErrorIs(err, domain.ErrAlreadyOwnedBySelf)
			},
		},
		{
			name:  "owned by other",
			state: &repoargs.ClaimState{Status: target.ClaimedStatus, OwnerID: ptr(int64(2))},
			assert: func(err error) {
				s.Require().ErrorIs(err, domain.ErrOwnedByOther)
				var ownedErr *domain.OwnedByOtherError
				s.Require().ErrorAs(err, &ownedErr)
				s.Equal(int64(2), ownedErr.OwnerID)
			},
		},
		{
			name:  "already decided",
			state: &repoargs.ClaimState{Status: string(domain.ListingStatusApproved)},
			assert: func(err error) {
				var statusErr *domain.InvalidStatusError
				s.Require().ErrorAs(err, &statusErr)
				s.Equal(string(domain.ListingStatusApproved), statusErr.Current)
			},
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockClaimRepo.EXPECT().TryClaim(gomock.Any(), target, itemID, reviewerID).Return(false, nil)
			s.mockClaimRepo.EXPECT().State(gomock.Any(), target, itemID, false).Return(tc.state, nil)

			tc.assert(s.registry.Claim(s.T().Context(), s.mockTX, itemID, reviewerID))
		})
	}
}

func (s *ModerationTestSuite) TestRegistryClaim_NotFound() {
	target := repoargs.ListingClaimTarget
	s.mockClaimRepo.EXPECT().TryClaim(gomock.Any(), target, int64(404), int64(1)).Return(false, nil)
	s.mockClaimRepo.EXPECT().State(gomock.Any(), target, int64(404), false).
		Return(nil, domain.ErrRecordNotFound)

	err := s.registry.Claim(s.T().Context(), s.mockTX, 404, 1)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *ModerationTestSuite) TestQueueClaim_NotifiesOtherReviewers() {
	target := repoargs.ListingClaimTarget
	s.mockClaimRepo.EXPECT().TryClaim(gomock.Any(), target, int64(5), int64(1)).Return(true, nil)

	var recipients []int64
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, n domain.Notification) error {
			s.Equal(domain.NotifyClaimTaken, n.Kind)
			s.Equal(target.Name, n.Entity)
			recipients = append(recipients, n.RecipientID)
			return nil
		}).Times(2)

	s.Require().NoError(s.listingQueue.Claim(s.T().Context(), 5, 1))
	s.ElementsMatch([]int64{2, 3}, recipients)
}

func (s *ModerationTestSuite) TestQueueClaim_NotReviewer() {
	err := s.listingQueue.Claim(s.T().Context(), 5, 42)
	s.Require().ErrorIs(err, domain.ErrForbidden)
}

func (s *ModerationTestSuite) TestQueueDecide_NotClaimOwner() {
	target := repoargs.ListingClaimTarget
	s.mockClaimRepo.EXPECT().State(gomock.Any(), target, int64(5), true).
		Return(&repoargs.ClaimState{Status: target.ClaimedStatus, OwnerID: ptr(int64(2))}, nil)
	// ни объявление, ни захват не меняются.
	s.mockListingRepo.EXPECT().Transition(gomock.Any(), gomock.Any()).Times(0)
	s.mockClaimRepo.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := s.listingQueue.Decide(s.T().Context(), 5, 1, domain.VerdictApprove, "")
	s.Require().ErrorIs(err, domain.ErrNotClaimOwner)
}

func (s *ModerationTestSuite) TestQueueDecide_Approve() {
	target := repoargs.ListingClaimTarget
	s.mockClaimRepo.EXPECT().State(gomock.Any(), target, int64(5), true).
		Return(&repoargs.ClaimState{Status: target.ClaimedStatus, OwnerID: ptr(int64(1))}, nil)
	s.mockListingRepo.EXPECT().Transition(gomock.Any(), repoargs.TransitionListing{
		ID:   5,
		From: domain.ListingStatusInReview,
		To:   domain.ListingStatusApproved,
	}).Return(&domain.Listing{ID: 5, SellerID: 77, Status: domain.ListingStatusApproved}, nil)
	s.mockClaimRepo.EXPECT().Release(gomock.Any(), target, int64(5)).Return(nil)
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, n domain.Notification) error {
			s.Equal(domain.NotifyItemDecided, n.Kind)
			s.Equal(int64(77), n.RecipientID)
			s.Equal(domain.VerdictApprove, n.Payload["verdict"])
			return nil
		})

	s.Require().NoError(s.listingQueue.Decide(s.T().Context(), 5, 1, domain.VerdictApprove, ""))
}

func (s *ModerationTestSuite) TestQueueDecide_UnknownVerdict() {
	err := s.listingQueue.Decide(s.T().Context(), 5, 1, "maybe", "")
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *ModerationTestSuite) TestWithdrawApprove_InsufficientBalance() {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	decider := WithdrawDecider{Clock: clock.NewFixed(now)}
	request := &domain.WithdrawRequest{
		ID:     9,
		UserID: 200,
		Amount: 1000,
		Reason: "payout",
		Status: domain.WithdrawStatusPending,
	}

	s.mockWithdrawRepo.EXPECT().GetByID(gomock.Any(), request.ID).Return(request, nil)
	s.mockLedgerRepo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any()).Return(int64(0), domain.ErrInsufficientFunds)
	s.mockWithdrawRepo.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)

	_, err := decider.Approve(s.T().Context(), s.mockTX, request.ID, 1, "")
	s.Require().ErrorIs(err, domain.ErrInsufficientBalance)
}

func (s *ModerationTestSuite) TestWithdrawApprove() {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	decider := WithdrawDecider{Clock: clock.NewFixed(now)}
	request := &domain.WithdrawRequest{
		ID:     9,
		UserID: 200,
		Amount: 1000,
		Reason: "payout",
		Status: domain.WithdrawStatusPending,
	}
	approved := *request
	approved.Status = domain.WithdrawStatusApproved

	s.mockWithdrawRepo.EXPECT().GetByID(gomock.Any(), request.ID).Return(request, nil)
	s.mockLedgerRepo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args repoargs.ApplyDelta) (int64, error) {
			s.Equal(int64(-1000), args.Delta)
			s.Equal(domain.EventWithdrawApproved, args.EventType)
			s.Equal(int64(1), *args.ActorID)
			return 500, nil
		})
	s.mockWithdrawRepo.EXPECT().Resolve(gomock.Any(), repoargs.ResolveWithdraw{
		ID:     request.ID,
		Status: domain.WithdrawStatusApproved,
		Note:   ptr("sent"),
		At:     now,
	}).Return(&approved, nil)

	res, err := decider.Approve(s.T().Context(), s.mockTX, request.ID, 1, "sent")
	s.Require().NoError(err)
	s.Equal(domain.WithdrawStatusApproved, res.Status)
	s.Equal(int64(200), decider.Subject(res))
}

func (s *ModerationTestSuite) TestStaticPool() {
	pool := NewStaticPool(3, 0, 1, 3)
	ids, err := pool.Reviewers(s.T().Context())
	s.Require().NoError(err)
	s.Equal([]int64{1, 3}, ids)

	ok, err := pool.IsReviewer(s.T().Context(), 0)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ModerationTestSuite) TestAdminPool() {
	accountRepo := mocks.NewMockAccountRepository(s.mockCtrl)
	pool := NewAdminPool(accountRepo, 1)

	accountRepo.EXPECT().ListAdminIDs(gomock.Any()).Return([]int64{5, 1}, nil)
	ids, err := pool.Reviewers(s.T().Context())
	s.Require().NoError(err)
	s.Equal([]int64{1, 5}, ids)

	accountRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.Account{ID: 5, IsAdmin: true}, nil)
	ok, err := pool.IsReviewer(s.T().Context(), 5)
	s.Require().NoError(err)
	s.True(ok)

	accountRepo.EXPECT().GetByID(gomock.Any(), int64(6)).Return(nil, domain.ErrRecordNotFound)
	ok, err = pool.IsReviewer(s.T().Context(), 6)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ModerationTestSuite) TestQueueDecide_ReviewerRevoked() {
	// ревьюер 1 захватил объявление, затем лишился прав: владение захватом больше не проверяется.
	queue := NewQueue(QueueArgs[domain.Listing]{
		UOW:      s.mockUOW,
		Registry: s.registry,
		Pool:     NewStaticPool(2, 3),
		Decider:  ListingDecider{},
		Notifier: s.mockNotifier,
	})
	s.mockClaimRepo.EXPECT().State(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockListingRepo.EXPECT().Transition(gomock.Any(), gomock.Any()).Times(0)

	err := queue.Decide(s.T().Context(), 5, 1, domain.VerdictApprove, "")
	s.Require().ErrorIs(err, domain.ErrForbidden)
}

func (s *ModerationTestSuite) TestUnionPool() {
	accountRepo := mocks.NewMockAccountRepository(s.mockCtrl)
	pool := UnionPool{NewStaticPool(7, 8), NewAdminPool(accountRepo, 1)}

	accountRepo.EXPECT().ListAdminIDs(gomock.Any()).Return([]int64{5, 8}, nil)
	ids, err := pool.Reviewers(s.T().Context())
	s.Require().NoError(err)
	s.Equal([]int64{1, 5, 7, 8}, ids)

	// агент поддержки проходит без обращения к аккаунтам.
	ok, err := pool.IsReviewer(s.T().Context(), 7)
	s.Require().NoError(err)
	s.True(ok)

	accountRepo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(&domain.Account{ID: 9}, nil)
	ok, err = pool.IsReviewer(s.T().Context(), 9)
	s.Require().NoError(err)
	s.False(ok)
}
