package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ModerationHandlerTestSuite struct {
	handlerSuite
}

func TestModerationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ModerationHandlerTestSuite))
}

func (s *ModerationHandlerTestSuite) TestClaim() {
	var reviewerID int64 = 2

	s.listingQueue.EXPECT().Claim(gomock.Any(), int64(1), reviewerID).Return(nil).Times(1)
	s.listingQueue.EXPECT().
		Claim(gomock.Any(), int64(2), reviewerID).
		Return(fmt.Errorf("claim listings 2: %w", domain.NewOwnedByOtherError(7))).
		Times(1)
	s.listingQueue.EXPECT().
		Claim(gomock.Any(), int64(3), reviewerID).
		Return(fmt.Errorf("claim listings 3: %w", domain.ErrAlreadyOwnedBySelf)).
		Times(1)
	s.ticketQueue.EXPECT().
		Claim(gomock.Any(), int64(1), reviewerID).
		Return(fmt.Errorf("claim: %w", domain.ErrForbidden)).
		Times(1)

	s.Run("claimed", func() {
		res := s.request(http.MethodPost, RouteGroup+"/moderation/listings/1/claim", reviewerID, nil)
		s.Require().Equal(http.StatusOK, res.StatusCode)
		var body ModerationResponse
		s.decode(res, &body)
		s.Equal("claimed", body.Status)
	})
	s.Run("owned by other", func() {
		res := s.request(http.MethodPost, RouteGroup+"/moderation/listings/2/claim", reviewerID, nil)
		s.Require().Equal(http.StatusConflict, res.StatusCode)
		body := s.errorBody(res)
		s.Equal("owned_by_other", body.Code)
		s.Equal("owned by other reviewer 7", body.Error)
	})
	s.Run("already owned by self", func() {
		res := s.request(http.MethodPost, RouteGroup+"/moderation/listings/3/claim", reviewerID, nil)
		s.Equal(http.StatusConflict, res.StatusCode)
		s.Equal("already_owned_by_self", s.errorBody(res).Code)
	})
	s.Run("not a support agent", func() {
		res := s.request(http.MethodPost, RouteGroup+"/moderation/tickets/1/claim", reviewerID, nil)
		s.Equal(http.StatusForbidden, res.StatusCode)
	})
	s.Run("unknown queue", func() {
		res := s.request(http.MethodPost, RouteGroup+"/moderation/reviews/1/claim", reviewerID, nil)
		s.Equal(http.StatusNotFound, res.StatusCode)
		s.Equal("not_found", s.errorBody(res).Code)
	})
}

func (s *ModerationHandlerTestSuite) TestDecide() {
	var reviewerID int64 = 2

	s.listingQueue.EXPECT().
		Decide(gomock.Any(), int64(1), reviewerID, domain.VerdictApprove, "").
		Return(nil).
		Times(1)
	s.listingQueue.EXPECT().
		Decide(gomock.Any(), int64(2), reviewerID, domain.VerdictReject, "duplicate").
		Return(fmt.Errorf("decide listings 2: %w", domain.ErrNotClaimOwner)).
		Times(1)

	cases := []struct {
		name       string
		url        string
		body       jsonBody
		wantStatus int
	}{
		{"approve", "/moderation/listings/1/decide", jsonBody{"verdict": "approve"}, http.StatusOK},
		{"not owner", "/moderation/listings/2/decide", jsonBody{"verdict": "reject", "note": "duplicate"},
			http.StatusForbidden},
		{"unknown verdict", "/moderation/listings/1/decide", jsonBody{"verdict": "maybe"}, http.StatusBadRequest},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.request(http.MethodPost, RouteGroup+t.url, reviewerID, t.body)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
