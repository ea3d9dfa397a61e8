package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-market/internal/logger"
	"github.com/fsdevblog/groph-market/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-market/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-market/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret      = "super secret key"
	testProviderSecret = "provider secret key"

	adminUserID  int64 = 1
	bannedUserID int64 = 666
)

// jsonBody тело запроса в тестах.
type jsonBody = map[string]any

// handlerSuite общая обвязка для тестов хендлеров: моки всех сервисов и роутер поверх них.
type handlerSuite struct {
	suite.Suite
	router *gin.Engine

	accounts     *mocks.MockAccountServicer
	ledger       *mocks.MockLedgerServicer
	payments     *mocks.MockPaymentServicer
	listings     *mocks.MockListingServicer
	orders       *mocks.MockOrderServicer
	reviews      *mocks.MockReviewServicer
	sellers      *mocks.MockSellerServicer
	withdrawals  *mocks.MockWithdrawServicer
	support      *mocks.MockSupportServicer
	listingQueue *mocks.MockModerator
	ticketQueue  *mocks.MockModerator
	sessions     *mocks.MockSessionStorer
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	mockCtrl := gomock.NewController(s.T())

	s.accounts = mocks.NewMockAccountServicer(mockCtrl)
	s.ledger = mocks.NewMockLedgerServicer(mockCtrl)
	s.payments = mocks.NewMockPaymentServicer(mockCtrl)
	s.listings = mocks.NewMockListingServicer(mockCtrl)
	s.orders = mocks.NewMockOrderServicer(mockCtrl)
	s.reviews = mocks.NewMockReviewServicer(mockCtrl)
	s.sellers = mocks.NewMockSellerServicer(mockCtrl)
	s.withdrawals = mocks.NewMockWithdrawServicer(mockCtrl)
	s.support = mocks.NewMockSupportServicer(mockCtrl)
	s.listingQueue = mocks.NewMockModerator(mockCtrl)
	s.ticketQueue = mocks.NewMockModerator(mockCtrl)
	s.sessions = mocks.NewMockSessionStorer(mockCtrl)

	// частные ожидания объявлены раньше общих: gomock берет первое подходящее.
	s.accounts.EXPECT().IsBanned(gomock.Any(), bannedUserID).Return(true, nil).AnyTimes()
	s.accounts.EXPECT().IsBanned(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	s.accounts.EXPECT().IsAdmin(gomock.Any(), adminUserID).Return(true, nil).AnyTimes()
	s.accounts.EXPECT().IsAdmin(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()

	s.router = New(s.routerArgs())
}

func (s *handlerSuite) routerArgs() RouterArgs {
	return RouterArgs{
		Logger:          logger.New(io.Discard),
		AccountService:  s.accounts,
		LedgerService:   s.ledger,
		PaymentService:  s.payments,
		ListingService:  s.listings,
		OrderService:    s.orders,
		ReviewService:   s.reviews,
		SellerService:   s.sellers,
		WithdrawService: s.withdrawals,
		SupportService:  s.support,
		Moderators: map[string]Moderator{
			QueueListings: s.listingQueue,
			QueueTickets:  s.ticketQueue,
		},
		Sessions:          s.sessions,
		JWTSecretKey:      []byte(testJWTSecret),
		ProviderSecretKey: []byte(testProviderSecret),
	}
}

// request выполняет JSON запрос от имени userID (0 - без токена).
func (s *handlerSuite) request(method, url string, userID int64, body any) *http.Response {
	var token string
	if userID > 0 {
		var err error
		token, err = tokens.GenerateUserJWT(userID, time.Hour, []byte(testJWTSecret))
		s.Require().NoError(err)
	}
	return s.requestWithToken(method, url, token, body)
}

// providerToken токен платежного провайдера.
func (s *handlerSuite) providerToken() string {
	token, err := tokens.GenerateServiceJWT(tokens.PaymentProviderSubject, time.Hour, []byte(testProviderSecret))
	s.Require().NoError(err)
	return token
}

// requestWithToken выполняет JSON запрос с готовым bearer токеном (пустой - без токена).
func (s *handlerSuite) requestWithToken(method, url, token string, body any) *http.Response {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	reqOpts := []func(*testutils.RequestOptions){
		testutils.WithHeader("Content-Type", "application/json"),
		testutils.WithHeader("Accept", "application/json"),
	}
	if token != "" {
		reqOpts = append(reqOpts, testutils.WithBearer(token))
	}

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
		Body:   reader,
	}, reqOpts...)
	s.Require().NoError(err)
	s.T().Cleanup(func() {
		_ = res.Body.Close()
	})
	return res
}

func (s *handlerSuite) decode(res *http.Response, v any) {
	s.Require().NoError(json.NewDecoder(res.Body).Decode(v))
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *handlerSuite) errorBody(res *http.Response) errorBody {
	var body errorBody
	s.decode(res, &body)
	return body
}
