package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) TestGetPaymentStatus() {
	type tcase struct {
		name         string
		externalID   string
		httpStatus   int
		retryAfter   string
		wantResponse *Response
		wantRetry    time.Duration
		wantCode     int
	}

	cases := []tcase{
		{
			name:       "paid",
			externalID: "ext-1",
			httpStatus: http.StatusOK,
			wantResponse: &Response{
				ExternalID: "ext-1",
				Status:     StatusPaid,
				Amount:     decimal.NewFromInt(1500),
			},
		},
		{
			name:       "not found",
			externalID: "ext-2",
			httpStatus: http.StatusNotFound,
			wantCode:   http.StatusNotFound,
		},
		{
			name:       "too many requests",
			externalID: "ext-3",
			httpStatus: http.StatusTooManyRequests,
			retryAfter: "5",
			wantRetry:  5 * time.Second,
		},
		{
			name:       "too many requests with bad header",
			externalID: "ext-4",
			httpStatus: http.StatusTooManyRequests,
			retryAfter: "soon",
			wantRetry:  60 * time.Second,
		},
	}

	// по пути запроса подбирается кейс и отдается ожидаемый ответ.
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := strings.CutPrefix(r.URL.Path, "/api/payments/")
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		for _, c := range cases {
			if c.externalID != id {
				continue
			}
			if c.retryAfter != "" {
				w.Header().Set("Retry-After", c.retryAfter)
			}
			if c.httpStatus != http.StatusOK {
				w.WriteHeader(c.httpStatus)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(c.wantResponse)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
	}))

	for _, tc := range cases {
		s.Run(tc.name, func() {
			response, err := New(s.server.URL).GetPaymentStatus(s.T().Context(), tc.externalID)

			switch {
			case tc.wantRetry > 0:
				var tooMany *TooManyRequestError
				s.Require().ErrorAs(err, &tooMany)
				s.Equal(tc.wantRetry, tooMany.RetryAfter)
			case tc.wantCode > 0:
				var codeErr *StatusCodeError
				s.Require().ErrorAs(err, &codeErr)
				s.Equal(tc.wantCode, codeErr.Code)
			default:
				s.Require().NoError(err)
				s.Equal(tc.wantResponse.ExternalID, response.ExternalID)
				s.Equal(tc.wantResponse.Status, response.Status)
				s.True(tc.wantResponse.Amount.Equal(response.Amount))
			}
		})
	}
}
