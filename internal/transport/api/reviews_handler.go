package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/gin-gonic/gin"
)

type ReviewsHandler struct {
	reviews ReviewServicer
	orders  OrderServicer
}

func NewReviewsHandler(reviews ReviewServicer, orders OrderServicer) *ReviewsHandler {
	return &ReviewsHandler{
		reviews: reviews,
		orders:  orders,
	}
}

type RoleQuery struct {
	Role    string `binding:"omitempty,oneof=buyer seller" form:"role"`
	Page    uint   `form:"page"`
	PerPage uint   `form:"per_page"`
}

// role по умолчанию продавец: рейтинг покупателя запрашивают реже.
func (q RoleQuery) role() domain.RoleType {
	if q.Role == "" {
		return domain.RoleSeller
	}
	return domain.RoleType(q.Role)
}

type RatingResponse struct {
	UserID          int64  `json:"user_id"`
	Role            string `json:"role"`
	Average         string `json:"average"`
	Count           int64  `json:"count"`
	CompletedOrders *int64 `json:"completed_orders,omitempty"`
}

// Rating GET RouteGroup + UserRatingRoute. Для роли продавца рядом отдается число завершенных продаж.
func (h *ReviewsHandler) Rating(c *gin.Context) {
	userID, ok := bindID(c)
	if !ok {
		return
	}
	q, ok := bindQuery[RoleQuery](c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rating, err := h.reviews.GetRating(reqCtx, userID, q.role())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := RatingResponse{
		UserID:  userID,
		Role:    string(q.role()),
		Average: rating.Average.StringFixed(2),
		Count:   rating.Count,
	}
	if q.role() == domain.RoleSeller {
		completed, countErr := h.orders.CountCompletedAsSeller(reqCtx, userID)
		if countErr != nil {
			abortWithServiceError(c, countErr)
			return
		}
		response.CompletedOrders = &completed
	}
	c.JSON(http.StatusOK, response)
}

// Received GET RouteGroup + UserReviewsRoute.
func (h *ReviewsHandler) Received(c *gin.Context) {
	userID, ok := bindID(c)
	if !ok {
		return
	}
	q, ok := bindQuery[RoleQuery](c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	reviews, err := h.reviews.ListReceived(reqCtx, userID, q.role(), q.Page, q.PerPage)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newReviewsResponse(reviews))
}

// Mine GET RouteGroup + ReviewsMineRoute. Отзывы, оставленные текущим участником.
func (h *ReviewsHandler) Mine(c *gin.Context) {
	q, ok := bindQuery[limitQuery](c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	reviews, err := h.reviews.ListAuthored(reqCtx, getUserIDFromContext(c), q.Limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newReviewsResponse(reviews))
}

func newReviewsResponse(reviews []domain.Review) []ReviewResponse {
	response := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		response[i] = newReviewResponse(&reviews[i])
	}
	return response
}
