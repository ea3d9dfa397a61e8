package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/gin-gonic/gin"
)

type ListingsHandler struct {
	listings ListingServicer
	orders   OrderServicer
}

func NewListingsHandler(listings ListingServicer, orders OrderServicer) *ListingsHandler {
	return &ListingsHandler{
		listings: listings,
		orders:   orders,
	}
}

type ListingResponse struct {
	ID          int64     `json:"id"`
	SellerID    int64     `json:"seller_id"`
	Category    string    `json:"category"`
	Amount      *int64    `json:"amount,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func newListingResponse(l *domain.Listing) ListingResponse {
	return ListingResponse{
		ID:          l.ID,
		SellerID:    l.SellerID,
		Category:    l.Category,
		Amount:      l.Amount,
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		Status:      string(l.Status),
		CreatedAt:   l.CreatedAt,
	}
}

func newListingsResponse(listings []domain.Listing) []ListingResponse {
	response := make([]ListingResponse, len(listings))
	for i := range listings {
		response[i] = newListingResponse(&listings[i])
	}
	return response
}

type CatalogQuery struct {
	Category *string `form:"category"`
	Page     uint    `form:"page"`
	PerPage  uint    `form:"per_page"`
}

type CatalogResponse struct {
	Items []ListingResponse `json:"items"`
	Total int64             `json:"total"`
}

// Index GET RouteGroup + ListingsRoute. Каталог опубликованных объявлений.
func (h *ListingsHandler) Index(c *gin.Context) {
	q, ok := bindQuery[CatalogQuery](c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	listings, total, err := h.listings.ListApproved(reqCtx, q.Category, q.Page, q.PerPage)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, CatalogResponse{
		Items: newListingsResponse(listings),
		Total: total,
	})
}

// Mine GET RouteGroup + ListingsMineRoute. Объявления текущего продавца во всех статусах.
func (h *ListingsHandler) Mine(c *gin.Context) {
	q, ok := bindQuery[pageQuery](c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	listings, err := h.listings.ListBySeller(reqCtx, getUserIDFromContext(c), q.Page, q.PerPage)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newListingsResponse(listings))
}

// Show GET RouteGroup + ListingRoute.
func (h *ListingsHandler) Show(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	listing, err := h.listings.Get(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newListingResponse(listing))
}

type SubmitListingParams struct {
	Category    string `binding:"required,max_bytes=64"  json:"category"`
	Amount      *int64 `binding:"omitempty,min=1"        json:"amount"`
	Title       string `binding:"required,max_bytes=255" json:"title"`
	Description string `binding:"max_bytes=4000"         json:"description"`
	Price       int64  `binding:"required,min=1"         json:"price"`
}

// Create POST RouteGroup + ListingsRoute. Объявление уходит на модерацию.
func (h *ListingsHandler) Create(c *gin.Context) {
	var params SubmitListingParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	listing, err := h.listings.Submit(reqCtx, service.SubmitListingArgs{
		SellerID:    getUserIDFromContext(c),
		Category:    params.Category,
		Amount:      params.Amount,
		Title:       params.Title,
		Description: params.Description,
		Price:       params.Price,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newListingResponse(listing))
}

// Buy POST RouteGroup + ListingBuyRoute. Списывает цену с покупателя и открывает заказ.
func (h *ListingsHandler) Buy(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := h.orders.Buy(reqCtx, id, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newOrderResponse(order))
}
