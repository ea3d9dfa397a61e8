package api

import (
	"time"

	"github.com/fsdevblog/groph-market/internal/transport/api/middlewares"
	"github.com/fsdevblog/groph-market/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup            = "/api"
	AccountMeRoute        = "/accounts/me"
	AccountPhoneRoute     = "/accounts/me/phone"
	BalanceRoute          = "/balance"
	BalanceEventsRoute    = "/balance/events"
	TopupsRoute           = "/topups"
	ListingsRoute         = "/listings"
	ListingsMineRoute     = "/listings/mine"
	ListingRoute          = "/listings/:id"
	ListingBuyRoute       = "/listings/:id/buy"
	OrdersRoute           = "/orders"
	OrderRoute            = "/orders/:id"
	OrderDeliverRoute     = "/orders/:id/deliver"
	OrderCancelRoute      = "/orders/:id/cancel"
	OrderConfirmRoute     = "/orders/:id/confirm"
	OrderReviewsRoute     = "/orders/:id/reviews"
	UserRatingRoute       = "/users/:id/rating"
	UserReviewsRoute      = "/users/:id/reviews"
	ReviewsMineRoute      = "/reviews/mine"
	SellerApplyRoute      = "/seller/apply"
	WithdrawalsRoute      = "/withdrawals"
	SupportTicketsRoute   = "/support/tickets"
	ModerationClaimRoute  = "/moderation/:queue/:id/claim"
	ModerationDecideRoute = "/moderation/:queue/:id/decide"
	SessionRoute          = "/sessions/:chat"

	AdminGroup        = "/admin"
	AdminAccountRoute = "/accounts/:id"
	AdminBalanceRoute = "/accounts/:id/balance"
	AdminBanRoute     = "/accounts/:id/ban"
	AdminAdminRoute   = "/accounts/:id/admin"
	AdminLedgerRoute  = "/accounts/:id/ledger"

	// ProviderGroup маршруты платежного провайдера, вне группы участников.
	ProviderGroup         = "/provider"
	PaymentsCompleteRoute = "/payments/complete"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	AccountService  AccountServicer
	LedgerService   LedgerServicer
	PaymentService  PaymentServicer
	ListingService  ListingServicer
	OrderService    OrderServicer
	ReviewService   ReviewServicer
	SellerService   SellerServicer
	WithdrawService WithdrawServicer
	SupportService  SupportServicer
	// Moderators очереди модерации по имени из пути (QueueListings и т.д.).
	Moderators map[string]Moderator
	// Sessions nil, если хранилище сессий не настроено: маршруты сессий тогда не регистрируются.
	Sessions     SessionStorer
	JWTSecretKey []byte
	// ProviderSecretKey ключ токенов платежного провайдера. Пустой - подтверждение оплаты через http отключено.
	ProviderSecretKey []byte
}

func New(args RouterArgs) *gin.Engine {
	mustRegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	accountHandler := NewAccountHandler(args.AccountService, args.LedgerService)
	balanceHandler := NewBalanceHandler(args.LedgerService, args.PaymentService)
	listingsHandler := NewListingsHandler(args.ListingService, args.OrderService)
	ordersHandler := NewOrdersHandler(args.OrderService, args.ReviewService)
	reviewsHandler := NewReviewsHandler(args.ReviewService, args.OrderService)
	sellerHandler := NewSellerHandler(args.SellerService, args.WithdrawService)
	supportHandler := NewSupportHandler(args.SupportService)
	moderationHandler := NewModerationHandler(args.Moderators)

	api := r.Group(RouteGroup)
	// все роуты группы требуют авторизованного и не заблокированного участника.
	api.Use(middlewares.AuthRequired(args.JWTSecretKey), middlewares.BanGuard(args.AccountService))

	api.POST(AccountMeRoute, accountHandler.Ensure)
	api.GET(AccountMeRoute, accountHandler.Me)
	api.POST(AccountPhoneRoute, accountHandler.VerifyPhone)

	api.GET(BalanceRoute, balanceHandler.Index)
	api.GET(BalanceEventsRoute, balanceHandler.Events)
	api.POST(TopupsRoute, balanceHandler.CreateTopup)

	api.GET(ListingsRoute, listingsHandler.Index)
	api.GET(ListingsMineRoute, listingsHandler.Mine)
	api.GET(ListingRoute, listingsHandler.Show)
	api.POST(ListingsRoute, listingsHandler.Create)
	api.POST(ListingBuyRoute, listingsHandler.Buy)

	api.GET(OrdersRoute, ordersHandler.Index)
	api.GET(OrderRoute, ordersHandler.Show)
	api.POST(OrderDeliverRoute, ordersHandler.Deliver)
	api.POST(OrderCancelRoute, ordersHandler.Cancel)
	api.POST(OrderConfirmRoute, ordersHandler.Confirm)
	api.POST(OrderReviewsRoute, ordersHandler.CreateReview)

	api.GET(UserRatingRoute, reviewsHandler.Rating)
	api.GET(UserReviewsRoute, reviewsHandler.Received)
	api.GET(ReviewsMineRoute, reviewsHandler.Mine)

	api.POST(SellerApplyRoute, sellerHandler.Apply)
	api.POST(WithdrawalsRoute, sellerHandler.Withdraw)
	api.GET(WithdrawalsRoute, sellerHandler.Withdrawals)

	api.POST(SupportTicketsRoute, supportHandler.Create)

	// права ревьюера проверяет сама очередь: у очереди обращений свой пул агентов.
	api.POST(ModerationClaimRoute, moderationHandler.Claim)
	api.POST(ModerationDecideRoute, moderationHandler.Decide)

	if args.Sessions != nil {
		sessionsHandler := NewSessionsHandler(args.Sessions)
		api.GET(SessionRoute, sessionsHandler.Show)
		api.PUT(SessionRoute, sessionsHandler.Update)
		api.DELETE(SessionRoute, sessionsHandler.Delete)
	}

	admin := api.Group(AdminGroup, middlewares.AdminRequired(args.AccountService))
	admin.GET(AdminAccountRoute, accountHandler.Show)
	admin.PUT(AdminBalanceRoute, accountHandler.SetBalance)
	admin.PUT(AdminBanRoute, accountHandler.SetBanned)
	admin.PUT(AdminAdminRoute, accountHandler.SetAdmin)
	admin.GET(AdminLedgerRoute, accountHandler.VerifyLedger)

	if len(args.ProviderSecretKey) > 0 {
		provider := r.Group(ProviderGroup,
			middlewares.ServiceRequired(args.ProviderSecretKey, tokens.PaymentProviderSubject))
		provider.POST(PaymentsCompleteRoute, balanceHandler.CompletePayment)
	}

	return r
}
