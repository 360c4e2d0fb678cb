package api

import (
	"time"

	"github.com/fsdevblog/groph-cart/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup        = "/api"
	CartRoute         = "/cart"
	CartPriceRoute    = "/cart/price"
	CartItemsRoute    = "/cart/items"
	CartItemRoute     = "/cart/items/:component/:itemid"
	CartCheckoutRoute = "/cart/checkout"
	CreditsRoute      = "/credits"
	HistoryRoute      = "/history"

	CashierGroup         = "/cashier/users/:userid"
	CashierCreditsRoute  = "/credits"
	CashierLedgerRoute   = "/credits/ledger"
	CashierPaybackRoute  = "/credits/payback"
	CashierCancelRoute   = "/history/:historyid/cancel"
	CashierDiscountRoute = "/cart/items/:component/:itemid/discount"
	CashierCheckoutRoute = "/cart/checkout"
)

type RouterArgs struct {
	Logger              *logrus.Logger
	CartService         CartServicer
	CreditService       CreditServicer
	CancellationService CancellationServicer
	JWTSecretKey        []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	if err := registerValidators(); err != nil && args.Logger != nil {
		args.Logger.WithError(err).Error("failed to register validators")
	}
	r.Use(middlewares.Errors())

	cartHandler := NewCartHandler(args.CartService)
	creditsHandler := NewCreditsHandler(args.CreditService)
	cashierHandler := NewCashierHandler(args.CartService, args.CreditService, args.CancellationService)

	api := r.Group(RouteGroup)
	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(CartRoute, cartHandler.Index)
	api.GET(CartPriceRoute, cartHandler.Price)
	api.POST(CartItemsRoute, cartHandler.AddItem)
	api.DELETE(CartItemsRoute, cartHandler.DeleteAll)
	api.DELETE(CartItemRoute, cartHandler.DeleteItem)
	api.POST(CartCheckoutRoute, cartHandler.Checkout)
	api.GET(HistoryRoute, cartHandler.History)

	api.GET(CreditsRoute, creditsHandler.Index)

	cashier := api.Group(CashierGroup, middlewares.CashierRequired())
	cashier.GET(CashierLedgerRoute, cashierHandler.Ledger)
	cashier.POST(CashierCreditsRoute, cashierHandler.AddCredit)
	cashier.POST(CashierPaybackRoute, cashierHandler.PayBack)
	cashier.POST(CashierCancelRoute, cashierHandler.CancelPurchase)
	cashier.PUT(CashierDiscountRoute, cashierHandler.SetDiscount)
	cashier.POST(CashierCheckoutRoute, cashierHandler.Checkout)
	return r
}
