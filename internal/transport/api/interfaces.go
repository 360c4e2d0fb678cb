package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/fsdevblog/groph-cart/internal/service"
)

type CartServicer interface {
	View(ctx context.Context, userID int64) (*service.CartView, error)
	Price(ctx context.Context, userID int64, useCredit *bool) (*domain.CheckoutComputation, error)
	AddItem(ctx context.Context, userID int64, args service.AddItemArgs) (*service.CartView, error)
	DeleteItem(ctx context.Context, userID int64, componentName string, itemID int64) (*service.CartView, error)
	DeleteAll(ctx context.Context, userID int64) (*service.CartView, error)
	SetDiscount(
		ctx context.Context,
		userID int64,
		componentName string,
		itemID int64,
		discount decimal.Decimal,
	) (*service.CartView, error)
	Checkout(ctx context.Context, args service.CheckoutArgs) (*service.CheckoutResult, error)
	History(ctx context.Context, userID int64) ([]domain.PurchaseHistory, error)
}

type CreditServicer interface {
	CachedBalance(ctx context.Context, userID int64) (*domain.BalanceSnapshot, error)
	AddCredit(ctx context.Context, args service.AddCreditArgs) (*domain.BalanceSnapshot, error)
	CreditPaidBack(ctx context.Context, userID, actorID int64) (*domain.BalanceSnapshot, error)
	Entries(ctx context.Context, userID int64) ([]domain.LedgerEntry, error)
}

type CancellationServicer interface {
	CancelPurchase(ctx context.Context, args service.CancelPurchaseArgs) (*domain.CancellationResult, error)
}
