package service

import (
	"context"
	"io"

	"github.com/fsdevblog/groph-cart/internal/cache"
	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/fsdevblog/groph-cart/internal/repository/memrepo"
	"github.com/fsdevblog/groph-cart/internal/repository/repoargs"
	"github.com/fsdevblog/groph-cart/internal/taxcategories"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type testSettings struct {
	roundDiscounts bool
	fee            decimal.Decimal
	categories     *taxcategories.Categories
}

func (t *testSettings) RoundDiscounts() bool { return t.roundDiscounts }
func (t *testSettings) CancellationFeeDefault() decimal.Decimal { return t.fee }
func (t *testSettings) TaxCategories() *taxcategories.Categories { return t.categories }

// testEnv сервисы поверх хранилищ в памяти.
type testEnv struct {
	store    *memrepo.Store
	cache    *cache.MemoryStore
	settings *testSettings
	services *AppServices
}

func newTestEnv() (*testEnv, error) {
	store := memrepo.NewStore()
	memCache := cache.NewMemoryStore()
	settings := &testSettings{fee: decimal.Zero}

	l := logrus.New()
	l.SetOutput(io.Discard)

	services, err := Factory(memrepo.NewUnitOfWork(store), Stores{
		Cache:       memCache,
		Preferences: memCache,
		Carts:       memCache,
	}, settings, l)
	if err != nil {
		return nil, err
	}
	return &testEnv{
		store:    store,
		cache:    memCache,
		settings: settings,
		services: services,
	}, nil
}

// tamper пишет запись в леджер в обход сервиса.
func (e *testEnv) tamper(ctx context.Context, userID int64, amount, balance, currency string) error {
	_, err := memrepo.NewCreditRepository(e.store).Insert(ctx, repoargs.LedgerEntryCreate{
		UserID:        userID,
		Amount:        decimal.RequireFromString(amount),
		Balance:       decimal.RequireFromString(balance),
		Currency:      currency,
		PaymentMethod: domain.PaymentMethodCashier,
		PaymentStatus: domain.PaymentStatusSuccess,
	})
	return err
}

func (e *testEnv) addCredit(ctx context.Context, userID int64, amount string) (*domain.BalanceSnapshot, error) {
	return e.services.CreditService.AddCredit(ctx, AddCreditArgs{
		UserID:     userID,
		Amount:     decimal.RequireFromString(amount),
		Currency:   "EUR",
		ModifiedBy: userID,
	})
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func boolPtr(b bool) *bool {
	return &b
}
