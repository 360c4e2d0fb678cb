package service

import (
	"context"

	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/fsdevblog/groph-cart/internal/repository/repoargs"
	"github.com/fsdevblog/groph-cart/internal/taxcategories"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type CreditRepository interface {
	Insert(ctx context.Context, entry repoargs.LedgerEntryCreate) (*domain.LedgerEntry, error)
	SumByUser(ctx context.Context, userID int64) ([]repoargs.CurrencySum, error)
	LatestByUser(ctx context.Context, userID int64) (*domain.LedgerEntry, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.LedgerEntry, error)
}

type HistoryRepository interface {
	Create(ctx context.Context, record repoargs.PurchaseHistoryCreate) (*domain.PurchaseHistory, error)
	FindByID(ctx context.Context, id int64) (*domain.PurchaseHistory, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.PurchaseHistory, error)
	MarkCanceled(ctx context.Context, id, modifiedBy int64) (*domain.PurchaseHistory, error)
	RecordLedgerAudit(ctx context.Context, record repoargs.LedgerAuditCreate) (*domain.LedgerAuditRecord, error)
}

// BalanceCache кеш баланса юзера. Get возвращает nil без ошибки, если записи нет.
// Запись со снимком, у которого LastEntryID меньше закешированного, игнорируется.
type BalanceCache interface {
	Get(ctx context.Context, userID int64) (*domain.BalanceSnapshot, error)
	Set(ctx context.Context, snapshot domain.BalanceSnapshot) error
	// Refresh перезаписывает только существующую запись. Возвращает false, если запись не обновлена.
	Refresh(ctx context.Context, snapshot domain.BalanceSnapshot) (bool, error)
}

// CreditPreferenceStore сохраненный выбор юзера "оплатить кредитом". nil - выбор не сохранялся.
type CreditPreferenceStore interface {
	GetUseCredit(ctx context.Context, userID int64) (*bool, error)
	SaveUseCredit(ctx context.Context, userID int64, useCredit bool) error
}

type CartStore interface {
	Items(ctx context.Context, userID int64) ([]domain.CartItem, error)
	Put(ctx context.Context, userID int64, item domain.CartItem) error
	Delete(ctx context.Context, userID int64, itemKey string) (bool, error)
	Clear(ctx context.Context, userID int64) error
}

type Authorizer interface {
	HasDiscountPrivilege(ctx context.Context) bool
}

type Settings interface {
	RoundDiscounts() bool
	CancellationFeeDefault() decimal.Decimal
	// TaxCategories может вернуть nil, если налоговые категории не настроены.
	TaxCategories() *taxcategories.Categories
}
