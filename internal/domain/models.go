package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry запись кредитного леджера. После вставки не изменяется.
// Balance хранит итоговый баланс юзера после применения Amount.
type LedgerEntry struct {
	ID            int64
	CreatedAt     time.Time
	ModifiedAt    time.Time
	UserID        int64
	ModifiedBy    int64
	ItemID        int64
	Amount        decimal.Decimal
	Balance       decimal.Decimal
	Currency      string
	ComponentName string
	PaymentMethod PaymentMethodType
	PaymentStatus PaymentStatusType
}

// BalanceSnapshot закешированный баланс юзера. Источником истины не является.
type BalanceSnapshot struct {
	UserID      int64           `json:"user_id"`
	LastEntryID int64           `json:"last_entry_id"`
	Credit      decimal.Decimal `json:"credit"`
	Currency    string          `json:"currency"`
	RefreshedAt time.Time       `json:"refreshed_at"`
}

// CheckoutComputation результат расчета цены корзины с учетом скидки и кредита.
type CheckoutComputation struct {
	GrossPrice       decimal.Decimal
	Discount         decimal.Decimal
	InitialTotal     decimal.Decimal
	Price            decimal.Decimal
	Credit           decimal.Decimal
	Deductible       decimal.Decimal
	RemainingCredit  decimal.Decimal
	Currency         string
	CorrelationToken string
	UseCredit        bool
	HasCredit        bool
}

// CartItem позиция в корзине юзера.
type CartItem struct {
	ItemID        int64           `json:"item_id"`
	ComponentName string          `json:"component_name"`
	ItemName      string          `json:"item_name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Discount      decimal.Decimal `json:"discount"`
	Currency      string          `json:"currency"`
	TaxCategory   string          `json:"tax_category,omitempty"`
	AddedAt       time.Time       `json:"added_at"`
}

// Key уникальный ключ позиции внутри корзины.
func (c CartItem) Key() string {
	return CartItemKey(c.ComponentName, c.ItemID)
}

// PurchaseHistory запись о купленной позиции.
type PurchaseHistory struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	UserID        int64
	ItemID        int64
	ModifiedBy    int64
	ComponentName string
	ItemName      string
	Identifier    string
	Price         decimal.Decimal
	Discount      decimal.Decimal
	Currency      string
	PaymentMethod PaymentMethodType
	PaymentStatus PaymentStatusType
	Status        HistoryStatusType
}

// LedgerAuditRecord запись журнала платежей: покупки, выплаты кредита и т.п.
type LedgerAuditRecord struct {
	ID            int64
	CreatedAt     time.Time
	UserID        int64
	ItemID        int64
	ModifiedBy    int64
	Price         decimal.Decimal
	Credits       decimal.Decimal
	Currency      string
	ComponentName string
	Identifier    string
	PaymentMethod PaymentMethodType
	PaymentStatus PaymentStatusType
}

type CancellationResult struct {
	HistoryID int64
	Refund    decimal.Decimal
	Fee       decimal.Decimal
	Credit    decimal.Decimal
	Currency  string
}
