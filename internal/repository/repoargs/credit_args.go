package repoargs

import (
	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/shopspring/decimal"
)

type LedgerEntryCreate struct {
	UserID        int64
	ModifiedBy    int64
	ItemID        int64
	Amount        decimal.Decimal
	Balance       decimal.Decimal
	Currency      string
	ComponentName string
	PaymentMethod domain.PaymentMethodType
	PaymentStatus domain.PaymentStatusType
}

// CurrencySum сумма движений по кредиту юзера в одной валюте.
type CurrencySum struct {
	Currency string
	Amount   decimal.Decimal
}
