package repoargs

import (
	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/shopspring/decimal"
)

type PurchaseHistoryCreate struct {
	UserID        int64
	ItemID        int64
	ModifiedBy    int64
	ComponentName string
	ItemName      string
	Identifier    string
	Price         decimal.Decimal
	Discount      decimal.Decimal
	Currency      string
	PaymentMethod domain.PaymentMethodType
	PaymentStatus domain.PaymentStatusType
}

type LedgerAuditCreate struct {
	UserID        int64
	ItemID        int64
	ModifiedBy    int64
	Price         decimal.Decimal
	Credits       decimal.Decimal
	Currency      string
	ComponentName string
	Identifier    string
	PaymentMethod domain.PaymentMethodType
	PaymentStatus domain.PaymentStatusType
}
