package domain

import "strconv"

type PaymentMethodType string

const (
	PaymentMethodOnline          PaymentMethodType = "online"
	PaymentMethodCashier         PaymentMethodType = "cashier"
	PaymentMethodCredits         PaymentMethodType = "credits"
	PaymentMethodCreditsPaidBack PaymentMethodType = "credits_paid_back"
)

type PaymentStatusType string

const (
	PaymentStatusPending  PaymentStatusType = "pending"
	PaymentStatusSuccess  PaymentStatusType = "success"
	PaymentStatusCanceled PaymentStatusType = "canceled"
	PaymentStatusError    PaymentStatusType = "error"
)

type HistoryStatusType string

const (
	HistoryStatusActive   HistoryStatusType = "active"
	HistoryStatusCanceled HistoryStatusType = "canceled"
)

// CartComponentName имя компонента, от лица которого пишутся служебные записи леджера (выплата кредита).
const CartComponentName = "shopping_cart"

// CartItemKey строит ключ позиции корзины из имени компонента и id позиции.
func CartItemKey(componentName string, itemID int64) string {
	return componentName + ":" + strconv.FormatInt(itemID, 10)
}
