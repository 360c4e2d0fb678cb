package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrAlreadyCanceled  = errors.New("purchase already canceled")
	ErrAlreadyPurchased = errors.New("item already purchased")
	ErrEmptyCart        = errors.New("cart is empty")
)

// MultiCurrencyError в леджере юзера встречается больше одной валюты. Система поддерживает только одну валюту
// на юзера, восстановление невозможно.
type MultiCurrencyError struct {
	UserID     int64
	Currencies []string
}

func NewMultiCurrencyError(userID int64, currencies []string) error {
	return &MultiCurrencyError{UserID: userID, Currencies: currencies}
}

func (e *MultiCurrencyError) Error() string {
	return fmt.Sprintf(
		"multiple currencies in credit ledger of user %d: %s",
		e.UserID,
		strings.Join(e.Currencies, ", "),
	)
}

// LedgerIntegrityError пересчитанный баланс не совпадает с балансом последней записи леджера
// (или только что записанной). Означает порчу данных или гонку, операция должна быть прервана.
type LedgerIntegrityError struct {
	UserID   int64
	Expected decimal.Decimal
	Actual   decimal.Decimal
	Stage    string
}

func NewLedgerIntegrityError(userID int64, stage string, expected, actual decimal.Decimal) error {
	return &LedgerIntegrityError{
		UserID:   userID,
		Expected: expected,
		Actual:   actual,
		Stage:    stage,
	}
}

func (e *LedgerIntegrityError) Error() string {
	return fmt.Sprintf(
		"credit ledger of user %d is inconsistent (%s): expected balance %s, got %s",
		e.UserID,
		e.Stage,
		e.Expected.StringFixed(2),
		e.Actual.StringFixed(2),
	)
}

// ValidationError некорректные входные данные. В отличие от ошибок леджера, может быть исправлена вызывающей стороной.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
