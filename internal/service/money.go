package service

import "github.com/shopspring/decimal"

const moneyPlaces = 2

// round2 округляет денежную сумму до 2 знаков, половина округляется от нуля.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

func minDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
