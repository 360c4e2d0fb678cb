package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartData итог корзины для расчета цены. Price уже за вычетом скидок, Discount - сумма скидок.
type CartData struct {
	Price    decimal.Decimal
	Discount decimal.Decimal
	Currency string
}

// CheckoutInput все входные данные расчета цены. Заполняется из леджера, настроек и контекста запроса.
type CheckoutInput struct {
	Cart              CartData
	Balance           decimal.Decimal
	BalanceCurrency   string
	UseCredit         bool
	RoundDiscounts    bool
	DiscountPrivilege bool
}

// ComputeCheckout рассчитывает цену к оплате с учетом скидки и кредита. Без ввода-вывода.
//
// Скидка уменьшает цену только для привилегированного (кассир) контекста, иначе она только показывается.
// При балансе <= 0 поля кредита не заполняются.
func ComputeCheckout(in CheckoutInput) domain.CheckoutComputation {
	price := in.Cart.Price
	comp := domain.CheckoutComputation{
		GrossPrice:   round2(price),
		InitialTotal: price,
		Currency:     in.BalanceCurrency,
	}
	if comp.Currency == "" {
		comp.Currency = in.Cart.Currency
	}

	if !in.Cart.Discount.IsZero() {
		var places int32 = moneyPlaces
		if in.RoundDiscounts {
			places = 0
		}
		discount := in.Cart.Discount.Round(places)
		comp.Discount = discount
		comp.InitialTotal = comp.InitialTotal.Add(discount)
		if !in.DiscountPrivilege {
			price = price.Add(discount)
		}
	}
	comp.InitialTotal = round2(comp.InitialTotal)

	if in.Balance.IsPositive() {
		deductible := minDecimal(price, in.Balance)
		remainingTotal := price
		remainingCredit := in.Balance
		if in.UseCredit {
			remainingTotal = price.Sub(deductible)
			remainingCredit = in.Balance.Sub(deductible)
			comp.UseCredit = true
		}
		comp.HasCredit = true
		comp.Credit = round2(in.Balance)
		comp.Deductible = round2(deductible)
		comp.RemainingCredit = round2(remainingCredit)
		price = remainingTotal
	}

	comp.Price = round2(price)
	return comp
}

// PrepareCheckout рассчитывает цену корзины для юзера. useCredit == nil означает сохраненный выбор юзера,
// а если он не сохранялся - "оплатить кредитом".
func (c *CreditService) PrepareCheckout(
	ctx context.Context,
	cart CartData,
	userID int64,
	useCredit *bool,
) (*domain.CheckoutComputation, error) {
	comp, err := c.prepareCheckout(ctx, c.creditRepo, cart, userID, c.resolveUseCredit(ctx, userID, useCredit))
	if err != nil {
		c.reportFault(userID, "prepare checkout", err)
		return nil, fmt.Errorf("preparing checkout of user %d: %w", userID, err)
	}
	return comp, nil
}

func (c *CreditService) prepareCheckout(
	ctx context.Context,
	repo CreditRepository,
	cart CartData,
	userID int64,
	useCredit bool,
) (*domain.CheckoutComputation, error) {
	balance, currency, err := c.getBalance(ctx, repo, userID)
	if err != nil {
		return nil, err
	}
	if balance.IsPositive() && cart.Currency != "" && currency != cart.Currency {
		return nil, domain.NewMultiCurrencyError(userID, []string{currency, cart.Currency})
	}

	comp := ComputeCheckout(CheckoutInput{
		Cart:              cart,
		Balance:           balance,
		BalanceCurrency:   currency,
		UseCredit:         useCredit,
		RoundDiscounts:    c.settings.RoundDiscounts(),
		DiscountPrivilege: c.authorizer.HasDiscountPrivilege(ctx),
	})
	comp.CorrelationToken = uuid.NewString()
	return &comp, nil
}

func (c *CreditService) resolveUseCredit(ctx context.Context, userID int64, useCredit *bool) bool {
	if useCredit != nil {
		return *useCredit
	}
	saved, err := c.prefs.GetUseCredit(ctx, userID)
	if err != nil {
		c.log.WithError(err).WithField("user_id", userID).Warn("reading use credit preference")
		return true
	}
	if saved == nil {
		return true
	}
	return *saved
}
