package service

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type CheckoutTestSuite struct {
	suite.Suite
	env *testEnv
}

func TestCheckoutSuite(t *testing.T) {
	suite.Run(t, new(CheckoutTestSuite))
}

func (s *CheckoutTestSuite) SetupTest() {
	env, err := newTestEnv()
	s.Require().NoError(err)
	s.env = env
}

func (s *CheckoutTestSuite) TestCompute_NoBalance() {
	comp := ComputeCheckout(CheckoutInput{
		Cart:      CartData{Price: dec("100"), Currency: "EUR"},
		UseCredit: true,
	})
	s.True(dec("100").Equal(comp.Price))
	s.True(dec("100").Equal(comp.InitialTotal))
	s.False(comp.HasCredit)
	s.False(comp.UseCredit)
	s.True(comp.Credit.IsZero())
	s.True(comp.Deductible.IsZero())
	s.True(comp.RemainingCredit.IsZero())
	s.Equal("EUR", comp.Currency)
}

func (s *CheckoutTestSuite) TestCompute_UseCredit() {
	comp := ComputeCheckout(CheckoutInput{
		Cart:            CartData{Price: dec("100"), Currency: "EUR"},
		Balance:         dec("30"),
		BalanceCurrency: "EUR",
		UseCredit:       true,
	})
	s.True(dec("30").Equal(comp.Deductible))
	s.True(dec("70").Equal(comp.Price))
	s.True(comp.RemainingCredit.IsZero())
	s.True(dec("30").Equal(comp.Credit))
	s.True(comp.UseCredit)
}

func (s *CheckoutTestSuite) TestCompute_CreditNotUsed() {
	comp := ComputeCheckout(CheckoutInput{
		Cart:            CartData{Price: dec("20"), Currency: "EUR"},
		Balance:         dec("50"),
		BalanceCurrency: "EUR",
		UseCredit:       false,
	})
	s.True(dec("20").Equal(comp.Deductible))
	s.True(dec("20").Equal(comp.Price))
	s.True(dec("50").Equal(comp.RemainingCredit))
	s.True(comp.HasCredit)
	s.False(comp.UseCredit)
}

func (s *CheckoutTestSuite) TestCompute_BalanceEqualsPrice() {
	comp := ComputeCheckout(CheckoutInput{
		Cart:      CartData{Price: dec("45.5"), Currency: "EUR"},
		Balance:   dec("45.5"),
		UseCredit: true,
	})
	s.True(dec("45.5").Equal(comp.Deductible))
	s.True(comp.Price.IsZero())
	s.True(comp.RemainingCredit.IsZero())
}

func (s *CheckoutTestSuite) TestCompute_DiscountWithoutPrivilege() {
	comp := ComputeCheckout(CheckoutInput{
		Cart: CartData{Price: dec("100"), Discount: dec("10"), Currency: "EUR"},
	})
	s.True(dec("110").Equal(comp.InitialTotal))
	s.True(dec("110").Equal(comp.Price))
	s.True(dec("10").Equal(comp.Discount))
}

func (s *CheckoutTestSuite) TestCompute_DiscountWithPrivilege() {
	comp := ComputeCheckout(CheckoutInput{
		Cart:              CartData{Price: dec("100"), Discount: dec("10"), Currency: "EUR"},
		DiscountPrivilege: true,
	})
	s.True(dec("110").Equal(comp.InitialTotal))
	s.True(dec("100").Equal(comp.Price))
}

func (s *CheckoutTestSuite) TestCompute_RoundDiscounts() {
	comp := ComputeCheckout(CheckoutInput{
		Cart:              CartData{Price: dec("100"), Discount: dec("9.6"), Currency: "EUR"},
		DiscountPrivilege: true,
		RoundDiscounts:    true,
	})
	s.True(dec("10").Equal(comp.Discount))
	s.True(dec("110").Equal(comp.InitialTotal))
}

func (s *CheckoutTestSuite) TestCompute_ZeroPrice() {
	comp := ComputeCheckout(CheckoutInput{
		Cart:              CartData{Price: dec("0"), Discount: dec("50"), Currency: "EUR"},
		DiscountPrivilege: true,
		Balance:           dec("10"),
		UseCredit:         true,
	})
	s.True(comp.Price.IsZero())
	s.True(comp.Deductible.IsZero())
	s.True(dec("10").Equal(comp.RemainingCredit))
}

func (s *CheckoutTestSuite) TestPrepare_DefaultsToUseCredit() {
	ctx := s.T().Context()
	_, err := s.env.addCredit(ctx, 1, "30")
	s.Require().NoError(err)

	comp, err := s.env.services.CreditService.PrepareCheckout(ctx, CartData{Price: dec("100"), Currency: "EUR"}, 1, nil)
	s.Require().NoError(err)
	s.True(comp.UseCredit)
	s.True(dec("70").Equal(comp.Price))
	s.NotEmpty(comp.CorrelationToken)
}

func (s *CheckoutTestSuite) TestPrepare_SavedPreference() {
	ctx := s.T().Context()
	_, err := s.env.addCredit(ctx, 1, "30")
	s.Require().NoError(err)
	s.Require().NoError(s.env.cache.SaveUseCredit(ctx, 1, false))

	comp, err := s.env.services.CreditService.PrepareCheckout(ctx, CartData{Price: dec("100"), Currency: "EUR"}, 1, nil)
	s.Require().NoError(err)
	s.False(comp.UseCredit)
	s.True(dec("100").Equal(comp.Price))

	comp, err = s.env.services.CreditService.PrepareCheckout(
		ctx, CartData{Price: dec("100"), Currency: "EUR"}, 1, boolPtr(true))
	s.Require().NoError(err)
	s.True(comp.UseCredit)
}

func (s *CheckoutTestSuite) TestPrepare_CashierDiscount() {
	ctx := WithActor(s.T().Context(), Actor{ID: 5, Cashier: true})
	comp, err := s.env.services.CreditService.PrepareCheckout(
		ctx, CartData{Price: dec("100"), Discount: dec("10"), Currency: "EUR"}, 1, nil)
	s.Require().NoError(err)
	s.True(dec("100").Equal(comp.Price))

	comp, err = s.env.services.CreditService.PrepareCheckout(
		s.T().Context(), CartData{Price: dec("100"), Discount: dec("10"), Currency: "EUR"}, 1, nil)
	s.Require().NoError(err)
	s.True(dec("110").Equal(comp.Price))
}

func (s *CheckoutTestSuite) TestPrepare_CurrencyMismatch() {
	ctx := s.T().Context()
	_, err := s.env.addCredit(ctx, 1, "30")
	s.Require().NoError(err)

	_, err = s.env.services.CreditService.PrepareCheckout(ctx, CartData{Price: dec("100"), Currency: "USD"}, 1, nil)
	s.Require().Error(err)
}
