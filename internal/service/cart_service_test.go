package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/fsdevblog/groph-cart/internal/repository/memrepo"
	"github.com/fsdevblog/groph-cart/internal/repository/repoargs"
	"github.com/fsdevblog/groph-cart/internal/taxcategories"
	"github.com/stretchr/testify/suite"
)

type CartServiceTestSuite struct {
	suite.Suite
	env     *testEnv
	service *CartService
}

func TestCartServiceSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}

func (s *CartServiceTestSuite) SetupTest() {
	env, err := newTestEnv()
	s.Require().NoError(err)
	s.env = env
	s.service = env.services.CartService
}

func (s *CartServiceTestSuite) addItem(ctx context.Context, userID, itemID int64, price string) *CartView {
	view, err := s.service.AddItem(ctx, userID, AddItemArgs{
		ItemID:        itemID,
		ComponentName: "courses",
		ItemName:      gofakeit.ProductName(),
		Description:   gofakeit.Sentence(6),
		Price:         dec(price),
		Currency:      "EUR",
	})
	s.Require().NoError(err)
	return view
}

func (s *CartServiceTestSuite) cashierCtx() context.Context {
	return WithActor(s.T().Context(), Actor{ID: 500, Cashier: true})
}

func (s *CartServiceTestSuite) TestAddItem_RecomputesPrice() {
	ctx := s.T().Context()
	s.addItem(ctx, 1, 1, "40")
	view := s.addItem(ctx, 1, 2, "60")

	s.Len(view.Items, 2)
	s.True(dec("100").Equal(view.Computation.Price))
	s.Equal("EUR", view.Computation.Currency)
}

func (s *CartServiceTestSuite) TestAddItem_Rejects() {
	ctx := s.T().Context()
	s.addItem(ctx, 1, 1, "40")

	_, err := s.service.AddItem(ctx, 1, AddItemArgs{ItemID: 1, ComponentName: "courses", Price: dec("1"), Currency: "EUR"})
	s.ErrorIs(err, domain.ErrDuplicateKey)

	_, err = s.service.AddItem(ctx, 1, AddItemArgs{ItemID: 2, ComponentName: "courses", Price: dec("1"), Currency: "USD"})
	var validationErr *domain.ValidationError
	s.ErrorAs(err, &validationErr)

	_, err = s.service.AddItem(ctx, 1, AddItemArgs{ItemID: 3, ComponentName: "courses", Price: dec("-1"), Currency: "EUR"})
	s.ErrorAs(err, &validationErr)
}

func (s *CartServiceTestSuite) TestDeleteItem() {
	ctx := s.T().Context()
	s.addItem(ctx, 1, 1, "40")
	s.addItem(ctx, 1, 2, "60")

	view, err := s.service.DeleteItem(ctx, 1, "courses", 1)
	s.Require().NoError(err)
	s.Len(view.Items, 1)
	s.True(dec("60").Equal(view.Computation.Price))

	_, err = s.service.DeleteItem(ctx, 1, "courses", 1)
	s.ErrorIs(err, domain.ErrRecordNotFound)

	view, err = s.service.DeleteAll(ctx, 1)
	s.Require().NoError(err)
	s.Empty(view.Items)
	s.True(view.Computation.Price.IsZero())
}

func (s *CartServiceTestSuite) TestPrice_SavesPreference() {
	ctx := s.T().Context()
	_, err := s.env.addCredit(ctx, 1, "25")
	s.Require().NoError(err)
	s.addItem(ctx, 1, 1, "100")

	comp, err := s.service.Price(ctx, 1, boolPtr(false))
	s.Require().NoError(err)
	s.True(dec("100").Equal(comp.Price))

	saved, err := s.env.cache.GetUseCredit(ctx, 1)
	s.Require().NoError(err)
	s.Require().NotNil(saved)
	s.False(*saved)

	comp, err = s.service.Price(ctx, 1, nil)
	s.Require().NoError(err)
	s.False(comp.UseCredit)
	s.True(dec("25").Equal(comp.Deductible))
}

func (s *CartServiceTestSuite) TestSetDiscount() {
	ctx := s.T().Context()
	s.addItem(ctx, 1, 1, "110")

	view, err := s.service.SetDiscount(s.cashierCtx(), 1, "courses", 1, dec("10"))
	s.Require().NoError(err)
	s.True(dec("110").Equal(view.Computation.InitialTotal))
	s.True(dec("100").Equal(view.Computation.Price))

	// без привилегии скидка только показывается
	view, err = s.service.View(ctx, 1)
	s.Require().NoError(err)
	s.True(dec("110").Equal(view.Computation.Price))

	_, err = s.service.SetDiscount(s.cashierCtx(), 1, "courses", 1, dec("200"))
	var validationErr *domain.ValidationError
	s.ErrorAs(err, &validationErr)

	_, err = s.service.SetDiscount(s.cashierCtx(), 1, "courses", 9, dec("1"))
	s.ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *CartServiceTestSuite) TestView_Tax() {
	ctx := s.T().Context()
	categories, err := taxcategories.Parse("A", "A:20 B:10")
	s.Require().NoError(err)
	s.env.settings.categories = categories

	view := s.addItem(ctx, 1, 1, "120")
	s.Require().Len(view.Items, 1)
	s.Equal("A", view.Items[0].TaxCategory)
	s.True(dec("0.2").Equal(view.Items[0].TaxRate))
	s.True(dec("20").Equal(view.Items[0].Tax))
}

func (s *CartServiceTestSuite) TestCheckout_WithCredit() {
	ctx := s.T().Context()
	_, err := s.env.addCredit(ctx, 1, "50")
	s.Require().NoError(err)
	_, err = s.env.services.CreditService.CachedBalance(ctx, 1)
	s.Require().NoError(err)

	s.addItem(ctx, 1, 1, "30")
	s.addItem(ctx, 1, 2, "40")

	result, err := s.service.Checkout(ctx, CheckoutArgs{UserID: 1, ActorID: 1})
	s.Require().NoError(err)
	s.NotEmpty(result.Identifier)
	s.True(dec("20").Equal(result.Computation.Price))
	s.True(dec("50").Equal(result.Computation.Deductible))
	s.Require().Len(result.Purchases, 2)
	s.Equal(domain.PaymentMethodCredits, result.Purchases[0].PaymentMethod)
	s.Equal(domain.PaymentMethodOnline, result.Purchases[1].PaymentMethod)

	balance, _, err := s.env.services.CreditService.CheckBalance(ctx, 1)
	s.Require().NoError(err)
	s.True(balance.IsZero())

	cached, err := s.env.cache.Get(ctx, 1)
	s.Require().NoError(err)
	s.True(cached.Credit.IsZero())

	audits := s.env.store.AuditRecords(1)
	s.Require().Len(audits, 2)
	s.True(dec("30").Equal(audits[0].Credits))
	s.True(dec("20").Equal(audits[1].Credits))

	view, err := s.service.View(ctx, 1)
	s.Require().NoError(err)
	s.Empty(view.Items)

	history, err := s.service.History(ctx, 1)
	s.Require().NoError(err)
	s.Len(history, 2)
}

func (s *CartServiceTestSuite) TestCheckout_ZeroPrice() {
	ctx := s.T().Context()
	s.addItem(ctx, 1, 1, "10")
	_, err := s.service.SetDiscount(s.cashierCtx(), 1, "courses", 1, dec("10"))
	s.Require().NoError(err)

	result, err := s.service.Checkout(s.cashierCtx(), CheckoutArgs{
		UserID:        1,
		ActorID:       500,
		PaymentMethod: domain.PaymentMethodCashier,
	})
	s.Require().NoError(err)
	s.True(result.Computation.Price.IsZero())
	s.Require().Len(result.Purchases, 1)
	s.Equal(domain.PaymentMethodCredits, result.Purchases[0].PaymentMethod)
	s.Empty(s.env.store.LedgerEntries(1))
}

func (s *CartServiceTestSuite) TestCheckout_EmptyCart() {
	_, err := s.service.Checkout(s.T().Context(), CheckoutArgs{UserID: 1, ActorID: 1})
	s.ErrorIs(err, domain.ErrEmptyCart)
}

func (s *CartServiceTestSuite) TestPurchasedItemCanBeAddedAfterCancellation() {
	ctx := s.T().Context()
	s.addItem(ctx, 1, 1, "30")
	result, err := s.service.Checkout(ctx, CheckoutArgs{UserID: 1, ActorID: 1})
	s.Require().NoError(err)

	_, err = s.service.AddItem(ctx, 1, AddItemArgs{ItemID: 1, ComponentName: "courses", Price: dec("30"), Currency: "EUR"})
	s.ErrorIs(err, domain.ErrAlreadyPurchased)

	purchase := result.Purchases[0]
	_, err = s.env.services.CancellationService.CancelPurchase(ctx, CancelPurchaseArgs{
		HistoryID:     purchase.ID,
		UserID:        1,
		ItemID:        purchase.ItemID,
		ComponentName: purchase.ComponentName,
		ActorID:       500,
	})
	s.Require().NoError(err)

	view := s.addItem(ctx, 1, 1, "30")
	// возвращенный кредит списывается по умолчанию
	s.True(view.Computation.Price.IsZero())
	s.True(dec("30").Equal(view.Computation.Deductible))
}

func (s *CartServiceTestSuite) TestCheckout_ConcurrentSameCart() {
	ctx := s.T().Context()
	_, err := s.env.addCredit(ctx, 1, "100")
	s.Require().NoError(err)
	s.addItem(ctx, 1, 7, "60")

	const attempts = 5
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, checkoutErr := s.service.Checkout(ctx, CheckoutArgs{UserID: 1, ActorID: 1})
			errs <- checkoutErr
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for checkoutErr := range errs {
		if checkoutErr == nil {
			succeeded++
			continue
		}
		s.True(
			errors.Is(checkoutErr, domain.ErrAlreadyPurchased) || errors.Is(checkoutErr, domain.ErrEmptyCart),
			"unexpected error: %v", checkoutErr,
		)
	}
	s.Equal(1, succeeded)

	history, err := s.service.History(ctx, 1)
	s.Require().NoError(err)
	s.Len(history, 1)

	balance, _, err := s.env.services.CreditService.CheckBalance(ctx, 1)
	s.Require().NoError(err)
	s.True(dec("40").Equal(balance), "balance %s", balance)
}

func (s *CartServiceTestSuite) TestCheckout_RejectsItemPurchasedAfterAdding() {
	ctx := s.T().Context()
	_, err := s.env.addCredit(ctx, 1, "100")
	s.Require().NoError(err)
	s.addItem(ctx, 1, 7, "60")

	// позиция куплена другим путем, пока лежала в корзине
	_, err = memrepo.NewHistoryRepository(s.env.store).Create(ctx, repoargs.PurchaseHistoryCreate{
		UserID:        1,
		ItemID:        7,
		ComponentName: "courses",
		Identifier:    "other-checkout",
		Price:         dec("60"),
		Currency:      "EUR",
		PaymentMethod: domain.PaymentMethodOnline,
		PaymentStatus: domain.PaymentStatusSuccess,
	})
	s.Require().NoError(err)

	_, err = s.service.Checkout(ctx, CheckoutArgs{UserID: 1, ActorID: 1})
	s.Require().ErrorIs(err, domain.ErrAlreadyPurchased)

	s.Len(s.env.store.LedgerEntries(1), 1)
	s.Empty(s.env.store.AuditRecords(1))
	view, err := s.service.View(ctx, 1)
	s.Require().NoError(err)
	s.Len(view.Items, 1)
}
