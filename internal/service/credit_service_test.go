package service

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/fsdevblog/groph-cart/internal/cache"
	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/fsdevblog/groph-cart/internal/repository/memrepo"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type CreditServiceTestSuite struct {
	suite.Suite
	env     *testEnv
	service *CreditService
}

func TestCreditServiceSuite(t *testing.T) {
	suite.Run(t, new(CreditServiceTestSuite))
}

func (s *CreditServiceTestSuite) SetupTest() {
	env, err := newTestEnv()
	s.Require().NoError(err)
	s.env = env
	s.service = env.services.CreditService
}

func (s *CreditServiceTestSuite) TestGetBalance_NoEntries() {
	balance, currency, err := s.service.GetBalance(s.T().Context(), 1)
	s.Require().NoError(err)
	s.True(balance.IsZero())
	s.Empty(currency)
}

func (s *CreditServiceTestSuite) TestGetBalance_MultiCurrency() {
	ctx := s.T().Context()
	s.Require().NoError(s.env.tamper(ctx, 1, "10", "10", "EUR"))
	s.Require().NoError(s.env.tamper(ctx, 1, "5", "15", "USD"))

	_, _, err := s.service.GetBalance(ctx, 1)
	var currencyErr *domain.MultiCurrencyError
	s.Require().ErrorAs(err, &currencyErr)
	s.Equal([]string{"EUR", "USD"}, currencyErr.Currencies)
}

func (s *CreditServiceTestSuite) TestGetBalance_Idempotent() {
	ctx := s.T().Context()
	_, err := s.env.addCredit(ctx, 1, "12.345")
	s.Require().NoError(err)

	first, _, err := s.service.GetBalance(ctx, 1)
	s.Require().NoError(err)
	second, _, err := s.service.GetBalance(ctx, 1)
	s.Require().NoError(err)
	s.True(first.Equal(second))
	s.True(dec("12.35").Equal(first))
}

func (s *CreditServiceTestSuite) TestAddCredit() {
	ctx := s.T().Context()
	snapshot, err := s.env.addCredit(ctx, 1, "10")
	s.Require().NoError(err)
	s.True(dec("10").Equal(snapshot.Credit))
	s.Equal("EUR", snapshot.Currency)

	snapshot, err = s.env.addCredit(ctx, 1, "20.50")
	s.Require().NoError(err)
	s.True(dec("30.5").Equal(snapshot.Credit))

	entries := s.env.store.LedgerEntries(1)
	s.Require().Len(entries, 2)
	s.True(dec("30.5").Equal(entries[1].Balance))
	s.Equal(snapshot.LastEntryID, entries[1].ID)
}

func (s *CreditServiceTestSuite) TestAddCredit_KeepsExistingCurrency() {
	ctx := s.T().Context()
	_, err := s.env.addCredit(ctx, 1, "10")
	s.Require().NoError(err)

	snapshot, err := s.service.AddCredit(ctx, AddCreditArgs{UserID: 1, Amount: dec("5")})
	s.Require().NoError(err)
	s.Equal("EUR", snapshot.Currency)

	_, err = s.service.AddCredit(ctx, AddCreditArgs{UserID: 1, Amount: dec("5"), Currency: "USD"})
	var currencyErr *domain.MultiCurrencyError
	s.Require().ErrorAs(err, &currencyErr)
}

func (s *CreditServiceTestSuite) TestAddCredit_CurrencyRequired() {
	_, err := s.service.AddCredit(s.T().Context(), AddCreditArgs{UserID: 1, Amount: dec("5")})
	var validationErr *domain.ValidationError
	s.Require().ErrorAs(err, &validationErr)
	s.Empty(s.env.store.LedgerEntries(1))
}

func (s *CreditServiceTestSuite) TestAddCredit_TamperedLedger() {
	ctx := s.T().Context()
	_, err := s.env.addCredit(ctx, 1, "10")
	s.Require().NoError(err)
	// запись с неверным балансом
	s.Require().NoError(s.env.tamper(ctx, 1, "5", "100", "EUR"))

	_, _, err = s.service.CheckBalance(ctx, 1)
	var integrityErr *domain.LedgerIntegrityError
	s.Require().ErrorAs(err, &integrityErr)
	s.True(dec("100").Equal(integrityErr.Expected))
	s.True(dec("15").Equal(integrityErr.Actual))

	_, err = s.env.addCredit(ctx, 1, "1")
	s.Require().ErrorAs(err, &integrityErr)
	s.Len(s.env.store.LedgerEntries(1), 2)
}

func (s *CreditServiceTestSuite) TestCheckBalance_NoEntriesRequiresZero() {
	ctx := s.T().Context()
	balance, _, err := s.service.CheckBalance(ctx, 3)
	s.Require().NoError(err)
	s.True(balance.IsZero())
}

func (s *CreditServiceTestSuite) TestAddCredit_DoesNotCreateCacheEntry() {
	ctx := s.T().Context()
	_, err := s.env.addCredit(ctx, 1, "10")
	s.Require().NoError(err)

	cached, err := s.env.cache.Get(ctx, 1)
	s.Require().NoError(err)
	s.Nil(cached)
}

func (s *CreditServiceTestSuite) TestAddCredit_RefreshesExistingCacheEntry() {
	ctx := s.T().Context()
	_, err := s.env.addCredit(ctx, 1, "10")
	s.Require().NoError(err)

	cached, err := s.service.CachedBalance(ctx, 1)
	s.Require().NoError(err)
	s.True(dec("10").Equal(cached.Credit))

	_, err = s.env.addCredit(ctx, 1, "5")
	s.Require().NoError(err)
	cached, err = s.env.cache.Get(ctx, 1)
	s.Require().NoError(err)
	s.True(dec("15").Equal(cached.Credit))

	// новый баланс не положительный, кеш не трогаем
	_, err = s.env.addCredit(ctx, 1, "-15")
	s.Require().NoError(err)
	cached, err = s.env.cache.Get(ctx, 1)
	s.Require().NoError(err)
	s.True(dec("15").Equal(cached.Credit))
}

func (s *CreditServiceTestSuite) TestUseCredit_RefreshesCacheRegardlessOfBalance() {
	ctx := s.T().Context()
	_, err := s.env.addCredit(ctx, 1, "30")
	s.Require().NoError(err)
	_, err = s.service.CachedBalance(ctx, 1)
	s.Require().NoError(err)

	comp, err := s.service.PrepareCheckout(ctx, CartData{Price: dec("100"), Currency: "EUR"}, 1, boolPtr(true))
	s.Require().NoError(err)
	_, err = s.service.UseCredit(ctx, 1, *comp)
	s.Require().NoError(err)

	cached, err := s.env.cache.Get(ctx, 1)
	s.Require().NoError(err)
	s.True(cached.Credit.IsZero())
}

func (s *CreditServiceTestSuite) TestPrepareThenUseCredit_RoundTrip() {
	ctx := s.T().Context()
	_, err := s.env.addCredit(ctx, 1, "50")
	s.Require().NoError(err)

	comp, err := s.service.PrepareCheckout(ctx, CartData{Price: dec("19.99"), Currency: "EUR"}, 1, boolPtr(true))
	s.Require().NoError(err)
	_, err = s.service.UseCredit(ctx, 1, *comp)
	s.Require().NoError(err)

	balance, _, err := s.service.CheckBalance(ctx, 1)
	s.Require().NoError(err)
	s.True(comp.RemainingCredit.Equal(balance))
	s.True(dec("30.01").Equal(balance))
}

func (s *CreditServiceTestSuite) TestCreditPaidBack() {
	ctx := s.T().Context()
	_, err := s.env.addCredit(ctx, 1, "42.10")
	s.Require().NoError(err)

	snapshot, err := s.service.CreditPaidBack(ctx, 1, 99)
	s.Require().NoError(err)
	s.True(snapshot.Credit.IsZero())

	balance, _, err := s.service.CheckBalance(ctx, 1)
	s.Require().NoError(err)
	s.True(balance.IsZero())

	entries := s.env.store.LedgerEntries(1)
	s.Require().Len(entries, 2)
	s.True(dec("-42.1").Equal(entries[1].Amount))
	s.Equal(domain.PaymentMethodCreditsPaidBack, entries[1].PaymentMethod)
	s.Equal(int64(99), entries[1].ModifiedBy)

	audits := s.env.store.AuditRecords(1)
	s.Require().Len(audits, 1)
	s.True(dec("-42.1").Equal(audits[0].Credits))
	s.Equal(int64(0), audits[0].ItemID)
	s.Equal(domain.PaymentStatusSuccess, audits[0].PaymentStatus)
}

func (s *CreditServiceTestSuite) TestCreditPaidBack_NegativeBalance() {
	ctx := s.T().Context()
	_, err := s.env.addCredit(ctx, 1, "10")
	s.Require().NoError(err)
	_, err = s.env.addCredit(ctx, 1, "-25")
	s.Require().NoError(err)

	snapshot, err := s.service.CreditPaidBack(ctx, 1, 99)
	s.Require().NoError(err)
	s.True(snapshot.Credit.IsZero())

	entries := s.env.store.LedgerEntries(1)
	s.Require().Len(entries, 3)
	s.True(dec("15").Equal(entries[2].Amount))
	s.True(entries[2].Balance.IsZero())

	balance, _, err := s.service.CheckBalance(ctx, 1)
	s.Require().NoError(err)
	s.True(balance.IsZero())

	audits := s.env.store.AuditRecords(1)
	s.Require().Len(audits, 1)
	s.True(dec("15").Equal(audits[0].Credits))
}

func (s *CreditServiceTestSuite) TestCachedBalance_CreatesEntry() {
	ctx := s.T().Context()
	_, err := s.env.addCredit(ctx, 1, "7")
	s.Require().NoError(err)

	snapshot, err := s.service.CachedBalance(ctx, 1)
	s.Require().NoError(err)
	s.True(dec("7").Equal(snapshot.Credit))
	s.Equal(s.env.store.LedgerEntries(1)[0].ID, snapshot.LastEntryID)

	cached, err := s.env.cache.Get(ctx, 1)
	s.Require().NoError(err)
	s.Require().NotNil(cached)
	s.Equal("EUR", cached.Currency)
}

func (s *CreditServiceTestSuite) TestLedgerSumEqualsLatestBalance() {
	ctx := s.T().Context()
	deltas := []string{"10", "0.333", "-3.1", "25.005", "-7"}
	expected := decimal.Zero
	for _, delta := range deltas {
		_, err := s.env.addCredit(ctx, 1, delta)
		s.Require().NoError(err)
		expected = expected.Add(round2(dec(delta)))
	}

	comp, err := s.service.PrepareCheckout(ctx, CartData{Price: dec("5"), Currency: "EUR"}, 1, boolPtr(true))
	s.Require().NoError(err)
	_, err = s.service.UseCredit(ctx, 1, *comp)
	s.Require().NoError(err)
	expected = expected.Sub(dec("5"))

	entries := s.env.store.LedgerEntries(1)
	sum := decimal.Zero
	for _, entry := range entries {
		sum = sum.Add(entry.Amount)
	}
	s.True(sum.Equal(entries[len(entries)-1].Balance))

	balance, _, err := s.service.GetBalance(ctx, 1)
	s.Require().NoError(err)
	s.True(round2(expected).Equal(balance), "expected %s, got %s", expected, balance)
}

func (s *CreditServiceTestSuite) TestAddCredit_ConcurrentSameUser() {
	ctx := s.T().Context()
	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 10; i++ {
		for _, amount := range []string{"10", "20"} {
			wg.Add(1)
			go func(amount string) {
				defer wg.Done()
				if _, err := s.env.addCredit(ctx, 1, amount); err != nil {
					errs <- err
				}
			}(amount)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err)
	}

	balance, _, err := s.service.CheckBalance(ctx, 1)
	s.Require().NoError(err)
	s.True(dec("300").Equal(balance))
}

func (s *CreditServiceTestSuite) TestAddCredit_TwoConcurrentFromZero() {
	ctx := s.T().Context()
	var wg sync.WaitGroup
	for _, amount := range []string{"10", "20"} {
		wg.Add(1)
		go func(amount string) {
			defer wg.Done()
			_, err := s.env.addCredit(ctx, 2, amount)
			s.NoError(err)
		}(amount)
	}
	wg.Wait()

	balance, _, err := s.service.GetBalance(ctx, 2)
	s.Require().NoError(err)
	s.True(dec("30").Equal(balance))
}

// delayedRefreshCache задерживает обновление снимка с LastEntryID == held, пока не обновится другой снимок.
type delayedRefreshCache struct {
	*cache.MemoryStore
	held     int64
	released chan struct{}
	once     sync.Once
}

func (d *delayedRefreshCache) Refresh(ctx context.Context, snapshot domain.BalanceSnapshot) (bool, error) {
	if snapshot.LastEntryID == d.held {
		select {
		case <-d.released:
		case <-time.After(5 * time.Second):
		}
		return d.MemoryStore.Refresh(ctx, snapshot)
	}
	ok, err := d.MemoryStore.Refresh(ctx, snapshot)
	d.once.Do(func() { close(d.released) })
	return ok, err
}

func (s *CreditServiceTestSuite) TestCachedBalance_FreshAfterRacingMutations() {
	ctx := s.T().Context()
	delayed := &delayedRefreshCache{MemoryStore: s.env.cache, held: 1, released: make(chan struct{})}

	l := logrus.New()
	l.SetOutput(io.Discard)
	services, err := Factory(memrepo.NewUnitOfWork(s.env.store), Stores{
		Cache:       delayed,
		Preferences: s.env.cache,
		Carts:       s.env.cache,
	}, s.env.settings, l)
	s.Require().NoError(err)

	// запись в кеше есть до начисления
	_, err = services.CreditService.CachedBalance(ctx, 1)
	s.Require().NoError(err)

	var wg sync.WaitGroup
	for _, amount := range []string{"10", "20"} {
		wg.Add(1)
		go func(amount string) {
			defer wg.Done()
			_, addErr := services.CreditService.AddCredit(ctx, AddCreditArgs{
				UserID:   1,
				Amount:   dec(amount),
				Currency: "EUR",
			})
			s.NoError(addErr)
		}(amount)
	}
	wg.Wait()

	cached, err := services.CreditService.CachedBalance(ctx, 1)
	s.Require().NoError(err)
	s.True(dec("30").Equal(cached.Credit), "cached %s", cached.Credit)
	s.Equal(int64(2), cached.LastEntryID)
}
