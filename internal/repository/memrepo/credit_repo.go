package memrepo

import (
	"context"
	"sort"

	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/fsdevblog/groph-cart/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

type CreditRepository struct {
	s  *Store
	tx *txState
}

func NewCreditRepository(s *Store) *CreditRepository {
	return &CreditRepository{s: s}
}

func (c *CreditRepository) Insert(_ context.Context, args repoargs.LedgerEntryCreate) (*domain.LedgerEntry, error) {
	now := c.s.timestamp()
	entry := domain.LedgerEntry{
		ID:            c.s.nextID(&c.s.lastLedgerID),
		CreatedAt:     now,
		ModifiedAt:    now,
		UserID:        args.UserID,
		ModifiedBy:    args.ModifiedBy,
		ItemID:        args.ItemID,
		Amount:        args.Amount,
		Balance:       args.Balance,
		Currency:      args.Currency,
		ComponentName: args.ComponentName,
		PaymentMethod: args.PaymentMethod,
		PaymentStatus: args.PaymentStatus,
	}
	if c.tx != nil {
		c.tx.ledger = append(c.tx.ledger, entry)
		return &entry, nil
	}
	c.s.mu.Lock()
	c.s.ledger = append(c.s.ledger, entry)
	c.s.mu.Unlock()
	return &entry, nil
}

func (c *CreditRepository) SumByUser(_ context.Context, userID int64) ([]repoargs.CurrencySum, error) {
	c.s.mu.RLock()
	entries := c.s.userLedger(userID, c.tx)
	c.s.mu.RUnlock()

	sums := make(map[string]decimal.Decimal)
	for _, entry := range entries {
		if entry.Currency == "" {
			continue
		}
		sums[entry.Currency] = sums[entry.Currency].Add(entry.Amount)
	}
	res := make([]repoargs.CurrencySum, 0, len(sums))
	for currency, amount := range sums {
		res = append(res, repoargs.CurrencySum{Currency: currency, Amount: amount})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Currency < res[j].Currency })
	return res, nil
}

func (c *CreditRepository) LatestByUser(_ context.Context, userID int64) (*domain.LedgerEntry, error) {
	c.s.mu.RLock()
	entries := c.s.userLedger(userID, c.tx)
	c.s.mu.RUnlock()

	if len(entries) == 0 {
		return nil, domain.ErrRecordNotFound
	}
	latest := entries[len(entries)-1]
	return &latest, nil
}

func (c *CreditRepository) ListByUser(_ context.Context, userID int64) ([]domain.LedgerEntry, error) {
	c.s.mu.RLock()
	entries := c.s.userLedger(userID, c.tx)
	c.s.mu.RUnlock()

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}
