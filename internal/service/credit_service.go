package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/fsdevblog/groph-cart/internal/repository/repoargs"
	"github.com/fsdevblog/groph-cart/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	stageNoEntries   = "no entries"
	stageLatestEntry = "latest entry"
	stageAfterAppend = "after append"
)

// CreditService кредитный леджер юзеров. Баланс всегда выводится из записей леджера, кеш лишь его проекция.
// Все изменения леджера одного юзера выполняются последовательно (uow.DoLocked по id юзера).
type CreditService struct {
	uow        uow.UOW
	creditRepo CreditRepository
	cache      BalanceCache
	prefs      CreditPreferenceStore
	authorizer Authorizer
	settings   Settings
	log        *logrus.Entry
	now        func() time.Time
}

type CreditServiceDeps struct {
	Cache       BalanceCache
	Preferences CreditPreferenceStore
	Authorizer  Authorizer
	Settings    Settings
	Logger      *logrus.Entry
}

func NewCreditService(u uow.UOW, deps CreditServiceDeps) (*CreditService, error) {
	creditRepo, err := uow.GetRepositoryAs[CreditRepository](u, uow.RepositoryName(repoargs.CreditRepoName))
	if err != nil {
		return nil, err
	}
	return &CreditService{
		uow:        u,
		creditRepo: creditRepo,
		cache:      deps.Cache,
		prefs:      deps.Preferences,
		authorizer: deps.Authorizer,
		settings:   deps.Settings,
		log:        deps.Logger,
		now:        time.Now,
	}, nil
}

// AddCreditArgs начисление кредита. Amount может быть отрицательным (ручное списание кассиром).
type AddCreditArgs struct {
	UserID        int64
	Amount        decimal.Decimal
	Currency      string
	ModifiedBy    int64
	ItemID        int64
	ComponentName string
	PaymentMethod domain.PaymentMethodType
}

// entryMeta атрибуты записи леджера, не влияющие на баланс.
type entryMeta struct {
	ModifiedBy    int64
	ItemID        int64
	ComponentName string
	PaymentMethod domain.PaymentMethodType
}

// GetBalance возвращает баланс юзера и его валюту. Для юзера без записей - (0, "").
func (c *CreditService) GetBalance(ctx context.Context, userID int64) (decimal.Decimal, string, error) {
	balance, currency, err := c.getBalance(ctx, c.creditRepo, userID)
	if err != nil {
		c.reportFault(userID, "get balance", err)
		return decimal.Zero, "", err
	}
	return balance, currency, nil
}

// CheckBalance сверяет баланс последней записи леджера с пересчитанным балансом.
// Расхождение означает порчу леджера и возвращается как *domain.LedgerIntegrityError.
func (c *CreditService) CheckBalance(ctx context.Context, userID int64) (decimal.Decimal, string, error) {
	balance, currency, err := c.checkBalance(ctx, c.creditRepo, userID)
	if err != nil {
		c.reportFault(userID, "check balance", err)
		return decimal.Zero, "", err
	}
	return balance, currency, nil
}

// AddCredit добавляет запись в леджер после проверки его целостности и проверяет баланс после записи.
// Кеш обновляется, только если запись в нем уже есть и новый баланс положительный.
func (c *CreditService) AddCredit(ctx context.Context, args AddCreditArgs) (*domain.BalanceSnapshot, error) {
	var snapshot *domain.BalanceSnapshot
	err := c.uow.DoLocked(ctx, args.UserID, func(ctx context.Context, tx uow.TX) error {
		var addErr error
		snapshot, addErr = c.addCredit(ctx, tx, args)
		return addErr
	})
	if err != nil {
		c.reportFault(args.UserID, "add credit", err)
		return nil, fmt.Errorf("adding credit to user %d: %w", args.UserID, err)
	}

	if snapshot.Credit.IsPositive() {
		c.refreshCache(ctx, *snapshot)
	}
	return snapshot, nil
}

// UseCredit списывает кредит по ранее рассчитанной цене: amount = -Deductible, balance = RemainingCredit.
// Целостность леджера при этом повторно не проверяется.
func (c *CreditService) UseCredit(
	ctx context.Context,
	userID int64,
	computation domain.CheckoutComputation,
) (*domain.BalanceSnapshot, error) {
	meta := entryMeta{
		ModifiedBy:    modifiedBy(ctx, userID),
		ComponentName: domain.CartComponentName,
		PaymentMethod: domain.PaymentMethodCredits,
	}
	var snapshot *domain.BalanceSnapshot
	err := c.uow.DoLocked(ctx, userID, func(ctx context.Context, tx uow.TX) error {
		var useErr error
		snapshot, useErr = c.useCredit(ctx, tx, userID, computation, meta)
		return useErr
	})
	if err != nil {
		return nil, fmt.Errorf("using credit of user %d: %w", userID, err)
	}
	c.refreshCache(ctx, *snapshot)
	return snapshot, nil
}

// CreditPaidBack выплачивает юзеру весь кредит: обнуляет баланс и пишет запись выплаты в аудит леджер.
// Отрицательный баланс тоже обнуляется записью amount = -balance.
func (c *CreditService) CreditPaidBack(ctx context.Context, userID, actorID int64) (*domain.BalanceSnapshot, error) {
	var snapshot *domain.BalanceSnapshot
	err := c.uow.DoLocked(ctx, userID, func(ctx context.Context, tx uow.TX) error {
		creditRepo, repoErr := uow.GetAs[CreditRepository](tx, uow.RepositoryName(repoargs.CreditRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		balance, currency, balanceErr := c.getBalance(ctx, creditRepo, userID)
		if balanceErr != nil {
			return balanceErr
		}

		computation := domain.CheckoutComputation{
			Deductible:      balance,
			RemainingCredit: decimal.Zero,
			Currency:        currency,
			UseCredit:       true,
		}
		meta := entryMeta{
			ModifiedBy:    actorID,
			ComponentName: domain.CartComponentName,
			PaymentMethod: domain.PaymentMethodCreditsPaidBack,
		}
		var useErr error
		if snapshot, useErr = c.useCredit(ctx, tx, userID, computation, meta); useErr != nil {
			return useErr
		}

		historyRepo, repoErr := uow.GetAs[HistoryRepository](tx, uow.RepositoryName(repoargs.HistoryRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		_, auditErr := historyRepo.RecordLedgerAudit(ctx, repoargs.LedgerAuditCreate{
			UserID:        userID,
			ModifiedBy:    actorID,
			Price:         balance.Neg(),
			Credits:       balance.Neg(),
			Currency:      currency,
			ComponentName: domain.CartComponentName,
			PaymentMethod: domain.PaymentMethodCreditsPaidBack,
			PaymentStatus: domain.PaymentStatusSuccess,
		})
		return auditErr //nolint:wrapcheck
	})
	if err != nil {
		c.reportFault(userID, "credit paid back", err)
		return nil, fmt.Errorf("paying back credit of user %d: %w", userID, err)
	}
	c.refreshCache(ctx, *snapshot)
	return snapshot, nil
}

// CachedBalance возвращает баланс из кеша, а при промахе выводит его из леджера и создает запись в кеше.
// Ошибки кеша не прерывают чтение.
func (c *CreditService) CachedBalance(ctx context.Context, userID int64) (*domain.BalanceSnapshot, error) {
	cached, cacheErr := c.cache.Get(ctx, userID)
	if cacheErr != nil {
		c.log.WithError(cacheErr).WithField("user_id", userID).Warn("reading balance cache")
	}
	if cached != nil {
		return cached, nil
	}

	// id последней записи читается до баланса: баланс не может оказаться старше id снимка
	var lastEntryID int64
	latest, latestErr := c.creditRepo.LatestByUser(ctx, userID)
	switch {
	case latestErr == nil:
		lastEntryID = latest.ID
	case !errors.Is(latestErr, domain.ErrRecordNotFound):
		return nil, fmt.Errorf("reading latest ledger entry of user %d: %w", userID, latestErr)
	}
	balance, currency, err := c.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	snapshot := domain.BalanceSnapshot{
		UserID:      userID,
		LastEntryID: lastEntryID,
		Credit:      balance,
		Currency:    currency,
		RefreshedAt: c.now(),
	}

	if setErr := c.cache.Set(ctx, snapshot); setErr != nil {
		c.log.WithError(setErr).WithField("user_id", userID).Warn("writing balance cache")
	}
	return &snapshot, nil
}

// Entries возвращает записи леджера юзера, новые первыми.
func (c *CreditService) Entries(ctx context.Context, userID int64) ([]domain.LedgerEntry, error) {
	entries, err := c.creditRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing ledger of user %d: %w", userID, err)
	}
	return entries, nil
}

func (c *CreditService) getBalance(
	ctx context.Context,
	repo CreditRepository,
	userID int64,
) (decimal.Decimal, string, error) {
	sums, err := repo.SumByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, "", fmt.Errorf("summing ledger of user %d: %w", userID, err)
	}
	switch len(sums) {
	case 0:
		return decimal.Zero, "", nil
	case 1:
		return round2(sums[0].Amount), sums[0].Currency, nil
	}
	currencies := make([]string, 0, len(sums))
	for _, sum := range sums {
		currencies = append(currencies, sum.Currency)
	}
	return decimal.Zero, "", domain.NewMultiCurrencyError(userID, currencies)
}

func (c *CreditService) checkBalance(
	ctx context.Context,
	repo CreditRepository,
	userID int64,
) (decimal.Decimal, string, error) {
	balance, currency, err := c.getBalance(ctx, repo, userID)
	if err != nil {
		return decimal.Zero, "", err
	}

	latest, latestErr := repo.LatestByUser(ctx, userID)
	if latestErr != nil {
		if !errors.Is(latestErr, domain.ErrRecordNotFound) {
			return decimal.Zero, "", fmt.Errorf("reading latest ledger entry of user %d: %w", userID, latestErr)
		}
		if !balance.IsZero() {
			return decimal.Zero, "", domain.NewLedgerIntegrityError(userID, stageNoEntries, decimal.Zero, balance)
		}
		return balance, currency, nil
	}

	if !round2(latest.Balance).Equal(balance) {
		return decimal.Zero, "", domain.NewLedgerIntegrityError(userID, stageLatestEntry, round2(latest.Balance), balance)
	}
	return balance, currency, nil
}

// addCredit выполняет начисление внутри уже открытой транзакции tx. Кеш не трогает.
func (c *CreditService) addCredit(ctx context.Context, tx uow.TX, args AddCreditArgs) (*domain.BalanceSnapshot, error) {
	creditRepo, repoErr := uow.GetAs[CreditRepository](tx, uow.RepositoryName(repoargs.CreditRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}

	prior, currency, err := c.checkBalance(ctx, creditRepo, args.UserID)
	if err != nil {
		return nil, err
	}
	switch {
	case currency == "" && args.Currency == "":
		return nil, domain.NewValidationError("currency", "is required for the first ledger entry")
	case currency == "":
		currency = args.Currency
	case args.Currency != "" && args.Currency != currency:
		return nil, domain.NewMultiCurrencyError(args.UserID, []string{currency, args.Currency})
	}

	amount := round2(args.Amount)
	newBalance := round2(prior.Add(amount))
	method := args.PaymentMethod
	if method == "" {
		method = domain.PaymentMethodCashier
	}

	entry, insertErr := creditRepo.Insert(ctx, repoargs.LedgerEntryCreate{
		UserID:        args.UserID,
		ModifiedBy:    args.ModifiedBy,
		ItemID:        args.ItemID,
		Amount:        amount,
		Balance:       newBalance,
		Currency:      currency,
		ComponentName: args.ComponentName,
		PaymentMethod: method,
		PaymentStatus: domain.PaymentStatusSuccess,
	})
	if insertErr != nil {
		return nil, fmt.Errorf("appending ledger entry: %w", insertErr)
	}

	after, _, afterErr := c.getBalance(ctx, creditRepo, args.UserID)
	if afterErr != nil {
		return nil, afterErr
	}
	if !after.Equal(newBalance) {
		return nil, domain.NewLedgerIntegrityError(args.UserID, stageAfterAppend, newBalance, after)
	}

	return &domain.BalanceSnapshot{
		UserID:      args.UserID,
		LastEntryID: entry.ID,
		Credit:      newBalance,
		Currency:    currency,
		RefreshedAt: c.now(),
	}, nil
}

// useCredit пишет списание по рассчитанной цене внутри транзакции tx. Кеш не трогает.
// Выплата кредита обнуляет баланс любого знака, поэтому для нее Deductible может быть отрицательным.
func (c *CreditService) useCredit(
	ctx context.Context,
	tx uow.TX,
	userID int64,
	computation domain.CheckoutComputation,
	meta entryMeta,
) (*domain.BalanceSnapshot, error) {
	if computation.Deductible.IsNegative() && meta.PaymentMethod != domain.PaymentMethodCreditsPaidBack {
		return nil, domain.NewValidationError("deductible", "must not be negative")
	}
	creditRepo, repoErr := uow.GetAs[CreditRepository](tx, uow.RepositoryName(repoargs.CreditRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}

	remaining := round2(computation.RemainingCredit)
	entry, insertErr := creditRepo.Insert(ctx, repoargs.LedgerEntryCreate{
		UserID:        userID,
		ModifiedBy:    meta.ModifiedBy,
		ItemID:        meta.ItemID,
		Amount:        round2(computation.Deductible).Neg(),
		Balance:       remaining,
		Currency:      computation.Currency,
		ComponentName: meta.ComponentName,
		PaymentMethod: meta.PaymentMethod,
		PaymentStatus: domain.PaymentStatusSuccess,
	})
	if insertErr != nil {
		return nil, fmt.Errorf("appending ledger entry: %w", insertErr)
	}

	return &domain.BalanceSnapshot{
		UserID:      userID,
		LastEntryID: entry.ID,
		Credit:      remaining,
		Currency:    computation.Currency,
		RefreshedAt: c.now(),
	}, nil
}

// refreshCache перезаписывает существующую запись кеша. Вызывается только после коммита, поэтому
// снимки параллельных изменений могут прийти в любом порядке; кеш оставляет самый новый.
func (c *CreditService) refreshCache(ctx context.Context, snapshot domain.BalanceSnapshot) {
	if _, err := c.cache.Refresh(ctx, snapshot); err != nil {
		c.log.WithError(err).WithField("user_id", snapshot.UserID).Warn("refreshing balance cache")
	}
}

// reportFault логирует ошибки целостности денег. Они не исправляются автоматически и требуют разбора.
func (c *CreditService) reportFault(userID int64, operation string, err error) {
	var integrityErr *domain.LedgerIntegrityError
	var currencyErr *domain.MultiCurrencyError
	if errors.As(err, &integrityErr) || errors.As(err, &currencyErr) {
		c.log.WithError(err).WithFields(logrus.Fields{
			"user_id":   userID,
			"operation": operation,
		}).Error("credit ledger fault")
	}
}
