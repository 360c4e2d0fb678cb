package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/fsdevblog/groph-cart/internal/repository/repoargs"
	"github.com/fsdevblog/groph-cart/internal/taxcategories"
	"github.com/fsdevblog/groph-cart/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CartService корзина юзера: содержимое, расчет цены и оформление покупки.
type CartService struct {
	uow         uow.UOW
	historyRepo HistoryRepository
	credits     *CreditService
	carts       CartStore
	prefs       CreditPreferenceStore
	authorizer  Authorizer
	settings    Settings
	log         *logrus.Entry
	now         func() time.Time
}

type CartServiceDeps struct {
	Carts       CartStore
	Preferences CreditPreferenceStore
	Authorizer  Authorizer
	Settings    Settings
	Logger      *logrus.Entry
}

func NewCartService(u uow.UOW, credits *CreditService, deps CartServiceDeps) (*CartService, error) {
	historyRepo, err := uow.GetRepositoryAs[HistoryRepository](u, uow.RepositoryName(repoargs.HistoryRepoName))
	if err != nil {
		return nil, err
	}
	return &CartService{
		uow:         u,
		historyRepo: historyRepo,
		credits:     credits,
		carts:       deps.Carts,
		prefs:       deps.Preferences,
		authorizer:  deps.Authorizer,
		settings:    deps.Settings,
		log:         deps.Logger,
		now:         time.Now,
	}, nil
}

type AddItemArgs struct {
	ItemID        int64
	ComponentName string
	ItemName      string
	Description   string
	Price         decimal.Decimal
	Currency      string
	TaxCategory   string
}

// CartItemView позиция корзины с налогом, уже включенным в цену.
type CartItemView struct {
	domain.CartItem
	TaxRate decimal.Decimal
	Tax     decimal.Decimal
}

type CartView struct {
	Items       []CartItemView
	Computation domain.CheckoutComputation
}

type CheckoutArgs struct {
	UserID        int64
	ActorID       int64
	PaymentMethod domain.PaymentMethodType
}

type CheckoutResult struct {
	Identifier  string
	Computation domain.CheckoutComputation
	Purchases   []domain.PurchaseHistory
}

// View возвращает содержимое корзины и рассчитанную цену с сохраненным выбором "оплатить кредитом".
func (s *CartService) View(ctx context.Context, userID int64) (*CartView, error) {
	items, err := s.carts.Items(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reading cart of user %d: %w", userID, err)
	}
	cart, cartErr := cartDataFor(items)
	if cartErr != nil {
		return nil, cartErr
	}
	comp, compErr := s.credits.PrepareCheckout(ctx, cart, userID, nil)
	if compErr != nil {
		return nil, compErr
	}
	return &CartView{
		Items:       s.itemViews(items),
		Computation: *comp,
	}, nil
}

// Price рассчитывает цену корзины. Явно переданный выбор useCredit сохраняется для следующих расчетов.
func (s *CartService) Price(ctx context.Context, userID int64, useCredit *bool) (*domain.CheckoutComputation, error) {
	if useCredit != nil {
		if err := s.prefs.SaveUseCredit(ctx, userID, *useCredit); err != nil {
			s.log.WithError(err).WithField("user_id", userID).Warn("saving use credit preference")
		}
	}
	items, err := s.carts.Items(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reading cart of user %d: %w", userID, err)
	}
	cart, cartErr := cartDataFor(items)
	if cartErr != nil {
		return nil, cartErr
	}
	return s.credits.PrepareCheckout(ctx, cart, userID, useCredit)
}

// AddItem кладет позицию в корзину. Купленную и не отмененную позицию повторно положить нельзя,
// в корзине допускается только одна валюта.
func (s *CartService) AddItem(ctx context.Context, userID int64, args AddItemArgs) (*CartView, error) {
	if args.Price.IsNegative() {
		return nil, domain.NewValidationError("price", "must not be negative")
	}
	if args.Currency == "" {
		return nil, domain.NewValidationError("currency", "is required")
	}

	items, err := s.carts.Items(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reading cart of user %d: %w", userID, err)
	}
	key := domain.CartItemKey(args.ComponentName, args.ItemID)
	for _, item := range items {
		if item.Key() == key {
			return nil, fmt.Errorf("item %s: %w", key, domain.ErrDuplicateKey)
		}
		if item.Currency != args.Currency {
			return nil, domain.NewValidationError("currency", "cart already holds items in "+item.Currency)
		}
	}
	if purchasedErr := checkNotPurchased(ctx, s.historyRepo, userID, args.ComponentName, args.ItemID); purchasedErr != nil {
		return nil, purchasedErr
	}

	taxCategory := args.TaxCategory
	if categories := s.settings.TaxCategories(); categories != nil && taxCategory == "" {
		taxCategory = categories.DefaultCategory()
	}
	item := domain.CartItem{
		ItemID:        args.ItemID,
		ComponentName: args.ComponentName,
		ItemName:      args.ItemName,
		Description:   args.Description,
		Price:         round2(args.Price),
		Discount:      decimal.Zero,
		Currency:      args.Currency,
		TaxCategory:   taxCategory,
		AddedAt:       s.now(),
	}
	if putErr := s.carts.Put(ctx, userID, item); putErr != nil {
		return nil, fmt.Errorf("adding item %s to cart of user %d: %w", key, userID, putErr)
	}
	return s.View(ctx, userID)
}

func (s *CartService) DeleteItem(ctx context.Context, userID int64, componentName string, itemID int64) (*CartView, error) {
	key := domain.CartItemKey(componentName, itemID)
	deleted, err := s.carts.Delete(ctx, userID, key)
	if err != nil {
		return nil, fmt.Errorf("deleting item %s from cart of user %d: %w", key, userID, err)
	}
	if !deleted {
		return nil, fmt.Errorf("item %s: %w", key, domain.ErrRecordNotFound)
	}
	return s.View(ctx, userID)
}

func (s *CartService) DeleteAll(ctx context.Context, userID int64) (*CartView, error) {
	if err := s.carts.Clear(ctx, userID); err != nil {
		return nil, fmt.Errorf("clearing cart of user %d: %w", userID, err)
	}
	return s.View(ctx, userID)
}

// SetDiscount задает скидку на позицию корзины юзера. Скидка округляется по настройке RoundDiscounts.
func (s *CartService) SetDiscount(
	ctx context.Context,
	userID int64,
	componentName string,
	itemID int64,
	discount decimal.Decimal,
) (*CartView, error) {
	items, err := s.carts.Items(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reading cart of user %d: %w", userID, err)
	}
	key := domain.CartItemKey(componentName, itemID)
	for _, item := range items {
		if item.Key() != key {
			continue
		}
		item.Discount = s.roundDiscount(discount)
		if item.Discount.IsNegative() || item.Discount.GreaterThan(item.Price) {
			return nil, domain.NewValidationError("discount", "must be between 0 and the item price")
		}
		if putErr := s.carts.Put(ctx, userID, item); putErr != nil {
			return nil, fmt.Errorf("updating item %s in cart of user %d: %w", key, userID, putErr)
		}
		return s.View(ctx, userID)
	}
	return nil, fmt.Errorf("item %s: %w", key, domain.ErrRecordNotFound)
}

// Checkout оформляет покупку корзины после успешной оплаты.
//
// Алгоритм работы:
//  1. Под блокировкой юзера читается корзина и проверяется, что ее позиции еще не куплены.
//  2. Цена пересчитывается внутри той же транзакции.
//  3. Если выбрана оплата кредитом, кредит списывается.
//  4. На каждую позицию пишется запись истории и запись журнала платежей.
//  5. После коммита корзина очищается.
//
// Покупка с нулевой ценой записывается со способом оплаты credits.
func (s *CartService) Checkout(ctx context.Context, args CheckoutArgs) (*CheckoutResult, error) {
	useCredit := s.credits.resolveUseCredit(ctx, args.UserID, nil)
	privileged := s.authorizer.HasDiscountPrivilege(ctx)

	result := &CheckoutResult{Identifier: uuid.NewString()}
	var snapshot *domain.BalanceSnapshot
	txErr := s.uow.DoLocked(ctx, args.UserID, func(ctx context.Context, tx uow.TX) error {
		items, itemsErr := s.carts.Items(ctx, args.UserID)
		if itemsErr != nil {
			return fmt.Errorf("reading cart: %w", itemsErr)
		}
		if len(items) == 0 {
			return domain.ErrEmptyCart
		}
		cart, cartErr := cartDataFor(items)
		if cartErr != nil {
			return cartErr
		}

		historyRepo, historyErr := uow.GetAs[HistoryRepository](tx, uow.RepositoryName(repoargs.HistoryRepoName))
		if historyErr != nil {
			return historyErr //nolint:wrapcheck
		}
		for _, item := range items {
			if err := checkNotPurchased(ctx, historyRepo, args.UserID, item.ComponentName, item.ItemID); err != nil {
				return err
			}
		}

		creditRepo, repoErr := uow.GetAs[CreditRepository](tx, uow.RepositoryName(repoargs.CreditRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		comp, compErr := s.credits.prepareCheckout(ctx, creditRepo, cart, args.UserID, useCredit)
		if compErr != nil {
			return compErr
		}
		result.Computation = *comp

		var credited decimal.Decimal
		if comp.UseCredit && comp.Deductible.IsPositive() {
			var useErr error
			snapshot, useErr = s.credits.useCredit(ctx, tx, args.UserID, *comp, entryMeta{
				ModifiedBy:    args.ActorID,
				ComponentName: domain.CartComponentName,
				PaymentMethod: domain.PaymentMethodCredits,
			})
			if useErr != nil {
				return useErr
			}
			credited = comp.Deductible
		}

		method := args.PaymentMethod
		if method == "" {
			method = domain.PaymentMethodOnline
		}
		purchases, recErr := s.recordPurchases(ctx, historyRepo, args, items, purchaseContext{
			identifier: result.Identifier,
			method:     method,
			credited:   credited,
			privileged: privileged,
		})
		if recErr != nil {
			return recErr
		}
		result.Purchases = purchases
		return nil
	})
	if txErr != nil {
		s.credits.reportFault(args.UserID, "checkout", txErr)
		return nil, fmt.Errorf("checking out cart of user %d: %w", args.UserID, txErr)
	}

	if snapshot != nil {
		s.credits.refreshCache(ctx, *snapshot)
	}
	if clearErr := s.carts.Clear(ctx, args.UserID); clearErr != nil {
		s.log.WithError(clearErr).WithField("user_id", args.UserID).Error("clearing cart after checkout")
	}
	s.log.WithFields(logrus.Fields{
		"user_id":    args.UserID,
		"identifier": result.Identifier,
		"price":      result.Computation.Price.StringFixed(moneyPlaces),
		"items":      len(result.Purchases),
	}).Info("cart checked out")
	return result, nil
}

// History возвращает историю покупок юзера.
func (s *CartService) History(ctx context.Context, userID int64) ([]domain.PurchaseHistory, error) {
	records, err := s.historyRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reading purchase history of user %d: %w", userID, err)
	}
	return records, nil
}

type purchaseContext struct {
	identifier string
	method     domain.PaymentMethodType
	credited   decimal.Decimal
	privileged bool
}

// recordPurchases пишет историю и журнал платежей по позициям. Списанный кредит распределяется
// по позициям в порядке их добавления в корзину.
func (s *CartService) recordPurchases(
	ctx context.Context,
	historyRepo HistoryRepository,
	args CheckoutArgs,
	items []domain.CartItem,
	pc purchaseContext,
) ([]domain.PurchaseHistory, error) {
	remainingCredit := pc.credited
	purchases := make([]domain.PurchaseHistory, 0, len(items))
	for _, item := range items {
		charged := item.Price
		discount := decimal.Zero
		if pc.privileged {
			discount = item.Discount
			charged = item.Price.Sub(item.Discount)
		}
		credits := minDecimal(charged, remainingCredit)
		remainingCredit = remainingCredit.Sub(credits)

		method := pc.method
		if credits.Equal(charged) {
			method = domain.PaymentMethodCredits
		}

		record, createErr := historyRepo.Create(ctx, repoargs.PurchaseHistoryCreate{
			UserID:        args.UserID,
			ItemID:        item.ItemID,
			ModifiedBy:    args.ActorID,
			ComponentName: item.ComponentName,
			ItemName:      item.ItemName,
			Identifier:    pc.identifier,
			Price:         charged,
			Discount:      discount,
			Currency:      item.Currency,
			PaymentMethod: method,
			PaymentStatus: domain.PaymentStatusSuccess,
		})
		if createErr != nil {
			return nil, fmt.Errorf("recording purchase of item %s: %w", item.Key(), createErr)
		}

		if _, auditErr := historyRepo.RecordLedgerAudit(ctx, repoargs.LedgerAuditCreate{
			UserID:        args.UserID,
			ItemID:        item.ItemID,
			ModifiedBy:    args.ActorID,
			Price:         charged,
			Credits:       credits,
			Currency:      item.Currency,
			ComponentName: item.ComponentName,
			Identifier:    pc.identifier,
			PaymentMethod: method,
			PaymentStatus: domain.PaymentStatusSuccess,
		}); auditErr != nil {
			return nil, fmt.Errorf("recording payment of item %s: %w", item.Key(), auditErr)
		}
		purchases = append(purchases, *record)
	}
	return purchases, nil
}

// checkNotPurchased возвращает domain.ErrAlreadyPurchased, если у юзера есть активная покупка позиции.
func checkNotPurchased(
	ctx context.Context,
	historyRepo HistoryRepository,
	userID int64,
	componentName string,
	itemID int64,
) error {
	records, err := historyRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		return fmt.Errorf("reading purchase history of user %d: %w", userID, err)
	}
	for _, record := range records {
		if record.ItemID == itemID && record.ComponentName == componentName &&
			record.Status == domain.HistoryStatusActive {
			return fmt.Errorf("item %s: %w", domain.CartItemKey(componentName, itemID), domain.ErrAlreadyPurchased)
		}
	}
	return nil
}

func (s *CartService) roundDiscount(discount decimal.Decimal) decimal.Decimal {
	if s.settings.RoundDiscounts() {
		return discount.Round(0)
	}
	return round2(discount)
}

func (s *CartService) itemViews(items []domain.CartItem) []CartItemView {
	categories := s.settings.TaxCategories()
	views := make([]CartItemView, 0, len(items))
	for _, item := range items {
		view := CartItemView{CartItem: item}
		if categories != nil {
			if rate, ok := categories.TaxFor(item.TaxCategory, ""); ok {
				view.TaxRate = rate
				view.Tax = taxcategories.IncludedTax(item.Price.Sub(item.Discount), rate)
			}
		}
		views = append(views, view)
	}
	return views
}

// cartDataFor суммирует позиции корзины. Позиции в разных валютах не суммируются.
func cartDataFor(items []domain.CartItem) (CartData, error) {
	var data CartData
	for _, item := range items {
		if data.Currency != "" && item.Currency != data.Currency {
			return CartData{}, domain.NewMultiCurrencyError(0, []string{data.Currency, item.Currency})
		}
		data.Currency = item.Currency
		data.Price = data.Price.Add(item.Price.Sub(item.Discount))
		data.Discount = data.Discount.Add(item.Discount)
	}
	return data, nil
}
