package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/fsdevblog/groph-cart/internal/repository/repoargs"
	"github.com/fsdevblog/groph-cart/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CancellationService отмена покупок с возвратом стоимости кредитом.
type CancellationService struct {
	uow      uow.UOW
	credits  *CreditService
	settings Settings
	log      *logrus.Entry
}

func NewCancellationService(
	u uow.UOW,
	credits *CreditService,
	settings Settings,
	l *logrus.Entry,
) *CancellationService {
	return &CancellationService{
		uow:      u,
		credits:  credits,
		settings: settings,
		log:      l,
	}
}

// CancelPurchaseArgs аргументы отмены покупки. Price == nil означает цену из записи истории,
// CancellationFee == nil - комиссию из настроек.
type CancelPurchaseArgs struct {
	HistoryID       int64
	UserID          int64
	ItemID          int64
	ComponentName   string
	Price           *decimal.Decimal
	CancellationFee *decimal.Decimal
	ActorID         int64
}

// CancelPurchase возвращает юзеру стоимость покупки за вычетом комиссии и помечает запись истории отмененной.
//
// Алгоритм работы:
//  1. Отрицательная комиссия считается нулевой.
//  2. Кредит price - fee начисляется через тот же путь, что и AddCredit, со всеми проверками леджера.
//  3. Запись истории помечается отмененной только после успешного начисления.
//
// Все шаги выполняются в одной транзакции: при любой ошибке ни леджер, ни история не меняются.
func (s *CancellationService) CancelPurchase(
	ctx context.Context,
	args CancelPurchaseArgs,
) (*domain.CancellationResult, error) {
	fee := s.settings.CancellationFeeDefault()
	if args.CancellationFee != nil {
		fee = *args.CancellationFee
	}
	if fee.IsNegative() {
		fee = decimal.Zero
	}
	fee = round2(fee)

	var result *domain.CancellationResult
	var snapshot *domain.BalanceSnapshot
	err := s.uow.DoLocked(ctx, args.UserID, func(ctx context.Context, tx uow.TX) error {
		historyRepo, repoErr := uow.GetAs[HistoryRepository](tx, uow.RepositoryName(repoargs.HistoryRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		record, findErr := historyRepo.FindByID(ctx, args.HistoryID)
		if findErr != nil {
			return fmt.Errorf("finding purchase %d: %w", args.HistoryID, findErr)
		}
		if err := s.checkRecord(record, args); err != nil {
			return err
		}

		price := record.Price
		if args.Price != nil {
			price = *args.Price
		}
		refund := round2(price.Sub(fee))
		if refund.IsNegative() {
			return domain.NewValidationError("cancellation_fee", "exceeds the purchase price")
		}

		var addErr error
		snapshot, addErr = s.credits.addCredit(ctx, tx, AddCreditArgs{
			UserID:        args.UserID,
			Amount:        refund,
			Currency:      record.Currency,
			ModifiedBy:    args.ActorID,
			ItemID:        record.ItemID,
			ComponentName: record.ComponentName,
			PaymentMethod: domain.PaymentMethodCashier,
		})
		if addErr != nil {
			return addErr
		}

		if _, markErr := historyRepo.MarkCanceled(ctx, record.ID, args.ActorID); markErr != nil {
			return fmt.Errorf("canceling purchase %d: %w", record.ID, markErr)
		}

		if _, auditErr := historyRepo.RecordLedgerAudit(ctx, repoargs.LedgerAuditCreate{
			UserID:        args.UserID,
			ItemID:        record.ItemID,
			ModifiedBy:    args.ActorID,
			Price:         price.Neg(),
			Credits:       refund,
			Currency:      snapshot.Currency,
			ComponentName: record.ComponentName,
			Identifier:    record.Identifier,
			PaymentMethod: record.PaymentMethod,
			PaymentStatus: domain.PaymentStatusCanceled,
		}); auditErr != nil {
			return fmt.Errorf("recording cancellation of purchase %d: %w", record.ID, auditErr)
		}

		result = &domain.CancellationResult{
			HistoryID: record.ID,
			Refund:    refund,
			Fee:       fee,
			Credit:    snapshot.Credit,
			Currency:  snapshot.Currency,
		}
		return nil
	})
	if err != nil {
		s.credits.reportFault(args.UserID, "cancel purchase", err)
		return nil, fmt.Errorf("canceling purchase %d of user %d: %w", args.HistoryID, args.UserID, err)
	}

	if snapshot.Credit.IsPositive() {
		s.credits.refreshCache(ctx, *snapshot)
	}
	s.log.WithFields(logrus.Fields{
		"user_id":    args.UserID,
		"history_id": args.HistoryID,
		"refund":     result.Refund.StringFixed(moneyPlaces),
	}).Info("purchase canceled")
	return result, nil
}

func (s *CancellationService) checkRecord(record *domain.PurchaseHistory, args CancelPurchaseArgs) error {
	if record.UserID != args.UserID || record.ItemID != args.ItemID || record.ComponentName != args.ComponentName {
		return domain.NewValidationError("history_id", "does not belong to the given user and item")
	}
	if record.Status == domain.HistoryStatusCanceled {
		return domain.ErrAlreadyCanceled
	}
	return nil
}
