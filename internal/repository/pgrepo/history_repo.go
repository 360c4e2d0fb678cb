package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/fsdevblog/groph-cart/internal/repository/repoargs"
	"github.com/fsdevblog/groph-cart/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const (
	historyColumns = `id, created_at, updated_at, user_id, item_id, modified_by, component_name, item_name, identifier,
		price, discount, currency, payment_method, payment_status, status`

	historyInsertQuery = `INSERT INTO purchase_history
		(user_id, item_id, modified_by, component_name, item_name, identifier, price, discount, currency,
		 payment_method, payment_status, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + historyColumns

	// historyFindByIDQuery блокирует строку до конца транзакции, чтобы отмена не выполнилась дважды.
	historyFindByIDQuery = `SELECT ` + historyColumns + `
		FROM purchase_history
		WHERE id = $1
		FOR UPDATE`

	historyByUserQuery = `SELECT ` + historyColumns + `
		FROM purchase_history
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	// historyMarkCanceledQuery переход возможен только из active.
	historyMarkCanceledQuery = `UPDATE purchase_history
		SET status = $2, payment_status = $3, modified_by = $4, updated_at = NOW()
		WHERE id = $1 AND status = $5
		RETURNING ` + historyColumns

	auditInsertQuery = `INSERT INTO ledger_audit
		(user_id, item_id, modified_by, price, credits, currency, component_name, identifier, payment_method,
		 payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`
)

// HistoryRepository история покупок и журнал платежей.
type HistoryRepository struct {
	conn uow.DBTX
}

func NewHistoryRepository(conn uow.DBTX) *HistoryRepository {
	return &HistoryRepository{conn: conn}
}

func (h *HistoryRepository) Create(
	ctx context.Context,
	args repoargs.PurchaseHistoryCreate,
) (*domain.PurchaseHistory, error) {
	row := h.conn.QueryRow(ctx, historyInsertQuery,
		args.UserID,
		args.ItemID,
		args.ModifiedBy,
		args.ComponentName,
		args.ItemName,
		args.Identifier,
		args.Price,
		args.Discount,
		args.Currency,
		string(args.PaymentMethod),
		string(args.PaymentStatus),
		string(domain.HistoryStatusActive),
	)
	record, err := scanPurchaseHistory(row)
	if err != nil {
		return nil, convertErr(err, "creating purchase history for user %d item %d", args.UserID, args.ItemID)
	}
	return record, nil
}

// FindByID ищет запись истории по id. Возвращает domain.ErrRecordNotFound если запись не найдена.
func (h *HistoryRepository) FindByID(ctx context.Context, id int64) (*domain.PurchaseHistory, error) {
	record, err := scanPurchaseHistory(h.conn.QueryRow(ctx, historyFindByIDQuery, id))
	if err != nil {
		return nil, convertErr(err, "finding purchase history %d", id)
	}
	return record, nil
}

// GetByUserID возвращает историю покупок юзера, отсортированную по дате создания по убыванию.
func (h *HistoryRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.PurchaseHistory, error) {
	rows, err := h.conn.Query(ctx, historyByUserQuery, userID)
	if err != nil {
		return nil, convertErr(err, "getting purchase history of user %d", userID)
	}
	defer rows.Close()

	var records []domain.PurchaseHistory
	for rows.Next() {
		record, scanErr := scanPurchaseHistory(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning purchase history of user %d", userID)
		}
		records = append(records, *record)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting purchase history of user %d", userID)
	}
	return records, nil
}

// MarkCanceled переводит запись из active в canceled. Если запись уже отменена или отсутствует,
// вернется domain.ErrRecordNotFound.
func (h *HistoryRepository) MarkCanceled(ctx context.Context, id, modifiedBy int64) (*domain.PurchaseHistory, error) {
	row := h.conn.QueryRow(ctx, historyMarkCanceledQuery,
		id,
		string(domain.HistoryStatusCanceled),
		string(domain.PaymentStatusCanceled),
		modifiedBy,
		string(domain.HistoryStatusActive),
	)
	record, err := scanPurchaseHistory(row)
	if err != nil {
		return nil, convertErr(err, "canceling purchase history %d", id)
	}
	return record, nil
}

func (h *HistoryRepository) RecordLedgerAudit(
	ctx context.Context,
	args repoargs.LedgerAuditCreate,
) (*domain.LedgerAuditRecord, error) {
	record := domain.LedgerAuditRecord{
		UserID:        args.UserID,
		ItemID:        args.ItemID,
		ModifiedBy:    args.ModifiedBy,
		Price:         args.Price,
		Credits:       args.Credits,
		Currency:      args.Currency,
		ComponentName: args.ComponentName,
		Identifier:    args.Identifier,
		PaymentMethod: args.PaymentMethod,
		PaymentStatus: args.PaymentStatus,
	}
	err := h.conn.QueryRow(ctx, auditInsertQuery,
		args.UserID,
		args.ItemID,
		args.ModifiedBy,
		args.Price,
		args.Credits,
		args.Currency,
		args.ComponentName,
		args.Identifier,
		string(args.PaymentMethod),
		string(args.PaymentStatus),
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return nil, convertErr(err, "recording ledger audit for user %d", args.UserID)
	}
	return &record, nil
}

func scanPurchaseHistory(row pgx.Row) (*domain.PurchaseHistory, error) {
	var (
		record        domain.PurchaseHistory
		paymentMethod string
		paymentStatus string
		status        string
	)
	err := row.Scan(
		&record.ID,
		&record.CreatedAt,
		&record.UpdatedAt,
		&record.UserID,
		&record.ItemID,
		&record.ModifiedBy,
		&record.ComponentName,
		&record.ItemName,
		&record.Identifier,
		&record.Price,
		&record.Discount,
		&record.Currency,
		&paymentMethod,
		&paymentStatus,
		&status,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	record.PaymentMethod = domain.PaymentMethodType(paymentMethod)
	record.PaymentStatus = domain.PaymentStatusType(paymentStatus)
	record.Status = domain.HistoryStatusType(status)
	return &record, nil
}
