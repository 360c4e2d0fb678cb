package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/fsdevblog/groph-cart/internal/repository/repoargs"
	"github.com/fsdevblog/groph-cart/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const (
	creditLedgerColumns = `id, created_at, modified_at, user_id, modified_by, item_id, amount, balance, currency,
		component_name, payment_method, payment_status`

	creditInsertQuery = `INSERT INTO credit_ledger
		(user_id, modified_by, item_id, amount, balance, currency, component_name, payment_method, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + creditLedgerColumns

	// creditSumByUserQuery записи без валюты не участвуют в расчете баланса.
	creditSumByUserQuery = `SELECT currency, COALESCE(SUM(amount), 0)
		FROM credit_ledger
		WHERE user_id = $1 AND currency <> ''
		GROUP BY currency
		ORDER BY currency`

	creditLatestByUserQuery = `SELECT ` + creditLedgerColumns + `
		FROM credit_ledger
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT 1`

	creditListByUserQuery = `SELECT ` + creditLedgerColumns + `
		FROM credit_ledger
		WHERE user_id = $1
		ORDER BY id DESC`
)

// CreditRepository хранилище кредитного леджера. Только добавление записей, без обновлений и удалений.
type CreditRepository struct {
	conn uow.DBTX
}

func NewCreditRepository(conn uow.DBTX) *CreditRepository {
	return &CreditRepository{conn: conn}
}

// Insert добавляет запись в леджер и возвращает ее вместе с присвоенным id.
func (c *CreditRepository) Insert(ctx context.Context, entry repoargs.LedgerEntryCreate) (*domain.LedgerEntry, error) {
	row := c.conn.QueryRow(ctx, creditInsertQuery,
		entry.UserID,
		entry.ModifiedBy,
		entry.ItemID,
		entry.Amount,
		entry.Balance,
		entry.Currency,
		entry.ComponentName,
		string(entry.PaymentMethod),
		string(entry.PaymentStatus),
	)
	created, err := scanLedgerEntry(row)
	if err != nil {
		return nil, convertErr(err, "inserting credit ledger entry for user %d", entry.UserID)
	}
	return created, nil
}

// SumByUser возвращает суммы движений юзера, сгруппированные по валюте.
func (c *CreditRepository) SumByUser(ctx context.Context, userID int64) ([]repoargs.CurrencySum, error) {
	rows, err := c.conn.Query(ctx, creditSumByUserQuery, userID)
	if err != nil {
		return nil, convertErr(err, "summing credit ledger of user %d", userID)
	}
	defer rows.Close()

	var sums []repoargs.CurrencySum
	for rows.Next() {
		var sum repoargs.CurrencySum
		if scanErr := rows.Scan(&sum.Currency, &sum.Amount); scanErr != nil {
			return nil, convertErr(scanErr, "scanning credit ledger sum of user %d", userID)
		}
		sums = append(sums, sum)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "summing credit ledger of user %d", userID)
	}
	return sums, nil
}

// LatestByUser возвращает последнюю по id запись леджера юзера. Если записей нет - domain.ErrRecordNotFound.
func (c *CreditRepository) LatestByUser(ctx context.Context, userID int64) (*domain.LedgerEntry, error) {
	entry, err := scanLedgerEntry(c.conn.QueryRow(ctx, creditLatestByUserQuery, userID))
	if err != nil {
		return nil, convertErr(err, "getting latest credit ledger entry of user %d", userID)
	}
	return entry, nil
}

// ListByUser возвращает все записи леджера юзера, от новых к старым.
func (c *CreditRepository) ListByUser(ctx context.Context, userID int64) ([]domain.LedgerEntry, error) {
	rows, err := c.conn.Query(ctx, creditListByUserQuery, userID)
	if err != nil {
		return nil, convertErr(err, "listing credit ledger of user %d", userID)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		entry, scanErr := scanLedgerEntry(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning credit ledger entry of user %d", userID)
		}
		entries = append(entries, *entry)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing credit ledger of user %d", userID)
	}
	return entries, nil
}

func scanLedgerEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var (
		entry         domain.LedgerEntry
		paymentMethod string
		paymentStatus string
	)
	err := row.Scan(
		&entry.ID,
		&entry.CreatedAt,
		&entry.ModifiedAt,
		&entry.UserID,
		&entry.ModifiedBy,
		&entry.ItemID,
		&entry.Amount,
		&entry.Balance,
		&entry.Currency,
		&entry.ComponentName,
		&paymentMethod,
		&paymentStatus,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	entry.PaymentMethod = domain.PaymentMethodType(paymentMethod)
	entry.PaymentStatus = domain.PaymentStatusType(paymentStatus)
	return &entry, nil
}
