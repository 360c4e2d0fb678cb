package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fsdevblog/groph-cart/internal/domain"
)

const (
	uniqueViolationCode = "23505"

	// activePurchaseIndex не дает завести вторую активную покупку одной позиции юзера.
	activePurchaseIndex = "purchase_history_active_item_uidx"
)

// convertErr приводит ошибку pgx к ошибкам домена и добавляет к ней контекст операции.
//   - pgx.ErrNoRows -> domain.ErrRecordNotFound.
//   - нарушение activePurchaseIndex -> domain.ErrAlreadyPurchased.
//   - прочие нарушения уникальности -> domain.ErrDuplicateKey.
//   - остальное -> domain.ErrUnknown с исходным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}
	op := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", op, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		if pgErr.ConstraintName == activePurchaseIndex {
			return fmt.Errorf("[repository/%s] %w", op, domain.ErrAlreadyPurchased)
		}
		return fmt.Errorf("[repository/%s] %w: %s", op, domain.ErrDuplicateKey, pgErr.Message)
	}

	return fmt.Errorf("[repository/%s] %w: %s", op, domain.ErrUnknown, err.Error())
}
