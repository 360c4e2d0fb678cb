package uow

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RepositoryName string
type Repository any
type RepositoryFactory func(DBTX) Repository

// advisoryLockQuery берет транзакционную advisory блокировку. Она снимается автоматически при commit/rollback.
const advisoryLockQuery = "SELECT pg_advisory_xact_lock($1)"

// UnitOfWork реализация UOW поверх пула соединений postgres.
type UnitOfWork struct {
	conn         *pgxpool.Pool
	repositories map[RepositoryName]RepositoryFactory
}

func NewUnitOfWork(conn *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{
		conn:         conn,
		repositories: make(map[RepositoryName]RepositoryFactory),
	}
}

// Register регистрирует репозиторий у себя в мапе. Если репозиторий уже зарегистрирован, возвращает
// ошибку ErrRepositoryAlreadyRegistered.
func (u *UnitOfWork) Register(name RepositoryName, factory RepositoryFactory) error {
	if _, ok := u.repositories[name]; ok {
		return ErrRepositoryAlreadyRegistered
	}
	u.repositories[name] = factory
	return nil
}

// Do выполняет функцию fn внутри транзакции.
func (u *UnitOfWork) Do(ctx context.Context, fn TxFunc) error {
	return u.run(ctx, nil, fn)
}

// DoLocked выполняет функцию fn внутри транзакции, предварительно взяв pg_advisory_xact_lock по ключу key.
// Конкурентные вызовы с одинаковым key выполняются строго последовательно, с разными - не блокируют друг друга.
func (u *UnitOfWork) DoLocked(ctx context.Context, key int64, fn TxFunc) error {
	return u.run(ctx, &key, fn)
}

func (u *UnitOfWork) run(ctx context.Context, lockKey *int64, fn TxFunc) (err error) {
	tx, txErr := u.conn.BeginTx(ctx, pgx.TxOptions{})
	if txErr != nil {
		return txErr //nolint:wrapcheck
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			err = errors.Join(err, rollbackErr)
		}
	}()

	if lockKey != nil {
		if _, lockErr := tx.Exec(ctx, advisoryLockQuery, *lockKey); lockErr != nil {
			return fmt.Errorf("%w: key %d: %s", ErrLockNotAcquired, *lockKey, lockErr.Error())
		}
	}

	if transErr := fn(ctx, NewTransaction(tx, u.repositories)); transErr != nil {
		return transErr
	}
	return tx.Commit(ctx) //nolint:wrapcheck
}

// GetRepository возвращает репозиторий, работающий вне транзакции, или ошибку ErrRepositoryNotRegistered.
func (u *UnitOfWork) GetRepository(name RepositoryName) (Repository, error) {
	if repoFactory, ok := u.repositories[name]; ok {
		return repoFactory(u.conn), nil
	}
	return nil, ErrRepositoryNotRegistered
}

// GetRepositoryAs возвращает репозиторий по имени name и приводит его к типу T. Возвращает ошибки
// ErrRepositoryNotRegistered и ErrInvalidRepositoryType.
func GetRepositoryAs[T any](u UOW, name RepositoryName) (T, error) {
	var res T
	repo, err := u.GetRepository(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	r, ok := repo.(T)
	if !ok {
		return res, ErrInvalidRepositoryType
	}
	return r, nil
}
