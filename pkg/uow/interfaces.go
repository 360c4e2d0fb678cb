package uow

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks
import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type TX interface {
	Get(name RepositoryName) (Repository, error)
}

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// TxFunc функция, выполняемая внутри транзакции.
type TxFunc func(ctx context.Context, tx TX) error

type UOW interface {
	Register(name RepositoryName, factory RepositoryFactory) error
	Do(ctx context.Context, fn TxFunc) error
	// DoLocked выполняет fn внутри транзакции, удерживая эксклюзивную блокировку по ключу key до ее завершения.
	DoLocked(ctx context.Context, key int64, fn TxFunc) error
	GetRepository(name RepositoryName) (Repository, error)
}
