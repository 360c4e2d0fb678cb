package memrepo

import (
	"context"
	"sync"

	"github.com/fsdevblog/groph-cart/internal/repository/repoargs"
	"github.com/fsdevblog/groph-cart/pkg/uow"
)

// UnitOfWork реализация uow.UOW поверх Store. Репозитории леджера и истории зарегистрированы заранее,
// остальные фабрики вызываются с nil DBTX.
type UnitOfWork struct {
	store     *Store
	locks     *keyLocker
	factories map[uow.RepositoryName]uow.RepositoryFactory
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{
		store:     store,
		locks:     newKeyLocker(),
		factories: make(map[uow.RepositoryName]uow.RepositoryFactory),
	}
}

func (u *UnitOfWork) Register(name uow.RepositoryName, factory uow.RepositoryFactory) error {
	if isBuiltin(name) {
		return uow.ErrRepositoryAlreadyRegistered
	}
	if _, ok := u.factories[name]; ok {
		return uow.ErrRepositoryAlreadyRegistered
	}
	u.factories[name] = factory
	return nil
}

// Do выполняет fn в транзакции. Изменения применяются к Store только если fn вернула nil.
func (u *UnitOfWork) Do(ctx context.Context, fn uow.TxFunc) error {
	state := newTxState()
	if err := fn(ctx, &transaction{uow: u, state: state}); err != nil {
		return err
	}
	u.store.commit(state)
	return nil
}

// DoLocked как Do, но удерживает мьютекс ключа key на все время транзакции.
func (u *UnitOfWork) DoLocked(ctx context.Context, key int64, fn uow.TxFunc) error {
	unlock := u.locks.lock(key)
	defer unlock()
	return u.Do(ctx, fn)
}

func (u *UnitOfWork) GetRepository(name uow.RepositoryName) (uow.Repository, error) {
	return u.repository(name, nil)
}

func (u *UnitOfWork) repository(name uow.RepositoryName, state *txState) (uow.Repository, error) {
	switch repoargs.RepositoryName(name) {
	case repoargs.CreditRepoName:
		return &CreditRepository{s: u.store, tx: state}, nil
	case repoargs.HistoryRepoName:
		return &HistoryRepository{s: u.store, tx: state}, nil
	}
	if factory, ok := u.factories[name]; ok {
		return factory(nil), nil
	}
	return nil, uow.ErrRepositoryNotRegistered
}

func isBuiltin(name uow.RepositoryName) bool {
	switch repoargs.RepositoryName(name) {
	case repoargs.CreditRepoName, repoargs.HistoryRepoName:
		return true
	}
	return false
}

type transaction struct {
	uow   *UnitOfWork
	state *txState
}

func (t *transaction) Get(name uow.RepositoryName) (uow.Repository, error) {
	return t.uow.repository(name, t.state)
}

// keyLocker набор мьютексов по ключу. Мьютекс удаляется, когда его больше никто не ждет.
type keyLocker struct {
	mu    sync.Mutex
	locks map[int64]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyLocker() *keyLocker {
	return &keyLocker{locks: make(map[int64]*keyLock)}
}

func (k *keyLocker) lock(key int64) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = new(keyLock)
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
