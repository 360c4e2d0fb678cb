package uow

// Transaction реализация TX. Репозитории создаются лениво и переиспользуются в рамках одной транзакции.
type Transaction struct {
	factories map[RepositoryName]RepositoryFactory
	instances map[RepositoryName]Repository
	dbtx      DBTX
}

func NewTransaction(dbtx DBTX, factories map[RepositoryName]RepositoryFactory) *Transaction {
	return &Transaction{
		factories: factories,
		instances: make(map[RepositoryName]Repository, len(factories)),
		dbtx:      dbtx,
	}
}

// Get возвращает репозиторий, привязанный к транзакции, или ошибку ErrRepositoryNotRegistered.
func (t *Transaction) Get(name RepositoryName) (Repository, error) {
	if repo, ok := t.instances[name]; ok {
		return repo, nil
	}
	factory, ok := t.factories[name]
	if !ok {
		return nil, ErrRepositoryNotRegistered
	}
	repo := factory(t.dbtx)
	t.instances[name] = repo
	return repo, nil
}

// GetAs возвращает зарегистрированный репозиторий с именем name приведенный к типу T
// или ошибки ErrRepositoryNotRegistered в случае не найденного репозитория с указанным name, ErrInvalidRepositoryType.
func GetAs[T any](t TX, name RepositoryName) (T, error) {
	var res T
	repo, err := t.Get(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	res, ok := repo.(T)
	if !ok {
		return res, ErrInvalidRepositoryType
	}
	return res, nil
}
