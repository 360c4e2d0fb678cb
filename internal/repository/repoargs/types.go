package repoargs

type RepositoryName string

const (
	CreditRepoName  RepositoryName = "credit_ledger"
	HistoryRepoName RepositoryName = "purchase_history"
)
