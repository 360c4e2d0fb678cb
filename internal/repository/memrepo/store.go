// Package memrepo хранит леджер и историю покупок в памяти процесса. Используется в тестах и для локального
// запуска без postgres. Поддерживает транзакции с откатом и блокировку по ключу, как и pkg/uow.
package memrepo

import (
	"sort"
	"sync"
	"time"

	"github.com/fsdevblog/groph-cart/internal/domain"
)

type Store struct {
	mu sync.RWMutex

	lastLedgerID  int64
	lastHistoryID int64
	lastAuditID   int64

	ledger  []domain.LedgerEntry
	history map[int64]domain.PurchaseHistory
	audits  []domain.LedgerAuditRecord

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		history: make(map[int64]domain.PurchaseHistory),
		now:     time.Now,
	}
}

// SetClock подменяет источник времени.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// LedgerEntries возвращает копию закоммиченных записей леджера юзера, отсортированную по id.
func (s *Store) LedgerEntries(userID int64) []domain.LedgerEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userLedger(userID, nil)
}

// AuditRecords возвращает копию журнала платежей юзера.
func (s *Store) AuditRecords(userID int64) []domain.LedgerAuditRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var res []domain.LedgerAuditRecord
	for _, record := range s.audits {
		if record.UserID == userID {
			res = append(res, record)
		}
	}
	return res
}

func (s *Store) nextID(counter *int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	*counter++
	return *counter
}

func (s *Store) timestamp() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now().UTC()
}

// userLedger собирает записи юзера из закоммиченных и (если передан) незакоммиченных записей транзакции.
// Вызывается под s.mu.
func (s *Store) userLedger(userID int64, tx *txState) []domain.LedgerEntry {
	var res []domain.LedgerEntry
	for _, entry := range s.ledger {
		if entry.UserID == userID {
			res = append(res, entry)
		}
	}
	if tx != nil {
		for _, entry := range tx.ledger {
			if entry.UserID == userID {
				res = append(res, entry)
			}
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func (s *Store) commit(tx *txState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger = append(s.ledger, tx.ledger...)
	for id, record := range tx.history {
		s.history[id] = record
	}
	s.audits = append(s.audits, tx.audits...)
}

// txState незакоммиченные изменения одной транзакции. Для операций вне транзакции изменения применяются сразу.
type txState struct {
	ledger  []domain.LedgerEntry
	history map[int64]domain.PurchaseHistory
	audits  []domain.LedgerAuditRecord
}

func newTxState() *txState {
	return &txState{history: make(map[int64]domain.PurchaseHistory)}
}
