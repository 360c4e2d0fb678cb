package memrepo

import (
	"context"
	"sort"

	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/fsdevblog/groph-cart/internal/repository/repoargs"
)

type HistoryRepository struct {
	s  *Store
	tx *txState
}

func NewHistoryRepository(s *Store) *HistoryRepository {
	return &HistoryRepository{s: s}
}

// Create пишет запись истории. Вторая активная запись на ту же позицию юзера дает domain.ErrAlreadyPurchased,
// как уникальный индекс purchase_history_active_item_uidx в postgres.
func (h *HistoryRepository) Create(
	ctx context.Context,
	args repoargs.PurchaseHistoryCreate,
) (*domain.PurchaseHistory, error) {
	existing, err := h.GetByUserID(ctx, args.UserID)
	if err != nil {
		return nil, err
	}
	for _, record := range existing {
		if record.ItemID == args.ItemID && record.ComponentName == args.ComponentName &&
			record.Status == domain.HistoryStatusActive {
			return nil, domain.ErrAlreadyPurchased
		}
	}

	now := h.s.timestamp()
	record := domain.PurchaseHistory{
		ID:            h.s.nextID(&h.s.lastHistoryID),
		CreatedAt:     now,
		UpdatedAt:     now,
		UserID:        args.UserID,
		ItemID:        args.ItemID,
		ModifiedBy:    args.ModifiedBy,
		ComponentName: args.ComponentName,
		ItemName:      args.ItemName,
		Identifier:    args.Identifier,
		Price:         args.Price,
		Discount:      args.Discount,
		Currency:      args.Currency,
		PaymentMethod: args.PaymentMethod,
		PaymentStatus: args.PaymentStatus,
		Status:        domain.HistoryStatusActive,
	}
	h.put(record)
	return &record, nil
}

func (h *HistoryRepository) FindByID(_ context.Context, id int64) (*domain.PurchaseHistory, error) {
	record, ok := h.get(id)
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &record, nil
}

func (h *HistoryRepository) GetByUserID(_ context.Context, userID int64) ([]domain.PurchaseHistory, error) {
	h.s.mu.RLock()
	defer h.s.mu.RUnlock()

	merged := make(map[int64]domain.PurchaseHistory, len(h.s.history))
	for id, record := range h.s.history {
		merged[id] = record
	}
	if h.tx != nil {
		for id, record := range h.tx.history {
			merged[id] = record
		}
	}

	var records []domain.PurchaseHistory
	for _, record := range merged {
		if record.UserID == userID {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID > records[j].ID })
	return records, nil
}

func (h *HistoryRepository) MarkCanceled(_ context.Context, id, modifiedBy int64) (*domain.PurchaseHistory, error) {
	record, ok := h.get(id)
	if !ok || record.Status != domain.HistoryStatusActive {
		return nil, domain.ErrRecordNotFound
	}
	record.Status = domain.HistoryStatusCanceled
	record.PaymentStatus = domain.PaymentStatusCanceled
	record.ModifiedBy = modifiedBy
	record.UpdatedAt = h.s.timestamp()
	h.put(record)
	return &record, nil
}

func (h *HistoryRepository) RecordLedgerAudit(
	_ context.Context,
	args repoargs.LedgerAuditCreate,
) (*domain.LedgerAuditRecord, error) {
	record := domain.LedgerAuditRecord{
		ID:            h.s.nextID(&h.s.lastAuditID),
		CreatedAt:     h.s.timestamp(),
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
	if h.tx != nil {
		h.tx.audits = append(h.tx.audits, record)
		return &record, nil
	}
	h.s.mu.Lock()
	h.s.audits = append(h.s.audits, record)
	h.s.mu.Unlock()
	return &record, nil
}

func (h *HistoryRepository) get(id int64) (domain.PurchaseHistory, bool) {
	if h.tx != nil {
		if record, ok := h.tx.history[id]; ok {
			return record, true
		}
	}
	h.s.mu.RLock()
	defer h.s.mu.RUnlock()
	record, ok := h.s.history[id]
	return record, ok
}

func (h *HistoryRepository) put(record domain.PurchaseHistory) {
	if h.tx != nil {
		h.tx.history[record.ID] = record
		return
	}
	h.s.mu.Lock()
	h.s.history[record.ID] = record
	h.s.mu.Unlock()
}
