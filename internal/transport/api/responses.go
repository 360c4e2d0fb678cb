package api

import (
	"time"

	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/fsdevblog/groph-cart/internal/service"
	"github.com/shopspring/decimal"
)

type ComputationResponse struct {
	GrossPrice       decimal.Decimal `json:"gross_price"`
	Discount         decimal.Decimal `json:"discount"`
	InitialTotal     decimal.Decimal `json:"initial_total"`
	Price            decimal.Decimal `json:"price"`
	Credit           decimal.Decimal `json:"credit"`
	Deductible       decimal.Decimal `json:"deductible"`
	RemainingCredit  decimal.Decimal `json:"remaining_credit"`
	Currency         string          `json:"currency"`
	UseCredit        bool            `json:"use_credit"`
	HasCredit        bool            `json:"has_credit"`
	CorrelationToken string          `json:"correlation_token,omitempty"`
}

func newComputationResponse(comp domain.CheckoutComputation) ComputationResponse {
	return ComputationResponse{
		GrossPrice:       comp.GrossPrice,
		Discount:         comp.Discount,
		InitialTotal:     comp.InitialTotal,
		Price:            comp.Price,
		Credit:           comp.Credit,
		Deductible:       comp.Deductible,
		RemainingCredit:  comp.RemainingCredit,
		Currency:         comp.Currency,
		UseCredit:        comp.UseCredit,
		HasCredit:        comp.HasCredit,
		CorrelationToken: comp.CorrelationToken,
	}
}

type CartItemResponse struct {
	ItemID        int64           `json:"item_id"`
	ComponentName string          `json:"component_name"`
	ItemName      string          `json:"item_name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Discount      decimal.Decimal `json:"discount"`
	Currency      string          `json:"currency"`
	TaxCategory   string          `json:"tax_category,omitempty"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	Tax           decimal.Decimal `json:"tax"`
	AddedAt       string          `json:"added_at"`
}

type CartResponse struct {
	Items []CartItemResponse  `json:"items"`
	Price ComputationResponse `json:"price"`
}

func newCartResponse(view *service.CartView) CartResponse {
	items := make([]CartItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = CartItemResponse{
			ItemID:        item.ItemID,
			ComponentName: item.ComponentName,
			ItemName:      item.ItemName,
			Description:   item.Description,
			Price:         item.Price,
			Discount:      item.Discount,
			Currency:      item.Currency,
			TaxCategory:   item.TaxCategory,
			TaxRate:       item.TaxRate,
			Tax:           item.Tax,
			AddedAt:       item.AddedAt.Format(time.RFC3339),
		}
	}
	return CartResponse{
		Items: items,
		Price: newComputationResponse(view.Computation),
	}
}

type HistoryResponseItem struct {
	ID            int64                    `json:"id"`
	ItemID        int64                    `json:"item_id"`
	ComponentName string                   `json:"component_name"`
	ItemName      string                   `json:"item_name"`
	Identifier    string                   `json:"identifier"`
	Price         decimal.Decimal          `json:"price"`
	Discount      decimal.Decimal          `json:"discount"`
	Currency      string                   `json:"currency"`
	PaymentMethod domain.PaymentMethodType `json:"payment_method"`
	PaymentStatus domain.PaymentStatusType `json:"payment_status"`
	Status        domain.HistoryStatusType `json:"status"`
	CreatedAt     string                   `json:"created_at"`
}

func newHistoryResponse(records []domain.PurchaseHistory) []HistoryResponseItem {
	response := make([]HistoryResponseItem, len(records))
	for i, record := range records {
		response[i] = HistoryResponseItem{
			ID:            record.ID,
			ItemID:        record.ItemID,
			ComponentName: record.ComponentName,
			ItemName:      record.ItemName,
			Identifier:    record.Identifier,
			Price:         record.Price,
			Discount:      record.Discount,
			Currency:      record.Currency,
			PaymentMethod: record.PaymentMethod,
			PaymentStatus: record.PaymentStatus,
			Status:        record.Status,
			CreatedAt:     record.CreatedAt.Format(time.RFC3339),
		}
	}
	return response
}

type CheckoutResponse struct {
	Identifier string                `json:"identifier"`
	Price      ComputationResponse   `json:"price"`
	Purchases  []HistoryResponseItem `json:"purchases"`
}

type BalanceResponse struct {
	Credit      decimal.Decimal `json:"credit"`
	Currency    string          `json:"currency"`
	LastEntryID int64           `json:"last_entry_id"`
}

func newBalanceResponse(snapshot *domain.BalanceSnapshot) BalanceResponse {
	return BalanceResponse{
		Credit:      snapshot.Credit,
		Currency:    snapshot.Currency,
		LastEntryID: snapshot.LastEntryID,
	}
}

type LedgerEntryResponse struct {
	ID            int64                    `json:"id"`
	ItemID        int64                    `json:"item_id"`
	ModifiedBy    int64                    `json:"modified_by"`
	Amount        decimal.Decimal          `json:"amount"`
	Balance       decimal.Decimal          `json:"balance"`
	Currency      string                   `json:"currency"`
	ComponentName string                   `json:"component_name"`
	PaymentMethod domain.PaymentMethodType `json:"payment_method"`
	CreatedAt     string                   `json:"created_at"`
}

type CancellationResponse struct {
	HistoryID int64           `json:"history_id"`
	Refund    decimal.Decimal `json:"refund"`
	Fee       decimal.Decimal `json:"fee"`
	Credit    decimal.Decimal `json:"credit"`
	Currency  string          `json:"currency"`
}
