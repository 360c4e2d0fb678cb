package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/fsdevblog/groph-cart/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CashierHandler операции кассира над корзиной и кредитом другого юзера. Юзер берется из параметра userid,
// автором изменений записывается кассир.
type CashierHandler struct {
	cartSvs         CartServicer
	creditSvs       CreditServicer
	cancellationSvs CancellationServicer
}

func NewCashierHandler(
	cartSvs CartServicer,
	creditSvs CreditServicer,
	cancellationSvs CancellationServicer,
) *CashierHandler {
	return &CashierHandler{
		cartSvs:         cartSvs,
		creditSvs:       creditSvs,
		cancellationSvs: cancellationSvs,
	}
}

// Ledger GET CashierGroup + CashierLedgerRoute.
func (h *CashierHandler) Ledger(c *gin.Context) {
	userID, ok := paramID(c, "userid")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	entries, err := h.creditSvs.Entries(reqCtx, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if len(entries) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	response := make([]LedgerEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = LedgerEntryResponse{
			ID:            entry.ID,
			ItemID:        entry.ItemID,
			ModifiedBy:    entry.ModifiedBy,
			Amount:        entry.Amount,
			Balance:       entry.Balance,
			Currency:      entry.Currency,
			ComponentName: entry.ComponentName,
			PaymentMethod: entry.PaymentMethod,
			CreatedAt:     entry.CreatedAt.Format(time.RFC3339),
		}
	}
	c.JSON(http.StatusOK, response)
}

type AddCreditParams struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency" binding:"omitempty,currency"`
}

// AddCredit POST CashierGroup + CashierCreditsRoute. Отрицательная сумма - ручное списание.
func (h *CashierHandler) AddCredit(c *gin.Context) {
	userID, ok := paramID(c, "userid")
	if !ok {
		return
	}

	var params AddCreditParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	if params.Amount.IsZero() {
		abortWithServiceError(c, domain.NewValidationError("amount", "must not be zero"))
		return
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	snapshot, err := h.creditSvs.AddCredit(reqCtx, service.AddCreditArgs{
		UserID:        userID,
		Amount:        params.Amount,
		Currency:      params.Currency,
		ModifiedBy:    getUserIDFromContext(c),
		ComponentName: domain.CartComponentName,
		PaymentMethod: domain.PaymentMethodCashier,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBalanceResponse(snapshot))
}

// PayBack POST CashierGroup + CashierPaybackRoute. Выплачивает юзеру весь кредит.
func (h *CashierHandler) PayBack(c *gin.Context) {
	userID, ok := paramID(c, "userid")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	snapshot, err := h.creditSvs.CreditPaidBack(reqCtx, userID, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBalanceResponse(snapshot))
}

type CancelPurchaseParams struct {
	ItemID          int64            `json:"item_id" binding:"required,gt=0"`
	ComponentName   string           `json:"component_name" binding:"required,max_bytes=64"`
	Price           *decimal.Decimal `json:"price"`
	CancellationFee *decimal.Decimal `json:"cancellation_fee"`
}

// CancelPurchase POST CashierGroup + CashierCancelRoute.
func (h *CashierHandler) CancelPurchase(c *gin.Context) {
	userID, ok := paramID(c, "userid")
	if !ok {
		return
	}
	historyID, ok := paramID(c, "historyid")
	if !ok {
		return
	}

	var params CancelPurchaseParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	result, err := h.cancellationSvs.CancelPurchase(reqCtx, service.CancelPurchaseArgs{
		HistoryID:       historyID,
		UserID:          userID,
		ItemID:          params.ItemID,
		ComponentName:   params.ComponentName,
		Price:           params.Price,
		CancellationFee: params.CancellationFee,
		ActorID:         getUserIDFromContext(c),
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, CancellationResponse{
		HistoryID: result.HistoryID,
		Refund:    result.Refund,
		Fee:       result.Fee,
		Credit:    result.Credit,
		Currency:  result.Currency,
	})
}

type SetDiscountParams struct {
	Discount decimal.Decimal `json:"discount"`
}

// SetDiscount PUT CashierGroup + CashierDiscountRoute.
func (h *CashierHandler) SetDiscount(c *gin.Context) {
	userID, ok := paramID(c, "userid")
	if !ok {
		return
	}
	itemID, ok := paramID(c, "itemid")
	if !ok {
		return
	}

	var params SetDiscountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	view, err := h.cartSvs.SetDiscount(reqCtx, userID, c.Param("component"), itemID, params.Discount)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(view))
}

type CashierCheckoutParams struct {
	PaymentMethod domain.PaymentMethodType `json:"payment_method" binding:"omitempty,oneof=online cashier"`
}

// Checkout POST CashierGroup + CashierCheckoutRoute. Покупка корзины юзера на кассе, скидки кассира применяются.
func (h *CashierHandler) Checkout(c *gin.Context) {
	userID, ok := paramID(c, "userid")
	if !ok {
		return
	}

	params := CashierCheckoutParams{PaymentMethod: domain.PaymentMethodCashier}
	if !bindOptionalJSON(c, &params) {
		return
	}
	if params.PaymentMethod == "" {
		params.PaymentMethod = domain.PaymentMethodCashier
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	result, err := h.cartSvs.Checkout(reqCtx, service.CheckoutArgs{
		UserID:        userID,
		ActorID:       getUserIDFromContext(c),
		PaymentMethod: params.PaymentMethod,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCheckoutResponse(result))
}
