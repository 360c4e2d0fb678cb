package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/fsdevblog/groph-cart/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CartHandler struct {
	cartSvs CartServicer
}

func NewCartHandler(cartSvs CartServicer) *CartHandler {
	return &CartHandler{
		cartSvs: cartSvs,
	}
}

// Index GET RouteGroup + CartRoute.
func (h *CartHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	view, err := h.cartSvs.View(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(view))
}

// Price GET RouteGroup + CartPriceRoute. Переданный usecredit сохраняется как выбор юзера.
func (h *CartHandler) Price(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var useCredit *bool
	if raw, ok := c.GetQuery("usecredit"); ok {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid usecredit")).SetType(gin.ErrorTypePublic)
			return
		}
		useCredit = &parsed
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	comp, err := h.cartSvs.Price(reqCtx, currentUserID, useCredit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newComputationResponse(*comp))
}

type AddItemParams struct {
	ItemID        int64           `json:"item_id" binding:"required,gt=0"`
	ComponentName string          `json:"component_name" binding:"required,max_bytes=64"`
	ItemName      string          `json:"item_name" binding:"required,max_bytes=255"`
	Description   string          `json:"description" binding:"max_bytes=2048"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency" binding:"required,currency"`
	TaxCategory   string          `json:"tax_category" binding:"max_bytes=32"`
}

// AddItem POST RouteGroup + CartItemsRoute.
func (h *CartHandler) AddItem(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params AddItemParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	view, err := h.cartSvs.AddItem(reqCtx, currentUserID, service.AddItemArgs{
		ItemID:        params.ItemID,
		ComponentName: params.ComponentName,
		ItemName:      params.ItemName,
		Description:   params.Description,
		Price:         params.Price,
		Currency:      params.Currency,
		TaxCategory:   params.TaxCategory,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCartResponse(view))
}

// DeleteItem DELETE RouteGroup + CartItemRoute.
func (h *CartHandler) DeleteItem(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	itemID, ok := paramID(c, "itemid")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	view, err := h.cartSvs.DeleteItem(reqCtx, currentUserID, c.Param("component"), itemID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(view))
}

// DeleteAll DELETE RouteGroup + CartItemsRoute.
func (h *CartHandler) DeleteAll(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	view, err := h.cartSvs.DeleteAll(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(view))
}

// Checkout POST RouteGroup + CartCheckoutRoute. Вызывается после успешной онлайн оплаты.
func (h *CartHandler) Checkout(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	result, err := h.cartSvs.Checkout(reqCtx, service.CheckoutArgs{
		UserID:        currentUserID,
		ActorID:       currentUserID,
		PaymentMethod: domain.PaymentMethodOnline,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCheckoutResponse(result))
}

// History GET RouteGroup + HistoryRoute.
func (h *CartHandler) History(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	records, err := h.cartSvs.History(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if len(records) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, newHistoryResponse(records))
}

func newCheckoutResponse(result *service.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		Identifier: result.Identifier,
		Price:      newComputationResponse(result.Computation),
		Purchases:  newHistoryResponse(result.Purchases),
	}
}
