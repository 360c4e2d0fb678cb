package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CreditsHandler struct {
	creditSvs CreditServicer
}

func NewCreditsHandler(creditSvs CreditServicer) *CreditsHandler {
	return &CreditsHandler{
		creditSvs: creditSvs,
	}
}

// Index GET RouteGroup + CreditsRoute. Баланс отдается из кеша.
func (h *CreditsHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	snapshot, err := h.creditSvs.CachedBalance(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBalanceResponse(snapshot))
}
