package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/fsdevblog/groph-cart/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка утверждения типа -
// вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userID, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	id, ok := userID.(int64)
	if !ok {
		return 0
	}
	return id
}

// paramID читает положительный int64 из параметра пути. При ошибке запрос прерывается с 400.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid "+name)).SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}

// bindOptionalJSON разбирает тело запроса, если оно передано.
func bindOptionalJSON(c *gin.Context, obj any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
		return false
	}
	return true
}

// abortWithServiceError переводит ошибку сервиса в статус ответа.
func abortWithServiceError(c *gin.Context, err error) {
	var (
		validationErr *domain.ValidationError
		currencyErr   *domain.MultiCurrencyError
		integrityErr  *domain.LedgerIntegrityError
	)
	switch {
	case errors.As(err, &validationErr):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrRecordNotFound):
		_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrEmptyCart):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, domain.ErrEmptyCart).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrAlreadyPurchased):
		_ = c.AbortWithError(http.StatusConflict, domain.ErrAlreadyPurchased).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrAlreadyCanceled):
		_ = c.AbortWithError(http.StatusConflict, domain.ErrAlreadyCanceled).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrDuplicateKey):
		_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePrivate)
	case errors.As(err, &currencyErr):
		_ = c.AbortWithError(http.StatusInternalServerError, errCurrencyMismatch).SetType(gin.ErrorTypePublic)
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	case errors.As(err, &integrityErr):
		_ = c.AbortWithError(http.StatusInternalServerError, errLedgerInconsistent).SetType(gin.ErrorTypePublic)
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, context.DeadlineExceeded):
		_ = c.AbortWithError(http.StatusGatewayTimeout, err).SetType(gin.ErrorTypePrivate)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

// публичные тексты ошибок леджера, подробности остаются в логе.
var (
	errCurrencyMismatch   = errors.New("currency mismatch")
	errLedgerInconsistent = errors.New("credit ledger is inconsistent")
)
