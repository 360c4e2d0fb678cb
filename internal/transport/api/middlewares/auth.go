package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fsdevblog/groph-cart/internal/service"
	"github.com/fsdevblog/groph-cart/internal/service/tokens"
	"github.com/gin-gonic/gin"
)

var ErrTokenNotExist = errors.New("token not exist")

const (
	CurrentUserIDKey  = "currentUserID"
	CurrentCashierKey = "currentCashier"
)

// checkAuthorization извлекает токен из заголовка Authorization и проверяет его. Если токен не передан, вернется ошибка
// ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*tokens.UserClaims, error) {
	tokenStr, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !found || tokenStr == "" {
		return nil, ErrTokenNotExist
	}

	claims, err := tokens.ValidateUserJWT(tokenStr, jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("check authorization: %w", err)
	}
	return claims, nil
}

// AuthRequired проверяет, что запрос авторизован. Записывает в контекст gin id юзера и признак кассира,
// а в контекст запроса - service.Actor.
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			if !errors.Is(err, ErrTokenNotExist) {
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(CurrentUserIDKey, claims.ID)
		c.Set(CurrentCashierKey, claims.Cashier)
		c.Request = c.Request.WithContext(service.WithActor(c.Request.Context(), service.Actor{
			ID:      claims.ID,
			Cashier: claims.Cashier,
		}))
		c.Next()
	}
}

// CashierRequired пропускает только кассиров. Должен стоять после AuthRequired.
func CashierRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(CurrentCashierKey) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
