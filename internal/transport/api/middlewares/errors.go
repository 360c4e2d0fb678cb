package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/gin-gonic/gin"
)

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable entity"
	case http.StatusConflict:
		return "conflict"
	case http.StatusGatewayTimeout:
		return "gateway timeout"
	default:
		return "internal server error"
	}
}

// Errors превращает первую ошибку хендлера в тело ответа. Текст приватных ошибок наружу не отдается.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]
		body := gin.H{"error": statusErrorText(c.Writer.Status())}
		if firstErr.IsType(gin.ErrorTypePublic) {
			body["error"] = firstErr.Error()
		}
		var validationErr *domain.ValidationError
		if errors.As(firstErr.Err, &validationErr) {
			body["error"] = validationErr.Reason
			body["field"] = validationErr.Field
		}

		if strings.Contains(c.GetHeader("Accept"), "text/plain") {
			c.String(c.Writer.Status(), "%v", body["error"])
		} else {
			c.JSON(c.Writer.Status(), body)
		}
		c.Abort()
	}
}
