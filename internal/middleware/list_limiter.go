package middleware

import (
	"net/http"

	appErrors "Feira/internal/errors"

	"github.com/gin-gonic/gin"
)

type ResourceCounter interface {
	CountLists(userID string) (int64, error)
}

func respondLimit(c *gin.Context, err *appErrors.AppError) {
	payload := gin.H{
		"error":   err.Code,
		"message": err.Message,
	}
	if len(err.Details) > 0 {
		payload["details"] = err.Details
	}
	c.JSON(err.StatusCode, payload)
	c.Abort()
}

// CheckListLimit bloqueia a criação de novas listas quando o usuário já
// atingiu o teto configurado. maxLists <= 0 desativa o limite.
func CheckListLimit(counter ResourceCounter, maxLists int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxLists <= 0 {
			c.Next()
			return
		}

		userIDValue, exists := c.Get("user_id")
		if !exists {
			c.Next()
			return
		}

		userID, ok := userIDValue.(string)
		if !ok {
			c.Next()
			return
		}

		count, err := counter.CountLists(userID)
		if err != nil {
			c.Next()
			return
		}

		if int(count) >= maxLists {
			appErr := appErrors.WrapError(nil, "LIST_LIMIT_REACHED",
				"Limite de listas atingido. Exclua uma lista para criar outra.",
				http.StatusForbidden)
			appErr.Details = map[string]interface{}{
				"current": count,
				"limit":   maxLists,
			}
			respondLimit(c, appErr)
			return
		}

		c.Next()
	}
}
