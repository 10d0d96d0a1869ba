package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
)

const (
	accountIDKey   = contextKey("accountID")
	accountRoleKey = contextKey("accountRole")
)

// GetAccountIDFromContext retrieves the authenticated account ID placed in the
// request context by AuthMiddleware.
func GetAccountIDFromContext(c *gin.Context) (string, bool) {
	accountID, ok := c.Request.Context().Value(accountIDKey).(string)
	if !ok || accountID == "" {
		return "", false
	}
	return accountID, true
}

// GetAccountRoleFromContext retrieves the authenticated account's role.
func GetAccountRoleFromContext(c *gin.Context) (domain.AccountRole, bool) {
	role, ok := c.Request.Context().Value(accountRoleKey).(domain.AccountRole)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}
