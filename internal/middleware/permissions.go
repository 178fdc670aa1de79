package middleware

import (
	"net/http"

	"github.com/InhotaEverton/Aromas-Caf/internal/apierror"
	"github.com/InhotaEverton/Aromas-Caf/internal/model"

	"github.com/gin-gonic/gin"
)

// Capability is a named permission checked at the route level. Roles map to
// capability sets here, in one place, instead of role names being compared
// ad hoc in handlers.
type Capability string

const (
	CapSell         Capability = "sell"
	CapRegister     Capability = "register"      // open / close cash sessions
	CapReports      Capability = "reports"       // sales reports and session history
	CapCatalogWrite Capability = "catalog:write" // create / edit / deactivate products
	CapCustomers    Capability = "customers"
	CapUsers        Capability = "users" // user administration
)

// rolePermissions is the authorization matrix. Admins hold every capability;
// operators run the counter but cannot touch the catalog or user accounts.
var rolePermissions = map[string]map[Capability]bool{
	model.RoleAdmin: {
		CapSell:         true,
		CapRegister:     true,
		CapReports:      true,
		CapCatalogWrite: true,
		CapCustomers:    true,
		CapUsers:        true,
	},
	model.RoleOperator: {
		CapSell:      true,
		CapRegister:  true,
		CapReports:   true,
		CapCustomers: true,
	},
}

// Allowed reports whether the role holds the capability. Unknown roles hold
// nothing.
func Allowed(role string, cap Capability) bool {
	return rolePermissions[role][cap]
}

// RequireCapability rejects requests whose JWT role lacks the capability.
// Must run after JWTAuth.
func RequireCapability(cap Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet(ClaimsKey).(*JWTClaims)
		if !ok || !Allowed(claims.Role, cap) {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Insufficient permissions"))
			return
		}
		c.Next()
	}
}
