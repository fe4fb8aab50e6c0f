package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/teeraphat-m/maritime-fleet-api/pkg/response"
)

// RoleAdmin bypasses all explicit permission checks.
const RoleAdmin = "admin"

// planOrdinals orders subscription plans from least to most capable.
var planOrdinals = map[string]int{
	"free":       0,
	"premium":    1,
	"enterprise": 2,
}

// PlanOrdinal returns the ordinal rank of a plan. Unknown plans rank as free.
func PlanOrdinal(plan string) int {
	return planOrdinals[plan]
}

// RequireRole creates a middleware that checks if the user has one of the
// required roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUser(c)
		if !ok {
			abortWithCode(c, response.CodeTokenInvalid, "User not authenticated")
			return
		}

		for _, r := range roles {
			if user.Role == r {
				c.Next()
				return
			}
		}

		abortWithCode(c, response.CodeForbidden, "Insufficient permissions to access this resource")
	}
}

// RequirePermission creates a middleware that checks an explicit permission.
// Admins bypass the check entirely.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUser(c)
		if !ok {
			abortWithCode(c, response.CodeTokenInvalid, "User not authenticated")
			return
		}

		if user.Role == RoleAdmin {
			c.Next()
			return
		}

		if !user.HasPermission(permission) {
			abortWithCode(c, response.CodeForbidden,
				"Insufficient permissions to access this resource")
			return
		}

		c.Next()
	}
}

// RequirePlan creates a middleware that gates a route behind a minimum
// subscription plan. Must run after Tenant so plan data is available.
func RequirePlan(minPlan string) gin.HandlerFunc {
	return func(c *gin.Context) {
		plan, ok := GetPlan(c)
		if !ok {
			abortWithCode(c, response.CodeNoTenantContext,
				"No organization context available for this user")
			return
		}

		if PlanOrdinal(plan) < PlanOrdinal(minPlan) {
			abortWithCode(c, response.CodePlanUpgrade,
				"This feature requires the "+minPlan+" plan or higher")
			return
		}

		c.Next()
	}
}
