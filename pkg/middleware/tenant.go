package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/teeraphat-m/maritime-fleet-api/pkg/response"
)

// ResolvedTenant is the organization context attached to a request after
// tenant resolution.
type ResolvedTenant struct {
	OrgID string
	Plan  string
}

// TenantResolver maps an authenticated user to its acting organization.
// A (nil, nil) return means no tenant could be resolved for the user.
type TenantResolver interface {
	Resolve(ctx context.Context, user *AuthUser) (*ResolvedTenant, error)
}

// Tenant creates a middleware that resolves the acting organization for the
// authenticated user and attaches org id + plan to the request context.
// Must run after Auth.
func Tenant(resolver TenantResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUser(c)
		if !ok {
			abortWithCode(c, response.CodeTokenInvalid, "User not authenticated")
			return
		}

		tenant, err := resolver.Resolve(c.Request.Context(), user)
		if err != nil {
			c.AbortWithStatusJSON(response.HTTPStatus(response.CodeServerError),
				response.ServerError(""))
			return
		}
		if tenant == nil {
			abortWithCode(c, response.CodeNoTenantContext,
				"No organization context available for this user")
			return
		}

		user.OrgID = tenant.OrgID
		c.Set(ContextKeyOrgID, tenant.OrgID)
		c.Set(ContextKeyPlan, tenant.Plan)

		c.Next()
	}
}
