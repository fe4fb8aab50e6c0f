package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/teeraphat-m/maritime-fleet-api/pkg/response"
)

var (
	ErrMissingAuthHeader = errors.New("missing authorization header")
	ErrInvalidAuthFormat = errors.New("invalid authorization header format")
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token expired")
)

// Context keys for user information
const (
	ContextKeyUser   = "auth_user"
	ContextKeyUserID = "user_id"
	ContextKeyEmail  = "email"
	ContextKeyRole   = "role"
	ContextKeyOrgID  = "org_id"
	ContextKeyPlan   = "org_plan"
)

// AuthUser is the authenticated principal attached to the request context.
// It is loaded fresh from the user store on every protected request so that
// deactivation and role changes take effect before token expiry.
type AuthUser struct {
	ID          string
	Name        string
	Email       string
	Role        string
	OrgID       string
	Permissions []string
	IsActive    bool
}

// HasPermission reports whether the user carries the named permission.
func (u *AuthUser) HasPermission(perm string) bool {
	for _, p := range u.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// UserLoader fetches a live user record by id. A (nil, nil) return means
// the user no longer exists.
type UserLoader func(ctx context.Context, userID string) (*AuthUser, error)

// AuthConfig holds configuration for the auth middleware
type AuthConfig struct {
	// Secret key for validating JWT tokens
	Secret string
	// LoadUser re-fetches the live user record for the token subject
	LoadUser UserLoader
	// SkipPaths is a list of paths that should skip token validation
	SkipPaths []string
}

// Auth creates a bearer-token validation middleware. The token carries only
// the user id; everything else is re-read from the store.
func Auth(config *AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, path := range config.SkipPaths {
			if c.Request.URL.Path == path {
				c.Next()
				return
			}
		}

		tokenString, err := extractBearerToken(c)
		if err != nil {
			abortWithCode(c, response.CodeTokenInvalid, "Authorization header is required")
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return []byte(config.Secret), nil
		})

		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWithCode(c, response.CodeTokenExpired, "Access token has expired")
				return
			}
			abortWithCode(c, response.CodeTokenInvalid, "Invalid access token")
			return
		}

		if !token.Valid {
			abortWithCode(c, response.CodeTokenInvalid, "Invalid access token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWithCode(c, response.CodeTokenInvalid, "Invalid token claims")
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			abortWithCode(c, response.CodeTokenInvalid, "Missing user_id in token")
			return
		}

		user, err := config.LoadUser(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(response.HTTPStatus(response.CodeServerError),
				response.ServerError(""))
			return
		}
		if user == nil {
			abortWithCode(c, response.CodeTokenInvalid, "User no longer exists")
			return
		}
		if !user.IsActive {
			abortWithCode(c, response.CodeAccountDeactivated, "Account has been deactivated")
			return
		}

		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyEmail, user.Email)
		c.Set(ContextKeyRole, user.Role)

		c.Next()
	}
}

func extractBearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", ErrInvalidAuthFormat
	}

	tokenString := authHeader[len(bearerPrefix):]
	if tokenString == "" {
		return "", ErrInvalidAuthFormat
	}
	return tokenString, nil
}

func abortWithCode(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(response.HTTPStatus(code), response.Error(code, message))
}

// GetUser extracts the authenticated user from gin context
func GetUser(c *gin.Context) (*AuthUser, bool) {
	val, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := val.(*AuthUser)
	return user, ok
}

// GetUserID extracts user ID from gin context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok
}

// GetEmail extracts email from gin context
func GetEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ContextKeyEmail)
	if !exists {
		return "", false
	}
	e, ok := email.(string)
	return e, ok
}

// GetRole extracts role from gin context
func GetRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(ContextKeyRole)
	if !exists {
		return "", false
	}
	r, ok := role.(string)
	return r, ok
}

// GetOrgID extracts the resolved organization ID from gin context
func GetOrgID(c *gin.Context) (string, bool) {
	orgID, exists := c.Get(ContextKeyOrgID)
	if !exists {
		return "", false
	}
	o, ok := orgID.(string)
	return o, ok
}

// GetPlan extracts the resolved organization plan from gin context
func GetPlan(c *gin.Context) (string, bool) {
	plan, exists := c.Get(ContextKeyPlan)
	if !exists {
		return "", false
	}
	p, ok := plan.(string)
	return p, ok
}
