package response

import (
	"net/http"
)

// Response represents the standard API response structure.
// Every endpoint returns a success flag plus either data or a message.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// --- Error Code Constants ---

const (
	// Client errors (4xx)
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeTokenInvalid       = "TOKEN_INVALID"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeAccountDeactivated = "ACCOUNT_DEACTIVATED"
	CodeForbidden          = "FORBIDDEN"
	CodePlanUpgrade        = "PLAN_UPGRADE_REQUIRED"
	CodeNoTenantContext    = "NO_TENANT_CONTEXT"
	CodeNotFound           = "NOT_FOUND"
	CodeDuplicateKey       = "DUPLICATE_KEY"

	// Server errors (5xx)
	CodeServerError      = "SERVER_ERROR"
	CodeCacheUnavailable = "CACHE_UNAVAILABLE"
)

// codeToStatus maps error codes to HTTP status codes.
var codeToStatus = map[string]int{
	CodeValidation:         http.StatusBadRequest,
	CodeInvalidCredentials: http.StatusUnauthorized,
	CodeTokenInvalid:       http.StatusUnauthorized,
	CodeTokenExpired:       http.StatusUnauthorized,
	CodeAccountDeactivated: http.StatusUnauthorized,
	CodeForbidden:          http.StatusForbidden,
	CodePlanUpgrade:        http.StatusForbidden,
	CodeNoTenantContext:    http.StatusForbidden,
	CodeNotFound:           http.StatusNotFound,
	CodeDuplicateKey:       http.StatusConflict,
	CodeServerError:        http.StatusInternalServerError,
	CodeCacheUnavailable:   http.StatusServiceUnavailable,
}

// HTTPStatus returns the HTTP status code for an error code.
func HTTPStatus(code string) int {
	if status, ok := codeToStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// --- Response Builders ---

// Success creates a success response with data.
func Success(data interface{}) *Response {
	return &Response{
		Success: true,
		Data:    data,
	}
}

// SuccessWithCount creates a success response carrying a collection count.
func SuccessWithCount(data interface{}, count int) *Response {
	return &Response{
		Success: true,
		Data:    data,
		Count:   &count,
	}
}

// SuccessMessage creates a success response with a message and data.
func SuccessMessage(message string, data interface{}) *Response {
	return &Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// Error creates an error response.
func Error(code string, message string) *Response {
	return &Response{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// --- Common Error Responses ---

// ValidationError creates a bad request error response.
func ValidationError(message string) *Response {
	if message == "" {
		message = "Invalid request payload"
	}
	return Error(CodeValidation, message)
}

// Unauthorized creates an unauthorized error response.
func Unauthorized(message string) *Response {
	if message == "" {
		message = "Authentication required"
	}
	return Error(CodeTokenInvalid, message)
}

// Forbidden creates a forbidden error response.
func Forbidden(message string) *Response {
	if message == "" {
		message = "Access denied"
	}
	return Error(CodeForbidden, message)
}

// NotFound creates a not found error response.
func NotFound(message string) *Response {
	if message == "" {
		message = "Resource not found"
	}
	return Error(CodeNotFound, message)
}

// Duplicate creates a duplicate key error response.
func Duplicate(message string) *Response {
	if message == "" {
		message = "Resource already exists"
	}
	return Error(CodeDuplicateKey, message)
}

// ServerError creates an internal server error response.
func ServerError(message string) *Response {
	if message == "" {
		message = "An internal error occurred"
	}
	return Error(CodeServerError, message)
}
