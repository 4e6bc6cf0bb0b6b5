package errors

import "fmt"

type ErrorCode string

const (
	ErrInternalServer             ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrInvalidInput               ErrorCode = "INVALID_INPUT"
	ErrInvalidRequestData         ErrorCode = "INVALID_REQUEST_DATA"
	ErrUnauthorized               ErrorCode = "UNAUTHORIZED"
	ErrTokenExpired               ErrorCode = "TOKEN_EXPIRED"
	ErrInvalidTokenFormat         ErrorCode = "INVALID_TOKEN_FORMAT"
	ErrMissingAuthorizationHeader ErrorCode = "MISSING_AUTHORIZATION_HEADER"
	ErrForbidden                  ErrorCode = "FORBIDDEN"
	ErrNotFound                   ErrorCode = "NOT_FOUND"
	ErrAlreadyExists              ErrorCode = "ALREADY_EXISTS"
	ErrTenantNotFound             ErrorCode = "TENANT_NOT_FOUND"
	ErrTenantInactive             ErrorCode = "TENANT_INACTIVE"
	ErrNotVerified                ErrorCode = "EMAIL_NOT_VERIFIED"
	ErrItemNotOrderable           ErrorCode = "ITEM_NOT_ORDERABLE"
	ErrItemInUse                  ErrorCode = "ITEM_IN_USE"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details any       `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string, details any) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

func IsNotFound(err error) bool {
	if ae, ok := err.(*AppError); ok {
		return ae.Code == ErrNotFound || ae.Code == ErrTenantNotFound
	}
	return false
}
