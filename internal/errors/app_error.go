package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	Details    []string
	Meta       map[string]any
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithDetails(details ...string) *AppError {
	e.Details = append(e.Details, details...)

	return e
}

func (e *AppError) WithMeta(key string, value any) *AppError {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}

	e.Meta[key] = value

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeBadRequest           = "BAD_REQUEST"
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeUnauthorized         = "UNAUTHORIZED"
	ErrCodeForbidden            = "FORBIDDEN"
	ErrCodeInternal             = "INTERNAL_ERROR"
	ErrCodeDatabaseError        = "DATABASE_ERROR"
	ErrCodeDuplicateEntry       = "DUPLICATE_ENTRY"
	ErrCodeThirdPartyError      = "THIRD_PARTY_ERROR"
	ErrCodeTooManyRequests      = "TOO_MANY_REQUESTS"
	ErrCodeInsufficientStock    = "INSUFFICIENT_STOCK"
	ErrCodePaymentProofRequired = "PAYMENT_PROOF_REQUIRED"
	ErrCodeIrreversibleState    = "IRREVERSIBLE_STATE"
	ErrCodeProtectedRecord      = "PROTECTED_RECORD"
	ErrCodeEmptyCart            = "EMPTY_CART"
	ErrCodeConflict             = "CONFLICT"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, http.StatusForbidden)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func DatabaseError(message string) *AppError {
	return NewAppError(ErrCodeDatabaseError, message, http.StatusInternalServerError)
}

func DuplicateEntryError(message string) *AppError {
	return NewAppError(ErrCodeDuplicateEntry, message, http.StatusConflict)
}

func ThirdPartyError(message string) *AppError {
	return NewAppError(ErrCodeThirdPartyError, message, http.StatusInternalServerError)
}

func TooManyRequestsError(message string) *AppError {
	return NewAppError(ErrCodeTooManyRequests, message, http.StatusTooManyRequests)
}

// InsufficientStockError carries the stock the caller may still request.
func InsufficientStockError(productName string, available int) *AppError {
	return NewAppError(ErrCodeInsufficientStock,
		fmt.Sprintf("Only %d units of %s available", available, productName),
		http.StatusConflict).WithMeta("available_stock", available)
}

func PaymentProofRequiredError() *AppError {
	return NewAppError(ErrCodePaymentProofRequired,
		"A payment proof must be attached before marking the order as paid",
		http.StatusConflict)
}

func IrreversibleStateError(from, to string) *AppError {
	return NewAppError(ErrCodeIrreversibleState,
		fmt.Sprintf("Order status cannot go back from %s to %s once payment is received", from, to),
		http.StatusConflict)
}

func ProtectedRecordError(message string) *AppError {
	return NewAppError(ErrCodeProtectedRecord, message, http.StatusForbidden)
}

func ConflictError(message string) *AppError {
	return NewAppError(ErrCodeConflict, message, http.StatusConflict)
}

func EmptyCartError() *AppError {
	return NewAppError(ErrCodeEmptyCart, "The cart is empty", http.StatusBadRequest)
}

// MissingFieldsError lists every absent field at once.
func MissingFieldsError(fields []string) *AppError {
	return ValidationError("Missing required fields").WithDetails(fields...)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// field validation error.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}
