package response

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/frozz/storefront/internal/errors"
	"github.com/go-playground/validator/v10"
)

// APIResponse is the envelope of every JSON reply.
type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details []string       `json:"details,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", slog.Any("error", err))
		return err
	}

	return nil
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	WriteJson(w, statusCode, APIResponse{Success: true, Data: data})
}

func Error(w http.ResponseWriter, err error) {
	statusCode, body := fromError(err)
	WriteJson(w, statusCode, APIResponse{Error: body})
}

// fromError maps an AppError onto the wire shape. Anything else is an
// opaque 500 so internal messages never reach the client.
func fromError(err error) (int, *ErrorResponse) {
	appErr, ok := errors.IsAppError(err)
	if !ok {
		return http.StatusInternalServerError, &ErrorResponse{
			Code:    errors.ErrCodeInternal,
			Message: "An unexpected error occurred",
		}
	}

	body := &ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Meta:    appErr.Meta,
	}

	if appErr.Detail != "" {
		body.Details = append(body.Details, appErr.Detail)
	}
	body.Details = append(body.Details, appErr.Details...)

	return appErr.StatusCode, body
}

func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {
	details := make([]string, 0, len(errs))

	for _, fe := range errs {
		details = append(details, describe(fe))
	}

	WriteJson(w, http.StatusBadRequest, APIResponse{
		Error: &ErrorResponse{
			Code:    errors.ErrCodeValidation,
			Message: "Validation failed",
			Details: details,
		},
	})
}

func describe(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field %s is required", field)
	case "email":
		return fmt.Sprintf("Field %s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("Field %s must be a valid URL", field)
	case "min", "max":
		bound := "at least"
		if fe.Tag() == "max" {
			bound = "at most"
		}
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("Field %s must be %s %s characters", field, bound, fe.Param())
		}
		return fmt.Sprintf("Field %s must be %s %s", field, bound, fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("Field %s must be greater than %s", field, orEqual(fe.Tag(), fe.Param()))
	case "lt", "lte":
		return fmt.Sprintf("Field %s must be less than %s", field, orEqual(fe.Tag(), fe.Param()))
	case "oneof":
		return fmt.Sprintf("Field %s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	}

	return fmt.Sprintf("Field %s is invalid: %s=%s", field, fe.Tag(), fe.Param())
}

func orEqual(tag, param string) string {
	if strings.HasSuffix(tag, "e") {
		return "or equal to " + param
	}
	return param
}
