package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultDBTimeout = 5 * time.Second

	// MaxJSONBody caps request bodies decoded as JSON; proofs use multipart.
	MaxJSONBody = 1 << 20
)

var ErrEmptyBody = errors.New("request body cannot be empty")

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}

// DecodeJSONBody reads exactly one JSON value from the body.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) error {
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxJSONBody))

	if err := dec.Decode(dest); err != nil {
		var maxErr *http.MaxBytesError

		switch {
		case errors.Is(err, io.EOF):
			return ErrEmptyBody
		case errors.As(err, &maxErr):
			return fmt.Errorf("request body larger than %d bytes", maxErr.Limit)
		}

		return fmt.Errorf("invalid JSON format: %w", err)
	}

	if dec.More() {
		return errors.New("request body must contain a single JSON value")
	}

	return nil
}

func ValidateStruct(validate *validator.Validate, data any) error {
	if err := validate.Struct(data); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return fmt.Errorf("validation error: %w", validationErrs)
		}

		return fmt.Errorf("unexpected validation error: %w", err)
	}

	return nil
}
