package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Ameer1428/ElevateU/internal/model"
)

// DecodeJSONBody decodes the request body into dst, rejecting unknown fields
// and trailing data. Returns an AppError wrapping ErrInvalidInput on any
// malformed input.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body is required.", "", model.ErrInvalidInput)
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError

		switch {
		case errors.As(err, &syntaxError):
			msg := fmt.Sprintf("Request body contains badly-formed JSON (at position %d).", syntaxError.Offset)
			return model.NewAppError("INVALID_REQUEST_BODY", msg, "", model.ErrInvalidInput)

		case errors.Is(err, io.ErrUnexpectedEOF):
			return model.NewAppError("INVALID_REQUEST_BODY", "Request body contains badly-formed JSON.", "", model.ErrInvalidInput)

		case errors.As(err, &unmarshalTypeError):
			msg := fmt.Sprintf("Request body contains an invalid value for the %q field.", unmarshalTypeError.Field)
			return model.NewAppError("INVALID_REQUEST_BODY", msg, unmarshalTypeError.Field, model.ErrInvalidInput)

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
			msg := fmt.Sprintf("Request body contains unknown field %q.", fieldName)
			return model.NewAppError("INVALID_REQUEST_BODY", msg, fieldName, model.ErrInvalidInput)

		case errors.Is(err, io.EOF):
			return model.NewAppError("INVALID_REQUEST_BODY", "Request body must not be empty.", "", model.ErrInvalidInput)

		default:
			return model.NewAppError("INVALID_REQUEST_BODY", "Could not parse request body.", "", fmt.Errorf("%w: %w", model.ErrInvalidInput, err))
		}
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body must contain a single JSON object.", "", model.ErrInvalidInput)
	}

	return nil
}
