package adapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-book-keeper/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{
		StatusCode: resp.StatusCode(),
		Message:    extractMessage(resp),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		respErr.Err = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.Err = ErrUnauthorized
	case http.StatusForbidden:
		respErr.Err = ErrForbidden
	case http.StatusNotFound:
		respErr.Err = ErrNotFound
	case http.StatusConflict:
		respErr.Err = ErrConflict
	case http.StatusTooManyRequests:
		respErr.Err = ErrTooManyRequests
	case http.StatusBadGateway:
		respErr.Err = ErrBadGateway
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		respErr.Err = ErrServerUnavailable
	default:
		if resp.StatusCode() >= http.StatusInternalServerError {
			respErr.Err = ErrInternalServerError
		} else {
			respErr.Err = ErrUnexpectedStatus
		}
	}

	return respErr
}

// extractMessage prefers the JSON "message" field, then "error", then the
// raw body, then the status text.
func extractMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var errResp models.ErrorResponse
	if body != "" && json.Unmarshal([]byte(body), &errResp) == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		if errResp.Error != "" {
			return errResp.Error
		}
	}

	if body != "" && !strings.HasPrefix(body, "{") {
		return body
	}

	return http.StatusText(resp.StatusCode())
}

// isRetryable reports whether a failed idempotent read is worth repeating.
func isRetryable(err error) bool {
	return errors.Is(err, ErrNetwork) ||
		errors.Is(err, ErrBadGateway) ||
		errors.Is(err, ErrServerUnavailable) ||
		errors.Is(err, ErrTooManyRequests)
}
