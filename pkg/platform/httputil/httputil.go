package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	dErrors "verisbt/pkg/domain-errors"
	"verisbt/pkg/requestcontext"
)

func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Errors after WriteHeader cannot change the status code, so we ignore encoding errors.
	_ = json.NewEncoder(w).Encode(response)
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// WriteError centralizes domain error translation to HTTP responses.
// Typed failures that carry a reason expose it in the body so clients can
// branch on it without parsing the description.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		WriteJSON(w, DomainCodeToHTTPStatus(domainErr.Code), ErrorResponse{
			Error:       DomainCodeToHTTPCode(domainErr.Code),
			Description: domainErr.Message,
			Reason:      dErrors.ReasonOf(err),
		})
		return
	}

	// Fallback for unexpected errors
	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: DomainCodeToHTTPCode(dErrors.CodeInternal),
	})
}

// DomainCodeToHTTPStatus translates domain error codes to HTTP status codes.
func DomainCodeToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeInvalidInput, dErrors.CodeInvariantViolation:
		return http.StatusBadRequest
	case dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeForbidden, dErrors.CodeProofVerification:
		return http.StatusForbidden
	case dErrors.CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// DomainCodeToHTTPCode translates domain error codes to the JSON error field.
func DomainCodeToHTTPCode(code dErrors.Code) string {
	switch code {
	case dErrors.CodeNotFound:
		return "not_found"
	case dErrors.CodeBadRequest, dErrors.CodeInvalidInput:
		return "bad_request"
	case dErrors.CodeValidation, dErrors.CodeInvariantViolation:
		return "validation_error"
	case dErrors.CodeConflict:
		return "conflict"
	case dErrors.CodeUnauthorized:
		return "unauthorized"
	case dErrors.CodeForbidden:
		return "forbidden"
	case dErrors.CodeProofVerification:
		return "proof_verification_failed"
	case dErrors.CodeTimeout:
		return "timeout"
	default:
		return "internal_error"
	}
}

// RequireCaller extracts the authenticated caller from context.
// Returns a domain error suitable for HTTP response on failure.
func RequireCaller(ctx context.Context, logger *slog.Logger, requestID string) (common.Address, error) {
	caller, ok := requestcontext.Caller(ctx)
	if !ok {
		if logger != nil {
			logger.ErrorContext(ctx, "caller missing from context despite auth middleware",
				"request_id", requestID)
		}
		return common.Address{}, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	return caller, nil
}
