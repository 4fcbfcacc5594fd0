package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "verisbt/pkg/domain-errors"
	"verisbt/pkg/requestcontext"
)

type reasonedErr struct{}

func (reasonedErr) Error() string  { return "query \"KYC\" does not exist" }
func (reasonedErr) Reason() string { return "ProtocolQueriesManagerQueryDoesNotExist" }
func (e reasonedErr) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeNotFound, Message: e.Error()}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
		reason string
	}{
		{"typed failure carries reason", reasonedErr{}, http.StatusNotFound, "not_found", "ProtocolQueriesManagerQueryDoesNotExist"},
		{"proof rejection is forbidden", dErrors.New(dErrors.CodeProofVerification, "bad proof"), http.StatusForbidden, "proof_verification_failed", ""},
		{"conflict", dErrors.New(dErrors.CodeConflict, "dup"), http.StatusConflict, "conflict", ""},
		{"unauthorized", dErrors.New(dErrors.CodeUnauthorized, "no"), http.StatusUnauthorized, "unauthorized", ""},
		{"validation", dErrors.New(dErrors.CodeValidation, "bad"), http.StatusBadRequest, "validation_error", ""},
		{"timeout", dErrors.New(dErrors.CodeTimeout, "slow"), http.StatusGatewayTimeout, "timeout", ""},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "internal_error", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Error)
			assert.Equal(t, tt.reason, body.Reason)
		})
	}
}

func TestRequireCaller(t *testing.T) {
	_, err := RequireCaller(context.Background(), nil, "r1")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))

	caller := common.HexToAddress("0x00000000000000000000000000000000000000a1")
	got, err := RequireCaller(requestcontext.WithCaller(context.Background(), caller), nil, "r1")
	require.NoError(t, err)
	assert.Equal(t, caller, got)
}
