package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frozz/storefront/internal/api/middleware"
	"github.com/frozz/storefront/internal/utils/response"
	"github.com/stretchr/testify/require"
)

// decodeData unmarshals the data envelope of a successful response into dest.
func decodeData(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	// Marshall the Data from map[string]interface{} to bytes
	databytes, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(databytes, dest))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) *response.ErrorResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)

	return resp.Error
}

func middlewareSession(req *http.Request, sessionID string) context.Context {
	return middleware.WithSessionID(req.Context(), sessionID)
}
