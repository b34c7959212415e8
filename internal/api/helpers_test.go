package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hazelbrook/bookshelf-api/internal/api/shared"
)

// doRequest serves a request against handler and returns the recorder.
// A string body is sent verbatim; any other non-nil body is marshaled
// as JSON. Optional mutate functions adjust the request before it is
// served, for example to attach a session cookie.
func doRequest(
	t *testing.T,
	handler http.Handler,
	method, target string,
	body interface{},
	mutate ...func(*http.Request),
) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, fn := range mutate {
		fn(req)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the recorded JSON response body into dst.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

// errorMessage extracts the "error" field from a JSON error response.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp shared.ErrorResponse
	decodeBody(t, rec, &resp)
	return resp.Error
}
