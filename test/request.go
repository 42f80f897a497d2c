package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Request is a helper method to simplify making a HTTP request for tests.
func Request(t *testing.T, handler http.Handler, method, url string, body any) *httptest.ResponseRecorder {
	var buffer *bytes.Buffer

	switch b := body.(type) {
	case nil:
		buffer = bytes.NewBuffer(nil)
	case string:
		buffer = bytes.NewBufferString(b)
	default:
		encoded, err := json.Marshal(body)
		if err != nil {
			require.FailNow(t, "request body could not be marshalled from struct input", err)
		}
		buffer = bytes.NewBuffer(encoded)
	}

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(method, url, buffer)
	require.Nil(t, err)
	request.Header.Set("Content-Type", "application/json")

	handler.ServeHTTP(recorder, request)

	return recorder
}

// DecodeResponse decodes a JSON response body into the target.
func DecodeResponse(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	err := json.NewDecoder(recorder.Body).Decode(target)
	if err != nil {
		assert.FailNow(t, "parsing the response failed", "%v; body: %s", err, recorder.Body.String())
	}
}

// AssertHTTPStatus asserts the status code of a response.
func AssertHTTPStatus(t *testing.T, recorder *httptest.ResponseRecorder, status int) {
	assert.Equal(t, status, recorder.Code, "wrong response code, body: %s", recorder.Body.String())
}
