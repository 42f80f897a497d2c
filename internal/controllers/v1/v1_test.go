package v1_test

import (
	"net/http"

	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1", nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response v1.V1Response
	test.DecodeResponse(suite.T(), recorder, &response)

	assert.Equal(suite.T(), "http://example.com/v1/income-sources", response.Links.IncomeSources)
	assert.Equal(suite.T(), "http://example.com/v1/session", response.Links.Session)
	assert.Equal(suite.T(), "http://example.com/v1/stats", response.Links.Stats)
	assert.Equal(suite.T(), "http://example.com/v1/sync", response.Links.Sync)
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/v1", "GET"},
		{"/v1/session", "GET, POST, DELETE"},
		{"/v1/income-sources", "GET, POST"},
		{"/v1/expenses", "GET, POST"},
		{"/v1/goals", "GET, POST"},
		{"/v1/appointments", "GET, POST"},
		{"/v1/categories", "GET"},
		{"/v1/categories/1", "GET, PATCH"},
		{"/v1/stats", "GET"},
		{"/v1/preferences", "GET, PATCH"},
		{"/v1/sync", "GET"},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), suite.router, http.MethodOptions, tt.path, nil)
		test.AssertHTTPStatus(suite.T(), recorder, http.StatusNoContent)
		assert.Equal(suite.T(), tt.allow, recorder.Header().Get("allow"), "path %s", tt.path)
	}
}

func (suite *TestSuiteStandard) TestSync() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/sync", nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response v1.SyncResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "", response.Data.Namespace)
	assert.Equal(suite.T(), "unsynced", string(response.Data.Collections["expenses"]))

	suite.signIn("morre")

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/sync", nil)
	test.DecodeResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "morre", response.Data.Namespace)
	assert.Equal(suite.T(), "live", string(response.Data.Collections["expenses"]))
}
