package v1_test

import (
	"net/http"

	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/internal/prefs"
	"github.com/fintrack-app/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSessionLifecycle() {
	// No session yet
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/session", nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusNotFound)

	suite.signIn("morre")

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/session", nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "morre", response.Data.UserID)
	assert.True(suite.T(), response.Data.SignedIn)

	// Sign-in started the bridge
	assert.Equal(suite.T(), "morre", suite.bridge.Namespace())

	// The session is persisted for the next start
	settings, err := prefs.Load(suite.prefsPath)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "morre", settings.UserID)

	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, "/v1/session", nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/session", nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusNotFound)

	assert.Equal(suite.T(), "", suite.bridge.Namespace())

	settings, err = prefs.Load(suite.prefsPath)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "", settings.UserID)
}

func (suite *TestSuiteStandard) TestSessionInvalid() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/session", map[string]string{})
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), suite.router, http.MethodPost, "/v1/session", "")
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusBadRequest)
}

// Signing in a different user must drop the previous user's records.
func (suite *TestSuiteStandard) TestSessionSwitchIsolatesData() {
	suite.signIn("morre")
	suite.createIncomeSource(map[string]any{"name": "Salary", "amount": "3000"})

	suite.signIn("other")

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/income-sources", nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response v1.IncomeSourceListResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	assert.Empty(suite.T(), response.Data)
}
