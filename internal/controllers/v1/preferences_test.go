package v1_test

import (
	"net/http"

	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/internal/prefs"
	"github.com/fintrack-app/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestPreferencesGet() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/preferences", nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response v1.PreferencesResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "dashboard", response.Data.ActiveView)
	assert.False(suite.T(), response.Data.DarkMode)
}

func (suite *TestSuiteStandard) TestPreferencesPatch() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, "/v1/preferences", map[string]any{
		"darkMode":   true,
		"activeView": "analytics",
	})
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response v1.PreferencesResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.Data.DarkMode)
	assert.Equal(suite.T(), "analytics", response.Data.ActiveView)

	// Dark mode and active view are persisted across restarts
	settings, err := prefs.Load(suite.prefsPath)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), settings.DarkMode)
	assert.Equal(suite.T(), "analytics", settings.ActiveView)
}

// Form visibility is runtime state, it never reaches the preferences file.
func (suite *TestSuiteStandard) TestPreferencesFormsNotPersisted() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, "/v1/preferences", map[string]any{
		"showAddIncomeForm": true,
	})
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response v1.PreferencesResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.Data.ShowAddIncomeForm)

	settings, err := prefs.Load(suite.prefsPath)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), prefs.DefaultSettings(), settings)
}

func (suite *TestSuiteStandard) TestPreferencesPatchEmptyBody() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, "/v1/preferences", "")
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusBadRequest)
}
