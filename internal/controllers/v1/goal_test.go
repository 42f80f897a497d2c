package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createGoal(body any) v1.GoalResponse {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/goals", body)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusCreated)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestGoalCreate() {
	suite.signIn("morre")

	created := suite.createGoal(map[string]any{
		"title":         "New TV",
		"targetAmount":  "1000",
		"currentAmount": "350",
		"deadline":      "2024-12-31",
	})

	require.NotNil(suite.T(), created.Data)
	assert.Equal(suite.T(), "New TV", created.Data.Title)
	assert.Equal(suite.T(), "medium", string(created.Data.Priority), "priority must default to medium")
	assert.Equal(suite.T(), "35", created.Data.Progress.String())
}

func (suite *TestSuiteStandard) TestGoalProgressClamped() {
	suite.signIn("morre")

	created := suite.createGoal(map[string]any{
		"title":         "Almost done",
		"targetAmount":  "100",
		"currentAmount": "150",
	})

	assert.Equal(suite.T(), "100", created.Data.Progress.String())
}

func (suite *TestSuiteStandard) TestGoalInvalid() {
	suite.signIn("morre")

	tests := []struct {
		name string
		body any
	}{
		{"zero target", map[string]any{"title": "No target", "targetAmount": "0"}},
		{"negative target", map[string]any{"title": "Negative", "targetAmount": "-10"}},
		{"invalid priority", map[string]any{"title": "Prio", "targetAmount": "100", "priority": "urgent"}},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/goals", tt.body)
		test.AssertHTTPStatus(suite.T(), recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestGoalPatch() {
	suite.signIn("morre")

	created := suite.createGoal(map[string]any{
		"title":        "Travel",
		"targetAmount": "2000",
		"priority":     "low",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/goals/%s", created.Data.ID), map[string]any{
		"currentAmount": "500",
		"priority":      "high",
	})
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "high", string(response.Data.Priority))
	assert.Equal(suite.T(), "Travel", response.Data.Title)
	assert.Equal(suite.T(), "25", response.Data.Progress.String())
}

func (suite *TestSuiteStandard) TestAppointmentLifecycle() {
	suite.signIn("morre")

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/appointments", map[string]any{
		"title":         "Car inspection",
		"date":          "2024-07-10T14:30:00Z",
		"estimatedCost": "150",
		"category":      "Transporte",
	})
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusCreated)

	var created v1.AppointmentResponse
	test.DecodeResponse(suite.T(), recorder, &created)
	assert.Equal(suite.T(), "scheduled", string(created.Data.Status), "status must default to scheduled")

	path := fmt.Sprintf("/v1/appointments/%s", created.Data.ID)

	recorder = test.Request(suite.T(), suite.router, http.MethodPatch, path, map[string]any{"status": "completed"})
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var updated v1.AppointmentResponse
	test.DecodeResponse(suite.T(), recorder, &updated)
	assert.Equal(suite.T(), "completed", string(updated.Data.Status))

	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, path, nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusNoContent)
}
