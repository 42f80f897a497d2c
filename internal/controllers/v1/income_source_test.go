package v1_test

import (
	"context"
	"fmt"
	"net/http"

	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/internal/docstore"
	"github.com/fintrack-app/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createIncomeSource(body any) v1.IncomeSourceResponse {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/income-sources", body)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusCreated)

	var response v1.IncomeSourceResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	return response
}

// TestIncomeSourceLifecycle walks an income source through its whole life:
// created as pending, marked received on arrival, deleted again.
func (suite *TestSuiteStandard) TestIncomeSourceLifecycle() {
	suite.signIn("morre")

	created := suite.createIncomeSource(map[string]any{
		"name":   "Freelance",
		"amount": "500",
		"status": "pending",
	})

	require.NotNil(suite.T(), created.Data)
	assert.NotEqual(suite.T(), uuid.Nil, created.Data.ID)
	assert.Equal(suite.T(), "Freelance", created.Data.Name)
	assert.Equal(suite.T(), "pending", string(created.Data.Status))
	assert.Contains(suite.T(), created.Data.Links.Self, fmt.Sprintf("/v1/income-sources/%s", created.Data.ID))

	// The record is mirrored to the user's namespace
	stored, err := docstore.IncomeSources(suite.client, "morre").GetOne(context.Background(), created.Data.ID)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), stored.Amount.Equal(decimal.NewFromInt(500)))

	path := fmt.Sprintf("/v1/income-sources/%s", created.Data.ID)

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, path, map[string]string{"status": "received"})
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var updated v1.IncomeSourceResponse
	test.DecodeResponse(suite.T(), recorder, &updated)
	assert.Equal(suite.T(), "received", string(updated.Data.Status))
	assert.True(suite.T(), updated.Data.Amount.Equal(decimal.NewFromInt(500)), "the amount must be unchanged")

	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, path, nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, path, nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestIncomeSourceList() {
	suite.signIn("morre")

	suite.createIncomeSource(map[string]any{"name": "Salary", "amount": "3000", "status": "received"})
	suite.createIncomeSource(map[string]any{"name": "Dividends", "amount": "120", "status": "pending"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/income-sources", nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response v1.IncomeSourceListResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestIncomeSourceNoSession() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/income-sources", map[string]any{
		"name":   "Freelance",
		"amount": "500",
	})
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestIncomeSourceInvalid() {
	suite.signIn("morre")

	tests := []struct {
		name string
		body any
	}{
		{"empty body", ""},
		{"negative amount", map[string]any{"name": "Freelance", "amount": "-1"}},
		{"invalid status", map[string]any{"name": "Freelance", "status": "maybe"}},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/income-sources", tt.body)
		test.AssertHTTPStatus(suite.T(), recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestIncomeSourceInvalidUUID() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/income-sources/not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestIncomeSourceDeleteIdempotent() {
	suite.signIn("morre")

	created := suite.createIncomeSource(map[string]any{"name": "Freelance", "amount": "500"})
	path := fmt.Sprintf("/v1/income-sources/%s", created.Data.ID)

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, path, nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, path, nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusNoContent)
}
