package v1_test

import (
	"net/http"

	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoryList() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	require.Len(suite.T(), response.Data, 6)
	assert.Equal(suite.T(), "Transporte", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestCategoryGet() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/categories/5", nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Saúde", response.Data.Name)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/categories/999", nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryPatchBudget() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, "/v1/categories/6", map[string]any{
		"budget": "400",
	})
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	require.True(suite.T(), response.Data.Budget.Valid)
	assert.True(suite.T(), response.Data.Budget.Decimal.Equal(decimal.NewFromInt(400)))

	// Other fields are untouched
	assert.Equal(suite.T(), "Alimentação", response.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoryPatchInvalid() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, "/v1/categories/6", map[string]any{
		"budget": "-400",
	})
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), suite.router, http.MethodPatch, "/v1/categories/999", map[string]any{
		"name": "Nope",
	})
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusNotFound)
}
