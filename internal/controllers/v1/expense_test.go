package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createExpense(body any) v1.ExpenseResponse {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/expenses", body)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusCreated)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestExpenseCreate() {
	suite.signIn("morre")

	created := suite.createExpense(map[string]any{
		"title":      "Groceries",
		"amount":     "99.90",
		"categoryId": "6",
		"date":       "2024-07-02",
	})

	require.NotNil(suite.T(), created.Data)
	assert.Equal(suite.T(), "Groceries", created.Data.Title)

	// The category is embedded as a copy of the catalog entry
	assert.Equal(suite.T(), "6", created.Data.Category.ID)
	assert.Equal(suite.T(), "Alimentação", created.Data.Category.Name)
	assert.Equal(suite.T(), "#8B5CF6", created.Data.Category.Color)
}

func (suite *TestSuiteStandard) TestExpenseUnknownCategory() {
	suite.signIn("morre")

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/expenses", map[string]any{
		"title":      "Groceries",
		"amount":     "10",
		"categoryId": "999",
	})
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusBadRequest)
}

// Catalog edits must not change the category copy on existing expenses.
func (suite *TestSuiteStandard) TestExpenseKeepsCategoryCopy() {
	suite.signIn("morre")

	created := suite.createExpense(map[string]any{
		"title":      "New shoes",
		"amount":     "120",
		"categoryId": "3",
		"date":       "2024-07-02",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, "/v1/categories/3", map[string]any{
		"name":  "Shopping",
		"color": "#000000",
	})
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/expenses/%s", created.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Compras", response.Data.Category.Name)
	assert.Equal(suite.T(), "#F59E0B", response.Data.Category.Color)
}

func (suite *TestSuiteStandard) TestExpensePatchCategory() {
	suite.signIn("morre")

	created := suite.createExpense(map[string]any{
		"title":      "Bus ticket",
		"amount":     "4.50",
		"categoryId": "3",
		"date":       "2024-07-02",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/expenses/%s", created.Data.ID), map[string]any{
		"categoryId": "1",
	})
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Transporte", response.Data.Category.Name)
	assert.Equal(suite.T(), "Bus ticket", response.Data.Title)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.RequireFromString("4.50")))
}

// Expenses are listed newest first after a snapshot.
func (suite *TestSuiteStandard) TestExpenseListOrder() {
	suite.signIn("morre")

	suite.createExpense(map[string]any{"title": "Old", "amount": "1", "categoryId": "1", "date": "2024-06-01"})
	suite.createExpense(map[string]any{"title": "New", "amount": "1", "categoryId": "1", "date": "2024-07-01"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/expenses", nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "New", response.Data[0].Title)
	assert.Equal(suite.T(), "Old", response.Data[1].Title)
}
