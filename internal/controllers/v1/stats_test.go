package v1_test

import (
	"net/http"

	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestStats() {
	suite.signIn("morre")

	suite.createIncomeSource(map[string]any{"name": "Salary", "amount": "3000", "status": "received"})
	suite.createIncomeSource(map[string]any{"name": "Freelance", "amount": "500", "status": "pending"})
	suite.createExpense(map[string]any{"title": "Groceries", "amount": "150", "categoryId": "6", "date": "2024-07-02"})
	suite.createExpense(map[string]any{"title": "Bus", "amount": "75", "categoryId": "1", "date": "2024-07-03"})
	suite.createGoal(map[string]any{"title": "New TV", "targetAmount": "1000", "currentAmount": "350"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/stats", nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	require.NotNil(suite.T(), response.Data)

	assert.True(suite.T(), response.Data.TotalIncome.Equal(decimal.NewFromInt(3500)))
	assert.True(suite.T(), response.Data.TotalExpenses.Equal(decimal.NewFromInt(225)))
	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromInt(3275)))

	require.Len(suite.T(), response.Data.TopCategories, 2)
	assert.Equal(suite.T(), "Alimentação", response.Data.TopCategories[0].Category)
	assert.True(suite.T(), response.Data.TopCategories[0].Amount.Equal(decimal.NewFromInt(150)))

	require.Len(suite.T(), response.Data.Goals, 1)
	assert.Equal(suite.T(), "35", response.Data.Goals[0].Progress.String())
}

func (suite *TestSuiteStandard) TestStatsEmpty() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/stats", nil)
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.Data.TotalIncome.IsZero())
	assert.Empty(suite.T(), response.Data.TopCategories)
	assert.Empty(suite.T(), response.Data.Goals)
}
