package docstore_test

import (
	"context"
	"testing"

	"github.com/fintrack-app/backend/internal/docstore"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/fintrack-app/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TestSuiteStandard struct {
	suite.Suite
	client *docstore.Client
}

// Pseudo-Test run by go test that runs the test suite.
func TestStandard(t *testing.T) {
	suite.Run(t, new(TestSuiteStandard))
}

// SetupTest is called before each test in the suite.
func (suite *TestSuiteStandard) SetupTest() {
	client, err := docstore.Connect(test.TmpFile(suite.T()))
	if err != nil {
		suite.Require().FailNowf("document store initialization failed", "%#v", err)
	}

	suite.client = client
}

// TearDownTest is called after each test in the suite.
func (suite *TestSuiteStandard) TearDownTest() {
	_ = suite.client.Close()
}

func (suite *TestSuiteStandard) testIncomeSource(name string) models.IncomeSource {
	return models.IncomeSource{
		DefaultModel: models.NewDefaultModel(),
		Name:         name,
		Amount:       decimal.NewFromInt(500),
		ExpectedDate: types.NewDate(2024, 7, 5),
		Status:       models.IncomePending,
		Color:        "#10B981",
	}
}

func (suite *TestSuiteStandard) TestSaveAndGetOne() {
	collection := docstore.IncomeSources(suite.client, "user-1")
	source := suite.testIncomeSource("Freelance")

	suite.Require().Nil(collection.Save(context.Background(), source))

	stored, err := collection.GetOne(context.Background(), source.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(source.Name, stored.Name)
	suite.Assert().True(source.Amount.Equal(stored.Amount))
	suite.Assert().Equal(source.ID, stored.ID)
}

func (suite *TestSuiteStandard) TestSaveIsIdempotent() {
	collection := docstore.IncomeSources(suite.client, "user-1")
	source := suite.testIncomeSource("Salary")

	suite.Require().Nil(collection.Save(context.Background(), source))
	suite.Require().Nil(collection.Save(context.Background(), source))

	records, err := collection.List(context.Background())
	suite.Require().Nil(err)
	suite.Assert().Len(records, 1)
}

func (suite *TestSuiteStandard) TestGetOneNotFound() {
	collection := docstore.IncomeSources(suite.client, "user-1")

	_, err := collection.GetOne(context.Background(), uuid.New())
	suite.Assert().ErrorIs(err, docstore.ErrNotFound)
}

func (suite *TestSuiteStandard) TestDeleteIsIdempotent() {
	collection := docstore.IncomeSources(suite.client, "user-1")
	source := suite.testIncomeSource("Salary")
	suite.Require().Nil(collection.Save(context.Background(), source))

	suite.Assert().Nil(collection.Delete(context.Background(), source.ID))
	suite.Assert().Nil(collection.Delete(context.Background(), source.ID))
	suite.Assert().Nil(collection.Delete(context.Background(), uuid.New()))

	records, err := collection.List(context.Background())
	suite.Require().Nil(err)
	suite.Assert().Empty(records)
}

func (suite *TestSuiteStandard) TestNamespaceIsolation() {
	first := docstore.IncomeSources(suite.client, "user-1")
	second := docstore.IncomeSources(suite.client, "user-2")

	suite.Require().Nil(first.Save(context.Background(), suite.testIncomeSource("Freelance")))

	records, err := second.List(context.Background())
	suite.Require().Nil(err)
	suite.Assert().Empty(records, "records must never be visible outside their namespace")
}

func (suite *TestSuiteStandard) TestExpensesOrderedByDateDescending() {
	collection := docstore.Expenses(suite.client, "user-1")

	for _, date := range []types.Date{
		types.NewDate(2024, 7, 1),
		types.NewDate(2024, 7, 15),
		types.NewDate(2024, 7, 8),
	} {
		expense := models.Expense{
			DefaultModel: models.NewDefaultModel(),
			Title:        "Expense on " + date.String(),
			Amount:       decimal.NewFromInt(10),
			Date:         date,
		}
		suite.Require().Nil(collection.Save(context.Background(), expense))
	}

	records, err := collection.List(context.Background())
	suite.Require().Nil(err)
	suite.Require().Len(records, 3)
	suite.Assert().Equal(types.NewDate(2024, 7, 15), records[0].Date)
	suite.Assert().Equal(types.NewDate(2024, 7, 8), records[1].Date)
	suite.Assert().Equal(types.NewDate(2024, 7, 1), records[2].Date)
}

func (suite *TestSuiteStandard) TestSubscribe() {
	collection := docstore.IncomeSources(suite.client, "user-1")
	existing := suite.testIncomeSource("Salary")
	suite.Require().Nil(collection.Save(context.Background(), existing))

	var snapshots [][]models.IncomeSource
	unsubscribe, err := collection.Subscribe(func(records []models.IncomeSource) {
		snapshots = append(snapshots, records)
	})
	suite.Require().Nil(err)

	// The subscription fires once immediately with the current state
	suite.Require().Len(snapshots, 1)
	suite.Assert().Len(snapshots[0], 1)

	suite.Require().Nil(collection.Save(context.Background(), suite.testIncomeSource("Freelance")))
	suite.Require().Len(snapshots, 2)
	suite.Assert().Len(snapshots[1], 2)

	suite.Require().Nil(collection.Delete(context.Background(), existing.ID))
	suite.Require().Len(snapshots, 3)
	suite.Assert().Len(snapshots[2], 1)

	// No notifications after unsubscribing
	unsubscribe()
	suite.Require().Nil(collection.Save(context.Background(), suite.testIncomeSource("Dividends")))
	suite.Assert().Len(snapshots, 3)
}

func (suite *TestSuiteStandard) TestSubscribeOtherNamespaceUnaffected() {
	collection := docstore.IncomeSources(suite.client, "user-1")

	calls := 0
	unsubscribe, err := collection.Subscribe(func([]models.IncomeSource) {
		calls++
	})
	suite.Require().Nil(err)
	defer unsubscribe()

	other := docstore.IncomeSources(suite.client, "user-2")
	suite.Require().Nil(other.Save(context.Background(), suite.testIncomeSource("Freelance")))

	suite.Assert().Equal(1, calls, "only the immediate snapshot may have fired")
}

func (suite *TestSuiteStandard) TestPing() {
	suite.Assert().Nil(suite.client.Ping(context.Background()))

	suite.Require().Nil(suite.client.Close())
	suite.Assert().NotNil(suite.client.Ping(context.Background()))
}
