// Package store implements the single source of truth for all domain
// collections and UI state.
//
// Every mutation is applied to memory first and mirrored to the remote store
// afterwards, so the UI never waits for the network. Failed mirrors are
// rolled back and reported as typed errors. Snapshots pushed by the
// subscription bridge replace collections wholesale and always win over
// pending optimistic state.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/fintrack-app/backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Collection names, matching the layout of the remote store.
const (
	CollectionIncomeSources = "incomeSources"
	CollectionExpenses      = "expenses"
	CollectionGoals         = "goals"
	CollectionAppointments  = "appointments"
)

// Remotes are the per-collection handles of the currently active namespace.
type Remotes struct {
	IncomeSources Remote[models.IncomeSource]
	Expenses      Remote[models.Expense]
	Goals         Remote[models.Goal]
	Appointments  Remote[models.Appointment]
}

// UIState is presentation state that lives alongside the domain collections.
type UIState struct {
	ActiveView         string `json:"activeView" example:"dashboard"`
	DarkMode           bool   `json:"darkMode" example:"false"`
	ShowAddIncomeForm  bool   `json:"showAddIncomeForm" example:"false"`
	ShowAddExpenseForm bool   `json:"showAddExpenseForm" example:"false"`
}

// Store holds the four domain collections, the category catalog and UI state.
// Construct it once with New and pass it to everything that needs it.
type Store struct {
	incomeSources *collection[models.IncomeSource]
	expenses      *collection[models.Expense]
	goals         *collection[models.Goal]
	appointments  *collection[models.Appointment]

	mu         sync.Mutex
	categories []models.ExpenseCategory
	ui         UIState
}

// New returns a Store with the default category catalog and no namespace bound.
func New() *Store {
	return &Store{
		incomeSources: newCollection[models.IncomeSource](CollectionIncomeSources),
		expenses:      newCollection[models.Expense](CollectionExpenses),
		goals:         newCollection[models.Goal](CollectionGoals),
		appointments:  newCollection[models.Appointment](CollectionAppointments),
		categories:    models.DefaultCategories(),
		ui: UIState{
			ActiveView: "dashboard",
		},
	}
}

// Bind attaches the remote collections of a namespace. Until the first
// snapshot arrives the collections stay empty.
func (s *Store) Bind(r Remotes) {
	s.incomeSources.bind(r.IncomeSources)
	s.expenses.bind(r.Expenses)
	s.goals.bind(r.Goals)
	s.appointments.bind(r.Appointments)
}

// Unbind detaches the remote collections and drops all domain records.
func (s *Store) Unbind() {
	s.incomeSources.unbind()
	s.expenses.unbind()
	s.goals.unbind()
	s.appointments.unbind()
}

// SyncStates reports the subscription health per collection.
func (s *Store) SyncStates() map[string]SyncState {
	return map[string]SyncState{
		CollectionIncomeSources: s.incomeSources.syncState(),
		CollectionExpenses:      s.expenses.syncState(),
		CollectionGoals:         s.goals.syncState(),
		CollectionAppointments:  s.appointments.syncState(),
	}
}

// MarkSyncFailed records that the subscription for a collection could not be
// established.
func (s *Store) MarkSyncFailed(collection string) {
	switch collection {
	case CollectionIncomeSources:
		s.incomeSources.markSyncFailed()
	case CollectionExpenses:
		s.expenses.markSyncFailed()
	case CollectionGoals:
		s.goals.markSyncFailed()
	case CollectionAppointments:
		s.appointments.markSyncFailed()
	}
}

// Income sources

func (s *Store) AddIncomeSource(ctx context.Context, source models.IncomeSource) (models.IncomeSource, error) {
	source.DefaultModel = models.NewDefaultModel()
	return addRecord(ctx, s.incomeSources, source)
}

func (s *Store) UpdateIncomeSource(ctx context.Context, id uuid.UUID, mutate func(*models.IncomeSource)) (models.IncomeSource, error) {
	return updateRecord(ctx, s.incomeSources, id, func(source *models.IncomeSource) {
		mutate(source)
		source.UpdatedAt = time.Now().In(time.UTC)
	})
}

func (s *Store) DeleteIncomeSource(ctx context.Context, id uuid.UUID) error {
	return deleteRecord(ctx, s.incomeSources, id)
}

func (s *Store) ReplaceIncomeSources(records []models.IncomeSource) {
	s.incomeSources.replaceAll(records)
}

func (s *Store) IncomeSourceByID(id uuid.UUID) (models.IncomeSource, bool) {
	return s.incomeSources.byID(id)
}

func (s *Store) IncomeSources() []models.IncomeSource {
	return s.incomeSources.all()
}

// Expenses

func (s *Store) AddExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	expense.DefaultModel = models.NewDefaultModel()
	return addRecord(ctx, s.expenses, expense)
}

func (s *Store) UpdateExpense(ctx context.Context, id uuid.UUID, mutate func(*models.Expense)) (models.Expense, error) {
	return updateRecord(ctx, s.expenses, id, func(expense *models.Expense) {
		mutate(expense)
		expense.UpdatedAt = time.Now().In(time.UTC)
	})
}

func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	return deleteRecord(ctx, s.expenses, id)
}

func (s *Store) ReplaceExpenses(records []models.Expense) {
	s.expenses.replaceAll(records)
}

func (s *Store) ExpenseByID(id uuid.UUID) (models.Expense, bool) {
	return s.expenses.byID(id)
}

func (s *Store) Expenses() []models.Expense {
	return s.expenses.all()
}

// Goals

func (s *Store) AddGoal(ctx context.Context, goal models.Goal) (models.Goal, error) {
	goal.DefaultModel = models.NewDefaultModel()
	return addRecord(ctx, s.goals, goal)
}

func (s *Store) UpdateGoal(ctx context.Context, id uuid.UUID, mutate func(*models.Goal)) (models.Goal, error) {
	return updateRecord(ctx, s.goals, id, func(goal *models.Goal) {
		mutate(goal)
		goal.UpdatedAt = time.Now().In(time.UTC)
	})
}

func (s *Store) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	return deleteRecord(ctx, s.goals, id)
}

func (s *Store) ReplaceGoals(records []models.Goal) {
	s.goals.replaceAll(records)
}

func (s *Store) GoalByID(id uuid.UUID) (models.Goal, bool) {
	return s.goals.byID(id)
}

func (s *Store) Goals() []models.Goal {
	return s.goals.all()
}

// Appointments

func (s *Store) AddAppointment(ctx context.Context, appointment models.Appointment) (models.Appointment, error) {
	appointment.DefaultModel = models.NewDefaultModel()
	return addRecord(ctx, s.appointments, appointment)
}

func (s *Store) UpdateAppointment(ctx context.Context, id uuid.UUID, mutate func(*models.Appointment)) (models.Appointment, error) {
	return updateRecord(ctx, s.appointments, id, func(appointment *models.Appointment) {
		mutate(appointment)
		appointment.UpdatedAt = time.Now().In(time.UTC)
	})
}

func (s *Store) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return deleteRecord(ctx, s.appointments, id)
}

func (s *Store) ReplaceAppointments(records []models.Appointment) {
	s.appointments.replaceAll(records)
}

func (s *Store) AppointmentByID(id uuid.UUID) (models.Appointment, bool) {
	return s.appointments.byID(id)
}

func (s *Store) Appointments() []models.Appointment {
	return s.appointments.all()
}

// Category catalog
//
// The catalog is a fixed seed, it is not synced to the remote store.
// Expenses embed a copy of their category, so edits here never change
// historical records.

func (s *Store) Categories() []models.ExpenseCategory {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.categories)
}

func (s *Store) CategoryByID(id string) (models.ExpenseCategory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.categories, func(c models.ExpenseCategory) bool { return c.ID == id })
	if idx < 0 {
		return models.ExpenseCategory{}, false
	}

	return s.categories[idx], true
}

func (s *Store) UpdateCategory(id string, mutate func(*models.ExpenseCategory)) (models.ExpenseCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.categories, func(c models.ExpenseCategory) bool { return c.ID == id })
	if idx < 0 {
		return models.ExpenseCategory{}, ErrCategoryNotFound
	}

	mutate(&s.categories[idx])
	return s.categories[idx], nil
}

// UI state

func (s *Store) UIState() UIState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ui
}

func (s *Store) SetActiveView(view string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ui.ActiveView = view
}

func (s *Store) SetDarkMode(dark bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ui.DarkMode = dark
}

func (s *Store) SetShowAddIncomeForm(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ui.ShowAddIncomeForm = show
}

func (s *Store) SetShowAddExpenseForm(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ui.ShowAddExpenseForm = show
}
