package v1

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/store"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsExpenses)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
		r.PATCH("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func (co Controller) OptionsExpenses(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ID of the expense"
// @Router			/v1/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	if _, ok := co.Store.ExpenseByID(uri.ID.UUID); !ok {
		c.JSON(http.StatusNotFound, httpError{Error: store.ErrNotFound.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List expenses
// @Description	Returns a list of all expenses, newest first
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	expenses := co.Store.Expenses()

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(c, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: data})
}

// @Summary		Create expense
// @Description	Creates a new expense. The category is copied from the catalog at creation time.
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		401		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	err := httputil.BindData(c, &editable)
	if err == nil {
		err = editable.validate()
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	category, ok := co.Store.CategoryByID(editable.CategoryID)
	if !ok {
		e := errCategoryUnknown.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &e})
		return
	}

	expense, err := co.Store.AddExpense(c.Request.Context(), editable.model(category))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusCreated, ExpenseResponse{Data: &data})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ID of the expense"
// @Router			/v1/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &e})
		return
	}

	expense, ok := co.Store.ExpenseByID(uri.ID.UUID)
	if !ok {
		e := store.ErrNotFound.Error()
		c.JSON(http.StatusNotFound, ExpenseResponse{Error: &e})
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Update expense
// @Description	Updates an existing expense. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept		json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		URIID			true	"ID of the expense"
// @Param			expense	body		ExpensePatch	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func (co Controller) UpdateExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &e})
		return
	}

	var patch ExpensePatch
	err := httputil.BindData(c, &patch)
	if err == nil {
		err = patch.validate()
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	// Resolve the new category before touching the record
	var category *models.ExpenseCategory
	if patch.CategoryID != nil {
		resolved, ok := co.Store.CategoryByID(*patch.CategoryID)
		if !ok {
			e := errCategoryUnknown.Error()
			c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &e})
			return
		}
		category = &resolved
	}

	expense, err := co.Store.UpdateExpense(c.Request.Context(), uri.ID.UUID, func(expense *models.Expense) {
		patch.apply(expense, category)
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the expense"
// @Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	if err := co.Store.DeleteExpense(c.Request.Context(), uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
