package v1

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsCategories)
		r.GET("", co.GetCategories)
	}
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.PATCH("/:id", co.UpdateCategory)
	}
}

type CategoryPatch struct {
	Name   *string              `json:"name" example:"Compras"`
	Icon   *string              `json:"icon" example:"ShoppingBag"`
	Color  *string              `json:"color" example:"#F59E0B"`
	Budget *decimal.NullDecimal `json:"budget" swaggertype:"number"`
}

// apply sets the fields present in the patch on the catalog entry.
func (patch CategoryPatch) apply(category *models.ExpenseCategory) {
	if patch.Name != nil {
		category.Name = *patch.Name
	}
	if patch.Icon != nil {
		category.Icon = *patch.Icon
	}
	if patch.Color != nil {
		category.Color = *patch.Color
	}
	if patch.Budget != nil {
		category.Budget = *patch.Budget
	}
}

func (patch CategoryPatch) validate() error {
	if patch.Budget != nil && patch.Budget.Valid && patch.Budget.Decimal.IsNegative() {
		return models.ErrAmountNegative
	}

	return nil
}

type CategoryResponse struct {
	Data  *models.ExpenseCategory `json:"data"`                                              // The catalog entry
	Error *string                 `json:"error" example:"there is no category with this ID"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data  []models.ExpenseCategory `json:"data"`                                              // The catalog
	Error *string                  `json:"error" example:"there is no category with this ID"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func (co Controller) OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		404	{object}	httpError
// @Param			id	path		URICategoryID	true	"ID of the category"
// @Router			/v1/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	var uri URICategoryID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	if _, ok := co.Store.CategoryByID(uri.ID); !ok {
		c.JSON(http.StatusNotFound, httpError{Error: "there is no category with this ID"})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		List categories
// @Description	Returns the category catalog
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryListResponse{Data: co.Store.Categories()})
}

// @Summary		Get category
// @Description	Returns a specific catalog entry
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Param			id	path		URICategoryID	true	"ID of the category"
// @Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	var uri URICategoryID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{Error: &e})
		return
	}

	category, ok := co.Store.CategoryByID(uri.ID)
	if !ok {
		e := "there is no category with this ID"
		c.JSON(http.StatusNotFound, CategoryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// @Summary		Update category
// @Description	Updates a catalog entry. Historical expenses keep the category copy they were created with.
// @Tags			Categories
// @Accept		json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Param			id			path		URICategoryID	true	"ID of the category"
// @Param			category	body		CategoryPatch	true	"Category"
// @Router			/v1/categories/{id} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	var uri URICategoryID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{Error: &e})
		return
	}

	var patch CategoryPatch
	err := httputil.BindData(c, &patch)
	if err == nil {
		err = patch.validate()
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	category, err := co.Store.UpdateCategory(uri.ID, patch.apply)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}
