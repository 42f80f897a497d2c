package v1

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/store"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterIncomeSourceRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsIncomeSources)
		r.GET("", co.GetIncomeSources)
		r.POST("", co.CreateIncomeSource)
	}
	{
		r.OPTIONS("/:id", co.OptionsIncomeSourceDetail)
		r.GET("/:id", co.GetIncomeSource)
		r.PATCH("/:id", co.UpdateIncomeSource)
		r.DELETE("/:id", co.DeleteIncomeSource)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			IncomeSources
// @Success		204
// @Router			/v1/income-sources [options]
func (co Controller) OptionsIncomeSources(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			IncomeSources
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ID of the income source"
// @Router			/v1/income-sources/{id} [options]
func (co Controller) OptionsIncomeSourceDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	if _, ok := co.Store.IncomeSourceByID(uri.ID.UUID); !ok {
		c.JSON(http.StatusNotFound, httpError{Error: store.ErrNotFound.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List income sources
// @Description	Returns a list of all income sources
// @Tags			IncomeSources
// @Produce		json
// @Success		200	{object}	IncomeSourceListResponse
// @Router			/v1/income-sources [get]
func (co Controller) GetIncomeSources(c *gin.Context) {
	sources := co.Store.IncomeSources()

	data := make([]IncomeSource, 0, len(sources))
	for _, source := range sources {
		data = append(data, newIncomeSource(c, source))
	}

	c.JSON(http.StatusOK, IncomeSourceListResponse{Data: data})
}

// @Summary		Create income source
// @Description	Creates a new income source
// @Tags			IncomeSources
// @Produce		json
// @Success		201		{object}	IncomeSourceResponse
// @Failure		400		{object}	IncomeSourceResponse
// @Failure		401		{object}	IncomeSourceResponse
// @Failure		500		{object}	IncomeSourceResponse
// @Param			source	body		IncomeSourceEditable	true	"Income source"
// @Router			/v1/income-sources [post]
func (co Controller) CreateIncomeSource(c *gin.Context) {
	var editable IncomeSourceEditable

	err := httputil.BindData(c, &editable)
	if err == nil {
		err = editable.validate()
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeSourceResponse{Error: &e})
		return
	}

	source, err := co.Store.AddIncomeSource(c.Request.Context(), editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeSourceResponse{Error: &e})
		return
	}

	data := newIncomeSource(c, source)
	c.JSON(http.StatusCreated, IncomeSourceResponse{Data: &data})
}

// @Summary		Get income source
// @Description	Returns a specific income source
// @Tags			IncomeSources
// @Produce		json
// @Success		200	{object}	IncomeSourceResponse
// @Failure		400	{object}	IncomeSourceResponse
// @Failure		404	{object}	IncomeSourceResponse
// @Param			id	path		URIID	true	"ID of the income source"
// @Router			/v1/income-sources/{id} [get]
func (co Controller) GetIncomeSource(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, IncomeSourceResponse{Error: &e})
		return
	}

	source, ok := co.Store.IncomeSourceByID(uri.ID.UUID)
	if !ok {
		e := store.ErrNotFound.Error()
		c.JSON(http.StatusNotFound, IncomeSourceResponse{Error: &e})
		return
	}

	data := newIncomeSource(c, source)
	c.JSON(http.StatusOK, IncomeSourceResponse{Data: &data})
}

// @Summary		Update income source
// @Description	Updates an existing income source. Only values to be updated need to be specified.
// @Tags			IncomeSources
// @Accept		json
// @Produce		json
// @Success		200		{object}	IncomeSourceResponse
// @Failure		400		{object}	IncomeSourceResponse
// @Failure		404		{object}	IncomeSourceResponse
// @Failure		500		{object}	IncomeSourceResponse
// @Param			id		path		URIID				true	"ID of the income source"
// @Param			source	body		IncomeSourcePatch	true	"Income source"
// @Router			/v1/income-sources/{id} [patch]
func (co Controller) UpdateIncomeSource(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, IncomeSourceResponse{Error: &e})
		return
	}

	var patch IncomeSourcePatch
	err := httputil.BindData(c, &patch)
	if err == nil {
		err = patch.validate()
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeSourceResponse{Error: &e})
		return
	}

	source, err := co.Store.UpdateIncomeSource(c.Request.Context(), uri.ID.UUID, patch.apply)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeSourceResponse{Error: &e})
		return
	}

	data := newIncomeSource(c, source)
	c.JSON(http.StatusOK, IncomeSourceResponse{Data: &data})
}

// @Summary		Delete income source
// @Description	Deletes an income source
// @Tags			IncomeSources
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the income source"
// @Router			/v1/income-sources/{id} [delete]
func (co Controller) DeleteIncomeSource(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	if err := co.Store.DeleteIncomeSource(c.Request.Context(), uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
