package v1

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/prefs"
	"github.com/fintrack-app/backend/internal/store"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterPreferencesRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsPreferences)
	r.GET("", co.GetPreferences)
	r.PATCH("", co.UpdatePreferences)
}

type PreferencesPatch struct {
	DarkMode           *bool   `json:"darkMode" example:"true"`
	ActiveView         *string `json:"activeView" example:"analytics"`
	ShowAddIncomeForm  *bool   `json:"showAddIncomeForm" example:"false"`
	ShowAddExpenseForm *bool   `json:"showAddExpenseForm" example:"false"`
}

type PreferencesResponse struct {
	Data  *store.UIState `json:"data"`  // The preferences
	Error *string        `json:"error"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Preferences
// @Success		204
// @Router			/v1/preferences [options]
func (co Controller) OptionsPreferences(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get preferences
// @Description	Returns the UI preferences
// @Tags			Preferences
// @Produce		json
// @Success		200	{object}	PreferencesResponse
// @Router			/v1/preferences [get]
func (co Controller) GetPreferences(c *gin.Context) {
	ui := co.Store.UIState()
	c.JSON(http.StatusOK, PreferencesResponse{Data: &ui})
}

// @Summary		Update preferences
// @Description	Updates the UI preferences. Only values to be updated need to be specified. Dark mode and active view are persisted across restarts.
// @Tags			Preferences
// @Accept		json
// @Produce		json
// @Success		200			{object}	PreferencesResponse
// @Failure		400			{object}	PreferencesResponse
// @Failure		500			{object}	PreferencesResponse
// @Param			preferences	body		PreferencesPatch	true	"Preferences"
// @Router			/v1/preferences [patch]
func (co Controller) UpdatePreferences(c *gin.Context) {
	var patch PreferencesPatch
	if err := httputil.BindData(c, &patch); err != nil {
		e := err.Error()
		c.JSON(status(err), PreferencesResponse{Error: &e})
		return
	}

	if patch.DarkMode != nil {
		co.Store.SetDarkMode(*patch.DarkMode)
	}
	if patch.ActiveView != nil {
		co.Store.SetActiveView(*patch.ActiveView)
	}
	if patch.ShowAddIncomeForm != nil {
		co.Store.SetShowAddIncomeForm(*patch.ShowAddIncomeForm)
	}
	if patch.ShowAddExpenseForm != nil {
		co.Store.SetShowAddExpenseForm(*patch.ShowAddExpenseForm)
	}

	if patch.DarkMode != nil || patch.ActiveView != nil {
		settings, err := prefs.Load(co.PrefsPath)
		if err == nil {
			ui := co.Store.UIState()
			settings.DarkMode = ui.DarkMode
			settings.ActiveView = ui.ActiveView
			err = prefs.Save(co.PrefsPath, settings)
		}
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusInternalServerError, PreferencesResponse{Error: &e})
			return
		}
	}

	ui := co.Store.UIState()
	c.JSON(http.StatusOK, PreferencesResponse{Data: &ui})
}
