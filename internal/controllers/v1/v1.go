// Package v1 implements the v1 REST API on top of the store, the identity
// service and the preferences file.
package v1

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/identity"
	"github.com/fintrack-app/backend/internal/store"
	"github.com/gin-gonic/gin"
)

// Controller carries the dependencies of all v1 handlers.
type Controller struct {
	Store     *store.Store
	Identity  *identity.Service
	PrefsPath string
}

// RegisterRoutes registers all v1 routes on the group.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsV1)
	r.GET("", co.GetV1)

	co.RegisterSessionRoutes(r.Group("/session"))
	co.RegisterIncomeSourceRoutes(r.Group("/income-sources"))
	co.RegisterExpenseRoutes(r.Group("/expenses"))
	co.RegisterGoalRoutes(r.Group("/goals"))
	co.RegisterAppointmentRoutes(r.Group("/appointments"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterStatsRoutes(r.Group("/stats"))
	co.RegisterPreferencesRoutes(r.Group("/preferences"))
	co.RegisterSyncRoutes(r.Group("/sync"))
}

type V1Links struct {
	IncomeSources string `json:"incomeSources" example:"https://example.com/api/v1/income-sources"` // URL of the income source endpoints
	Expenses      string `json:"expenses" example:"https://example.com/api/v1/expenses"`            // URL of the expense endpoints
	Goals         string `json:"goals" example:"https://example.com/api/v1/goals"`                  // URL of the goal endpoints
	Appointments  string `json:"appointments" example:"https://example.com/api/v1/appointments"`    // URL of the appointment endpoints
	Categories    string `json:"categories" example:"https://example.com/api/v1/categories"`        // URL of the category catalog
	Session       string `json:"session" example:"https://example.com/api/v1/session"`              // URL of the session endpoints
	Stats         string `json:"stats" example:"https://example.com/api/v1/stats"`                  // URL of the dashboard statistics
	Preferences   string `json:"preferences" example:"https://example.com/api/v1/preferences"`      // URL of the preference endpoints
	Sync          string `json:"sync" example:"https://example.com/api/v1/sync"`                    // URL of the sync state endpoint
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for API v1
}

// @Summary		v1 API
// @Description	Entrypoint for the v1 API with all endpoints
// @Tags			v1
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func (co Controller) GetV1(c *gin.Context) {
	url := httputil.RequestPathV1(c)

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			IncomeSources: url + "/income-sources",
			Expenses:      url + "/expenses",
			Goals:         url + "/goals",
			Appointments:  url + "/appointments",
			Categories:    url + "/categories",
			Session:       url + "/session",
			Stats:         url + "/stats",
			Preferences:   url + "/preferences",
			Sync:          url + "/sync",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func (co Controller) OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
