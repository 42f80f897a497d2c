// Package healthz reports whether the backend can serve requests.
package healthz

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/docstore"
	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	Client *docstore.Client
}

func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.Options)
	r.GET("", co.Get)
}

type httpError struct {
	Error string `json:"error" example:"sql: database is closed"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func (co Controller) Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/healthz [get]
func (co Controller) Get(c *gin.Context) {
	if err := co.Client.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
