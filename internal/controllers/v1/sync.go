package v1

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/store"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterSyncRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsSync)
	r.GET("", co.GetSync)
}

type Sync struct {
	Namespace   string                     `json:"namespace" example:"morre"` // Active namespace, empty when signed out
	Collections map[string]store.SyncState `json:"collections"`               // Subscription state per collection
}

type SyncResponse struct {
	Data *Sync `json:"data"` // The sync state
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sync
// @Success		204
// @Router			/v1/sync [options]
func (co Controller) OptionsSync(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get sync state
// @Description	Returns the subscription health of all collections
// @Tags			Sync
// @Produce		json
// @Success		200	{object}	SyncResponse
// @Router			/v1/sync [get]
func (co Controller) GetSync(c *gin.Context) {
	namespace, _ := co.Identity.Current()

	c.JSON(http.StatusOK, SyncResponse{Data: &Sync{
		Namespace:   namespace,
		Collections: co.Store.SyncStates(),
	}})
}
