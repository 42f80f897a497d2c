package v1

import (
	"net/http"
	"time"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/stats"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (co Controller) RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsStats)
	r.GET("", co.GetStats)
}

type GoalProgress struct {
	ID       string          `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the goal
	Title    string          `json:"title" example:"New TV"`                            // Title of the goal
	Progress decimal.Decimal `json:"progress" example:"35"`                             // Progress in percent, clamped to [0, 100]
}

type Stats struct {
	stats.Summary
	Goals []GoalProgress `json:"goals"` // Progress of all savings goals
}

type StatsResponse struct {
	Data *Stats `json:"data"` // The dashboard statistics
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Stats
// @Success		204
// @Router			/v1/stats [options]
func (co Controller) OptionsStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get statistics
// @Description	Returns the dashboard statistics over all collections
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	StatsResponse
// @Router			/v1/stats [get]
func (co Controller) GetStats(c *gin.Context) {
	summary := stats.Summarize(co.Store.IncomeSources(), co.Store.Expenses(), time.Now())

	goals := co.Store.Goals()
	progress := make([]GoalProgress, 0, len(goals))
	for _, goal := range goals {
		progress = append(progress, GoalProgress{
			ID:       goal.ID.String(),
			Title:    goal.Title,
			Progress: stats.GoalProgress(goal),
		})
	}

	c.JSON(http.StatusOK, StatsResponse{Data: &Stats{
		Summary: summary,
		Goals:   progress,
	}})
}
