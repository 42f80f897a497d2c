package v1

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/prefs"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func (co Controller) RegisterSessionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsSession)
	r.GET("", co.GetSession)
	r.POST("", co.CreateSession)
	r.DELETE("", co.DeleteSession)
}

type SessionEditable struct {
	UserID string `json:"userId" example:"morre" binding:"required"` // Opaque ID of the authenticated user
}

type Session struct {
	UserID   string `json:"userId" example:"morre"` // Opaque ID of the signed-in user
	SignedIn bool   `json:"signedIn" example:"true"`
}

type SessionResponse struct {
	Data  *Session `json:"data"`                             // The session
	Error *string  `json:"error" example:"nobody is signed in"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Session
// @Success		204
// @Router			/v1/session [options]
func (co Controller) OptionsSession(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Get session
// @Description	Returns the current session
// @Tags			Session
// @Produce		json
// @Success		200	{object}	SessionResponse
// @Failure		404	{object}	SessionResponse
// @Router			/v1/session [get]
func (co Controller) GetSession(c *gin.Context) {
	userID, signedIn := co.Identity.Current()
	if !signedIn {
		e := errNoSession.Error()
		c.JSON(http.StatusNotFound, SessionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Data: &Session{UserID: userID, SignedIn: true}})
}

// @Summary		Sign in
// @Description	Signs a user in. Authentication happens upstream, this endpoint only consumes the resulting user ID.
// @Tags			Session
// @Produce		json
// @Success		201		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Param			session	body		SessionEditable	true	"Session"
// @Router			/v1/session [post]
func (co Controller) CreateSession(c *gin.Context) {
	var editable SessionEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	if editable.UserID == "" {
		e := errUserIDNotSet.Error()
		c.JSON(http.StatusBadRequest, SessionResponse{Error: &e})
		return
	}

	co.Identity.SignIn(editable.UserID)
	co.persistUserID(editable.UserID)

	c.JSON(http.StatusCreated, SessionResponse{Data: &Session{UserID: editable.UserID, SignedIn: true}})
}

// @Summary		Sign out
// @Description	Signs the current user out
// @Tags			Session
// @Success		204
// @Router			/v1/session [delete]
func (co Controller) DeleteSession(c *gin.Context) {
	co.Identity.SignOut()
	co.persistUserID("")

	c.Status(http.StatusNoContent)
}

// persistUserID stores the active user in the preferences file so the
// session is restored on the next start.
func (co Controller) persistUserID(userID string) {
	settings, err := prefs.Load(co.PrefsPath)
	if err != nil {
		log.Warn().Err(err).Msg("loading preferences for session persistence failed")
		return
	}

	settings.UserID = userID
	if err := prefs.Save(co.PrefsPath, settings); err != nil {
		log.Warn().Err(err).Msg("persisting session to preferences failed")
	}
}
