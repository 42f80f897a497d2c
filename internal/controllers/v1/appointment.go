package v1

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/store"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterAppointmentRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsAppointments)
		r.GET("", co.GetAppointments)
		r.POST("", co.CreateAppointment)
	}
	{
		r.OPTIONS("/:id", co.OptionsAppointmentDetail)
		r.GET("/:id", co.GetAppointment)
		r.PATCH("/:id", co.UpdateAppointment)
		r.DELETE("/:id", co.DeleteAppointment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Appointments
// @Success		204
// @Router			/v1/appointments [options]
func (co Controller) OptionsAppointments(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Appointments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ID of the appointment"
// @Router			/v1/appointments/{id} [options]
func (co Controller) OptionsAppointmentDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	if _, ok := co.Store.AppointmentByID(uri.ID.UUID); !ok {
		c.JSON(http.StatusNotFound, httpError{Error: store.ErrNotFound.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List appointments
// @Description	Returns a list of all appointments
// @Tags			Appointments
// @Produce		json
// @Success		200	{object}	AppointmentListResponse
// @Router			/v1/appointments [get]
func (co Controller) GetAppointments(c *gin.Context) {
	appointments := co.Store.Appointments()

	data := make([]Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		data = append(data, newAppointment(c, appointment))
	}

	c.JSON(http.StatusOK, AppointmentListResponse{Data: data})
}

// @Summary		Create appointment
// @Description	Creates a new appointment
// @Tags			Appointments
// @Produce		json
// @Success		201			{object}	AppointmentResponse
// @Failure		400			{object}	AppointmentResponse
// @Failure		401			{object}	AppointmentResponse
// @Failure		500			{object}	AppointmentResponse
// @Param			appointment	body		AppointmentEditable	true	"Appointment"
// @Router			/v1/appointments [post]
func (co Controller) CreateAppointment(c *gin.Context) {
	var editable AppointmentEditable

	err := httputil.BindData(c, &editable)
	if err == nil {
		err = editable.validate()
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AppointmentResponse{Error: &e})
		return
	}

	appointment, err := co.Store.AddAppointment(c.Request.Context(), editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AppointmentResponse{Error: &e})
		return
	}

	data := newAppointment(c, appointment)
	c.JSON(http.StatusCreated, AppointmentResponse{Data: &data})
}

// @Summary		Get appointment
// @Description	Returns a specific appointment
// @Tags			Appointments
// @Produce		json
// @Success		200	{object}	AppointmentResponse
// @Failure		400	{object}	AppointmentResponse
// @Failure		404	{object}	AppointmentResponse
// @Param			id	path		URIID	true	"ID of the appointment"
// @Router			/v1/appointments/{id} [get]
func (co Controller) GetAppointment(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, AppointmentResponse{Error: &e})
		return
	}

	appointment, ok := co.Store.AppointmentByID(uri.ID.UUID)
	if !ok {
		e := store.ErrNotFound.Error()
		c.JSON(http.StatusNotFound, AppointmentResponse{Error: &e})
		return
	}

	data := newAppointment(c, appointment)
	c.JSON(http.StatusOK, AppointmentResponse{Data: &data})
}

// @Summary		Update appointment
// @Description	Updates an existing appointment. Only values to be updated need to be specified.
// @Tags			Appointments
// @Accept		json
// @Produce		json
// @Success		200			{object}	AppointmentResponse
// @Failure		400			{object}	AppointmentResponse
// @Failure		404			{object}	AppointmentResponse
// @Failure		500			{object}	AppointmentResponse
// @Param			id			path		URIID				true	"ID of the appointment"
// @Param			appointment	body		AppointmentPatch	true	"Appointment"
// @Router			/v1/appointments/{id} [patch]
func (co Controller) UpdateAppointment(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, AppointmentResponse{Error: &e})
		return
	}

	var patch AppointmentPatch
	err := httputil.BindData(c, &patch)
	if err == nil {
		err = patch.validate()
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AppointmentResponse{Error: &e})
		return
	}

	appointment, err := co.Store.UpdateAppointment(c.Request.Context(), uri.ID.UUID, patch.apply)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AppointmentResponse{Error: &e})
		return
	}

	data := newAppointment(c, appointment)
	c.JSON(http.StatusOK, AppointmentResponse{Data: &data})
}

// @Summary		Delete appointment
// @Description	Deletes an appointment
// @Tags			Appointments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the appointment"
// @Router			/v1/appointments/{id} [delete]
func (co Controller) DeleteAppointment(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	if err := co.Store.DeleteAppointment(c.Request.Context(), uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
