package handlers

import (
	"errors"
	"net/http"

	request "client_portal/internal/adapter/http/dto/request"
	response "client_portal/internal/adapter/http/dto/response"
	"client_portal/internal/usecase"
	"client_portal/pkg"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler handles HTTP requests for the caller's appointments.

type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}
	status, limit, offset := pageParams(c)

	page, err := h.usecase.List(c.Request.Context(), client.ID, status, limit, offset)
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Paged(response.FromAppointments(page.Items), page.Limit, page.Offset, len(page.Items)))
}

func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}

	appointment, err := h.usecase.Get(c.Request.Context(), client.ID, c.Param("id"))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromAppointment(appointment)))
}

// CreateAppointment books an appointment against one of the caller's own
// leads. A missing or foreign lead fails with the lead's classification,
// not a generic validation error.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}

	var payload request.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	appointment, err := h.usecase.Create(c.Request.Context(), client.ID, usecase.CreateAppointmentInput{
		LeadID: payload.LeadID,
		Date:   payload.Date,
		Time:   payload.Time,
		Notes:  payload.Notes,
	})
	if err != nil {
		appErr := mapAppointmentCreateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.Created("Appointment created successfully", response.FromAppointment(appointment)))
}

func (h *AppointmentHandler) UpdateOutcome(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}

	var payload request.UpdateOutcomeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	err := h.usecase.UpdateOutcome(c.Request.Context(), client.ID, c.Param("id"), payload.Outcome, payload.Notes)
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OKMessage("Appointment outcome updated successfully"))
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), client.ID, c.Param("id")); err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OKMessage("Appointment deleted successfully"))
}

func mapAppointmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_OUTCOME", "Outcome must be one of: completed, no-show, follow-up, cancelled", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "The specified appointment does not exist", http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "You do not have permission to access this appointment", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapAppointmentCreateError reports lead-lookup failures as lead errors:
// on the create path NotFound/Forbidden can only come from resolving the
// referenced lead.
func mapAppointmentCreateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingFields):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Lead ID, date, and time are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "The specified lead does not exist", http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "You do not have permission to create appointments for this lead", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
