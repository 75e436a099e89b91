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

// LeadHandler handles HTTP requests for the caller's own leads. Every
// route behind it runs under RequireAuth.

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

func (h *LeadHandler) ListLeads(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}
	status, limit, offset := pageParams(c)

	page, err := h.usecase.List(c.Request.Context(), client.ID, status, limit, offset)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Paged(response.FromLeads(page.Items), page.Limit, page.Offset, len(page.Items)))
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}

	lead, err := h.usecase.Get(c.Request.Context(), client.ID, c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromLead(lead)))
}

func (h *LeadHandler) CreateLead(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}

	var payload request.CreateLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.Create(c.Request.Context(), client.ID, usecase.CreateLeadInput{
		Name:   payload.Name,
		Phone:  payload.Phone,
		Email:  payload.Email,
		Status: payload.Status,
		Notes:  payload.Notes,
	})
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.Created("Lead created successfully", response.FromLead(lead)))
}

func (h *LeadHandler) UpdateLead(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}

	var payload request.UpdateLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	err := h.usecase.Update(c.Request.Context(), client.ID, c.Param("id"), usecase.UpdateLeadInput{
		Name:          payload.Name,
		Phone:         payload.Phone,
		Email:         payload.Email,
		Status:        payload.Status,
		Notes:         payload.Notes,
		LastContacted: payload.LastContacted,
	})
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OKMessage("Lead updated successfully"))
}

func (h *LeadHandler) DeleteLead(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), client.ID, c.Param("id")); err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OKMessage("Lead deleted successfully"))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingFields):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Name, phone, and email are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status must be one of: hot, warm, cold, dead", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "The specified lead does not exist", http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "You do not have permission to access this lead", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
