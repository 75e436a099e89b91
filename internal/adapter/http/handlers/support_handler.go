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

type SupportHandler struct {
	usecase usecase.ISupportTicketUseCase
}

func NewSupportHandler(uc usecase.ISupportTicketUseCase) *SupportHandler {
	return &SupportHandler{usecase: uc}
}

func (h *SupportHandler) ListTickets(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}
	status, limit, offset := pageParams(c)

	page, err := h.usecase.List(c.Request.Context(), client.ID, status, limit, offset)
	if err != nil {
		appErr := mapSupportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Paged(response.FromSupportTickets(page.Items), page.Limit, page.Offset, len(page.Items)))
}

func (h *SupportHandler) GetTicket(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}

	ticket, err := h.usecase.Get(c.Request.Context(), client.ID, c.Param("id"))
	if err != nil {
		appErr := mapSupportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromSupportTicket(ticket)))
}

func (h *SupportHandler) CreateTicket(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}

	var payload request.CreateTicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.Create(c.Request.Context(), client.ID, usecase.CreateTicketInput{
		Subject:  payload.Subject,
		Message:  payload.Message,
		Priority: payload.Priority,
	})
	if err != nil {
		appErr := mapSupportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.Created("Support ticket created successfully", response.FromSupportTicket(ticket)))
}

func (h *SupportHandler) UpdateStatus(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}

	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	err := h.usecase.UpdateStatus(c.Request.Context(), client.ID, c.Param("id"), payload.Status)
	if err != nil {
		appErr := mapSupportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OKMessage("Ticket status updated successfully"))
}

func (h *SupportHandler) AddReply(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}

	var payload request.AddReplyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	reply, err := h.usecase.AddReply(c.Request.Context(), client.ID, c.Param("id"), payload.Message)
	if err != nil {
		appErr := mapSupportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.Created("Reply added successfully", response.FromReply(reply)))
}

func (h *SupportHandler) DeleteTicket(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), client.ID, c.Param("id")); err != nil {
		appErr := mapSupportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OKMessage("Support ticket deleted successfully"))
}

func mapSupportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyMessage):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Message is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingFields):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Subject and message are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status must be one of: open, in_progress, resolved, closed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPriority):
		return pkg.NewDomainErrorSimple("INVALID_PRIORITY", "Priority must be one of: low, medium, high, urgent", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "The specified support ticket does not exist", http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "You do not have permission to access this support ticket", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
