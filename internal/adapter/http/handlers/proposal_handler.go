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

// ProposalHandler handles HTTP requests for the caller's proposals,
// including issuing signed download links for attached documents.

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

func (h *ProposalHandler) ListProposals(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}
	status, limit, offset := pageParams(c)

	page, err := h.usecase.List(c.Request.Context(), client.ID, status, limit, offset)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Paged(response.FromProposals(page.Items), page.Limit, page.Offset, len(page.Items)))
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}

	proposal, err := h.usecase.Get(c.Request.Context(), client.ID, c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromProposal(proposal)))
}

func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}

	var payload request.CreateProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.Create(c.Request.Context(), client.ID, usecase.CreateProposalInput{
		Title:       payload.Title,
		Description: payload.Description,
		Amount:      payload.Amount,
		Status:      payload.Status,
	})
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.Created("Proposal created successfully", response.FromProposal(proposal)))
}

func (h *ProposalHandler) UpdateStatus(c *gin.Context) {
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
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OKMessage("Proposal status updated successfully"))
}

// DownloadProposal issues a short-lived signed URL for the proposal's
// document. The link expires after 15 minutes.
func (h *ProposalHandler) DownloadProposal(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}

	link, err := h.usecase.DownloadURL(c.Request.Context(), client.ID, c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromDownloadLink(link.URL, link.ExpiresIn)))
}

func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), client.ID, c.Param("id")); err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OKMessage("Proposal deleted successfully"))
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingFields):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Title, description, and amount are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status must be one of: draft, sent, accepted, rejected, revised", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "The specified proposal does not exist", http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "You do not have permission to access this proposal", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNoFile):
		return pkg.NewDomainErrorSimple("PDF_NOT_AVAILABLE", "No PDF file has been uploaded for this proposal", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
