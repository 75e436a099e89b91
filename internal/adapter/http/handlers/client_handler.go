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

type ClientHandler struct {
	usecase usecase.IClientProfileUseCase
}

func NewClientHandler(uc usecase.IClientProfileUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) GetProfile(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}

	profile, err := h.usecase.Get(c.Request.Context(), client.ID)
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromClientProfile(profile)))
}

func (h *ClientHandler) UpdateProfile(c *gin.Context) {
	client, ok := authedClient(c)
	if !ok {
		return
	}

	var payload request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	profile, err := h.usecase.Update(c.Request.Context(), client.ID, usecase.UpdateProfileInput{
		Name:    payload.Name,
		Company: payload.Company,
		Phone:   payload.Phone,
	})
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Created("Profile updated successfully", response.FromClientProfile(profile)))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client profile does not exist", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
