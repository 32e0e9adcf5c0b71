package handler

import (
	"errors"

	"mentorlink/internal/delivery/http/middleware"
	"mentorlink/internal/domain/connection"
	"mentorlink/internal/pkg/response"
	"mentorlink/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ConnectionHandler struct {
	uc       usecase.ConnectionUsecase
	validate *validator.Validate
}

type requestConnectionRequest struct {
	TargetID uuid.UUID `json:"target_id" validate:"required"`
}

type resolveConnectionRequest struct {
	RequesterID uuid.UUID `json:"requester_id" validate:"required"`
}

func NewConnectionHandler(uc usecase.ConnectionUsecase, validate *validator.Validate) *ConnectionHandler {
	return &ConnectionHandler{uc: uc, validate: validate}
}

func (h *ConnectionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/request", h.Request)
	r.Post("/accept", h.Accept)
	r.Post("/reject", h.Reject)
}

// Request sends a connection request from the authenticated user.
func (h *ConnectionHandler) Request(c fiber.Ctx) error {
	var req requestConnectionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	err := h.uc.Request(c.Context(), middleware.AuthenticatedUserID(c), req.TargetID)
	if err != nil {
		return mapConnectionError(err)
	}
	return response.Success(c, fiber.StatusOK, "Connection request sent", nil)
}

// Accept resolves a pending request addressed to the authenticated user.
func (h *ConnectionHandler) Accept(c fiber.Ctx) error {
	var req resolveConnectionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	err := h.uc.Accept(c.Context(), middleware.AuthenticatedUserID(c), req.RequesterID)
	if err != nil {
		return mapConnectionError(err)
	}
	return response.Success(c, fiber.StatusOK, "Connection request accepted", nil)
}

func (h *ConnectionHandler) Reject(c fiber.Ctx) error {
	var req resolveConnectionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	err := h.uc.Reject(c.Context(), middleware.AuthenticatedUserID(c), req.RequesterID)
	if err != nil {
		return mapConnectionError(err)
	}
	return response.Success(c, fiber.StatusOK, "Connection request rejected", nil)
}

func mapConnectionError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, connection.ErrDuplicateRequest):
		return middleware.NewAppError(fiber.StatusConflict, "Connection request already exists", nil, err)
	case errors.Is(err, connection.ErrRequestNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Connection request not found", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
