package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/conecta-api/internal/application/dto"
	"github.com/jcastellanos/conecta-api/internal/application/invitation"
	"github.com/jcastellanos/conecta-api/internal/domain"
)

// InvitationHandler maneja el ciclo crear → validar → aceptar de invitaciones.
type InvitationHandler struct {
	uc *invitation.InvitationUseCase
}

// NewInvitationHandler construye el handler de invitaciones.
func NewInvitationHandler(uc *invitation.InvitationUseCase) *InvitationHandler {
	return &InvitationHandler{uc: uc}
}

// Create godoc
// @Summary      Invitar un email a la empresa del actor
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateInvitationRequest  true  "email a invitar"
// @Success      201   {object}  dto.CreateInvitationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invitations [post]
func (h *InvitationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvitationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}

	out, err := h.uc.Create(GetCompanyID(c), GetUserID(c), in.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCompanyNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "COMPANY_NOT_FOUND", Message: "la empresa no existe"})
		case errors.Is(err, domain.ErrUserAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "USER_EXISTS", Message: "el email ya está registrado en esta empresa"})
		case errors.Is(err, domain.ErrDeliveryFailed):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "DELIVERY_FAILED", Message: "no se pudo enviar la invitación"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INVITATION_ERROR", Message: "no se pudo crear la invitación"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Validate godoc
// @Summary      Validar un token de invitación (público)
// @Tags         invitations
// @Produce      json
// @Param        token  path  string  true  "token firmado"
// @Success      200    {object}  dto.ValidateInvitationResponse
// @Failure      401    {object}  dto.ErrorResponse
// @Router       /api/invitations/validate/{token} [get]
func (h *InvitationHandler) Validate(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "token es requerido"})
	}
	out, err := h.uc.Validate(token)
	if err != nil {
		return h.tokenError(c, err)
	}
	return c.JSON(out)
}

// Accept godoc
// @Summary      Aceptar una invitación (público)
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AcceptInvitationRequest  true  "token, nombre y password"
// @Success      201   {object}  dto.AcceptInvitationResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invitations/accept [post]
func (h *InvitationHandler) Accept(c *fiber.Ctx) error {
	var in dto.AcceptInvitationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Token == "" || in.Name == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "token, name y password son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}

	out, err := h.uc.Accept(in.Token, in.Name, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "USER_EXISTS", Message: "el email ya está registrado en esta empresa"})
		}
		return h.tokenError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *InvitationHandler) tokenError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrExpiredToken):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "EXPIRED_TOKEN", Message: "la invitación ha expirado"})
	case errors.Is(err, domain.ErrInvalidToken):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token de invitación inválido"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INVITATION_ERROR", Message: "no se pudo procesar la invitación"})
}
