package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/conecta-api/internal/application/auth"
	"github.com/jcastellanos/conecta-api/internal/application/dto"
	"github.com/jcastellanos/conecta-api/internal/domain"
	"github.com/jcastellanos/conecta-api/pkg/config"
	"github.com/jcastellanos/conecta-api/pkg/jwt"
)

// AuthHandler maneja registro de empresas y login.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	jwtCfg config.JWTConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{uc: uc, jwtCfg: jwtCfg}
}

// Register godoc
// @Summary      Registrar empresa y usuario owner
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "datos de la empresa y el owner"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CompanyName == "" || in.OwnerName == "" || in.OwnerEmail == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_name, owner_name, owner_email y password son requeridos"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOwnerAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OWNER_EMAIL_EXISTS", Message: "este email ya registró una empresa"})
		case errors.Is(err, domain.ErrCompanyEmailExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "COMPANY_EMAIL_EXISTS", Message: "el email de la empresa ya está registrado"})
		case errors.Is(err, domain.ErrLicenseNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_LICENSE", Message: "licencia inválida"})
		case errors.Is(err, domain.ErrNoLicenseAvailable):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_LICENSE_AVAILABLE", Message: "no hay licencia por defecto disponible"})
		case errors.Is(err, domain.ErrWeakPassword):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "WEAK_PASSWORD", Message: "el password debe tener 8+ caracteres con mayúscula, minúscula, número y carácter especial"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "REGISTER_ERROR", Message: "no se pudo completar el registro"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	identity, err := h.uc.Login(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CREDENTIALS", Message: "email y password son requeridos"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
		case errors.Is(err, domain.ErrCompanyNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "COMPANY_NOT_FOUND", Message: "la empresa no existe"})
		case errors.Is(err, domain.ErrCompanyInactive):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "COMPANY_INACTIVE", Message: "la cuenta de la empresa no está activa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "LOGIN_ERROR", Message: "no se pudo iniciar sesión"})
	}

	// La identidad viene verificada; acuñar el token de sesión es asunto del
	// borde HTTP, no del caso de uso.
	token, err := jwt.Generate(h.jwtCfg.Secret, identity.ID, identity.CompanyID, identity.Role, h.jwtCfg.Issuer, h.jwtCfg.Expiration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "LOGIN_ERROR", Message: "no se pudo emitir el token"})
	}
	return c.JSON(dto.LoginResponse{Token: token, User: *identity})
}

// Me godoc
// @Summary      Identidad del usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserIdentity
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"user_id":    GetUserID(c),
		"company_id": GetCompanyID(c),
		"role":       GetRole(c),
	})
}
