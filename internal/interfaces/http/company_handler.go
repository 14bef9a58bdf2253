package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/conecta-api/internal/application/dto"
	"github.com/jcastellanos/conecta-api/internal/application/usecase"
	"github.com/jcastellanos/conecta-api/internal/domain"
)

// CompanyHandler operaciones sobre los usuarios de la empresa del actor.
type CompanyHandler struct {
	usersUC *usecase.CompanyUsersUseCase
	roleUC  *usecase.RoleUseCase
}

// NewCompanyHandler construye el handler de empresa.
func NewCompanyHandler(usersUC *usecase.CompanyUsersUseCase, roleUC *usecase.RoleUseCase) *CompanyHandler {
	return &CompanyHandler{usersUC: usersUC, roleUC: roleUC}
}

// ListUsers godoc
// @Summary      Listar usuarios de la empresa del actor
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/companies/users [get]
func (h *CompanyHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.usersUC.List(GetCompanyID(c))
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "COMPANY_NOT_FOUND", Message: "la empresa no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo listar usuarios"})
	}
	return c.JSON(out)
}

// CountUsers godoc
// @Summary      Contar usuarios de la empresa del actor (sin incluirlo)
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserCountResponse
// @Router       /api/companies/users/count [get]
func (h *CompanyHandler) CountUsers(c *fiber.Ctx) error {
	total, err := h.usersUC.Count(GetCompanyID(c))
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "COMPANY_NOT_FOUND", Message: "la empresa no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo contar usuarios"})
	}
	// El conteo excluye al usuario autenticado: el frontend muestra "otros miembros".
	return c.JSON(dto.UserCountResponse{Total: total - 1})
}

// ChangeUserRole godoc
// @Summary      Cambiar el rol de un usuario (solo owners)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string                 true  "id del usuario objetivo"
// @Param        body    body  dto.ChangeRoleRequest  true  "rol deseado"
// @Success      200     {object}  dto.UserResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/companies/users/{userId}/role [patch]
func (h *CompanyHandler) ChangeUserRole(c *fiber.Ctx) error {
	userID := c.Params("userId")
	var in dto.ChangeRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if userID == "" || in.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "userId y role son requeridos"})
	}

	out, err := h.roleUC.ChangeRole(c.Context(), userID, in.Role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRole):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ROLE", Message: "rol inválido"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		case errors.Is(err, domain.ErrCompanyNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "COMPANY_NOT_FOUND", Message: "la empresa no existe"})
		case errors.Is(err, domain.ErrOwnerLimitReached):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MAX_OWNERS_REACHED", Message: "se alcanzó el máximo de propietarios por empresa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "CHANGE_ROLE_ERROR", Message: "no se pudo cambiar el rol"})
	}
	return c.JSON(out)
}
