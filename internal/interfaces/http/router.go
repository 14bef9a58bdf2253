package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/conecta-api/internal/application/auth"
	"github.com/jcastellanos/conecta-api/internal/application/invitation"
	"github.com/jcastellanos/conecta-api/internal/application/usecase"
	"github.com/jcastellanos/conecta-api/internal/domain/entity"
	"github.com/jcastellanos/conecta-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	InvitationUC   *invitation.InvitationUseCase
	CompanyUsersUC *usecase.CompanyUsersUseCase
	RoleUC         *usecase.RoleUseCase
	JWTCfg         config.JWTConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTCfg)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTCfg.Secret), authHandler.Me)

	// Invitations: crear requiere sesión; validar y aceptar son públicos
	// (el invitado aún no tiene cuenta).
	invitations := api.Group("/invitations")
	invitationHandler := NewInvitationHandler(deps.InvitationUC)
	invitations.Post("/", AuthMiddleware(deps.JWTCfg.Secret), invitationHandler.Create)
	invitations.Get("/validate/:token", invitationHandler.Validate)
	invitations.Post("/accept", invitationHandler.Accept)

	// Companies (protegido)
	companies := api.Group("/companies", AuthMiddleware(deps.JWTCfg.Secret))
	companyHandler := NewCompanyHandler(deps.CompanyUsersUC, deps.RoleUC)
	companies.Get("/users", companyHandler.ListUsers)
	companies.Get("/users/count", companyHandler.CountUsers)
	// Solo un owner puede cambiar roles.
	companies.Patch("/users/:userId/role", RequireRole(entity.RoleOwner), companyHandler.ChangeUserRole)
}
