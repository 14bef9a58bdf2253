package dto

import "time"

// UserSummary proyección pública de un usuario (sin password hash).
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserResponse salida completa de un usuario para listados.
type UserResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ChangeRoleRequest entrada para cambiar el rol de un usuario.
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=owner agent"`
}

// UserListResponse lista de usuarios de una empresa.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// UserCountResponse total de usuarios de una empresa.
type UserCountResponse struct {
	Total int `json:"total"`
}
