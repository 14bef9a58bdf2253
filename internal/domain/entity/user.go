package entity

import (
	"strings"
	"time"
)

// Roles válidos para User.
const (
	RoleOwner = "owner" // propietario: administra la empresa (máx. 2 por empresa)
	RoleAgent = "agent" // rol por defecto para miembros invitados
)

// ValidRole informa si el rol pertenece al conjunto cerrado de roles.
// El flujo de cambio de rol valida contra esta lista antes de persistir.
func ValidRole(role string) bool {
	return role == RoleOwner || role == RoleAgent
}

// User representa un usuario del sistema (pertenece a una Company).
// El par (CompanyID, email en minúsculas) es único; el índice de la tabla
// users es la garantía real bajo concurrencia.
type User struct {
	ID           string
	CompanyID    string
	Name         string
	Email        string // siempre normalizado a minúsculas antes de comparar o persistir
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // owner, agent
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOwner informa si el usuario tiene rol propietario.
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// NormalizeEmail normaliza un email para comparación y almacenamiento.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
