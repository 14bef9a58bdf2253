package repository

import "github.com/jcastellanos/conecta-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// La implementación vive en infrastructure. Los métodos Get* devuelven
// (nil, nil) cuando no hay fila; los errores de infraestructura se envuelven.
type UserRepository interface {
	// Create persiste el usuario. El índice único (company_id, lower(email))
	// es la garantía de unicidad bajo concurrencia: una violación se traduce
	// a domain.ErrUserAlreadyExists.
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByEmailAndCompany busca por email normalizado dentro de una empresa.
	GetByEmailAndCompany(email, companyID string) (*entity.User, error)
	// GetByEmailGlobal busca por email sin acotar por empresa (solo login).
	// Si varias empresas comparten el email, gana el usuario creado más
	// recientemente.
	GetByEmailGlobal(email string) (*entity.User, error)
	// HasCreatedCompany informa si el email ya registró una empresa como owner.
	HasCreatedCompany(email string) (bool, error)
	CountByCompany(companyID string) (int, error)
	CountOwnersByCompany(companyID string) (int, error)
	ListByCompany(companyID string) ([]*entity.User, error)
	// UpdateRole persiste únicamente el cambio de rol y devuelve el usuario
	// actualizado. Devuelve domain.ErrUserNotFound si el id no existe.
	UpdateRole(id, role string) (*entity.User, error)
	UpdateLastLogin(id string) error
}
