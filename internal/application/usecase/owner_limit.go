package usecase

import (
	"github.com/jcastellanos/conecta-api/internal/domain"
	"github.com/jcastellanos/conecta-api/internal/domain/repository"
)

// MaxOwnersPerCompany tope fijo de usuarios con rol owner por empresa.
const MaxOwnersPerCompany = 2

// OwnerLimitGuard valida el invariante de máximo de owners por empresa.
// Es un chequeo leer-y-decidir sin mutaciones: sirve como fast path de UX
// tanto para el cambio de rol como para una eventual aceptación de invitación
// con rol owner. La garantía real bajo concurrencia la da la transacción con
// lock de empresa en RoleUseCase.
type OwnerLimitGuard struct {
	userRepo repository.UserRepository
}

// NewOwnerLimitGuard construye el guard con el puerto de persistencia.
func NewOwnerLimitGuard(userRepo repository.UserRepository) *OwnerLimitGuard {
	return &OwnerLimitGuard{userRepo: userRepo}
}

// CheckCanPromote devuelve domain.ErrOwnerLimitReached si la empresa ya está
// en el tope de owners.
func (g *OwnerLimitGuard) CheckCanPromote(companyID string) error {
	count, err := g.userRepo.CountOwnersByCompany(companyID)
	if err != nil {
		return err
	}
	if count >= MaxOwnersPerCompany {
		return domain.ErrOwnerLimitReached
	}
	return nil
}
