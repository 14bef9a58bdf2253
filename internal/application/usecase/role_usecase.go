package usecase

import (
	"context"

	"github.com/jcastellanos/conecta-api/internal/application/dto"
	"github.com/jcastellanos/conecta-api/internal/domain"
	"github.com/jcastellanos/conecta-api/internal/domain/entity"
	"github.com/jcastellanos/conecta-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// Lo implementa postgres.TxRunner; los tests usan un fake que pasa los
// mismos repos en memoria.
type TxRunner interface {
	Run(ctx context.Context, fn func(users repository.UserRepository, companies repository.CompanyRepository) error) error
}

// RoleUseCase aplica cambios de rol sobre un usuario.
// Exactamente una mutación por llamada exitosa; cero mutaciones en cualquier
// camino de fallo.
type RoleUseCase struct {
	userRepo repository.UserRepository
	guard    *OwnerLimitGuard
	tx       TxRunner
}

// NewRoleUseCase construye el caso de uso de cambio de rol.
func NewRoleUseCase(userRepo repository.UserRepository, guard *OwnerLimitGuard, tx TxRunner) *RoleUseCase {
	return &RoleUseCase{userRepo: userRepo, guard: guard, tx: tx}
}

// ChangeRole cambia el rol del usuario objetivo.
//   - Rol fuera del conjunto cerrado → domain.ErrInvalidRole.
//   - Usuario inexistente → domain.ErrUserNotFound.
//   - Rol igual al actual → no-op idempotente, cero escrituras.
//   - Promoción a owner → se re-cuenta dentro de una transacción con lock de
//     la fila de la empresa, para que dos promociones concurrentes no superen
//     el tope; el guard previo es solo el fast path.
func (uc *RoleUseCase) ChangeRole(ctx context.Context, userID, newRole string) (*dto.UserResponse, error) {
	if !entity.ValidRole(newRole) {
		return nil, domain.ErrInvalidRole
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if user.Role == newRole {
		return userToResponse(user), nil
	}

	if newRole == entity.RoleOwner {
		if err := uc.guard.CheckCanPromote(user.CompanyID); err != nil {
			return nil, err
		}
		var updated *entity.User
		err := uc.tx.Run(ctx, func(users repository.UserRepository, companies repository.CompanyRepository) error {
			locked, err := companies.LockByID(user.CompanyID)
			if err != nil {
				return err
			}
			if !locked {
				return domain.ErrCompanyNotFound
			}
			count, err := users.CountOwnersByCompany(user.CompanyID)
			if err != nil {
				return err
			}
			if count >= MaxOwnersPerCompany {
				return domain.ErrOwnerLimitReached
			}
			updated, err = users.UpdateRole(userID, newRole)
			return err
		})
		if err != nil {
			return nil, err
		}
		return userToResponse(updated), nil
	}

	updated, err := uc.userRepo.UpdateRole(userID, newRole)
	if err != nil {
		return nil, err
	}
	return userToResponse(updated), nil
}
