package usecase

import (
	"github.com/jcastellanos/conecta-api/internal/application/dto"
	"github.com/jcastellanos/conecta-api/internal/domain"
	"github.com/jcastellanos/conecta-api/internal/domain/entity"
	"github.com/jcastellanos/conecta-api/internal/domain/repository"
)

// CompanyUsersUseCase listados y conteos de usuarios de una empresa.
type CompanyUsersUseCase struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
}

// NewCompanyUsersUseCase construye el caso de uso.
func NewCompanyUsersUseCase(companyRepo repository.CompanyRepository, userRepo repository.UserRepository) *CompanyUsersUseCase {
	return &CompanyUsersUseCase{companyRepo: companyRepo, userRepo: userRepo}
}

// List devuelve los usuarios de la empresa.
func (uc *CompanyUsersUseCase) List(companyID string) (*dto.UserListResponse, error) {
	if err := uc.checkCompany(companyID); err != nil {
		return nil, err
	}
	users, err := uc.userRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *userToResponse(u))
	}
	return &dto.UserListResponse{Users: items}, nil
}

// Count devuelve el total de usuarios de la empresa.
func (uc *CompanyUsersUseCase) Count(companyID string) (int, error) {
	if err := uc.checkCompany(companyID); err != nil {
		return 0, err
	}
	return uc.userRepo.CountByCompany(companyID)
}

func (uc *CompanyUsersUseCase) checkCompany(companyID string) error {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrCompanyNotFound
	}
	return nil
}

func userToResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		CompanyID:   u.CompanyID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
