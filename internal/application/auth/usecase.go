package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastellanos/conecta-api/internal/application/dto"
	"github.com/jcastellanos/conecta-api/internal/domain"
	"github.com/jcastellanos/conecta-api/internal/domain/entity"
	"github.com/jcastellanos/conecta-api/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: registro de empresa+owner y login.
// No emite tokens de sesión; devuelve la identidad verificada y el handler
// HTTP decide cómo materializarla (JWT, cookie).
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	licenseRepo repository.LicenseRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, licenseRepo repository.LicenseRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, licenseRepo: licenseRepo}
}

// Register crea una empresa y su usuario owner en estado demo.
// Reglas: un mismo email solo puede registrar una empresa; el email de la
// empresa (si viene) debe ser único; la licencia indicada debe existir (o se
// asigna la Demo por defecto); el password debe cumplir la política.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	ownerEmail := entity.NormalizeEmail(in.OwnerEmail)

	created, err := uc.userRepo.HasCreatedCompany(ownerEmail)
	if err != nil {
		return nil, err
	}
	if created {
		return nil, domain.ErrOwnerAlreadyExists
	}

	if in.CompanyEmail != "" {
		exists, err := uc.companyRepo.ExistsByEmail(entity.NormalizeEmail(in.CompanyEmail))
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrCompanyEmailExists
		}
	}

	license, err := uc.resolveLicense(in.LicenseID)
	if err != nil {
		return nil, err
	}

	if err := ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.CompanyName,
		Email:     entity.NormalizeEmail(in.CompanyEmail),
		Phone:     in.CompanyPhone,
		TaxID:     in.TaxID,
		Country:   in.Country,
		LicenseID: license.ID,
		Status:    entity.CompanyStatusDemo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}

	owner := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Name:         in.OwnerName,
		Email:        ownerEmail,
		PasswordHash: string(hash),
		Role:         entity.RoleOwner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(owner); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		Company: dto.CompanySummary{
			ID:     company.ID,
			Name:   company.Name,
			Email:  company.Email,
			Status: company.Status,
		},
		User: dto.UserSummary{
			ID:    owner.ID,
			Name:  owner.Name,
			Email: owner.Email,
			Role:  owner.Role,
		},
		Message: "empresa y owner registrados correctamente",
	}, nil
}

// Login verifica credenciales y estado de la empresa, y devuelve la identidad.
// Email desconocido y password incorrecto producen el mismo
// domain.ErrInvalidCredentials para no filtrar existencia de cuentas.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.UserIdentity, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := uc.userRepo.GetByEmailGlobal(entity.NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	company, err := uc.companyRepo.GetByID(user.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	if !company.CanLogin() {
		return nil, domain.ErrCompanyInactive
	}

	// El último login es informativo: un fallo aquí no debe tumbar la sesión.
	_ = uc.userRepo.UpdateLastLogin(user.ID)

	return &dto.UserIdentity{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CompanyID: user.CompanyID,
	}, nil
}

func (uc *AuthUseCase) resolveLicense(licenseID string) (*entity.License, error) {
	if licenseID != "" {
		license, err := uc.licenseRepo.GetByID(licenseID)
		if err != nil {
			return nil, err
		}
		if license == nil {
			return nil, domain.ErrLicenseNotFound
		}
		return license, nil
	}
	license, err := uc.licenseRepo.GetByName(entity.DefaultLicenseName)
	if err != nil {
		return nil, err
	}
	if license == nil {
		return nil, domain.ErrNoLicenseAvailable
	}
	return license, nil
}
