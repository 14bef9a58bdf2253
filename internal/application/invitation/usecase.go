package invitation

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastellanos/conecta-api/internal/application/dto"
	"github.com/jcastellanos/conecta-api/internal/domain"
	"github.com/jcastellanos/conecta-api/internal/domain/entity"
	"github.com/jcastellanos/conecta-api/internal/domain/repository"
	"github.com/jcastellanos/conecta-api/pkg/jwt"
)

// Config parámetros del ciclo de invitaciones.
type Config struct {
	Secret      string // secreto HS256 compartido con los tokens de sesión
	FrontendURL string // base para construir el link de invitación
}

// InvitationUseCase orquesta el ciclo crear → validar → aceptar de una
// invitación. No hay estado intermedio persistido: el token firmado es el
// único portador del estado "pendiente", acotado por su expiración de 24h.
type InvitationUseCase struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	mailer      Mailer
	cfg         Config
}

// NewInvitationUseCase construye el caso de uso de invitaciones.
func NewInvitationUseCase(companyRepo repository.CompanyRepository, userRepo repository.UserRepository, mailer Mailer, cfg Config) *InvitationUseCase {
	return &InvitationUseCase{companyRepo: companyRepo, userRepo: userRepo, mailer: mailer, cfg: cfg}
}

// Create emite una invitación para email dentro de la empresa del actor.
// Falla antes de firmar o enviar nada si la empresa no existe o el email ya
// está registrado en ella. Devuelve el link (útil para logs y tests); el
// fallo de entrega se reporta como domain.ErrDeliveryFailed sin reintentos.
func (uc *InvitationUseCase) Create(companyID, invitedBy, email string) (*dto.CreateInvitationResponse, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	normalized := entity.NormalizeEmail(email)
	existing, err := uc.userRepo.GetByEmailAndCompany(normalized, companyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	token, err := jwt.GenerateInvitation(uc.cfg.Secret, jwt.InvitationPayload{
		Email:       normalized,
		CompanyID:   companyID,
		CompanyName: company.Name, // snapshot del nombre al momento de emitir
		InvitedBy:   invitedBy,
	})
	if err != nil {
		return nil, err
	}

	link := uc.cfg.FrontendURL + "/invitation?token=" + token
	if err := uc.mailer.SendInvitation(InvitationEmail{
		To:             normalized,
		InvitationLink: link,
		CompanyName:    company.Name,
	}); err != nil {
		return nil, domain.ErrDeliveryFailed
	}

	return &dto.CreateInvitationResponse{InvitationLink: link}, nil
}

// Validate verifica el token y devuelve la proyección de solo lectura para
// presentación. No consulta la DB ni repite el chequeo de unicidad: es
// inspección pura del token, deliberadamente barata.
func (uc *InvitationUseCase) Validate(token string) (*dto.ValidateInvitationResponse, error) {
	payload, err := uc.verify(token)
	if err != nil {
		return nil, err
	}
	return &dto.ValidateInvitationResponse{
		Email:       payload.Email,
		CompanyID:   payload.CompanyID,
		CompanyName: payload.CompanyName,
	}, nil
}

// Accept consume la invitación: verifica el token, repite el chequeo de
// unicidad (el estado pudo cambiar desde la emisión) y crea el usuario con
// rol agent. Los invitados nunca entran como owner; la promoción es un flujo
// aparte. La carrera entre dos Accept simultáneos la resuelve el índice único
// de la tabla users, no el pre-chequeo.
func (uc *InvitationUseCase) Accept(token, name, password string) (*dto.AcceptInvitationResponse, error) {
	payload, err := uc.verify(token)
	if err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByEmailAndCompany(payload.Email, payload.CompanyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    payload.CompanyID,
		Name:         name,
		Email:        payload.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleAgent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	return &dto.AcceptInvitationResponse{
		User: dto.UserSummary{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
		CompanyID: user.CompanyID,
	}, nil
}

func (uc *InvitationUseCase) verify(token string) (*jwt.InvitationPayload, error) {
	payload, err := jwt.ParseInvitation(uc.cfg.Secret, token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}
	return payload, nil
}
