package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastellanos/conecta-api/internal/application/auth"
	"github.com/jcastellanos/conecta-api/internal/application/dto"
	"github.com/jcastellanos/conecta-api/internal/domain"
	"github.com/jcastellanos/conecta-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range f.users {
		if existing.CompanyID == u.CompanyID && existing.Email == u.Email {
			return domain.ErrUserAlreadyExists
		}
	}
	f.users = append(f.users, u)
	return nil
}
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.CompanyID == companyID {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) GetByEmailGlobal(email string) (*entity.User, error) {
	var latest *entity.User
	for _, u := range f.users {
		if u.Email == email && (latest == nil || u.CreatedAt.After(latest.CreatedAt)) {
			latest = u
		}
	}
	return latest, nil
}
func (f *fakeUserRepo) HasCreatedCompany(email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email && u.Role == entity.RoleOwner {
			return true, nil
		}
	}
	return false, nil
}
func (f *fakeUserRepo) CountByCompany(companyID string) (int, error)       { return 0, nil }
func (f *fakeUserRepo) CountOwnersByCompany(companyID string) (int, error) { return 0, nil }
func (f *fakeUserRepo) ListByCompany(companyID string) ([]*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) UpdateRole(id, role string) (*entity.User, error) {
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateLastLogin(id string) error {
	for _, u := range f.users {
		if u.ID == id {
			now := time.Now()
			u.LastLoginAt = &now
		}
	}
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
	emails    map[string]bool
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error {
	if c.Email != "" && f.emails[c.Email] {
		return domain.ErrCompanyEmailExists
	}
	f.companies[c.ID] = c
	if c.Email != "" {
		f.emails[c.Email] = true
	}
	return nil
}
func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return f.companies[id], nil
}
func (f *fakeCompanyRepo) ExistsByEmail(email string) (bool, error) { return f.emails[email], nil }
func (f *fakeCompanyRepo) LockByID(id string) (bool, error) {
	_, ok := f.companies[id]
	return ok, nil
}

type fakeLicenseRepo struct {
	byID   map[string]*entity.License
	byName map[string]*entity.License
}

func (f *fakeLicenseRepo) GetByID(id string) (*entity.License, error)     { return f.byID[id], nil }
func (f *fakeLicenseRepo) GetByName(name string) (*entity.License, error) { return f.byName[name], nil }

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo, *fakeCompanyRepo) {
	t.Helper()
	users := &fakeUserRepo{}
	companies := &fakeCompanyRepo{companies: map[string]*entity.Company{}, emails: map[string]bool{}}
	demo := &entity.License{ID: "lic-demo", Name: entity.DefaultLicenseName, MaxUsers: 5}
	licenses := &fakeLicenseRepo{
		byID:   map[string]*entity.License{"lic-demo": demo},
		byName: map[string]*entity.License{entity.DefaultLicenseName: demo},
	}
	return auth.NewAuthUseCase(users, companies, licenses), users, companies
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		CompanyName: "Acme SAS",
		OwnerName:   "Alice",
		OwnerEmail:  "Alice@Acme.com",
		Password:    "Secret123!",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaEmpresaDemoYOwner(t *testing.T) {
	uc, users, companies := newAuthFixture(t)

	out, err := uc.Register(validRegister())
	require.NoError(t, err)

	assert.Equal(t, entity.CompanyStatusDemo, out.Company.Status)
	assert.Equal(t, entity.RoleOwner, out.User.Role)
	assert.Equal(t, "alice@acme.com", out.User.Email, "el email debe normalizarse")

	require.Len(t, users.users, 1)
	assert.NotEqual(t, "Secret123!", users.users[0].PasswordHash)
	assert.Len(t, companies.companies, 1)

	stored := companies.companies[out.Company.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "lic-demo", stored.LicenseID, "sin licencia explícita se asigna la Demo")
}

func TestRegister_EmailYaRegistroEmpresa(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	_, err := uc.Register(validRegister())
	require.NoError(t, err)

	req := validRegister()
	req.CompanyName = "Otra SAS"
	_, err = uc.Register(req)
	assert.ErrorIs(t, err, domain.ErrOwnerAlreadyExists)
}

func TestRegister_EmailDeEmpresaDuplicado(t *testing.T) {
	uc, _, companies := newAuthFixture(t)
	companies.emails["contacto@acme.com"] = true

	req := validRegister()
	req.CompanyEmail = "Contacto@Acme.com"
	_, err := uc.Register(req)
	assert.ErrorIs(t, err, domain.ErrCompanyEmailExists)
}

func TestRegister_LicenciaInexistente(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	req := validRegister()
	req.LicenseID = "lic-que-no-existe"
	_, err := uc.Register(req)
	assert.ErrorIs(t, err, domain.ErrLicenseNotFound)
}

func TestRegister_PasswordDebil(t *testing.T) {
	uc, users, _ := newAuthFixture(t)

	req := validRegister()
	req.Password = "corta"
	_, err := uc.Register(req)
	assert.ErrorIs(t, err, domain.ErrWeakPassword)
	assert.Empty(t, users.users)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func seedLoginUser(t *testing.T, users *fakeUserRepo, companies *fakeCompanyRepo, status string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Secret123!"), bcrypt.MinCost)
	require.NoError(t, err)

	companies.companies["c1"] = &entity.Company{ID: "c1", Name: "Acme SAS", Status: status}
	u := &entity.User{
		ID:           "u1",
		CompanyID:    "c1",
		Name:         "Alice",
		Email:        "alice@acme.com",
		PasswordHash: string(hash),
		Role:         entity.RoleOwner,
		CreatedAt:    time.Now(),
	}
	users.users = append(users.users, u)
	return u
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, users, companies := newAuthFixture(t)
	seedLoginUser(t, users, companies, entity.CompanyStatusActive)

	got, err := uc.Login(dto.LoginRequest{Email: "Alice@Acme.com", Password: "Secret123!"})
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "c1", got.CompanyID)
	assert.Equal(t, entity.RoleOwner, got.Role)
	assert.NotNil(t, users.users[0].LastLoginAt, "el login exitoso registra el último acceso")
}

func TestLogin_EmpresaDemoPuedeEntrar(t *testing.T) {
	uc, users, companies := newAuthFixture(t)
	seedLoginUser(t, users, companies, entity.CompanyStatusDemo)

	_, err := uc.Login(dto.LoginRequest{Email: "alice@acme.com", Password: "Secret123!"})
	assert.NoError(t, err)
}

func TestLogin_CredencialesFaltantes(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{Email: "", Password: "Secret123!"})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)

	_, err = uc.Login(dto.LoginRequest{Email: "alice@acme.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}

// Email desconocido y password incorrecto deben ser indistinguibles.
func TestLogin_CredencialesInvalidasSonUniformes(t *testing.T) {
	uc, users, companies := newAuthFixture(t)
	seedLoginUser(t, users, companies, entity.CompanyStatusActive)

	_, errDesconocido := uc.Login(dto.LoginRequest{Email: "nadie@acme.com", Password: "Secret123!"})
	_, errPassword := uc.Login(dto.LoginRequest{Email: "alice@acme.com", Password: "Incorrecta1!"})

	assert.ErrorIs(t, errDesconocido, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errPassword, domain.ErrInvalidCredentials)
	assert.Equal(t, errDesconocido, errPassword)
}

func TestLogin_EmpresaInactiva(t *testing.T) {
	uc, users, companies := newAuthFixture(t)
	seedLoginUser(t, users, companies, entity.CompanyStatusInactive)

	_, err := uc.Login(dto.LoginRequest{Email: "alice@acme.com", Password: "Secret123!"})
	assert.ErrorIs(t, err, domain.ErrCompanyInactive)
}

// Con el mismo email en dos empresas gana la cuenta más reciente.
func TestLogin_EmailEnVariasEmpresas(t *testing.T) {
	uc, users, companies := newAuthFixture(t)
	seedLoginUser(t, users, companies, entity.CompanyStatusActive)

	hash, err := bcrypt.GenerateFromPassword([]byte("Secret123!"), bcrypt.MinCost)
	require.NoError(t, err)
	companies.companies["c2"] = &entity.Company{ID: "c2", Name: "Beta SAS", Status: entity.CompanyStatusActive}
	users.users = append(users.users, &entity.User{
		ID:           "u2",
		CompanyID:    "c2",
		Email:        "alice@acme.com",
		PasswordHash: string(hash),
		Role:         entity.RoleAgent,
		CreatedAt:    time.Now().Add(time.Hour),
	})

	got, err := uc.Login(dto.LoginRequest{Email: "alice@acme.com", Password: "Secret123!"})
	require.NoError(t, err)
	assert.Equal(t, "u2", got.ID)
	assert.Equal(t, "c2", got.CompanyID)
}
