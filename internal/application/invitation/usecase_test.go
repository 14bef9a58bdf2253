package invitation_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellanos/conecta-api/internal/application/invitation"
	"github.com/jcastellanos/conecta-api/internal/domain"
	"github.com/jcastellanos/conecta-api/internal/domain/entity"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testFrontend = "http://app.local"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error { f.companies[c.ID] = c; return nil }
func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return f.companies[id], nil
}
func (f *fakeCompanyRepo) ExistsByEmail(email string) (bool, error) { return false, nil }
func (f *fakeCompanyRepo) LockByID(id string) (bool, error) {
	_, ok := f.companies[id]
	return ok, nil
}

type fakeUserRepo struct {
	users       []*entity.User
	createCalls int
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.createCalls++
	for _, existing := range f.users {
		if existing.CompanyID == u.CompanyID && existing.Email == u.Email {
			// Simula la violación del índice único (company_id, lower(email)).
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
func (f *fakeUserRepo) CountByCompany(companyID string) (int, error) {
	n := 0
	for _, u := range f.users {
		if u.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}
func (f *fakeUserRepo) CountOwnersByCompany(companyID string) (int, error) {
	n := 0
	for _, u := range f.users {
		if u.CompanyID == companyID && u.Role == entity.RoleOwner {
			n++
		}
	}
	return n, nil
}
func (f *fakeUserRepo) ListByCompany(companyID string) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range f.users {
		if u.CompanyID == companyID {
			list = append(list, u)
		}
	}
	return list, nil
}
func (f *fakeUserRepo) UpdateRole(id, role string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			u.Role = role
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
func (f *fakeUserRepo) UpdateLastLogin(id string) error { return nil }

type fakeMailer struct {
	sent    []invitation.InvitationEmail
	failErr error
}

func (f *fakeMailer) SendInvitation(email invitation.InvitationEmail) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.sent = append(f.sent, email)
	return nil
}

func newTestUseCase(t *testing.T) (*invitation.InvitationUseCase, *fakeCompanyRepo, *fakeUserRepo, *fakeMailer) {
	t.Helper()
	companies := &fakeCompanyRepo{companies: map[string]*entity.Company{
		"c1": {ID: "c1", Name: "Acme SAS", Status: entity.CompanyStatusActive},
	}}
	users := &fakeUserRepo{}
	mailer := &fakeMailer{}
	uc := invitation.NewInvitationUseCase(companies, users, mailer, invitation.Config{
		Secret:      testSecret,
		FrontendURL: testFrontend,
	})
	return uc, companies, users, mailer
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_GeneraLinkYEnviaCorreo(t *testing.T) {
	uc, _, _, mailer := newTestUseCase(t)

	out, err := uc.Create("c1", "actor1", "A@X.com")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.InvitationLink, testFrontend+"/invitation?token="),
		"el link debe apuntar al frontend con el token")
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "a@x.com", mailer.sent[0].To, "el destino debe ir normalizado")
	assert.Equal(t, "Acme SAS", mailer.sent[0].CompanyName)
}

func TestCreate_EmpresaInexistente(t *testing.T) {
	uc, _, _, mailer := newTestUseCase(t)

	_, err := uc.Create("no-existe", "actor1", "a@x.com")
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	assert.Empty(t, mailer.sent)
}

// Si el email ya está registrado en la empresa, no debe firmarse ni enviarse nada.
func TestCreate_EmailYaRegistrado(t *testing.T) {
	uc, _, users, mailer := newTestUseCase(t)
	users.users = append(users.users, &entity.User{
		ID: "u1", CompanyID: "c1", Email: "a@x.com", Role: entity.RoleAgent,
	})

	_, err := uc.Create("c1", "actor1", "A@x.com")
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	assert.Empty(t, mailer.sent, "no debe haber envío si falla el pre-chequeo")
}

func TestCreate_FalloDeEntrega(t *testing.T) {
	uc, _, _, mailer := newTestUseCase(t)
	mailer.failErr = assert.AnError

	_, err := uc.Create("c1", "actor1", "a@x.com")
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_ProyeccionDeSoloLectura(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)

	out, err := uc.Create("c1", "actor1", "a@x.com")
	require.NoError(t, err)
	token := tokenFromLink(t, out.InvitationLink)

	got, err := uc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "c1", got.CompanyID)
	assert.Equal(t, "Acme SAS", got.CompanyName)
}

func TestValidate_TokenInvalido(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)

	_, err := uc.Validate("token.adulterado.aqui")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

// ──────────────────────────────────────────────────────────────────────────────
// Accept
// ──────────────────────────────────────────────────────────────────────────────

func TestAccept_CreaUsuarioAgent(t *testing.T) {
	uc, _, users, _ := newTestUseCase(t)

	out, err := uc.Create("c1", "actor1", "a@x.com")
	require.NoError(t, err)

	accepted, err := uc.Accept(tokenFromLink(t, out.InvitationLink), "Alice", "Secret123!")
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAgent, accepted.User.Role, "los invitados nunca entran como owner")
	assert.Equal(t, "c1", accepted.CompanyID)
	assert.Equal(t, "Alice", accepted.User.Name)

	stored, err := users.GetByEmailAndCompany("a@x.com", "c1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "Secret123!", stored.PasswordHash, "el password debe persistirse hasheado")
}

// El email se registró entre la emisión y la aceptación (carrera): debe fallar
// sin crear una segunda fila.
func TestAccept_EmailRegistradoEnElInterin(t *testing.T) {
	uc, _, users, _ := newTestUseCase(t)

	out, err := uc.Create("c1", "actor1", "a@x.com")
	require.NoError(t, err)

	users.users = append(users.users, &entity.User{
		ID: "u9", CompanyID: "c1", Email: "a@x.com", Role: entity.RoleAgent, CreatedAt: time.Now(),
	})

	_, err = uc.Accept(tokenFromLink(t, out.InvitationLink), "Alice", "Secret123!")
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	assert.Zero(t, users.createCalls, "no debe intentarse la creación")
}

func TestAccept_TokenInvalido(t *testing.T) {
	uc, _, users, _ := newTestUseCase(t)

	_, err := uc.Accept("no.es.jwt", "Alice", "Secret123!")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	assert.Empty(t, users.users)
}

// ──────────────────────────────────────────────────────────────────────────────
// End-to-end: crear → validar → aceptar
// ──────────────────────────────────────────────────────────────────────────────

func TestCicloCompleto(t *testing.T) {
	uc, _, _, mailer := newTestUseCase(t)

	out, err := uc.Create("c1", "actor1", "a@x.com")
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	token := tokenFromLink(t, out.InvitationLink)

	validated, err := uc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", validated.Email)
	assert.Equal(t, "c1", validated.CompanyID)
	assert.Equal(t, "Acme SAS", validated.CompanyName)

	accepted, err := uc.Accept(token, "Alice", "Secret123!")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAgent, accepted.User.Role)
	assert.Equal(t, "c1", accepted.CompanyID)

	// Reusar el token con el mismo email debe chocar con la unicidad.
	_, err = uc.Accept(token, "Alice2", "Secret123!")
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func tokenFromLink(t *testing.T, link string) string {
	t.Helper()
	parts := strings.SplitN(link, "token=", 2)
	require.Len(t, parts, 2, "el link debe contener el token")
	return parts[1]
}
