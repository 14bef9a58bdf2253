package postgres

import (
	"context"
	"fmt"

	"github.com/jcastellanos/conecta-api/internal/domain"
	"github.com/jcastellanos/conecta-api/internal/domain/entity"
	"github.com/jcastellanos/conecta-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, company_id, name, email, password_hash, role, last_login_at, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Acepta pool o tx (Querier); TxRunner lo construye sobre la transacción.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. El índice único (company_id, lower(email))
// resuelve la carrera entre dos aceptaciones concurrentes de la misma
// invitación: el perdedor recibe domain.ErrUserAlreadyExists.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, company_id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.CompanyID, user.Name, user.Email, user.PasswordHash, user.Role,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByEmailAndCompany obtiene un usuario por email normalizado y empresa.
func (r *UserRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND company_id = $2`
	return r.scanOne(query, email, companyID)
}

// GetByEmailGlobal obtiene un usuario por email sin acotar por empresa (login).
// El email solo es único por empresa; si varias lo comparten gana el usuario
// creado más recientemente, para que el lookup sea determinista.
func (r *UserRepo) GetByEmailGlobal(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 ORDER BY created_at DESC LIMIT 1`
	return r.scanOne(query, email)
}

// HasCreatedCompany informa si el email ya figura como owner de alguna empresa.
func (r *UserRepo) HasCreatedCompany(email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND role = $2)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, email, entity.RoleOwner).Scan(&exists); err != nil {
		return false, fmt.Errorf("check owner email: %w", err)
	}
	return exists, nil
}

// CountByCompany cuenta los usuarios de una empresa.
func (r *UserRepo) CountByCompany(companyID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM users WHERE company_id = $1`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// CountOwnersByCompany cuenta los owners de una empresa.
func (r *UserRepo) CountOwnersByCompany(companyID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM users WHERE company_id = $1 AND role = $2`,
		companyID, entity.RoleOwner).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count owners: %w", err)
	}
	return count, nil
}

// ListByCompany lista los usuarios de una empresa, más recientes primero.
func (r *UserRepo) ListByCompany(companyID string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.CompanyID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
			&u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// UpdateRole persiste únicamente el cambio de rol y devuelve el usuario actualizado.
func (r *UserRepo) UpdateRole(id, role string) (*entity.User, error) {
	query := `
		UPDATE users SET role = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns
	user, err := scanUser(r.q.QueryRow(context.Background(), query, id, role))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update role: %w", err)
	}
	return user, nil
}

// UpdateLastLogin registra el momento del último login.
func (r *UserRepo) UpdateLastLogin(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET last_login_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

func (r *UserRepo) scanOne(query string, args ...any) (*entity.User, error) {
	user, err := scanUser(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.CompanyID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
