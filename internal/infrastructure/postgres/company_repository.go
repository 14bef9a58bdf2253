package postgres

import (
	"context"
	"fmt"

	"github.com/jcastellanos/conecta-api/internal/domain"
	"github.com/jcastellanos/conecta-api/internal/domain/entity"
	"github.com/jcastellanos/conecta-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
// Acepta pool o tx (Querier).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, email, phone, tax_id, country, license_id, status, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Email, company.Phone, company.TaxID,
		company.Country, company.LicenseID, company.Status,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCompanyEmailExists
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), phone, tax_id, country, license_id, status, created_at, updated_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.TaxID, &c.Country,
		&c.LicenseID, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// ExistsByEmail informa si ya hay una empresa registrada con ese email.
func (r *CompanyRepo) ExistsByEmail(email string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM companies WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check company email: %w", err)
	}
	return exists, nil
}

// LockByID toma un lock de fila sobre la empresa (FOR UPDATE). Dentro de una
// transacción serializa a los escritores que promueven owners de la misma
// empresa; el lock se libera en Commit/Rollback. Devuelve false si no existe.
func (r *CompanyRepo) LockByID(id string) (bool, error) {
	var lockedID string
	err := r.q.QueryRow(context.Background(),
		`SELECT id FROM companies WHERE id = $1 FOR UPDATE`, id).Scan(&lockedID)
	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("lock company: %w", err)
	}
	return true, nil
}
