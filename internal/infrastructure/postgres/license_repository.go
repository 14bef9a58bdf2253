package postgres

import (
	"context"
	"fmt"

	"github.com/jcastellanos/conecta-api/internal/domain/entity"
	"github.com/jcastellanos/conecta-api/internal/domain/repository"
)

var _ repository.LicenseRepository = (*LicenseRepo)(nil)

const licenseColumns = `id, name, max_users, max_messages_month, max_campaigns_month, max_storage_mb, price_monthly, price_yearly, created_at`

// LicenseRepo implementación de solo lectura del puerto LicenseRepository.
// Los precios NUMERIC llegan como decimal gracias al codec registrado en el pool.
type LicenseRepo struct {
	q Querier
}

// NewLicenseRepository construye el adaptador de licencias.
func NewLicenseRepository(q Querier) *LicenseRepo {
	return &LicenseRepo{q: q}
}

// GetByID obtiene una licencia por ID.
func (r *LicenseRepo) GetByID(id string) (*entity.License, error) {
	query := `SELECT ` + licenseColumns + ` FROM licenses WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByName obtiene una licencia por nombre (ej. la Demo por defecto).
func (r *LicenseRepo) GetByName(name string) (*entity.License, error) {
	query := `SELECT ` + licenseColumns + ` FROM licenses WHERE name = $1`
	return r.scanOne(query, name)
}

func (r *LicenseRepo) scanOne(query string, args ...any) (*entity.License, error) {
	var l entity.License
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&l.ID, &l.Name, &l.MaxUsers, &l.MaxMessagesMonth, &l.MaxCampaignsMonth,
		&l.MaxStorageMB, &l.PriceMonthly, &l.PriceYearly, &l.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get license: %w", err)
	}
	return &l, nil
}
