package repository

import "github.com/jcastellanos/conecta-api/internal/domain/entity"

// LicenseRepository define el puerto de lectura para License.
// Las licencias se administran fuera de esta API; aquí solo se consultan.
type LicenseRepository interface {
	GetByID(id string) (*entity.License, error)
	GetByName(name string) (*entity.License, error)
}
