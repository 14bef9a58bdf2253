package repository

import "github.com/jcastellanos/conecta-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	ExistsByEmail(email string) (bool, error)
	// LockByID toma un lock de fila sobre la empresa (SELECT ... FOR UPDATE).
	// Solo tiene efecto dentro de una transacción (ver postgres.TxRunner);
	// serializa las promociones a owner de una misma empresa. Devuelve false
	// si la empresa no existe.
	LockByID(id string) (bool, error)
}
