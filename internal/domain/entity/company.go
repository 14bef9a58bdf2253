package entity

import "time"

// Estados válidos para Company.
const (
	CompanyStatusDemo     = "demo"
	CompanyStatusActive   = "active"
	CompanyStatusInactive = "inactive"
)

// Company representa una organización/tenant del sistema.
// Una empresa recién registrada inicia en estado demo.
type Company struct {
	ID        string
	Name      string
	Email     string // opcional; único cuando está presente
	Phone     string
	TaxID     string
	Country   string
	LicenseID string
	Status    string // demo, active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanLogin informa si los usuarios de la empresa pueden iniciar sesión.
func (c *Company) CanLogin() bool {
	return c.Status == CompanyStatusActive || c.Status == CompanyStatusDemo
}
