package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLicenseName nombre de la licencia asignada cuando el registro no indica una.
const DefaultLicenseName = "Demo"

// License define los límites contratados por una empresa.
// Los precios son NUMERIC en DB (codec shopspring/decimal registrado en el pool);
// un precio nulo significa licencia gratuita.
type License struct {
	ID                string
	Name              string
	MaxUsers          int
	MaxMessagesMonth  int
	MaxCampaignsMonth int
	MaxStorageMB      int
	PriceMonthly      decimal.NullDecimal
	PriceYearly       decimal.NullDecimal
	CreatedAt         time.Time
}

// IsFree informa si la licencia no tiene precio mensual ni anual.
func (l *License) IsFree() bool {
	return !l.PriceMonthly.Valid && !l.PriceYearly.Valid
}

// CanSupportUsers informa si la licencia admite la cantidad de usuarios dada.
func (l *License) CanSupportUsers(count int) bool {
	return count <= l.MaxUsers
}
