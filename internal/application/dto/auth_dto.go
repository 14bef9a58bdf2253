package dto

// RegisterRequest entrada para registrar una empresa con su usuario owner.
type RegisterRequest struct {
	CompanyName  string `json:"company_name" validate:"required,min=1,max=200"`
	CompanyEmail string `json:"company_email" validate:"omitempty,email"`
	CompanyPhone string `json:"company_phone"`
	TaxID        string `json:"tax_id"`
	Country      string `json:"country"`

	OwnerName  string `json:"owner_name" validate:"required,min=1,max=200"`
	OwnerEmail string `json:"owner_email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`

	// LicenseID opcional; si está vacío se asigna la licencia Demo por defecto.
	LicenseID string `json:"license_id" validate:"omitempty,uuid"`
}

// RegisterResponse salida del registro: empresa creada + usuario owner.
type RegisterResponse struct {
	Company CompanySummary `json:"company"`
	User    UserSummary    `json:"user"`
	Message string         `json:"message"`
}

// LoginRequest entrada para login (email global, sin acotar por empresa).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT de sesión y proyección del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserIdentity `json:"user"`
}

// UserIdentity proyección mínima de identidad autenticada.
type UserIdentity struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
}
