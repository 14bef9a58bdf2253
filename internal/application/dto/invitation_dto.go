package dto

// CreateInvitationRequest entrada para invitar un email a la empresa del actor.
type CreateInvitationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// CreateInvitationResponse salida con el link de invitación generado.
type CreateInvitationResponse struct {
	InvitationLink string `json:"invitation_link"`
}

// ValidateInvitationResponse proyección de solo lectura de un token válido,
// para que el frontend muestre a qué empresa se está uniendo el invitado.
type ValidateInvitationResponse struct {
	Email       string `json:"email"`
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
}

// AcceptInvitationRequest entrada para aceptar una invitación.
type AcceptInvitationRequest struct {
	Token    string `json:"token" validate:"required"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Password string `json:"password" validate:"required,min=8"`
}

// AcceptInvitationResponse salida de la aceptación: usuario creado + empresa.
type AcceptInvitationResponse struct {
	User      UserSummary `json:"user"`
	CompanyID string      `json:"company_id"`
}
