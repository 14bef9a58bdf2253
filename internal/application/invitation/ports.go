package invitation

// InvitationEmail datos para el correo de invitación.
type InvitationEmail struct {
	To             string
	InvitationLink string
	CompanyName    string
}

// Mailer puerto de notificación saliente. La implementación SMTP vive en
// infrastructure/email; los tests usan un fake. El reintento de entrega es
// responsabilidad del colaborador, no de este caso de uso.
type Mailer interface {
	SendInvitation(email InvitationEmail) error
}
