package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jcastellanos/conecta-api/internal/application/invitation"
	"github.com/jcastellanos/conecta-api/pkg/config"
)

var _ invitation.Mailer = (*SMTPMailer)(nil)

// SMTPMailer implementación del puerto Mailer sobre SMTP.
// No reintenta: el caso de uso reporta el fallo y el caller decide.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer construye el mailer con la configuración SMTP.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// SendInvitation envía el correo con el link de invitación.
func (m *SMTPMailer) SendInvitation(email invitation.InvitationEmail) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", fmt.Sprintf("Invitación para unirte a %s", email.CompanyName))
	msg.SetBody("text/html", fmt.Sprintf(
		`<p>Has sido invitado a unirte a <strong>%s</strong>.</p>
<p><a href="%s">Aceptar invitación</a></p>
<p>El link expira en 24 horas.</p>`,
		email.CompanyName, email.InvitationLink,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send invitation to %s: %w", email.To, err)
	}
	return nil
}
