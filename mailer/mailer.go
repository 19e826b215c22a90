package mailer

import (
	"fmt"

	"github.com/Avotriniaina240/Urban-Pulse-Backend/config"
	"gopkg.in/gomail.v2"
)

// Mailer sends the outbound mail this service produces. Controllers depend on
// the interface so tests can substitute a recording fake.
type Mailer interface {
	SendPasswordReset(to, resetURL string) error
}

type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendPasswordReset(to, resetURL string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Réinitialisation du mot de passe")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Vous recevez cet email car vous avez demandé la réinitialisation du mot de passe de votre compte.\n\n"+
			"Cliquez sur le lien suivant pour réinitialiser votre mot de passe:\n\n%s\n\n"+
			"Si vous n'avez pas demandé cette réinitialisation, veuillez ignorer cet email.\n", resetURL))

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	return dialer.DialAndSend(msg)
}
