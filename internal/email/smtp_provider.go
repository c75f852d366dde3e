package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the SMTP connection settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPProvider implements Provider over gomail.
type SMTPProvider struct {
	cfg SMTPConfig
}

func NewSMTPProvider(cfg SMTPConfig) (*SMTPProvider, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid SMTP port: %d", cfg.Port)
	}
	return &SMTPProvider{cfg: cfg}, nil
}

// Send delivers one message. Dials per message; the volume here does not
// justify a pooled connection.
func (p *SMTPProvider) Send(msg *Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	from := msg.From
	if from == "" {
		from = m.FormatAddress(p.cfg.FromEmail, p.cfg.FromName)
	}
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)

	if msg.HTMLBody != "" {
		m.SetBody("text/html", msg.HTMLBody)
		if msg.Body != "" {
			m.AddAlternative("text/plain", msg.Body)
		}
	} else {
		m.SetBody("text/plain", msg.Body)
	}

	d := gomail.NewDialer(p.cfg.Host, p.cfg.Port, p.cfg.Username, p.cfg.Password)
	return d.DialAndSend(m)
}
