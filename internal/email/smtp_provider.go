package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider sends mail through an SMTP relay via gomail.
type SMTPProvider struct {
	config   *SMTPConfig
	dialer   *gomail.Dialer
	renderer *Renderer
}

func NewSMTPProvider(config *SMTPConfig) (*SMTPProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	return &SMTPProvider{
		config:   config,
		dialer:   gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		renderer: renderer,
	}, nil
}

func (p *SMTPProvider) Send(email *Email) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	msg.SetHeader("To", email.To...)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/plain", email.Body)
	if email.HTMLBody != "" {
		msg.AddAlternative("text/html", email.HTMLBody)
	}

	if err := p.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) SendLeadConfirmation(to, token string) error {
	confirmURL := fmt.Sprintf("%s/gast/confirm?token=%s", p.config.FrontendURL, token)

	htmlBody, err := p.renderer.Render("lead_confirmation", TemplateData{"ConfirmURL": confirmURL})
	if err != nil {
		return err
	}

	return p.Send(&Email{
		To:      []string{to},
		Subject: "Bitte bestätige deine E-Mail-Adresse bei ecoMatch",
		Body: fmt.Sprintf(
			"Hallo,\n\nbitte bestätige deine E-Mail-Adresse über folgenden Link:\n%s\n\n"+
				"Wenn du keine Anfrage bei ecoMatch gestellt hast, kannst du diese Nachricht ignorieren.\n",
			confirmURL),
		HTMLBody: htmlBody,
	})
}

func (p *SMTPProvider) SendAccountActivation(to, uid, token string) error {
	confirmURL := fmt.Sprintf("%s/confirm-email/%s/%s/", p.config.FrontendURL, uid, token)

	htmlBody, err := p.renderer.Render("account_activation", TemplateData{"ConfirmURL": confirmURL})
	if err != nil {
		return err
	}

	return p.Send(&Email{
		To:      []string{to},
		Subject: "Bitte bestätige dein Konto bei ecoMatch",
		Body: fmt.Sprintf(
			"Hallo,\n\nbitte bestätige dein Konto über folgenden Link:\n%s\n\n"+
				"Wenn du dich nicht bei ecoMatch registriert hast, kannst du diese Nachricht ignorieren.\n",
			confirmURL),
		HTMLBody: htmlBody,
	})
}

func (p *SMTPProvider) SendRequestAccepted(to, requestTitle string) error {
	htmlBody, err := p.renderer.Render("request_accepted", TemplateData{"RequestTitle": requestTitle})
	if err != nil {
		return err
	}

	return p.Send(&Email{
		To:      []string{to},
		Subject: "Deine Anfrage wurde angenommen",
		Body: fmt.Sprintf(
			"Hallo,\n\ndeine Anfrage \"%s\" wurde von einem Anbieter angenommen.\n"+
				"Melde dich in deinem Konto an, um die Details einzusehen.\n",
			requestTitle),
		HTMLBody: htmlBody,
	})
}

func (p *SMTPProvider) Validate() error {
	return p.config.Validate()
}

func (p *SMTPProvider) Close() error {
	return nil
}
