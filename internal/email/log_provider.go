package email

import (
	"fmt"

	"ecomatch_backend/internal/logger"
)

// LogProvider writes mails to the log instead of sending them. Used in
// development when SMTP is not configured.
type LogProvider struct {
	frontendURL string
}

func NewLogProvider(frontendURL string) *LogProvider {
	return &LogProvider{frontendURL: frontendURL}
}

func (p *LogProvider) Send(email *Email) error {
	logger.Info("email (not sent, smtp unconfigured)",
		"to", email.To,
		"subject", email.Subject,
	)
	return nil
}

func (p *LogProvider) SendLeadConfirmation(to, token string) error {
	logger.Info("lead confirmation email",
		"to", to,
		"confirm_url", fmt.Sprintf("%s/gast/confirm?token=%s", p.frontendURL, token),
	)
	return nil
}

func (p *LogProvider) SendAccountActivation(to, uid, token string) error {
	logger.Info("account activation email",
		"to", to,
		"confirm_url", fmt.Sprintf("%s/confirm-email/%s/%s/", p.frontendURL, uid, token),
	)
	return nil
}

func (p *LogProvider) SendRequestAccepted(to, requestTitle string) error {
	logger.Info("request accepted email", "to", to, "request_title", requestTitle)
	return nil
}

func (p *LogProvider) Validate() error { return nil }

func (p *LogProvider) Close() error { return nil }
