package email

// Provider is the outbound email interface. The SMTP implementation is
// used in production; tests inject a mock.
type Provider interface {
	// Send delivers a prepared message.
	Send(email *Email) error

	// SendLeadConfirmation mails the guest confirmation link carrying
	// the lead token.
	SendLeadConfirmation(to, token string) error

	// SendAccountActivation mails the activation link for a direct
	// registrant.
	SendAccountActivation(to, uid, token string) error

	// SendRequestAccepted notifies the client that a provider took
	// their request. Best effort; callers log failures.
	SendRequestAccepted(to, requestTitle string) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases provider resources.
	Close() error
}
