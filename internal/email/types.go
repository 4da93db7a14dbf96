package email

// Email is an outbound message with both plaintext and HTML bodies.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData is the payload rendered into mail templates.
type TemplateData map[string]interface{}
