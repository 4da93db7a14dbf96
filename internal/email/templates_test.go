package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderer_AllTemplates(t *testing.T) {
	renderer, err := NewRenderer()
	assert.NoError(t, err)

	html, err := renderer.Render("lead_confirmation", TemplateData{
		"ConfirmURL": "https://example.com/gast/confirm?token=abc",
	})
	assert.NoError(t, err)
	assert.Contains(t, html, "https://example.com/gast/confirm?token=abc")

	html, err = renderer.Render("account_activation", TemplateData{
		"ConfirmURL": "https://example.com/confirm-email/uid/tok/",
	})
	assert.NoError(t, err)
	assert.Contains(t, html, "confirm-email/uid/tok")

	html, err = renderer.Render("request_accepted", TemplateData{
		"RequestTitle": "Gartenpflege",
	})
	assert.NoError(t, err)
	assert.Contains(t, html, "Gartenpflege")
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	renderer, err := NewRenderer()
	assert.NoError(t, err)

	_, err = renderer.Render("nope", nil)
	assert.Error(t, err)
}

func TestSMTPConfig_Validate(t *testing.T) {
	cfg := &SMTPConfig{Host: "smtp.test.com", Port: 587, FromEmail: "noreply@test.com"}
	assert.NoError(t, cfg.Validate())

	assert.Error(t, (&SMTPConfig{Port: 587, FromEmail: "a@b.c"}).Validate())
	assert.Error(t, (&SMTPConfig{Host: "h", Port: 0, FromEmail: "a@b.c"}).Validate())
	assert.Error(t, (&SMTPConfig{Host: "h", Port: 587}).Validate())
}
