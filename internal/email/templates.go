package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Compiled-in mail templates. Every message has a plaintext variant
// alongside the HTML one for clients without HTML rendering.

const baseHTML = `
<html>
  <body style="font-family: Arial, sans-serif; background-color: #f6f6f6; padding: 2rem;">
    <div style="max-width: 600px; margin: auto; background: white; padding: 2rem; border-radius: 8px;">
      {{template "content" .}}
      <p>Viele Gr&uuml;&szlig;e,<br>Dein <strong>ecoMatch-Team</strong></p>
    </div>
  </body>
</html>`

var templates = map[string]string{
	"lead_confirmation": `{{define "content"}}
      <h2 style="color: #2b6cb0;">Willkommen bei ecoMatch</h2>
      <p>bitte best&auml;tige deine E-Mail-Adresse, um deine Anfrage abzuschicken:</p>
      <p style="text-align: center;">
        <a href="{{.ConfirmURL}}" style="background-color: #2b6cb0; color: white; padding: 0.75rem 1.5rem; border-radius: 5px; text-decoration: none; display: inline-block;">
          E-Mail best&auml;tigen
        </a>
      </p>
      <p>Wenn du keine Anfrage bei ecoMatch gestellt hast, kannst du diese E-Mail ignorieren.</p>
    {{end}}`,

	"account_activation": `{{define "content"}}
      <h2 style="color: #2b6cb0;">Willkommen bei ecoMatch</h2>
      <p>vielen Dank f&uuml;r deine Registrierung! Um dein Konto zu aktivieren, best&auml;tige bitte deine E-Mail-Adresse:</p>
      <p style="text-align: center;">
        <a href="{{.ConfirmURL}}" style="background-color: #2b6cb0; color: white; padding: 0.75rem 1.5rem; border-radius: 5px; text-decoration: none; display: inline-block;">
          Konto best&auml;tigen
        </a>
      </p>
      <p>Wenn du dich nicht bei ecoMatch registriert hast, kannst du diese E-Mail ignorieren.</p>
    {{end}}`,

	"request_accepted": `{{define "content"}}
      <h2 style="color: #2b6cb0;">Deine Anfrage wurde angenommen</h2>
      <p>Deine Anfrage <strong>{{.RequestTitle}}</strong> wurde von einem Anbieter angenommen.</p>
      <p>Melde dich in deinem Konto an, um die Details einzusehen.</p>
    {{end}}`,
}

// Renderer renders named mail templates.
type Renderer struct {
	compiled map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{compiled: make(map[string]*template.Template, len(templates))}
	for name, content := range templates {
		tmpl, err := template.New(name).Parse(baseHTML)
		if err != nil {
			return nil, fmt.Errorf("failed to parse base template: %w", err)
		}
		if _, err := tmpl.Parse(content); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.compiled[name] = tmpl
	}
	return r, nil
}

// Render produces the HTML body for the named template.
func (r *Renderer) Render(name string, data TemplateData) (string, error) {
	tmpl, ok := r.compiled[name]
	if !ok {
		return "", fmt.Errorf("unknown template: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}
