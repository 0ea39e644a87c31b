package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template names accepted in an EmailJob.
const (
	Welcome = "welcome"
)

var welcomeHTML = template.Must(template.New(Welcome).Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Welcome to DevConnector, {{.Name}}!</h2>
    <p>Your account was created with <strong>{{.Email}}</strong>.</p>
    <p>Head over to your dashboard to build your developer profile:
       add your skills, experience and education, and start posting.</p>
    <p style="color:#888; font-size:12px;">
      If you did not create this account, you can ignore this email.
    </p>
  </body>
</html>`))

// Render produces subject, plain-text and HTML bodies for a template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case Welcome:
		var buf bytes.Buffer
		if err := welcomeHTML.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = "Welcome to DevConnector"
		text = fmt.Sprintf("Welcome to DevConnector, %v! Your account was created with %v.",
			data["Name"], data["Email"])
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
