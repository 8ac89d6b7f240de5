package email

import (
	"fmt"
	"strings"
	"text/template"
)

// The two transactional messages. Subjects and bodies are rendered with the
// same LinkData context.
const (
	activationSubject = `Complete your registration`

	activationBody = `Hello,

Thank you for registering. Please open the link below to complete your
registration:

{{.Protocol}}://{{.Domain}}/user_create/complete/{{.UID}}/{{.Token}}

If you did not register, you can ignore this message.
`

	resetSubject = `Reset your password`

	resetBody = `Hello {{.User.ShortName}},

A password reset was requested for this address. Open the link below to choose
a new password:

{{.Protocol}}://{{.Domain}}/reset/{{.UID}}/{{.Token}}

If you did not request a reset, you can ignore this message.
`
)

var mailTemplates = map[string]*template.Template{
	"activation": template.Must(template.New("activation").Parse(activationBody)),
	"reset":      template.Must(template.New("reset").Parse(resetBody)),
}

func renderTemplate(name string, data LinkData) (string, error) {
	tpl, ok := mailTemplates[name]
	if !ok {
		return "", fmt.Errorf("template not found: %s", name)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}
