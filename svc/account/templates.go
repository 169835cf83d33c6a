package account

import (
	_ "embed"
	"fmt"

	"github.com/a-h/templ"

	"github.com/jnbao2020/saleor/pkg/templatedmail"
)

//go:embed subjects.yaml
var subjectsYAML []byte

// RegisterTemplates adds the account email templates to the registry.
func RegisterTemplates(registry *templatedmail.Registry) error {
	subjects, err := templatedmail.ParseSubjectCatalog(subjectsYAML)
	if err != nil {
		return err
	}

	templates := []templatedmail.Template{
		{Name: AccountDeleteTemplate, Subject: subjects[AccountDeleteTemplate], Body: accountDeleteBody},
		{Name: PasswordResetTemplate, Subject: subjects[PasswordResetTemplate], Body: passwordResetBody},
		{Name: StaffSetPasswordTemplate, Subject: subjects[StaffSetPasswordTemplate], Body: staffSetPasswordBody},
	}
	for _, tpl := range templates {
		if err := registry.Register(tpl); err != nil {
			return err
		}
	}
	return nil
}

// MustRegisterTemplates registers the templates and panics on error.
func MustRegisterTemplates(registry *templatedmail.Registry) {
	if err := RegisterTemplates(registry); err != nil {
		panic(err)
	}
}

func contextUser(c templatedmail.Context) User {
	u, _ := c["user"].(User)
	return u
}

func contextConfirmURL(c templatedmail.Context) string {
	u, _ := c["confirm_url"].(string)
	return u
}

func accountDeleteBody(c templatedmail.Context) templ.Component {
	siteName, _ := c["site_name"].(string)
	return templatedmail.Layout(c,
		templatedmail.Heading("Account deletion requested"),
		templatedmail.Text(fmt.Sprintf("Hi %s, we received a request to delete your %s account. This cannot be undone.", contextUser(c).DisplayName(), siteName)),
		templatedmail.Button("Delete my account", contextConfirmURL(c)),
		templatedmail.Text("If you did not request this, you can safely ignore this email."),
	)
}

func passwordResetBody(c templatedmail.Context) templ.Component {
	return templatedmail.Layout(c,
		templatedmail.Heading("Password reset"),
		templatedmail.Text(fmt.Sprintf("Hi %s, use the link below to choose a new password.", contextUser(c).DisplayName())),
		templatedmail.Button("Reset password", contextConfirmURL(c)),
		templatedmail.Text("If you did not request a reset, you can safely ignore this email."),
	)
}

func staffSetPasswordBody(c templatedmail.Context) templ.Component {
	siteName, _ := c["site_name"].(string)
	return templatedmail.Layout(c,
		templatedmail.Heading("You have been invited"),
		templatedmail.Text(fmt.Sprintf("An administrator added you to the %s dashboard. Set a password to activate your access.", siteName)),
		templatedmail.Button("Set password", contextConfirmURL(c)),
	)
}
