package email

// Config holds email transport configuration.
// PostmarkServerToken and PostmarkAccountToken are optional to support
// development environments where email sending is disabled.
// SupportEmail, when set, becomes the Reply-To address of all outbound
// emails so customer responses reach the right team.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SupportEmail         string `env:"SUPPORT_EMAIL"`
}
