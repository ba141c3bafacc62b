package mailer

// Template names understood by the email worker.
const (
	TemplateWelcome    = "welcome"
	TemplateWishFunded = "wish_funded"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Subject/Text/HTML may be set directly, or Template and Data used to render
// one of the known templates in the worker.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}
