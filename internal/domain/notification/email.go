package notification

// Provider selects the mailing template family on the mailing service side.
type Provider string

const ProviderAppointment Provider = "APPOINTMENT"

type Email struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	TextBody string `json:"textBody"`
}

type PinpointRequest struct {
	Provider Provider `json:"provider"`
	Email    Email    `json:"email"`
}
