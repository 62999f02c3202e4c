package email

// Email is a single outbound message.
type Email struct {
	To      []string
	Subject string
	Body    string
	HTML    bool
}

// Provider sends transactional email. The notification service mirrors
// high-value booking events through it; delivery is best effort.
type Provider interface {
	Send(email *Email) error
	Validate() error
	Close() error
}
