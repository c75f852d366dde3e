package email

// Message is one outbound email. HTMLBody wins over Body when both are set.
type Message struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// Provider sends email. Callers treat delivery as fire-and-forget: failures
// are returned but never retried.
type Provider interface {
	Send(msg *Message) error
}
