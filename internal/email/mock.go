package email

import "sync"

// MockProvider records sent messages instead of delivering them. Used in
// tests and as the wiring default when SMTP is not configured.
type MockProvider struct {
	mu   sync.Mutex
	Sent []*Message
	// Err, when set, is returned from every Send.
	Err error
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(msg *Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Sent = append(p.Sent, msg)
	return nil
}

// Messages returns a snapshot of everything sent so far.
func (p *MockProvider) Messages() []*Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*Message, len(p.Sent))
	copy(out, p.Sent)
	return out
}
