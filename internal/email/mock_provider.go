package email

// MockProvider is used in tests and when email is disabled in config.
type MockProvider struct {
	Sent []*Email
}

func (m *MockProvider) Send(email *Email) error {
	m.Sent = append(m.Sent, email)
	return nil
}

func (m *MockProvider) Validate() error { return nil }
func (m *MockProvider) Close() error    { return nil }
