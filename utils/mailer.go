package utils

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

// Mailer sends account notices over SMTP
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer returns nil when host is empty so callers can treat mail as disabled
func NewMailer(host string, port int, username, password, from string) *Mailer {
	if host == "" {
		return nil
	}
	if from == "" {
		from = username
	}
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// NotifyPasswordReset tells the account owner that a reset was requested
func (m *Mailer) NotifyPasswordReset(email, name string) error {
	if m == nil {
		return nil
	}

	if name == "" {
		name = "there"
	}
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Password reset requested</h2>
			<p>Hello %s,</p>
			<p>A password reset was requested for your account. If this was not you, contact your manager.</p>
		</body>
		</html>
	`, name)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Password reset requested")
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send reset notice: %w", err)
	}
	return nil
}

// MaskEmail hides most of the local part of an address
func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" {
		return email
	}

	name := parts[0]
	domain := parts[1]

	if len(name) <= 2 {
		return name[:1] + "***@" + domain
	}

	return name[:2] + strings.Repeat("*", len(name)-2) + "@" + domain
}
