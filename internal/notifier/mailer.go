package notifier

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gopkg.in/gomail.v2"
)

// Notifier delivers a rendered report.
type Notifier interface {
	Send(ctx context.Context, subject, htmlBody string) error
}

// MailNotifier sends HTML mail over SMTP with STARTTLS.
type MailNotifier struct {
	Host           string
	Port           int
	SenderName     string
	SenderEmail    string
	Password       string
	RecipientName  string
	RecipientEmail string
	MaxRetries     int
}

// NewMailNotifier creates a mail notifier for a single recipient.
func NewMailNotifier(host string, port int, senderName, senderEmail, password, recipientName, recipientEmail string) *MailNotifier {
	return &MailNotifier{
		Host:           host,
		Port:           port,
		SenderName:     senderName,
		SenderEmail:    senderEmail,
		Password:       password,
		RecipientName:  recipientName,
		RecipientEmail: recipientEmail,
		MaxRetries:     3,
	}
}

// Send delivers the message, retrying with exponential backoff.
func (m *MailNotifier) Send(ctx context.Context, subject, htmlBody string) error {
	var lastErr error
	for i := 0; i <= m.MaxRetries; i++ {
		if err := m.send(subject, htmlBody); err != nil {
			lastErr = err
			backoff := time.Duration(1<<uint(i)) * time.Second
			log.Printf("[WARN] mail send failed (attempt %d/%d): %v, retrying in %v", i+1, m.MaxRetries+1, err, backoff)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				continue
			}
		}
		return nil
	}
	return fmt.Errorf("all %d retries exhausted: %w", m.MaxRetries+1, lastErr)
}

func (m *MailNotifier) send(subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.SenderEmail, displayName(m.SenderName))
	msg.SetAddressHeader("To", m.RecipientEmail, displayName(m.RecipientName))
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.Host, m.Port, m.SenderEmail, m.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	log.Printf("[INFO] email sent to %s at %s", m.RecipientEmail, time.Now().Format("2006-01-02 15:04:05"))
	return nil
}

// displayName converts a hyphenated configured name into a display name.
func displayName(name string) string {
	return strings.ReplaceAll(name, "-", " ")
}
