// Package email provides the outbound message client used for OTP delivery.
package email

import (
	"fmt"
	"log"
	"os"

	"github.com/resendlabs/resend-go"
)

type Client struct {
	resend    *resend.Client
	fromEmail string
	fromName  string
}

func NewClient() (*Client, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	fromEmail := os.Getenv("EMAIL_FROM")
	if fromEmail == "" {
		fromEmail = "noreply@solemate.shop"
	}

	fromName := os.Getenv("EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "SoleMate"
	}

	return &Client{
		resend:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}, nil
}

// Send satisfies the services.Sender contract.
func (c *Client) Send(target, subject, body string) error {
	request := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{target},
		Subject: subject,
		Text:    body,
	}
	if _, err := c.resend.Emails.Send(request); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", target, err)
	}
	return nil
}

// LogSender writes messages to the application log instead of dispatching
// them. Used when no email provider is configured (local development).
type LogSender struct{}

func (LogSender) Send(target, subject, body string) error {
	log.Printf("📧 [dev] to=%s subject=%q body=%q", target, subject, body)
	return nil
}
