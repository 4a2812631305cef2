package email

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// EmailSender delivers a fully rendered email.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams describes one outgoing email.
type SendEmailParams struct {
	SendTo   string // Recipient email address (required)
	Subject  string // Email subject line (required)
	BodyHTML string // HTML email body (required)
	Tag      string // Optional tag for analytics and tracking
}

// Validate checks the required fields and the recipient address.
func (p SendEmailParams) Validate() error {
	var errs []error
	if strings.TrimSpace(p.SendTo) == "" {
		errs = append(errs, errors.New("send_to is required"))
	} else if !IsValidAddress(p.SendTo) {
		errs = append(errs, fmt.Errorf("send_to %q is not a valid email address", p.SendTo))
	}
	if strings.TrimSpace(p.Subject) == "" {
		errs = append(errs, errors.New("subject is required"))
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		errs = append(errs, errors.New("body_html is required"))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidParams}, errs...)...)
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidAddress reports whether s looks like a plain email address.
func IsValidAddress(s string) bool {
	return emailRegex.MatchString(s)
}
