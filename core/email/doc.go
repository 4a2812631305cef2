// Package email provides email sending with an abstract sender interface, a
// development sender that writes to disk, and a decorator that converts Inky
// component markup to table markup before delivery.
//
// # Usage
//
//	import (
//		"github.com/dmitrymomot/inky/core/email"
//		"github.com/dmitrymomot/inky/core/inky"
//	)
//
//	sender, err := email.NewInkySender(
//		email.NewDevSender("./dev_emails"),
//		inky.New(),
//	)
//	if err != nil {
//		return err
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "user@example.com",
//		Subject:  "Welcome",
//		BodyHTML: `<container><row><columns>Hello!</columns></row></container>`,
//		Tag:      "welcome",
//	})
//
// # Development Mode
//
// DevSender saves each email as an HTML file plus a JSON metadata file:
//
//	./dev_emails/2024_01_15_143052_welcome_1f0c2a9b.html
//	./dev_emails/2024_01_15_143052_welcome_1f0c2a9b.json
//
// # Error Handling
//
//	switch {
//	case errors.Is(err, email.ErrInvalidParams):
//		// missing or malformed recipient, subject or body
//	case errors.Is(err, email.ErrFailedToSendEmail):
//		// conversion or delivery failed
//	case errors.Is(err, email.ErrInvalidConfig):
//		// sender constructed with bad configuration
//	}
package email
