// Package postmark implements email.EmailSender on top of Postmark's
// transactional email API.
//
// # Configuration
//
//	type Config struct {
//		PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN,required"`
//		PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN,required"`
//		SenderEmail          string `env:"SENDER_EMAIL,required"`
//		SupportEmail         string `env:"SUPPORT_EMAIL,required"`
//		TrackOpens           bool   `env:"POSTMARK_TRACK_OPENS" envDefault:"true"`
//		TrackLinks           string `env:"POSTMARK_TRACK_LINKS" envDefault:"HtmlOnly"`
//	}
//
// # Usage
//
// Combine the client with email.NewInkySender to deliver templates written
// with Inky components:
//
//	var cfg postmark.Config
//	config.MustLoad(&cfg)
//
//	sender, err := email.NewInkySender(postmark.MustNewClient(cfg), inky.New())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "user@example.com",
//		Subject:  "Your receipt",
//		BodyHTML: receiptMarkup,
//		Tag:      "receipt",
//	})
//
// Transport errors and Postmark API error codes are both returned joined with
// email.ErrFailedToSendEmail.
package postmark
