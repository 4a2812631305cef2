package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inky/core/config"
	"github.com/dmitrymomot/inky/core/email"
	"github.com/dmitrymomot/inky/core/logger"
	"github.com/dmitrymomot/inky/integration/email/postmark"
)

type senderConfig struct {
	Sender string `env:"INKY_SENDER" envDefault:"dev"` // dev or postmark
	DevDir string `env:"INKY_DEV_DIR" envDefault:"./dev_emails"`
}

func newSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send [file]",
		Short: "Convert a template and send it as an email",
		Long: `Converts the template (or stdin) and delivers it through the sender selected by INKY_SENDER:
"dev" writes the email to INKY_DEV_DIR, "postmark" sends it with the POSTMARK_* settings.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSend,
	}
	cmd.Flags().String("to", "", "recipient address")
	cmd.Flags().String("subject", "", "subject line")
	cmd.Flags().String("tag", "", "tag for tracking")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func runSend(cmd *cobra.Command, args []string) error {
	converter, log, err := newConverter(cmd)
	if err != nil {
		return err
	}

	delivery, err := newDeliverySender()
	if err != nil {
		return err
	}
	sender, err := email.NewInkySender(delivery, converter)
	if err != nil {
		return err
	}

	var src []byte
	if len(args) == 1 {
		src, err = os.ReadFile(args[0])
	} else {
		src, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}

	to, _ := cmd.Flags().GetString("to")
	subject, _ := cmd.Flags().GetString("subject")
	tag, _ := cmd.Flags().GetString("tag")

	if err := sender.SendEmail(cmd.Context(), email.SendEmailParams{
		SendTo:   to,
		Subject:  subject,
		BodyHTML: string(src),
		Tag:      tag,
	}); err != nil {
		return err
	}

	log.InfoContext(cmd.Context(), "email sent", logger.Event("sent"), slog.String("to", to))
	return nil
}

func newDeliverySender() (email.EmailSender, error) {
	var cfg senderConfig
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return deliverySender(cfg)
}

// deliverySender builds the sender selected by cfg.
func deliverySender(cfg senderConfig) (email.EmailSender, error) {
	switch cfg.Sender {
	case "dev":
		return email.NewDevSender(cfg.DevDir), nil
	case "postmark":
		var pm postmark.Config
		if err := config.Load(&pm); err != nil {
			return nil, err
		}
		client, err := postmark.New(pm)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("%w: unknown sender %q", email.ErrInvalidConfig, cfg.Sender)
	}
}
