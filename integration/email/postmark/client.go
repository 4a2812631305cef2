package postmark

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/mrz1836/postmark"

	"github.com/dmitrymomot/inky/core/email"
)

var trackLinksModes = []string{"None", "HtmlAndText", "HtmlOnly", "TextOnly"}

// api is the part of the Postmark client the sender uses.
type api interface {
	SendEmail(ctx context.Context, msg postmark.Email) (postmark.EmailResponse, error)
}

// Client sends emails through Postmark's transactional API.
type Client struct {
	api    api
	config Config
}

// New creates a Postmark-backed email sender.
// Tokens and both addresses are required so a misconfigured service fails at
// startup instead of on the first email.
func New(cfg Config) (*Client, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", email.ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: PostmarkAccountToken is required", email.ErrInvalidConfig)
	}
	if !email.IsValidAddress(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", email.ErrInvalidConfig)
	}
	if !email.IsValidAddress(cfg.SupportEmail) {
		return nil, fmt.Errorf("%w: SupportEmail must be a valid email address", email.ErrInvalidConfig)
	}
	if cfg.TrackLinks == "" {
		cfg.TrackLinks = "HtmlOnly"
	}
	if !slices.Contains(trackLinksModes, cfg.TrackLinks) {
		return nil, fmt.Errorf("%w: TrackLinks must be one of %v", email.ErrInvalidConfig, trackLinksModes)
	}

	return &Client{
		api:    postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		config: cfg,
	}, nil
}

// MustNewClient is like New but panics on invalid config.
func MustNewClient(cfg Config) *Client {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail implements email.EmailSender. Replies go to the support address.
func (c *Client) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	resp, err := c.api.SendEmail(ctx, postmark.Email{
		From:       c.config.SenderEmail,
		ReplyTo:    c.config.SupportEmail,
		To:         params.SendTo,
		Subject:    params.Subject,
		Tag:        params.Tag,
		HTMLBody:   params.BodyHTML,
		TrackOpens: c.config.TrackOpens,
		TrackLinks: c.config.TrackLinks,
	})
	if err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			email.ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
