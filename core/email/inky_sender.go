package email

import (
	"context"
	"errors"
	"fmt"
)

// Transformer converts an email body before delivery. *inky.Inky satisfies it.
type Transformer interface {
	Transform(ctx context.Context, markup string) (string, error)
}

// InkySender converts component markup in the body to table markup and
// passes the result to the wrapped sender.
type InkySender struct {
	next        EmailSender
	transformer Transformer
}

// NewInkySender wraps next so every body goes through transformer first.
func NewInkySender(next EmailSender, transformer Transformer) (*InkySender, error) {
	if next == nil {
		return nil, fmt.Errorf("%w: sender is required", ErrInvalidConfig)
	}
	if transformer == nil {
		return nil, fmt.Errorf("%w: transformer is required", ErrInvalidConfig)
	}
	return &InkySender{next: next, transformer: transformer}, nil
}

// SendEmail implements EmailSender.
func (s *InkySender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	body, err := s.transformer.Transform(ctx, params.BodyHTML)
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, fmt.Errorf("convert body: %w", err))
	}

	params.BodyHTML = body
	return s.next.SendEmail(ctx, params)
}
