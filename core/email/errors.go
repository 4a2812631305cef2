package email

import "errors"

// Error variables define email operation failures. Implementations wrap them
// with errors.Join or fmt.Errorf("%w") so callers can match with errors.Is.
var (
	ErrFailedToSendEmail = errors.New("failed to send email")
	ErrInvalidConfig     = errors.New("invalid email configuration")
	ErrInvalidParams     = errors.New("invalid email parameters")
)
