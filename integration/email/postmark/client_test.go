package postmark

import (
	"context"
	"errors"
	"testing"

	"github.com/mrz1836/postmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inky/core/email"
)

type fakeAPI struct {
	got  []postmark.Email
	resp postmark.EmailResponse
	err  error
}

func (f *fakeAPI) SendEmail(_ context.Context, msg postmark.Email) (postmark.EmailResponse, error) {
	f.got = append(f.got, msg)
	return f.resp, f.err
}

func validConfig() Config {
	return Config{
		PostmarkServerToken:  "server",
		PostmarkAccountToken: "account",
		SenderEmail:          "noreply@example.com",
		SupportEmail:         "support@example.com",
		TrackOpens:           true,
		TrackLinks:           "HtmlOnly",
	}
}

func params() email.SendEmailParams {
	return email.SendEmailParams{
		SendTo:   "user@example.com",
		Subject:  "Receipt",
		BodyHTML: "<table></table>",
		Tag:      "receipt",
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{name: "valid config", modify: func(*Config) {}},
		{name: "empty track links uses default", modify: func(c *Config) { c.TrackLinks = "" }},
		{name: "missing server token", modify: func(c *Config) { c.PostmarkServerToken = "" }, errMsg: "PostmarkServerToken is required"},
		{name: "missing account token", modify: func(c *Config) { c.PostmarkAccountToken = "" }, errMsg: "PostmarkAccountToken is required"},
		{name: "invalid sender", modify: func(c *Config) { c.SenderEmail = "noreply" }, errMsg: "SenderEmail must be a valid email address"},
		{name: "missing support", modify: func(c *Config) { c.SupportEmail = "" }, errMsg: "SupportEmail must be a valid email address"},
		{name: "unknown track links mode", modify: func(c *Config) { c.TrackLinks = "Always" }, errMsg: "TrackLinks must be one of"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.modify(&cfg)

			client, err := New(cfg)
			if tt.errMsg == "" {
				require.NoError(t, err)
				assert.NotNil(t, client)
				return
			}
			require.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestMustNewClient_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustNewClient(Config{}) })
	assert.NotPanics(t, func() { MustNewClient(validConfig()) })
}

func TestClient_SendEmail(t *testing.T) {
	t.Parallel()

	t.Run("maps params to the message", func(t *testing.T) {
		t.Parallel()
		fake := &fakeAPI{}
		client := &Client{api: fake, config: validConfig()}

		require.NoError(t, client.SendEmail(context.Background(), params()))
		require.Len(t, fake.got, 1)

		msg := fake.got[0]
		assert.Equal(t, "noreply@example.com", msg.From)
		assert.Equal(t, "support@example.com", msg.ReplyTo)
		assert.Equal(t, "user@example.com", msg.To)
		assert.Equal(t, "Receipt", msg.Subject)
		assert.Equal(t, "receipt", msg.Tag)
		assert.Equal(t, "<table></table>", msg.HTMLBody)
		assert.True(t, msg.TrackOpens)
		assert.Equal(t, "HtmlOnly", msg.TrackLinks)
	})

	t.Run("invalid params are not sent", func(t *testing.T) {
		t.Parallel()
		fake := &fakeAPI{}
		client := &Client{api: fake, config: validConfig()}

		p := params()
		p.BodyHTML = ""
		assert.ErrorIs(t, client.SendEmail(context.Background(), p), email.ErrInvalidParams)
		assert.Empty(t, fake.got)
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("connection refused")
		client := &Client{api: &fakeAPI{err: boom}, config: validConfig()}

		err := client.SendEmail(context.Background(), params())
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("api error code", func(t *testing.T) {
		t.Parallel()
		fake := &fakeAPI{resp: postmark.EmailResponse{ErrorCode: 300, Message: "Invalid email request"}}
		client := &Client{api: fake, config: validConfig()}

		err := client.SendEmail(context.Background(), params())
		require.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.Contains(t, err.Error(), "postmark error: 300 - Invalid email request")
	})
}
