package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inky/core/email"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvert_Stdin(t *testing.T) {
	out, err := execute(t, `<callout>Hi</callout>`, "convert")
	require.NoError(t, err)
	assert.Equal(t, `<table><tr><th class="callout">Hi</th></tr></table>`, out)
}

func TestConvert_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.html")
	b := filepath.Join(dir, "b.html")
	require.NoError(t, os.WriteFile(a, []byte(`<row>a</row>`), 0o644))
	require.NoError(t, os.WriteFile(b, []byte(`<container>b</container>`), 0o644))

	out, err := execute(t, "", "convert", a, b)
	require.NoError(t, err)
	assert.Equal(t,
		`<table class="row"><tbody><tr>a</tr></tbody></table>`+
			`<table class="container"><tbody><tr><td>b</td></tr></tbody></table>`,
		out,
	)
}

func TestConvert_OutDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "welcome.html")
	require.NoError(t, os.WriteFile(src, []byte(`<callout>Hi</callout>`), 0o644))
	outDir := filepath.Join(dir, "dist")

	out, err := execute(t, "", "convert", "-o", outDir, src)
	require.NoError(t, err)
	assert.Empty(t, out)

	got, err := os.ReadFile(filepath.Join(outDir, "welcome.html"))
	require.NoError(t, err)
	assert.Equal(t, `<table><tr><th class="callout">Hi</th></tr></table>`, string(got))
}

func TestConvert_MissingFile(t *testing.T) {
	_, err := execute(t, "", "convert", filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, err)
}

// TestSend_DevSender is the only test that loads senderConfig from the
// environment: config.Load caches the first value per type for the process.
// Other sender tests pass a senderConfig to deliverySender directly.
func TestSend_DevSender(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INKY_SENDER", "dev")
	t.Setenv("INKY_DEV_DIR", dir)

	_, err := execute(t, `<button href="https://example.com">Go</button>`,
		"send", "--to", "user@example.com", "--subject", "Hello", "--tag", "hello")
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "*.html"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	body, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Equal(t,
		`<table class="button"><tr><td><table><tr><td><a href="https://example.com">Go</a></td></tr></table></td></tr></table>`,
		string(body),
	)
}

func TestDeliverySender(t *testing.T) {
	t.Parallel()

	t.Run("dev sender writes to its own directory", func(t *testing.T) {
		t.Parallel()
		dirA, dirB := t.TempDir(), t.TempDir()

		for _, dir := range []string{dirA, dirB} {
			sender, err := deliverySender(senderConfig{Sender: "dev", DevDir: dir})
			require.NoError(t, err)
			require.IsType(t, &email.DevSender{}, sender)

			require.NoError(t, sender.SendEmail(context.Background(), email.SendEmailParams{
				SendTo:   "user@example.com",
				Subject:  "Hello",
				BodyHTML: "<p>hi</p>",
			}))

			matches, err := filepath.Glob(filepath.Join(dir, "*.html"))
			require.NoError(t, err)
			assert.Len(t, matches, 1)
		}
	})

	t.Run("unknown sender", func(t *testing.T) {
		t.Parallel()
		_, err := deliverySender(senderConfig{Sender: "carrier-pigeon"})
		require.Error(t, err)
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})
}

func TestSend_RequiresFlags(t *testing.T) {
	_, err := execute(t, `<row>x</row>`, "send", "--to", "user@example.com")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "inky dev\n", out.String())
}
