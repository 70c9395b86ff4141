package email

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/azizzarr/CoachSync/internal/domain/session"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), so a
// session description cannot inject markup into the email body.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// ComposeReminder builds the reminder email for an upcoming session.
// The session description is treated as markdown and rendered to HTML.
// PRE: sess is a valid session; clientName and to identify the recipient
// POST: returns a SendRequest ready for a Sender
func ComposeReminder(sess session.Session, clientName, to string) (SendRequest, error) {
	var body bytes.Buffer
	fmt.Fprintf(&body, "<p>Hi %s,</p>", html.EscapeString(clientName))
	fmt.Fprintf(&body, "<p>This is a reminder for your upcoming session <strong>%s</strong> on %s (%d minutes).</p>",
		html.EscapeString(sess.Title),
		sess.Start.Format("Monday, 2 January 2006 at 15:04"),
		sess.Duration)
	if sess.Location != "" {
		fmt.Fprintf(&body, "<p>Location: %s</p>", html.EscapeString(sess.Location))
	}
	if sess.Description != "" {
		if err := mdRenderer.Convert([]byte(sess.Description), &body); err != nil {
			return SendRequest{}, fmt.Errorf("failed to render session description: %w", err)
		}
	}
	body.WriteString("<p>See you there!</p>")

	return SendRequest{
		To:      []string{to},
		Subject: fmt.Sprintf("Reminder: %s", sess.Title),
		HTML:    body.String(),
	}, nil
}
