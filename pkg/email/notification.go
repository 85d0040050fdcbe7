package email

import (
	"fmt"
	"html"
	"strings"
)

// NotificationEmailData is what a notification mail says.
type NotificationEmailData struct {
	To          string
	AppName     string
	Actor       string
	Verb        string
	Target      string
	Description string
	URL         string
}

// BuildNotificationEmail renders the "<actor> <verb> <target>" sentence as a
// plain text and HTML message.
func BuildNotificationEmail(data NotificationEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Notifications"
	}

	sentence := strings.TrimSpace(data.Actor + " " + data.Verb)
	if data.Target != "" {
		sentence += " " + data.Target
	}

	var text strings.Builder
	fmt.Fprintf(&text, "%s\n", sentence)
	if data.Description != "" {
		fmt.Fprintf(&text, "\n%s\n", data.Description)
	}
	if data.URL != "" {
		fmt.Fprintf(&text, "\n%s\n", data.URL)
	}
	fmt.Fprintf(&text, "\n-- \n%s\n", appName)

	var body strings.Builder
	fmt.Fprintf(&body, `<p style="font-size: 16px;">%s</p>`, html.EscapeString(sentence))
	if data.Description != "" {
		fmt.Fprintf(&body, `<p>%s</p>`, html.EscapeString(data.Description))
	}
	if data.URL != "" {
		fmt.Fprintf(&body, `<p><a href="%s">View</a></p>`, html.EscapeString(data.URL))
	}
	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
%s
<p style="color: #6b7280; font-size: 14px; margin-top: 30px;">%s</p>
</body>
</html>`, body.String(), html.EscapeString(appName))

	return Message{
		To:       []string{data.To},
		Subject:  fmt.Sprintf("[%s] %s", appName, sentence),
		TextBody: text.String(),
		HTMLBody: htmlBody,
	}
}
