package notification

import (
	"bytes"
	"fmt"
	"html/template"
)

// Composer builds the fixed set of messages the site sends. The HTML
// bodies are data rendered through one branded wrapper; none of the
// branching between message kinds lives here.
type Composer struct {
	// SiteName appears in subjects, greetings and the email header bar.
	SiteName string
	// FromAddr is the sender for every outgoing message.
	FromAddr string
	// AdminAddr receives the admin-facing copy of each pair.
	AdminAddr string
}

// emailTmpl is the HTML wrapper applied to every outgoing message.
// {{.SiteName}}, {{.Heading}} and {{.Body}} are auto-escaped by html/template.
var emailTmpl = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1.0">
  <title>{{.Heading}}</title>
</head>
<body style="margin:0;padding:0;background-color:#f7f5f0;
     font-family:Georgia,'Times New Roman',serif;">
  <table width="100%" cellpadding="0" cellspacing="0" role="presentation"
         style="background-color:#f7f5f0;padding:40px 16px;">
    <tr>
      <td align="center">
        <table width="600" cellpadding="0" cellspacing="0" role="presentation"
               style="max-width:600px;width:100%;">
          <tr>
            <td style="background-color:#2d3142;padding:28px 40px;border-radius:10px 10px 0 0;">
              <span style="font-size:22px;font-weight:700;color:#ffffff;letter-spacing:0.5px;">{{.SiteName}}</span>
              <span style="display:block;font-size:12px;color:#b8bcc8;margin-top:3px;">Quarterly Magazine</span>
            </td>
          </tr>
          <tr>
            <td style="background-color:#ffffff;padding:14px 40px;border-left:3px solid #c8a45d;">
              <p style="margin:0;font-size:16px;font-weight:600;color:#2d3142;">{{.Heading}}</p>
            </td>
          </tr>
          <tr>
            <td style="background-color:#ffffff;padding:32px 40px;">
              <div style="font-size:15px;line-height:1.7;color:#3d4152;
                          white-space:pre-wrap;word-break:break-word;">{{.Body}}</div>
            </td>
          </tr>
          <tr>
            <td style="background-color:#f0ede5;padding:18px 40px;
                       border-top:1px solid #e0dcd0;border-radius:0 0 10px 10px;">
              <p style="margin:0;font-size:12px;color:#8a8674;">
                You are receiving this message because of your interaction with the
                {{.SiteName}} website.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>
`))

// renderHTML wraps heading and body in the branded template.
func (c *Composer) renderHTML(heading, body string) string {
	var buf bytes.Buffer
	err := emailTmpl.Execute(&buf, struct{ SiteName, Heading, Body string }{c.SiteName, heading, body})
	if err != nil {
		// Template and inputs are fixed at compile/config time; an
		// execution error only loses the HTML alternative.
		return ""
	}
	return buf.String()
}

// Welcome is the subscriber-facing confirmation of a new subscription.
func (c *Composer) Welcome(name, email string) Message {
	subject := fmt.Sprintf("Welcome to the %s Quarterly Magazine", c.SiteName)
	body := fmt.Sprintf(
		"Dear %s,\n\nThank you for subscribing to our Quarterly Magazine! "+
			"New issues and teachings will arrive directly in your inbox.\n\nBlessings,\nThe %s Team",
		name, c.SiteName)
	return Message{
		From:     c.FromAddr,
		To:       email,
		Subject:  subject,
		TextBody: body,
		HTMLBody: c.renderHTML("Welcome aboard", body),
	}
}

// AdminSubscription notifies the admin of a new subscriber.
func (c *Composer) AdminSubscription(name, email string) Message {
	return Message{
		From:     c.FromAddr,
		To:       c.AdminAddr,
		Subject:  "New Magazine Subscription",
		TextBody: fmt.Sprintf("New subscription:\n\nName: %s\nEmail: %s", name, email),
	}
}

// UnsubscribeConfirmation is the subscriber-facing confirmation of removal.
func (c *Composer) UnsubscribeConfirmation(name, email string) Message {
	greeting := name
	if greeting == "" {
		greeting = "reader"
	}
	body := fmt.Sprintf(
		"Dear %s,\n\nYou have been unsubscribed from the %s Quarterly Magazine. "+
			"We are sorry to see you go; you are welcome back any time.\n\nBlessings,\nThe %s Team",
		greeting, c.SiteName, c.SiteName)
	return Message{
		From:     c.FromAddr,
		To:       email,
		Subject:  fmt.Sprintf("You have been unsubscribed from %s", c.SiteName),
		TextBody: body,
		HTMLBody: c.renderHTML("Unsubscribed", body),
	}
}

// AdminUnsubscribe notifies the admin that a subscriber left.
func (c *Composer) AdminUnsubscribe(name, email string) Message {
	return Message{
		From:     c.FromAddr,
		To:       c.AdminAddr,
		Subject:  "Subscriber Unsubscribed",
		TextBody: fmt.Sprintf("A subscriber has unsubscribed:\n\nName: %s\nEmail: %s", name, email),
	}
}

// AdminContact forwards a contact-form submission to the admin with the
// message body verbatim.
func (c *Composer) AdminContact(name, email, message string) Message {
	return Message{
		From:    c.FromAddr,
		To:      c.AdminAddr,
		Subject: fmt.Sprintf("New Contact Form Submission from %s", name),
		TextBody: fmt.Sprintf(
			"You have received a new message from the %s website contact form:\n\n"+
				"Name: %s\nEmail: %s\n\nMessage:\n%s\n\n---\nYou can reply directly to: %s",
			c.SiteName, name, email, message, email),
	}
}

// ContactAck acknowledges a contact-form submission to its sender,
// echoing the message.
func (c *Composer) ContactAck(name, email, message string) Message {
	body := fmt.Sprintf(
		"Dear %s,\n\nThank you for reaching out to us. We have received your message "+
			"and will get back to you as soon as possible.\n\nYour message:\n%s\n\nBlessings,\nThe %s Team",
		name, message, c.SiteName)
	return Message{
		From:     c.FromAddr,
		To:       email,
		Subject:  fmt.Sprintf("Thank you for contacting %s", c.SiteName),
		TextBody: body,
		HTMLBody: c.renderHTML("We received your message", body),
	}
}
