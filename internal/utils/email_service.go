package utils

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// EmailService provides email delivery functionality
type EmailService struct {
	smtpHost     string
	smtpPort     int
	smtpUsername string
	smtpPassword string
}

// NewEmailService creates a new EmailService
func NewEmailService(smtpHost string, smtpPort int, smtpUsername, smtpPassword string) *EmailService {
	return &EmailService{
		smtpHost:     smtpHost,
		smtpPort:     smtpPort,
		smtpUsername: smtpUsername,
		smtpPassword: smtpPassword,
	}
}

// SendEmail sends an HTML email over TLS.
func (s *EmailService) SendEmail(from, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(from, "Crayon"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.smtpHost, s.smtpPort, s.smtpUsername, s.smtpPassword)

	return d.DialAndSend(m)
}

// SendTeamAddedEmail notifies a user that they were added to a team.
func (s *EmailService) SendTeamAddedEmail(from, to, userName, teamTitle, addedByName string) error {
	subject := fmt.Sprintf("You were added to %s", teamTitle)
	htmlBody := s.generateTeamAddedHTML(userName, teamTitle, addedByName)
	return s.SendEmail(from, to, subject, htmlBody)
}

// generateTeamAddedHTML renders the notification body with inline styles
// for maximum client compatibility.
func (s *EmailService) generateTeamAddedHTML(userName, teamTitle, addedByName string) string {
	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">
<html xmlns="http://www.w3.org/1999/xhtml" lang="en">
<head>
	<meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
	<meta name="viewport" content="width=device-width, initial-scale=1.0" />
	<title>Welcome to %[2]s</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Helvetica Neue', Arial, sans-serif; background-color: #f7f9fc;">
	<table role="presentation" width="100%%" cellspacing="0" cellpadding="0" style="background-color: #f7f9fc; padding: 24px 0;">
		<tr>
			<td align="center">
				<table role="presentation" width="480" cellspacing="0" cellpadding="0" style="background-color: #ffffff; border-radius: 8px; padding: 32px;">
					<tr>
						<td style="font-size: 20px; font-weight: bold; color: #1a1a2e; padding-bottom: 16px;">Hi %[1]s,</td>
					</tr>
					<tr>
						<td style="font-size: 14px; color: #444444; line-height: 1.6;">
							%[3]s added you to the team <strong>%[2]s</strong>.
							Open the team chat to start creating together.
						</td>
					</tr>
					<tr>
						<td style="font-size: 12px; color: #999999; padding-top: 24px;">The Crayon team</td>
					</tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>`, userName, teamTitle, addedByName)
}
