package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

// SendMail delivers an HTML message through the SMTP relay configured in the
// environment. It reports false without an error when no relay is configured
// so callers can tell the user the mail was not sent.
func SendMail(to string, subject string, html string) (bool, error) {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")

	if host == "" || port == "" {
		return false, nil
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = username
	}

	msg := composeMail(from, to, subject, html)
	auth := smtp.PlainAuth("", username, password, host)
	if err := smtp.SendMail(host+":"+port, auth, from, []string{to}, msg); err != nil {
		return false, err
	}
	return true, nil
}

func composeMail(from string, to string, subject string, html string) []byte {
	headers := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n",
		from, to, subject)
	return []byte(headers + html)
}
