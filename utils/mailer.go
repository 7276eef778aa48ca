package utils

import (
	"errors"

	"gopkg.in/gomail.v2"

	"pn-nangabulik-backend/config"
)

var ErrMailNotConfigured = errors.New("SMTP belum dikonfigurasi")

// SendMail mengirim email lewat SMTP yang diset di environment
func SendMail(to, subject, body string) error {
	if config.SMTPHost == "" {
		return ErrMailNotConfigured
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.SMTPSender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	return d.DialAndSend(m)
}
