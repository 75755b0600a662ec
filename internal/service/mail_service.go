package service

import (
	"errors"

	"gopkg.in/gomail.v2"
)

type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type mailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailService dials the SMTP server for every message. Port 465 implies
// implicit TLS.
func NewMailService(host string, port int, username, password, from string) Mailer {
	return &mailService{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (s *mailService) Send(to, subject, htmlBody string) error {
	if to == "" {
		return errors.New("recipient cannot be empty")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return s.dialer.DialAndSend(m)
}
