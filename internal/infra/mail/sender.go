package mail

import (
	"fmt"
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gopkg.in/gomail.v2"
)

var mailSendErrors = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "mail_send_errors_total",
		Help: "Total number of failed outgoing email deliveries",
	},
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		mailSendErrors.Inc()
		return fmt.Errorf("smtp send to %s failed: %w", to, err)
	}

	return nil
}

// LogSender stands in for SMTP when no mail host is configured. Useful in
// local development; messages just land in the process log.
type LogSender struct{}

func (LogSender) Send(to, subject, body string) error {
	log.Printf("sending EMAIL to: %s\nSubject: %s\n%s", to, subject, body)
	return nil
}
