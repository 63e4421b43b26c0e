package alert

import (
	"context"

	"gopkg.in/gomail.v2"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
	"github.com/BUka228/ProgressQuestWeb/pkg/config"
)

type smtpAlerter struct {
	dialer *gomail.Dialer
	from   string
}

func newSMTPAlerter() alertHandlerInterface {
	smtpConfig := config.GetConfig().SMTP
	return &smtpAlerter{
		dialer: gomail.NewDialer(smtpConfig.Host, smtpConfig.Port, smtpConfig.User, smtpConfig.Password),
		from:   smtpConfig.From,
	}
}

func (s *smtpAlerter) SendMessageTo(_ context.Context, user *model.User, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return s.dialer.DialAndSend(m)
}
