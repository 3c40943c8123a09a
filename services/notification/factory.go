package notifsvc

import (
	"github.com/darasa/journal/core"
	emailsvc "github.com/darasa/journal/services/email"
	smssvc "github.com/darasa/journal/services/sms"
)

type factory struct {
	email core.MessageSender
	sms   core.MessageSender
}

var _ core.SenderFactory = (*factory)(nil)

// NewFactory wires the per-channel senders: sendgrid-backed email when an API
// key is configured (console otherwise) and the logging SMS stub.
func NewFactory(conf *core.Config, logger core.Logger) *factory {
	var email core.MessageSender
	if conf.SendgridApiKey != "" {
		email = emailsvc.NewSendgridSender(conf, logger)
	} else {
		email = emailsvc.NewConsoleSender(conf, logger)
	}
	return &factory{
		email: email,
		sms:   smssvc.NewLogSender(logger),
	}
}

func (f *factory) EmailSender() core.MessageSender { return f.email }

func (f *factory) SmsSender() core.MessageSender { return f.sms }
