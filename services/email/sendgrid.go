package emailsvc

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/darasa/journal/core"
)

var (
	host     = "https://api.sendgrid.com"
	endpoint = "/v3/mail/send"
)

type sendgridSender struct {
	key     string
	from    *sgmail.Email
	subject string
	logger  core.Logger
}

var _ core.MessageSender = (*sendgridSender)(nil)

func NewSendgridSender(conf *core.Config, logger core.Logger) *sendgridSender {
	return &sendgridSender{
		key:     conf.SendgridApiKey,
		from:    sgmail.NewEmail(conf.DefaultFromEmail.Name, conf.DefaultFromEmail.Address),
		subject: conf.AppName + " email notification",
		logger:  logger,
	}
}

// Send delivers the message by email. Transport failures are logged and
// swallowed; delivery never affects the caller's control flow.
func (svc sendgridSender) Send(_ context.Context, message, address string) {
	p := sgmail.NewPersonalization()
	p.Subject = svc.subject
	p.AddTos(sgmail.NewEmail("", address))

	m := sgmail.NewV3Mail()
	m.SetFrom(svc.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", message))

	req := sendgrid.GetRequest(svc.key, endpoint, host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	res, err := sendgrid.API(req)
	if err != nil {
		svc.logger.Warn(fmt.Sprintf("sending email to %s: %v", address, err), err)
		return
	}
	if res.StatusCode >= http.StatusBadRequest {
		svc.logger.Warn(fmt.Sprintf("sending email to %s - status: %d - body: %s", address, res.StatusCode, res.Body))
		return
	}
	svc.logger.Info(fmt.Sprintf("message %q sent to %q by email", message, address))
}
