package emailsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/darasa/journal/core"
)

type consoleSender struct {
	from    string
	subject string
	logger  core.Logger
}

var _ core.MessageSender = (*consoleSender)(nil)

// NewConsoleSender returns an email sender that only writes messages to the
// log. Used in debug mode instead of a real outbound relay.
func NewConsoleSender(conf *core.Config, logger core.Logger) *consoleSender {
	return &consoleSender{
		from:    conf.DefaultFromEmail.String(),
		subject: conf.AppName + " email notification",
		logger:  logger,
	}
}

func (svc consoleSender) Send(_ context.Context, message, address string) {
	body := new(strings.Builder)
	_, _ = fmt.Fprintf(body, "From: %s\r\n", svc.from)
	_, _ = fmt.Fprintf(body, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	_, _ = fmt.Fprintf(body, "Subject: %s\r\n", svc.subject)
	_, _ = fmt.Fprintf(body, "To: %s\r\n", address)
	_, _ = fmt.Fprintf(body, "\r\n%s\r\n", message)
	svc.logger.Info(body.String())
}
