package smssvc

import (
	"context"
	"fmt"

	"github.com/darasa/journal/core"
)

type logSender struct {
	logger core.Logger
}

var _ core.MessageSender = (*logSender)(nil)

// NewLogSender returns an SMS sender stub that only logs. A real gateway
// implementation must keep the same never-fails contract so that callers'
// control flow stays unaffected by delivery failures.
func NewLogSender(logger core.Logger) *logSender {
	return &logSender{logger: logger}
}

func (svc logSender) Send(_ context.Context, message, address string) {
	svc.logger.Info(fmt.Sprintf("message %q sent to %q by SMS", message, address))
}
