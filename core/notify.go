package core

import "context"

type (
	// MessageSender delivers a short notification message to an address over one
	// channel (email, SMS, ...). Delivery is fire-and-forget: transport failures
	// are logged by the implementation and never surface to the caller.
	MessageSender interface {
		Send(ctx context.Context, message, address string)
	}

	// SenderFactory yields the configured sender for each notification channel.
	SenderFactory interface {
		EmailSender() MessageSender
		SmsSender() MessageSender
	}
)
