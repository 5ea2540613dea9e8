package email

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Transport delivers a message to the outside world
type Transport interface {
	Send(ctx context.Context, msg *Message) error
}

// Dispatcher attempts delivery of rendered notifications through a transport.
// Delivery is best-effort: a single attempt per call, failures are logged and
// reported as a boolean so a failed email never fails the operation that
// triggered it.
type Dispatcher struct {
	transport Transport
}

// NewDispatcher creates a dispatcher on top of a transport
func NewDispatcher(transport Transport) *Dispatcher {
	return &Dispatcher{transport: transport}
}

// Dispatch sends a rendered notification and reports success
func (d *Dispatcher) Dispatch(ctx context.Context, r *Rendered) bool {
	err := d.transport.Send(ctx, &Message{
		To:      r.To,
		ToName:  r.ToName,
		Subject: r.Subject,
		HTML:    r.HTML,
		Text:    r.Text,
	})
	if err != nil {
		log.Error().Err(err).
			Str("to", r.To).
			Str("subject", r.Subject).
			Msg("Failed to send email")
		return false
	}

	log.Info().
		Str("to", r.To).
		Str("subject", r.Subject).
		Msg("Email sent")
	return true
}

// LogTransport logs emails instead of sending them. Used in development and
// whenever no transport API key is configured.
type LogTransport struct{}

// Send logs the message and reports success
func (LogTransport) Send(ctx context.Context, msg *Message) error {
	log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Int("html_bytes", len(msg.HTML)).
		Msg("Email transport stub: logging instead of sending")
	return nil
}
