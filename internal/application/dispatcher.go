package application

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Delivery is the outcome of a single send attempt.
type Delivery struct {
	Recipient Recipient
	Err       error
}

type Dispatcher struct {
	transport Transport
}

func NewDispatcher(transport Transport) *Dispatcher {
	return &Dispatcher{transport: transport}
}

// Dispatch attempts delivery to every recipient independently; a failed
// attempt does not stop the remaining ones. An empty recipient list is
// ErrNoRecipientsConfigured and no transport call is made.
func (d *Dispatcher) Dispatch(ctx context.Context, recipients []Recipient, message string) ([]Delivery, error) {
	if len(recipients) == 0 {
		return nil, ErrNoRecipientsConfigured
	}

	deliveries := make([]Delivery, 0, len(recipients))
	for _, recipient := range recipients {
		err := d.transport.Send(ctx, recipient, message)
		if err != nil {
			log.Error().Err(err).Str("recipient", recipient.Value).Msg("delivery failed")
		} else {
			log.Info().Str("recipient", recipient.Value).Msg("message sent")
		}
		deliveries = append(deliveries, Delivery{Recipient: recipient, Err: err})
	}

	return deliveries, nil
}
