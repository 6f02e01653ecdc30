package push

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LogSender only logs what it would send. Used in development.
type LogSender struct{}

var _ Sender = LogSender{}

func (LogSender) SendMulticast(ctx context.Context, n Notification, tokens []string) (*BatchResponse, error) {
	log.Info().
		Str("title", n.Title).
		Str("body", n.Body).
		Int("tokens", len(tokens)).
		Msg("push notification (log provider)")

	out := &BatchResponse{}
	for _, tok := range tokens {
		out.add(SendResponse{Token: tok, MessageID: uuid.NewString()})
	}
	return out, nil
}
