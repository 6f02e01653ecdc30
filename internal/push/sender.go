// Package push delivers notifications to registered channels.
package push

import (
	"context"
	"errors"
)

// ErrChannelInvalid marks a channel the provider reports as permanently
// gone. Callers delete such channels; any other error is transient.
var ErrChannelInvalid = errors.New("push channel invalid")

type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon,omitempty"`
	Link  string `json:"link,omitempty"`
}

// SendResponse is the outcome for one token.
type SendResponse struct {
	Token     string
	MessageID string
	Err       error
}

type BatchResponse struct {
	SuccessCount int
	FailureCount int
	Responses    []SendResponse
}

// InvalidTokens returns the tokens whose send failed with ErrChannelInvalid.
func (b *BatchResponse) InvalidTokens() []string {
	if b == nil {
		return nil
	}
	var out []string
	for _, r := range b.Responses {
		if r.Err != nil && errors.Is(r.Err, ErrChannelInvalid) {
			out = append(out, r.Token)
		}
	}
	return out
}

func (b *BatchResponse) add(r SendResponse) {
	if r.Err != nil {
		b.FailureCount++
	} else {
		b.SuccessCount++
	}
	b.Responses = append(b.Responses, r)
}

// Sender sends one notification to many tokens. A returned error means the
// whole batch failed; per-token failures are reported in the response.
type Sender interface {
	SendMulticast(ctx context.Context, n Notification, tokens []string) (*BatchResponse, error)
}
