package push

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// MaxMulticastTokens is the FCM limit per multicast call.
const MaxMulticastTokens = 500

// multicastClient is the part of *messaging.Client the sender uses.
type multicastClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type FCMSender struct {
	client multicastClient
}

var _ Sender = (*FCMSender)(nil)

// NewFCMSender initializes the Firebase admin app. An empty credentialsFile
// falls back to application default credentials. Extra options are passed to
// the app as given.
func NewFCMSender(ctx context.Context, projectID, credentialsFile string, extra ...option.ClientOption) (*FCMSender, error) {
	opts := append([]option.ClientOption{}, extra...)
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase messaging: %w", err)
	}
	return &FCMSender{client: client}, nil
}

func (s *FCMSender) SendMulticast(ctx context.Context, n Notification, tokens []string) (*BatchResponse, error) {
	out := &BatchResponse{}

	for start := 0; start < len(tokens); start += MaxMulticastTokens {
		end := min(start+MaxMulticastTokens, len(tokens))
		chunk := tokens[start:end]

		br, err := s.client.SendEachForMulticast(ctx, buildMessage(n, chunk))
		if err != nil {
			if start == 0 {
				return nil, fmt.Errorf("fcm multicast: %w", err)
			}
			for _, tok := range chunk {
				out.add(SendResponse{Token: tok, Err: err})
			}
			continue
		}

		for i, r := range br.Responses {
			if i >= len(chunk) {
				break
			}
			resp := SendResponse{Token: chunk[i]}
			if r.Success {
				resp.MessageID = r.MessageID
			} else {
				resp.Err = classifyFCMError(r.Error)
			}
			out.add(resp)
		}
	}
	return out, nil
}

func buildMessage(n Notification, tokens []string) *messaging.MulticastMessage {
	msg := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title: n.Title,
				Body:  n.Body,
				Icon:  n.Icon,
			},
		},
	}
	if n.Link != "" {
		msg.Webpush.FCMOptions = &messaging.WebpushFCMOptions{Link: n.Link}
	}
	return msg
}

// classifyFCMError marks a token invalid only when FCM says it is gone or
// belongs to another sender. INVALID_ARGUMENT also covers payload problems and
// stays transient.
func classifyFCMError(err error) error {
	if err == nil {
		return fmt.Errorf("fcm send failed")
	}
	if messaging.IsUnregistered(err) || messaging.IsSenderIDMismatch(err) {
		return fmt.Errorf("%w: %v", ErrChannelInvalid, err)
	}
	return err
}
