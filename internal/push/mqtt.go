package push

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

const mqttQoS = 1

// TopicFor is the per-channel topic subscribers listen on.
func TopicFor(token string) string {
	return fmt.Sprintf("prayer/%s/notifications", token)
}

// MQTTSender publishes notifications to a broker. MQTT has no notion of an
// unregistered subscriber, so every failure is transient.
type MQTTSender struct {
	client         mqtt.Client
	publishTimeout time.Duration
}

var _ Sender = (*MQTTSender)(nil)

// NewMQTTSender connects to the broker.
func NewMQTTSender(brokerURL, clientID string) (*MQTTSender, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.OnConnect = func(mqtt.Client) {
		log.Info().Str("broker", brokerURL).Msg("connected to MQTT broker")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Warn().Err(err).Str("broker", brokerURL).Msg("MQTT connection lost")
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return NewMQTTSenderWithClient(client), nil
}

// NewMQTTSenderWithClient wraps an already connected client.
func NewMQTTSenderWithClient(client mqtt.Client) *MQTTSender {
	return &MQTTSender{client: client, publishTimeout: 10 * time.Second}
}

func (s *MQTTSender) SendMulticast(ctx context.Context, n Notification, tokens []string) (*BatchResponse, error) {
	payload, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("encode notification: %w", err)
	}

	out := &BatchResponse{}
	for _, tok := range tokens {
		if err := ctx.Err(); err != nil {
			out.add(SendResponse{Token: tok, Err: err})
			continue
		}

		token := s.client.Publish(TopicFor(tok), mqttQoS, false, payload)
		if !token.WaitTimeout(s.publishTimeout) {
			out.add(SendResponse{Token: tok, Err: fmt.Errorf("publish to %s timed out", TopicFor(tok))})
			continue
		}
		if err := token.Error(); err != nil {
			out.add(SendResponse{Token: tok, Err: fmt.Errorf("publish to %s: %w", TopicFor(tok), err)})
			continue
		}
		out.add(SendResponse{Token: tok})
	}
	return out, nil
}

// Close disconnects from the broker.
func (s *MQTTSender) Close() {
	s.client.Disconnect(250)
}
