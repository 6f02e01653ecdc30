package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/athan/internal/config"
	"github.com/Nixie-Tech-LLC/athan/internal/push"
)

// InitPushSender selects and returns the configured delivery provider and a
// cleanup func.
func InitPushSender(ctx context.Context, cfg *config.Config) (push.Sender, func()) {
	switch cfg.PushProvider {
	case config.ProviderFCM:
		sender, err := push.NewFCMSender(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize FCM")
		}
		log.Info().Str("project", cfg.FirebaseProjectID).Msg("using FCM push provider")
		return sender, func() {}

	case config.ProviderMQTT:
		sender, err := push.NewMQTTSender(cfg.MQTTBrokerURL, cfg.MQTTClientID)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize MQTT")
		}
		log.Info().Str("broker", cfg.MQTTBrokerURL).Msg("using MQTT push provider")
		return sender, sender.Close
	}

	log.Info().Msg("using log push provider")
	return push.LogSender{}, func() {}
}
