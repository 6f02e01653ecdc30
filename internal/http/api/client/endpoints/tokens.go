package endpoints

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/athan/internal/db"
	"github.com/Nixie-Tech-LLC/athan/internal/http/api"
	"github.com/Nixie-Tech-LLC/athan/internal/http/api/client/packets"
	"github.com/Nixie-Tech-LLC/athan/internal/locations"
	"github.com/Nixie-Tech-LLC/athan/internal/model"
	"github.com/Nixie-Tech-LLC/athan/internal/prayer"
)

// TokensModule mounts the push subscription endpoints.
func TokensModule(store db.Store) api.Module {
	ctl := &TokenManager{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/save-token", ctl.saveToken)
		c.POST("/delete-token", ctl.deleteToken)
	})
}

type TokenManager struct {
	store db.Store
}

// POST /api/save-token
func (m *TokenManager) saveToken(ctx *gin.Context) (any, *api.APIError) {
	var request packets.SaveTokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest("token and location are required")
	}

	lang := prayer.Arabic
	if request.Language != "" {
		var ok bool
		if lang, ok = prayer.ParseLanguage(request.Language); !ok {
			return nil, api.BadRequest("language must be ar or en")
		}
	}

	loc, err := locations.Resolve(request.Location)
	if err != nil {
		log.Warn().Err(err).Str("location", request.Location).Msg("save-token with unknown location")
		return nil, api.BadRequest("unknown location: " + request.Location)
	}

	sub, err := m.store.SaveSubscription(ctx.Request.Context(), model.Subscription{
		Token:    request.Token,
		Location: loc.Key(),
		Language: string(lang),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to save subscription")
		return nil, api.Internal("could not save token")
	}

	log.Info().Str("id", sub.ID).Str("location", sub.Location).Str("language", sub.Language).Msg("subscription saved")
	return packets.StatusResponse{Success: true, Message: "Token saved successfully."}, nil
}

// POST /api/delete-token
func (m *TokenManager) deleteToken(ctx *gin.Context) (any, *api.APIError) {
	var request packets.DeleteTokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest("token is required")
	}

	if err := m.store.DeleteSubscription(ctx.Request.Context(), request.Token); err != nil && !errors.Is(err, db.ErrNotFound) {
		log.Error().Err(err).Msg("failed to delete subscription")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete token"}
	}

	return packets.StatusResponse{Success: true, Message: "Token deleted successfully."}, nil
}
