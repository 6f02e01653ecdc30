package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/athan/internal/http/api"
	"github.com/Nixie-Tech-LLC/athan/internal/http/api/cron/packets"
)

// Trigger starts a detached notification pass.
type Trigger interface {
	Trigger(window time.Duration) string
}

// NotificationsModule mounts the cron trigger.
func NotificationsModule(trigger Trigger) api.Module {
	ctl := &NotificationTrigger{trigger: trigger}
	return api.ModuleFunc(func(c *api.Controller) {
		c.Handle([]string{http.MethodGet, http.MethodPost}, "/send-notifications", ctl.sendNotifications)
	})
}

type NotificationTrigger struct {
	trigger Trigger
}

// GET|POST /api/send-notifications[?test_offset_minutes=N]
func (n *NotificationTrigger) sendNotifications(ctx *gin.Context) (any, *api.APIError) {
	var window time.Duration
	if raw := ctx.Query("test_offset_minutes"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes < 0 {
			return nil, api.BadRequest("Invalid test_offset_minutes parameter.")
		}
		window = time.Duration(minutes) * time.Minute
	}

	runID := n.trigger.Trigger(window)
	log.Info().Str("run_id", runID).Dur("window", window).Msg("notification pass triggered")

	return packets.TriggerResponse{
		Success: true,
		Message: "Notification check triggered successfully. This process runs in the background. Check server logs for details.",
		RunID:   runID,
	}, nil
}
