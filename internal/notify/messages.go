package notify

import (
	"fmt"
	"math"
	"time"

	"github.com/Nixie-Tech-LLC/athan/internal/prayer"
	"github.com/Nixie-Tech-LLC/athan/internal/push"
)

// Payload renders the "prayer is approaching" notification for the next
// prayer, lead before its instant.
func Payload(next prayer.Prayer, lead time.Duration, lang prayer.Language, icon, link string) push.Notification {
	minutes := int(math.Round(lead.Minutes()))

	n := push.Notification{Icon: icon, Link: link}
	if lang == prayer.Arabic {
		n.Title = "اقترب وقت الصلاة"
		n.Body = fmt.Sprintf("صلاة %s بعد %d دقائق", next.DisplayName, minutes)
	} else {
		n.Title = "Prayer time is approaching"
		n.Body = fmt.Sprintf("%s prayer in %d minutes", next.DisplayName, minutes)
	}
	return n
}
