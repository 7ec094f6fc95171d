package events

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogListener returns a listener that writes each redemption to the logger
func LogListener(logger logrus.FieldLogger) Listener {
	return func(_ context.Context, event *RedeemEvent) {
		entry := logger.WithFields(logrus.Fields{
			"redemption_id": event.RedemptionID,
			"player_id":     event.Player.ID,
			"kit":           event.Kit.Name,
			"status":        event.Status,
		})

		if len(event.Rejected) > 0 {
			entry = entry.WithField("rejected", len(event.Rejected))
		}

		if event.Status.IsSuccess() {
			entry.Info("kit redeemed")
			return
		}
		entry.Info("kit redemption failed")
	}
}
