package helper

import (
	"context"
	"encoding/json"
	"errors"

	"pawfect_grooming/constants"
	"pawfect_grooming/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// FeedClient carries appointment status events between instances. nil disables the feed.
var FeedClient *redis.Client

var ErrFeedDisabled = errors.New("appointment feed is not available")

func NewStatusEvent(booking *model.Booking) model.StatusEvent {
	return model.StatusEvent{
		BookingID: booking.ID,
		Status:    booking.Status,
		UserEmail: emailOf(booking.User),
		Date:      booking.Date.String(),
		Time:      booking.Time,
		ChangedAt: Now(),
	}
}

// PublishStatus announces a booking status change. Failures are logged only.
func PublishStatus(ctx context.Context, event model.StatusEvent) {
	if FeedClient == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Uint("bookingId", event.BookingID).Msg("encode status event")
		return
	}
	if err := FeedClient.Publish(ctx, constants.FEED_CHANNEL, payload).Err(); err != nil {
		log.Warn().Err(err).Uint("bookingId", event.BookingID).Msg("publish status event")
	}
}

func SubscribeStatus(ctx context.Context) (*redis.PubSub, error) {
	if FeedClient == nil {
		return nil, ErrFeedDisabled
	}
	pubsub := FeedClient.Subscribe(ctx, constants.FEED_CHANNEL)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}
	return pubsub, nil
}
