package handler

import (
	"context"
	"sync"

	"pawfect_grooming/constants"
	"pawfect_grooming/helper"
	"pawfect_grooming/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const feedBuffer = 16

var (
	feedClients = make(map[*websocket.Conn]chan []byte)
	feedCancel  context.CancelFunc
	feedMu      sync.Mutex
)

// UpgradeFeed rejects plain HTTP requests to the feed endpoint.
func UpgradeFeed(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return utils.ErrorResponse(c, fiber.StatusUpgradeRequired, constants.ERROR_INPUT, fiber.ErrUpgradeRequired)
	}
	if helper.FeedClient == nil {
		return respondError(c, helper.ErrFeedDisabled)
	}
	return c.Next()
}

// relayFeed forwards every status event to the connected admins until ctx is cancelled.
// A client whose buffer is full misses the event.
func relayFeed(ctx context.Context) {
	pubsub, err := helper.SubscribeStatus(ctx)
	if err != nil {
		log.Error().Err(err).Msg("subscribe appointment feed")
		return
	}
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			payload := []byte(msg.Payload)

			feedMu.Lock()
			for conn, send := range feedClients {
				select {
				case send <- payload:
				default:
					log.Warn().Str("remote", conn.RemoteAddr().String()).Msg("appointment feed client is slow, event dropped")
				}
			}
			feedMu.Unlock()
		}
	}
}

func joinFeed(c *websocket.Conn) chan []byte {
	send := make(chan []byte, feedBuffer)

	feedMu.Lock()
	defer feedMu.Unlock()
	feedClients[c] = send
	if feedCancel == nil {
		ctx, cancel := context.WithCancel(context.Background())
		feedCancel = cancel
		go relayFeed(ctx)
	}
	return send
}

// leaveFeed unregisters c and stops the relay once nobody listens.
func leaveFeed(c *websocket.Conn) {
	feedMu.Lock()
	defer feedMu.Unlock()
	if send, ok := feedClients[c]; ok {
		close(send)
		delete(feedClients, c)
	}
	if len(feedClients) == 0 && feedCancel != nil {
		feedCancel()
		feedCancel = nil
	}
}

// AppointmentFeed keeps an admin socket registered until the client goes away.
func AppointmentFeed(c *websocket.Conn) {
	send := joinFeed(c)
	defer c.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	defer leaveFeed(c)
	for {
		select {
		case <-done:
			return
		case payload := <-send:
			if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		}
	}
}
