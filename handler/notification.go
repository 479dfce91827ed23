package handler

import (
	"context"
	"encoding/json"
	"sync"

	"driving_school_manager/config"
	"driving_school_manager/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

const notificationChannel = "dashboard:notifications"

// NotificationHub is the registry of open dashboard connections. Stale
// connections are pruned on write failure and on disconnect.
type NotificationHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{conns: make(map[*websocket.Conn]bool)}
}

func (h *NotificationHub) Add(c *websocket.Conn) {
	h.mu.Lock()
	h.conns[c] = true
	h.mu.Unlock()
}

func (h *NotificationHub) Remove(c *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
}

func (h *NotificationHub) Broadcast(payload []byte) {
	h.mu.Lock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
	h.mu.Unlock()
}

func (h *NotificationHub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

var (
	notificationHub = NewNotificationHub()
	redisClient     *redis.Client
)

// InitNotifications connects to Redis and relays the notification channel to
// every open dashboard view. Without Redis (tests, single-process dev) events
// are broadcast in-process only.
func InitNotifications() {
	addr := config.ConfigOr("REDIS_ADDR", "localhost:6379")
	redisClient = redis.NewClient(&redis.Options{Addr: addr})

	go func() {
		pubsub := redisClient.Subscribe(context.Background(), notificationChannel)
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			notificationHub.Broadcast([]byte(msg.Payload))
		}
	}()
}

// PublishNotification fans an event out to connected dashboard views.
// Fire and forget: a delivery failure is logged, never propagated, so a state
// transition is never rolled back because a viewer could not be told about it.
func PublishNotification(event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.L.Errorf("failed to encode notification: %v", err)
		return
	}

	if redisClient == nil {
		notificationHub.Broadcast(payload)
		return
	}

	if err := redisClient.Publish(context.Background(), notificationChannel, payload).Err(); err != nil {
		logger.L.Warnf("redis publish failed, broadcasting locally: %v", err)
		notificationHub.Broadcast(payload)
	}
}

// NotificationSocket keeps one dashboard view subscribed until it disconnects.
func NotificationSocket(c *websocket.Conn) {
	notificationHub.Add(c)
	defer func() {
		notificationHub.Remove(c)
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
