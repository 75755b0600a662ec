package ws

import (
	"context"

	"github.com/mehrbod2002/capitalmarket/internal/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type delivery struct {
	email        string
	notification models.Notification
}

// Hub tracks live sessions per user email and fans stored notifications out
// to them. All map access happens on the Run goroutine.
type Hub struct {
	clients map[string]map[string]*Client

	register   chan *Client
	unregister chan *Client
	push       chan delivery
	count      chan chan int

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[string]map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		push:       make(chan delivery, 256),
		count:      make(chan chan int),
		logger:     logger,
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for _, sessions := range h.clients {
				for _, client := range sessions {
					client.Close()
				}
			}
			h.clients = make(map[string]map[string]*Client)
			return

		case client := <-h.register:
			sessions, ok := h.clients[client.Email]
			if !ok {
				sessions = make(map[string]*Client)
				h.clients[client.Email] = sessions
			}
			sessions[client.ID] = client

		case client := <-h.unregister:
			if sessions, ok := h.clients[client.Email]; ok {
				if _, ok := sessions[client.ID]; ok {
					delete(sessions, client.ID)
					client.Close()
				}
				if len(sessions) == 0 {
					delete(h.clients, client.Email)
				}
			}

		case d := <-h.push:
			msg := &Message{Type: "notification", Data: d.notification}
			for _, client := range h.clients[d.email] {
				select {
				case client.Send <- msg:
				default:
					h.logger.Warn("client buffer full, skipping notification",
						zap.String("client_id", client.ID), zap.String("email", d.email))
				}
			}

		case reply := <-h.count:
			n := 0
			for _, sessions := range h.clients {
				n += len(sessions)
			}
			reply <- n
		}
	}
}

func (h *Hub) RegisterClient(email string, conn *websocket.Conn) *Client {
	client := NewClient(uuid.New().String(), email, conn)
	h.register <- client
	return client
}

func (h *Hub) UnregisterClient(client *Client) {
	h.unregister <- client
}

// PushNotification queues n for every live session of email. It never blocks
// the caller; when the queue is full the push is dropped, the notification
// itself is already stored on the user.
func (h *Hub) PushNotification(email string, n models.Notification) {
	select {
	case h.push <- delivery{email: email, notification: n}:
	default:
		h.logger.Warn("notification queue full, dropping push", zap.String("email", email), zap.String("notification_id", n.ID))
	}
}

func (h *Hub) GetClientCount() int {
	reply := make(chan int)
	h.count <- reply
	return <-reply
}
