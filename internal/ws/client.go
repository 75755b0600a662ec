package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client is one websocket session. A user may hold several at once.
type Client struct {
	ID    string
	Email string
	Conn  *websocket.Conn
	Send  chan *Message

	closeOnce sync.Once
}

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type inboundMessage struct {
	Action string `json:"action"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewClient(id, email string, conn *websocket.Conn) *Client {
	return &Client{
		ID:    id,
		Email: email,
		Conn:  conn,
		Send:  make(chan *Message, 256),
	}
}

func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.Send)
	})
}
