package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"ideanest/pkg/logger"
)

// Client is one open WebSocket connection for a signed-in user.
type Client struct {
	Email string
	Conn  *websocket.Conn
	Send  chan []byte
}

// Manager tracks active connections keyed by user email so assistant
// replies can be pushed to whoever is watching a chat.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the registration loop until the context is cancelled.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.Email] = client
				m.mutex.Unlock()
				logger.Info("WebSocket client registered: %s", client.Email)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.Email]; ok {
					delete(m.clients, client.Email)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Info("WebSocket client unregistered: %s", client.Email)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendToUser delivers a payload to the user's open connection, if any.
// Delivery is best effort; a missing or slow client drops the payload.
func (m *Manager) SendToUser(email string, payload []byte) {
	m.mutex.RLock()
	client, ok := m.clients[email]
	m.mutex.RUnlock()

	if !ok {
		return
	}

	select {
	case client.Send <- payload:
	default:
		logger.Warn("Dropping WebSocket payload for %s: send buffer full", email)
	}
}

// ReadPump drains inbound frames until the connection closes. Inbound chat
// goes over HTTP; the socket exists for pushes only.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Error("WebSocket read error for %s: %v", c.Email, err)
			}
			break
		}
	}
}

// WritePump forwards queued payloads to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		payload, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logger.Error("WebSocket write error for %s: %v", c.Email, err)
			return
		}
	}
}
