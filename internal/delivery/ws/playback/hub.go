package ws_playback

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/guevarapcharly-commits/pelis-avod/internal/model"
	usecase_player "github.com/guevarapcharly-commits/pelis-avod/internal/usecase/player"
)

type MessageType string

const (
	PlayerAttaching MessageType = "player_attaching"
	PlayerAttached  MessageType = "player_attached"
	PlayerReleased  MessageType = "player_released"
	PlayerDegraded  MessageType = "player_degraded"
)

// Message is the wire form of a playback lifecycle transition, broadcast to
// every observer connection.
type Message struct {
	Type     MessageType            `json:"type"`
	ViewerID string                 `json:"viewer_id"`
	Data     map[string]interface{} `json:"data,omitempty"`
}

type Client struct {
	Hub  *Hub
	Conn *websocket.Conn
	Send chan []byte
}

// Hub fans playback events out to observer websocket connections, so
// sessions coming and going can be watched from outside.
type Hub struct {
	mu sync.RWMutex

	clients map[*Client]bool

	logger *slog.Logger
}

func New(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
		logger:  logger,
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	h.logger.Info("playback observer registered")
}

func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Broadcast may already have evicted the client; membership guards the
	// channel against a double close.
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.Send)
	h.logger.Info("playback observer unregistered")
}

// PublishPlayback implements usecase_player.Publisher.
func (h *Hub) PublishPlayback(e usecase_player.Event) {
	h.Broadcast(messageFromEvent(e))
}

func (h *Hub) Broadcast(message Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	messageBytes, _ := json.Marshal(message)

	for client := range h.clients {
		select {
		case client.Send <- messageBytes:
		default:
			close(client.Send)
			delete(h.clients, client)
		}
	}
}

func (h *Hub) StartClientReading(client *Client) {
	defer func() {
		h.RemoveClient(client)
		client.Conn.Close()
	}()

	for {
		_, _, err := client.Conn.ReadMessage()
		if err != nil {
			break
		}
	}
}

func (h *Hub) StartClientWriting(client *Client) {
	defer client.Conn.Close()

	for message := range client.Send {
		err := client.Conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			break
		}
	}
}

func messageFromEvent(e usecase_player.Event) Message {
	msg := Message{
		ViewerID: string(e.ViewerID),
		Data: map[string]interface{}{
			"manifest": e.Manifest,
		},
	}

	switch {
	case e.Degraded:
		msg.Type = PlayerDegraded
	case e.State == model.PlayerAttaching:
		msg.Type = PlayerAttaching
	case e.State == model.PlayerAttached:
		msg.Type = PlayerAttached
	default:
		msg.Type = PlayerReleased
	}
	return msg
}
