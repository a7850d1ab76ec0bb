package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/prajith-ops/Stayelo/internal/models"
	"github.com/prajith-ops/Stayelo/internal/services"
)

const persistTimeout = 10 * time.Second

// Event names on the wire.
const (
	EventChatHistory    = "chat_history"
	EventSendMessage    = "send_message"
	EventReceiveMessage = "receive_message"
)

// Envelope frames every message on the channel.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// InboundMessage is the send_message payload.
type InboundMessage struct {
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

type inbound struct {
	client *Client
	data   []byte
}

// Hub owns the registry of connected chat clients. All registry access and
// the persist-then-broadcast sequence happen on the Run goroutine, so
// broadcast order matches persistence-completion order.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	messages   chan inbound
	shutdown   chan struct{}
	stopOnce   sync.Once

	chat   *services.ChatService
	logger *slog.Logger
}

func NewHub(chat *services.ChatService, logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		messages:   make(chan inbound),
		shutdown:   make(chan struct{}),
		chat:       chat,
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Info("chat client connected", "clients", len(h.clients))
			h.sendHistory(client)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Info("chat client disconnected", "clients", len(h.clients))
			}

		case msg := <-h.messages:
			h.handleMessage(msg)

		case <-h.shutdown:
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return
		}
	}
}

// Stop drains the registry and ends the Run loop.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
	})
}

// unregisterClient hands a dying connection back to the hub. After Stop the
// Run loop is gone, so the send must not block sunsetting read pumps.
func (h *Hub) unregisterClient(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.shutdown:
	}
}

// sendHistory replays the full stored history to one newly connected client.
// A store failure is logged; the client stays connected without history.
func (h *Hub) sendHistory(client *Client) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	history, err := h.chat.History(ctx)
	if err != nil {
		h.logger.Error("failed to load chat history", "error", err)
		return
	}
	if history == nil {
		history = []*models.ChatMessage{}
	}

	payload, err := marshalEvent(EventChatHistory, history)
	if err != nil {
		h.logger.Error("failed to encode chat history", "error", err)
		return
	}

	h.deliver(client, payload)
}

// handleMessage persists an inbound message and, only on successful
// persistence, broadcasts the stored message (with its store-assigned id) to
// every connected client including the sender. A persistence failure drops
// the message from the broadcast path.
func (h *Hub) handleMessage(msg inbound) {
	var env Envelope
	if err := json.Unmarshal(msg.data, &env); err != nil {
		h.logger.Error("malformed chat frame", "error", err)
		return
	}
	if env.Event != EventSendMessage {
		h.logger.Info("ignoring unknown chat event", "event", env.Event)
		return
	}

	var in InboundMessage
	if err := json.Unmarshal(env.Data, &in); err != nil {
		h.logger.Error("malformed send_message payload", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	stored, err := h.chat.SaveMessage(ctx, in.Sender, in.Text, in.Timestamp)
	if err != nil {
		h.logger.Error("failed to persist chat message", "error", err)
		return
	}

	payload, err := marshalEvent(EventReceiveMessage, stored)
	if err != nil {
		h.logger.Error("failed to encode chat message", "error", err)
		return
	}

	for client := range h.clients {
		h.deliver(client, payload)
	}
}

// deliver hands a frame to one client without blocking the hub; a client
// whose buffer is full is dropped.
func (h *Hub) deliver(client *Client, payload []byte) {
	select {
	case client.send <- payload:
	default:
		delete(h.clients, client)
		close(client.send)
		h.logger.Info("dropped slow chat client", "clients", len(h.clients))
	}
}

func marshalEvent(event string, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: raw})
}
