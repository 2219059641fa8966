package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const chatRequestTimeout = 60 * time.Second

// ChatHub tracks live websocket chat sessions and fans prompts out to the
// advice service.
type ChatHub struct {
	clients     map[*ChatClient]bool
	register    chan *ChatClient
	unregister  chan *ChatClient
	mutex       sync.RWMutex
	chatService *ChatService
}

type ChatClient struct {
	hub    *ChatHub
	id     string
	userID uint
	socket *websocket.Conn
	send   chan []byte
	mu     sync.Mutex
	closed bool
}

type ChatMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

func NewChatHub(chatService *ChatService) *ChatHub {
	return &ChatHub{
		clients:     make(map[*ChatClient]bool),
		register:    make(chan *ChatClient),
		unregister:  make(chan *ChatClient),
		chatService: chatService,
	}
}

func (h *ChatHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			log.Printf("Chat session %s opened for user %d - total sessions: %d", client.id, client.userID, total)

		case client := <-h.unregister:
			h.mutex.Lock()
			_, ok := h.clients[client]
			if ok {
				delete(h.clients, client)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			if ok {
				client.close()
				log.Printf("Chat session %s closed for user %d - total sessions: %d", client.id, client.userID, total)
			}
		}
	}
}

// RegisterClient starts a chat session on an upgraded websocket connection.
func (h *ChatHub) RegisterClient(conn *websocket.Conn, userID uint) {
	client := &ChatClient{
		hub:    h,
		id:     uuid.NewString(),
		userID: userID,
		socket: conn,
		send:   make(chan []byte, 8),
	}

	h.register <- client

	go client.writePump()
	go client.readPump()
}

func (c *ChatClient) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.socket.Close()
	}()

	for {
		_, data, err := c.socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Chat session %s read error: %v", c.id, err)
			}
			return
		}

		var req ChatRequest
		if err := json.Unmarshal(data, &req); err != nil || req.Prompt == "" {
			c.sendMessage("error", map[string]interface{}{"error": "expected a chat request with a prompt"})
			continue
		}

		// One advice call per incoming prompt; the session stays responsive
		// while the advice service thinks.
		go c.handlePrompt(&req)
	}
}

func (c *ChatClient) handlePrompt(req *ChatRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), chatRequestTimeout)
	defer cancel()

	reply, err := c.hub.chatService.Chat(ctx, c.userID, req)
	if err != nil {
		log.Printf("Chat session %s advice call failed: %v", c.id, err)
		c.sendMessage("error", map[string]interface{}{"error": err.Error()})
		return
	}

	c.sendMessage("advice", reply)
}

// close shuts the send channel exactly once. Late sendMessage calls from
// in-flight prompt handlers see the closed flag instead of a closed channel.
func (c *ChatClient) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func (c *ChatClient) sendMessage(messageType string, payload interface{}) {
	data, err := json.Marshal(ChatMessage{Type: messageType, Payload: payload})
	if err != nil {
		log.Printf("Error marshaling chat message: %v", err)
		return
	}

	// Prompt handlers run on their own goroutines and may outlive the
	// connection; sends after disconnect are dropped, not panicked on.
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		log.Printf("Chat session %s already closed, dropping message", c.id)
		return
	}

	select {
	case c.send <- data:
	default:
		log.Printf("Chat session %s send buffer full, dropping message", c.id)
	}
}

func (c *ChatClient) writePump() {
	defer c.socket.Close()

	for message := range c.send {
		if err := c.socket.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("Chat session %s write error: %v", c.id, err)
			return
		}
	}
}
