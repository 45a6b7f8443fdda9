package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"srvices-backend/entity"
	"srvices-backend/services"
	"srvices-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// ChatHub fans messages out to every open connection in a room.
type ChatHub struct {
	clients    map[string]map[*websocket.Conn]bool // roomID -> set of clients
	broadcast  chan BroadcastMessage
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	service    *services.ChatService
}

// Subscription is one user's connection into one room.
type Subscription struct {
	Conn   *websocket.Conn
	RoomID string
	UserID string
}

type BroadcastMessage struct {
	RoomID  string
	Message *entity.Message
}

func NewChatHub(service *services.ChatService) *ChatHub {
	return &ChatHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan BroadcastMessage),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		service:    service,
	}
}

// Run loops over register/unregister/broadcast until the process exits.
func (h *ChatHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RoomID] == nil {
				h.clients[sub.RoomID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RoomID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RoomID][sub.Conn]; ok {
				delete(h.clients[sub.RoomID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.RoomID] {
				if err := conn.WriteJSON(msg.Message); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.RoomID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/chat/:roomId
func (h *ChatHub) HandleWebSocket(c *gin.Context) {
	roomID := c.Param("roomId")
	userID := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	// the sender must be a participant of the room's booking
	room, err := h.service.Authorize(roomID, userID, role)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "no access"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, RoomID: room.ID, UserID: userID}
	h.register <- sub

	go h.listenMessages(sub)
}

func (h *ChatHub) listenMessages(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		_, msgData, err := sub.Conn.ReadMessage()
		if err != nil {
			break
		}

		var payload struct {
			Body string `json:"body"`
			Type string `json:"type"`
		}
		if err := json.Unmarshal(msgData, &payload); err != nil {
			log.Printf("invalid payload: %v", err)
			continue
		}

		// sender identity comes from the JWT, never the payload
		msg, err := h.service.SendMessage(sub.RoomID, sub.UserID, entity.MessageType(payload.Type), payload.Body)
		if err != nil {
			log.Printf("save msg error: %v", err)
			continue
		}

		h.broadcast <- BroadcastMessage{RoomID: sub.RoomID, Message: msg}
	}
}
