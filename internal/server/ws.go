package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"AdPulse/internal/model"
	"AdPulse/internal/simulator"
)

var upgrader = websocket.Upgrader{
	// The frontend is served from a different origin in every deployment.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Hub tracks connected WebSocket clients for broadcast updates.
type Hub struct {
	mu      sync.Mutex
	clients map[*wsClient]struct{}
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*wsClient]struct{})}
}

func (h *Hub) add(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *Hub) remove(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

// Broadcast sends an update to every connected client.
func (h *Hub) Broadcast(u model.Update) {
	h.mu.Lock()
	clients := make([]*wsClient, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.send(u)
	}
}

// wsClient wraps one WebSocket connection. Gorilla connections allow a
// single concurrent writer, so all writes go through send.
type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) send(u model.Update) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(u); err != nil {
		log.Printf("[WARN] ws write: %v", err)
	}
}

// clientMessage is what subscribers send over the socket. start-polling
// carries the simulate fields minus competitors, which defaults
// internally.
type clientMessage struct {
	Type string `json:"type"`
	model.SimulationRequest
}

func (s *Server) handleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WARN] ws upgrade: %v", err)
		return
	}

	client := &wsClient{conn: conn}
	s.hub.add(client)
	log.Printf("[INFO] ws client connected: %s", conn.RemoteAddr())

	var session *simulator.Session
	defer func() {
		if session != nil {
			session.Stop()
		}
		s.hub.remove(client)
		conn.Close()
		log.Printf("[INFO] ws client disconnected: %s", conn.RemoteAddr())
	}()

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WARN] ws read: %v", err)
			}
			return
		}

		switch msg.Type {
		case "start-polling":
			if session != nil {
				session.Stop()
			}
			session = simulator.NewSession(s.sim, msg.SimulationRequest, s.interval, client.send)
			session.Start(c.Request.Context())
		default:
			log.Printf("[WARN] ws: unknown message type %q", msg.Type)
		}
	}
}
