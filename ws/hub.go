package ws

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"tableorder/pkg/logger"
	"tableorder/services"
)

const (
	ChannelKitchen = "kitchen"
	ChannelWaiter  = "waiter"
	ChannelBilling = "billing"
	ChannelAdmin   = "admin"
	tablePrefix    = "table:"

	writeWait = 5 * time.Second
)

// TableChannel is the channel a customer at the table listens on.
func TableChannel(number string) string { return tablePrefix + number }

// ValidChannel reports whether name is a role channel or a table channel.
func ValidChannel(name string) bool {
	switch name {
	case ChannelKitchen, ChannelWaiter, ChannelBilling, ChannelAdmin:
		return true
	}
	return strings.HasPrefix(name, tablePrefix) && len(name) > len(tablePrefix)
}

// ChannelsFor routes an event to the views that show the changed entity.
func ChannelsFor(ev services.Event) []string {
	var out []string
	switch {
	case strings.HasPrefix(ev.Type, "order."):
		out = []string{ChannelKitchen, ChannelBilling, ChannelWaiter, ChannelAdmin}
	case strings.HasPrefix(ev.Type, "call."), ev.Type == services.EventTableChanged:
		out = []string{ChannelWaiter, ChannelAdmin}
	case ev.Type == services.EventSettingsChanged:
		out = []string{ChannelBilling, ChannelAdmin}
	default:
		out = []string{ChannelAdmin}
	}
	if ev.TableNumber != "" {
		out = append(out, TableChannel(ev.TableNumber))
	}
	return out
}

// Subscription is one websocket connection listening on one channel.
type Subscription struct {
	Conn    *websocket.Conn
	Channel string
}

type broadcastMessage struct {
	Channel string
	Event   services.Event
}

type hello struct {
	Type    string `json:"type"`
	Channel string `json:"channel"`
}

// Hub fans service events out to websocket subscribers.
type Hub struct {
	clients    map[string]map[*websocket.Conn]bool
	broadcast  chan broadcastMessage
	register   chan Subscription
	unregister chan Subscription
	done       chan struct{}
	mu         sync.Mutex
	log        *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan broadcastMessage, 256),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Publish implements services.Notifier. It never blocks: when the queue is
// full the event is dropped and logged.
func (h *Hub) Publish(ev services.Event) {
	for _, ch := range ChannelsFor(ev) {
		select {
		case h.broadcast <- broadcastMessage{Channel: ch, Event: ev}:
		default:
			h.log.Error(context.Background(), "ws_publish", "event dropped", nil,
				slog.String("channel", ch), slog.String("type", ev.Type))
		}
	}
}

// Subscribers returns the number of live connections on a channel.
func (h *Hub) Subscribers(channel string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[channel])
}

// Run serves register, unregister and broadcast until ctx is cancelled,
// then closes every connection.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for _, conns := range h.clients {
				for conn := range conns {
					conn.Close()
				}
			}
			h.clients = map[string]map[*websocket.Conn]bool{}
			h.mu.Unlock()
			return

		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.Channel] == nil {
				h.clients[sub.Channel] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.Channel][sub.Conn] = true
			h.mu.Unlock()
			if err := write(sub.Conn, hello{Type: "subscribed", Channel: sub.Channel}); err != nil {
				h.drop(sub.Channel, sub.Conn)
			}

		case sub := <-h.unregister:
			h.drop(sub.Channel, sub.Conn)

		case msg := <-h.broadcast:
			h.mu.Lock()
			conns := make([]*websocket.Conn, 0, len(h.clients[msg.Channel]))
			for conn := range h.clients[msg.Channel] {
				conns = append(conns, conn)
			}
			h.mu.Unlock()
			for _, conn := range conns {
				if err := write(conn, msg.Event); err != nil {
					h.log.Error(context.Background(), "ws_write", "websocket write failed", err,
						slog.String("channel", msg.Channel))
					h.drop(msg.Channel, conn)
				}
			}
		}
	}
}

func (h *Hub) drop(channel string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[channel][conn]; ok {
		delete(h.clients[channel], conn)
		conn.Close()
	}
}

func write(conn *websocket.Conn, v any) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket serves GET /ws/:channel.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	channel := c.Param("channel")
	if !ValidChannel(channel) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "unknown channel", "kind": "not_found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error(c.Request.Context(), "ws_upgrade", "websocket upgrade failed", err)
		return
	}

	sub := Subscription{Conn: conn, Channel: channel}
	select {
	case h.register <- sub:
	case <-h.done:
		conn.Close()
		return
	}
	h.log.Debug(c.Request.Context(), "ws_subscribe", "subscriber joined", slog.String("channel", channel))

	go h.listen(sub)
}

// listen drains client frames; subscribers only receive, so reads exist to
// notice the connection closing.
func (h *Hub) listen(sub Subscription) {
	defer func() {
		select {
		case h.unregister <- sub:
		case <-h.done:
		}
	}()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
