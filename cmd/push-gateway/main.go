// cmd/push-gateway/main.go
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"sebshop/internal/pkg/bootstrap"
	"sebshop/internal/pkg/logger"
	"sebshop/internal/pkg/mq"
	"sebshop/internal/pkg/redis"
	"sebshop/internal/service/notification"
)

const (
	serviceName    = "push-gateway"
	gatewayPort    = 8088
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var (
	nodeID   = "push-gateway-" + uuid.New().String()[:8]
	upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool { // 简化处理，允许所有跨域
			return true
		},
	}
)

// Hub 维护所有活跃的连接，并负责按用户投递消息
type Hub struct {
	clients    map[string]*Client // 使用UserID作为Key
	register   chan *Client
	unregister chan *Client
	lock       sync.RWMutex
}

func newHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) run(ctx context.Context) error {
	for {
		select {
		case client := <-h.register:
			h.lock.Lock()
			h.clients[client.userID] = client
			h.lock.Unlock()
			logger.Logger.Info().Str("user_id", client.userID).Str("node_id", nodeID).Msg("client registered")
		case client := <-h.unregister:
			h.lock.Lock()
			if _, ok := h.clients[client.userID]; ok {
				delete(h.clients, client.userID)
				close(client.send)
			}
			h.lock.Unlock()
			logger.Logger.Info().Str("user_id", client.userID).Msg("client unregistered")
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// deliver 把消息投递给指定用户；用户不在本节点时静默丢弃。
func (h *Hub) deliver(userID string, message []byte) {
	h.lock.RLock()
	client, ok := h.clients[userID]
	h.lock.RUnlock()
	if !ok {
		return
	}
	select {
	case client.send <- message:
	default:
		// 发送缓冲打满说明连接已僵死，摘除它
		h.unregister <- client
	}
}

// Client 是一个WebSocket连接的代表
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	userID string
}

// writePump 把 send channel 中的消息写入连接，并定期发送心跳。
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump 读取 pong 和客户端关闭帧，连接断开时负责从 Hub 注销。
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func serveWs(hub *Hub, presence *redis.Client, w http.ResponseWriter, r *http.Request) {
	// 1. 从URL参数获取UserID
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	// 2. HTTP升级为WebSocket
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	// 3. 创建客户端实例并注册到Hub
	client := &Client{hub: hub, conn: conn, send: make(chan []byte, 256), userID: userID}
	client.hub.register <- client

	// 4. 在Redis中记录该用户落在哪个网关节点
	err = presence.GetClient().Set(r.Context(), "sebshop:gateway:"+userID, nodeID, pongWait).Err()
	if err != nil {
		logger.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to record gateway presence")
		conn.Close()
		return
	}

	// 5. 启动读写goroutine
	go client.writePump()
	go client.readPump()
}

// consumeNotifications 消费 notifications topic，把事件推给在线用户。
func consumeNotifications(ctx context.Context, hub *Hub) error {
	cfg := bootstrap.GetCurrentConfig()
	reader := mq.NewKafkaReader(cfg.Infra.Kafka.Brokers, cfg.Infra.Kafka.NotificationTopic, serviceName)
	defer reader.Close()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Logger.Error().Err(err).Msg("failed to read notification message")
			continue
		}

		msgCtx := mq.ExtractTraceContext(ctx, msg.Headers)
		var event notification.Event
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Ctx(msgCtx).Warn().Err(err).Msg("dropping malformed notification")
			continue
		}
		hub.deliver(event.UserID, msg.Value)
		logger.Ctx(msgCtx).Info().Str("user_id", event.UserID).Msg("notification delivered")
	}
}

func main() {
	bootstrap.Init()
	logger.Init(serviceName)
	cfg := bootstrap.GetCurrentConfig()

	presence, err := redis.NewClient(cfg.Infra.Redis.Addr)
	if err != nil {
		logger.Logger.Fatal().Err(err).Str("addr", cfg.Infra.Redis.Addr).Msg("failed to connect redis")
	}
	defer presence.Close()

	hub := newHub()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(hub, presence, w, r)
	})
	server := &http.Server{Addr: ":" + strconv.Itoa(gatewayPort), Handler: mux}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return hub.run(ctx) })
	g.Go(func() error { return consumeNotifications(ctx, hub) })
	g.Go(func() error {
		logger.Logger.Info().Str("node_id", nodeID).Msgf("%s listening on %s", serviceName, server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Logger.Fatal().Err(err).Msg("push gateway exited")
	}
	logger.Logger.Info().Msgf("Service %s gracefully shut down.", serviceName)
}
