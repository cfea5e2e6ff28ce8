package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"vortex-server/internal/engine"
	"vortex-server/pkg/api"
	"vortex-server/pkg/logger"
	"vortex-server/pkg/utils"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и игровой сессией.
// Вся сессия живет в горутине readPump: команды применяются к миру
// строго по одной, ядру не нужны никакие блокировки.
type Client struct {
	ID   string
	Game *engine.Game
	Conn *websocket.Conn
	Send chan api.ServerResponse

	// logCursor - сколько записей журнала уже ушло клиенту
	logCursor int
}

func NewClient(cfg engine.Config, seed int64, conn *websocket.Conn) *Client {
	game := engine.NewGame(cfg, seed)

	// Прогреваем мир: PreRun доводит машину до ожидания ввода
	game.Advance(engine.Action{})

	return &Client{
		ID:   utils.GenerateID(),
		Game: game,
		Conn: conn,
		Send: make(chan api.ServerResponse, 256),
	}
}

// readPump читает команды от клиента и применяет их к сессии
func (c *Client) readPump() {
	defer func() {
		close(c.Send)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
		logger.Log.WithField("session", c.ID).Info("Client disconnected, session dropped")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.WithError(err).Warn("websocket read error")
			}
			return
		}
		c.handleCommand(cmd)
	}
}

// handleCommand конвертирует команду протокола в действие движка.
// Нераспознанная или невалидная команда просто не тратит ход.
func (c *Client) handleCommand(cmd api.ClientCommand) {
	respType := "UPDATE"
	act := engine.Action{}

	switch strings.ToUpper(cmd.Action) {
	case "INIT":
		respType = "INIT"

	case "MOVE":
		var p api.DirectionPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			logger.Log.WithError(err).Debug("bad MOVE payload")
			return
		}
		if err := p.Validate(); err != nil {
			logger.Log.WithFields(logrus.Fields{
				"session": c.ID,
				"reason":  err.Error(),
			}).Debug("MOVE rejected")
			return
		}
		act = engine.Action{Type: engine.ActionMove, Dx: p.Dx, Dy: p.Dy}

	case "WAIT":
		act = engine.Action{Type: engine.ActionWait}

	default:
		logger.Log.WithField("action", cmd.Action).Debug("unknown action ignored")
		return
	}

	if act.Type != engine.ActionNone {
		c.Game.Advance(act)
	}

	c.Send <- c.buildSnapshot(respType)
}

// writePump пишет снапшоты и пинги в сокет.
// При выходе обязательно закрывает соединение: иначе readPump,
// застрявший на отправке в Send, ждал бы дедлайна чтения.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
	}()

	for {
		select {
		case resp, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				// readPump закрыл канал - прощаемся
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteJSON(resp); err != nil {
				logger.Log.WithError(err).Warn("websocket write error")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
