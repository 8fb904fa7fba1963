package realtime

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades HTTP requests to websocket sessions and dispatches their
// inbound frames to the chat service.
type Handler struct {
	log        *slog.Logger
	chats      services.IChatService
	bufferSize int
}

func NewHandler(log *slog.Logger, chats services.IChatService, bufferSize int) *Handler {
	return &Handler{log: log, chats: chats, bufferSize: bufferSize}
}

func (h *Handler) Register(router gin.IRouter) {
	router.GET("/ws", h.Handle)
}

func (h *Handler) Handle(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", "err", err)
		return
	}

	conn := NewConnection(ws, h.bufferSize)
	conn.Start()
	h.log.Info("Session connected", "session", conn.ID)

	defer func() {
		h.chats.DropSession(conn.ID)
		conn.Close(websocket.CloseNormalClosure, "")
		h.log.Info("Session disconnected", "session", conn.ID)
	}()

	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debug("Session read failed", "session", conn.ID, "err", err)
			}
			return
		}
		h.dispatch(conn, raw)
	}
}

// dispatch routes one inbound frame. Protocol errors go back to the sending
// session only; they never terminate the connection.
func (h *Handler) dispatch(conn *Connection, raw []byte) {
	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		h.sendError(conn, errors.ErrInvalidRoomEvent)
		return
	}

	switch envelope.Type {
	case TypeJoinChat:
		if envelope.ChatID == "" {
			h.sendError(conn, errors.ErrMissingFields)
			return
		}
		h.chats.HandleJoin(conn.ID, envelope.ChatID, conn)

	case TypeSendMessage:
		cmd := domain.SendMessageCommand{
			ChatID:   envelope.ChatID,
			SenderID: envelope.UserID,
			Text:     envelope.Text,
		}
		if _, err := h.chats.HandleSend(conn.ID, cmd, conn); err != nil {
			h.sendError(conn, err)
		}

	default:
		h.sendError(conn, errors.ErrInvalidRoomEvent)
	}
}

func (h *Handler) sendError(conn *Connection, err error) {
	if sendErr := conn.Send(EncodeError(wireMessage(err))); sendErr != nil {
		h.log.Debug("Error frame delivery failed", "session", conn.ID, "err", sendErr)
	}
}

// wireMessage maps the error taxonomy to the client-facing wording.
func wireMessage(err error) string {
	switch {
	case stderrors.Is(err, errors.ErrMissingFields):
		return "Missing required fields"
	case stderrors.Is(err, errors.ErrInvalidUserOrChat):
		return "Invalid user or chat"
	case stderrors.Is(err, errors.ErrInvalidRoomEvent):
		return "Invalid room event"
	default:
		return "Internal error"
	}
}
