// Package http exposes the chat backend's REST surface on gin.
package http

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/services"
)

type Handler struct {
	log   *slog.Logger
	auth  services.IAuthService
	users services.IUserService
	chats services.IChatService
}

func NewHandler(log *slog.Logger, auth services.IAuthService,
	users services.IUserService, chats services.IChatService) *Handler {
	return &Handler{log: log, auth: auth, users: users, chats: chats}
}

// RegisterRoutes binds every REST endpoint. Route naming mirrors the client
// contract and is part of the API, do not rename.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
	router.GET("/search_user_by_id/:user_id", h.SearchUserByID)
	router.GET("/search_users", h.SearchUsers)
	router.GET("/get_chats/:user_id", h.GetChats)
	router.GET("/get_messages/:chat_id", h.GetMessages)
	router.GET("/get_user_profile/:user_id", h.GetUserProfile)
	router.POST("/create_personal_chat", h.CreatePersonalChat)
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	session, err := h.auth.Register(req.Email, req.Username, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered. Check your email for the verification code.",
		"user_id": session.UserID,
		"token":   session.Token,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	session, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful!",
		"user_id": session.UserID,
		"token":   session.Token,
	})
}

func (h *Handler) SearchUserByID(c *gin.Context) {
	user, err := h.users.GetByID(c.Param("user_id"))
	if err != nil {
		h.respondLookupError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) SearchUsers(c *gin.Context) {
	query := c.Query("username")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username parameter is required"})
		return
	}

	users, err := h.users.Search(c.Request.Context(), query)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if users == nil {
		users = []domain.UserSummary{}
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetChats(c *gin.Context) {
	chats, err := h.chats.ChatsForUser(c.Param("user_id"))
	if err != nil {
		h.respondLookupError(c, err, "User not found")
		return
	}
	if chats == nil {
		chats = []domain.ChatSummary{}
	}
	c.JSON(http.StatusOK, chats)
}

type messagePayload struct {
	ID        string `json:"id"`
	SenderID  string `json:"sender_id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

func (h *Handler) GetMessages(c *gin.Context) {
	messages, err := h.chats.Messages(c.Param("chat_id"))
	if err != nil {
		h.respondLookupError(c, err, "Chat not found")
		return
	}

	payload := make([]messagePayload, 0, len(messages))
	for _, message := range messages {
		payload = append(payload, messagePayload{
			ID:        message.ID.String(),
			SenderID:  message.SenderID,
			Content:   message.Content,
			Timestamp: message.CreatedAt.Format(time.RFC3339Nano),
		})
	}
	c.JSON(http.StatusOK, payload)
}

func (h *Handler) GetUserProfile(c *gin.Context) {
	profile, err := h.users.Profile(c.Param("user_id"))
	if err != nil {
		h.respondLookupError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, profile)
}

type createPersonalChatRequest struct {
	UserID        string `json:"user_id"`
	ParticipantID string `json:"participant_id"`
}

func (h *Handler) CreatePersonalChat(c *gin.Context) {
	var req createPersonalChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.ParticipantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both user_id and participant_id are required"})
		return
	}

	summary, created, err := h.chats.CreatePersonalChat(req.UserID, req.ParticipantID)
	if err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "One or both users not found"})
			return
		}
		h.respondError(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "Chat already exists", "chat": summary})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Personal chat created successfully", "chat": summary})
}

// respondLookupError keeps the route-specific not-found wording while
// delegating everything else to the shared mapping.
func (h *Handler) respondLookupError(c *gin.Context, err error, notFound string) {
	if stderrors.Is(err, errors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
		return
	}
	h.respondError(c, err)
}

// respondError maps the error taxonomy to status codes and the client-facing
// wording. Internal failures are logged and masked.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.log.Error("Request failed", "path", c.FullPath(), "err", err)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": clientMessage(err)})
}

func clientMessage(err error) string {
	switch {
	case stderrors.Is(err, errors.ErrMissingFields):
		return "Missing required fields"
	case stderrors.Is(err, errors.ErrEmailTaken):
		return "Email already registered"
	case stderrors.Is(err, errors.ErrUsernameTaken):
		return "Username already registered"
	case stderrors.Is(err, errors.ErrInvalidCredentials):
		return "Invalid credentials"
	case stderrors.Is(err, errors.ErrNotFound):
		return "Not found"
	case stderrors.Is(err, errors.ErrInvalidUserOrChat):
		return "Invalid user or chat"
	default:
		return err.Error()
	}
}
