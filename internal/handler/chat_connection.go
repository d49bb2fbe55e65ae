package handler

import (
	"context"
	"encoding/base64"
	"log"
	"net/http"

	"zysculpt/internal/auth"
	"zysculpt/internal/llm"
	"zysculpt/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// chatFrame is an inbound client message. Audio is base64-encoded; a frame
// may carry text, audio, or both.
type chatFrame struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
	MIME  string `json:"mime"`
}

type chatEvent struct {
	Type      string `json:"type"`
	MessageID string `json:"messageId,omitempty"`
	Text      string `json:"text,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HandleChatConnection upgrades to a WebSocket tied to one session.
// Authentication runs over the 'token' query parameter because browsers
// cannot set headers on WebSocket handshakes.
func (a *API) HandleChatConnection(c *gin.Context) {
	tokenString := c.Query("token")
	sessionID := c.Query("session")

	claims, err := auth.ValidateToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	userID := claims.UserID

	if _, ok := a.Sessions.Get(c.Request.Context(), userID, sessionID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("HandleChatConnection(): Failed to upgrade to WebSocket for user %s: %v", claims.Username, err)
		return
	}
	defer conn.Close()
	log.Printf("Chat connection established: user=%s session=%s", claims.Username, sessionID)

	// The connection context releases an in-flight generation producer when
	// the read loop exits without draining its chunk channel.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.manageChatSession(ctx, conn, userID, sessionID)
	log.Printf("Chat connection closed: user=%s session=%s", claims.Username, sessionID)
}

func (a *API) manageChatSession(ctx context.Context, conn *websocket.Conn, userID, sessionID string) {
ReadLoop:
	for {
		var frame chatFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("manageChatSession(): read error for user %s: %v", userID, err)
			}
			break ReadLoop
		}

		var audio *llm.AudioPayload
		if frame.Audio != "" {
			data, err := base64.StdEncoding.DecodeString(frame.Audio)
			if err != nil {
				writeEvent(conn, chatEvent{Type: "error", Error: "Malformed audio payload"})
				continue
			}
			audio = &llm.AudioPayload{MIMEType: frame.MIME, Data: data}
		}
		if frame.Text == "" && audio == nil {
			writeEvent(conn, chatEvent{Type: "error", Error: "Empty message"})
			continue
		}

		sess, ok := a.Sessions.Get(ctx, userID, sessionID)
		if !ok {
			writeEvent(conn, chatEvent{Type: "error", Error: "Session no longer exists"})
			break ReadLoop
		}
		history := sess.Messages

		userText := frame.Text
		if userText == "" {
			userText = llm.VoicePlaceholder
		}
		a.Sessions.AppendMessage(ctx, userID, sessionID, models.RoleUser, userText)

		reply, ok := a.Sessions.AppendMessage(ctx, userID, sessionID, models.RoleAssistant, "")
		if !ok {
			writeEvent(conn, chatEvent{Type: "error", Error: "Session no longer exists"})
			break ReadLoop
		}

		profile := a.Profiles.Get(userID)
		pc := llm.PromptContext{
			Kind:           sess.Type,
			JobDescription: sess.JobDescription,
			Background:     sess.Background,
			Profile:        profile,
		}

		chunks, errc := a.Gateway.Converse(ctx, history, frame.Text, audio, pc)
		for chunk := range chunks {
			a.Sessions.AppendChunk(userID, sessionID, reply.ID, chunk)
			if !writeEvent(conn, chatEvent{Type: "chunk", MessageID: reply.ID, Text: chunk}) {
				break ReadLoop
			}
		}
		if err := <-errc; err != nil {
			log.Printf("manageChatSession(): generation failed for user %s: %v", userID, err)
			writeEvent(conn, chatEvent{Type: "error", MessageID: reply.ID, Error: generationMessage(err)})
		} else {
			writeEvent(conn, chatEvent{Type: "done", MessageID: reply.ID})
		}
		a.Sessions.Sync(ctx, userID, sessionID)
	}
}

func writeEvent(conn *websocket.Conn, ev chatEvent) bool {
	if err := conn.WriteJSON(ev); err != nil {
		log.Printf("writeEvent(): %v", err)
		return false
	}
	return true
}
