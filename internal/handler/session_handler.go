package handler

import (
	"net/http"
	"unicode/utf8"

	"zysculpt/internal/models"
	"zysculpt/internal/session"

	"github.com/gin-gonic/gin"
)

type CreateSessionRequest struct {
	Type           string `json:"type"`
	Title          string `json:"title"`
	JobDescription string `json:"jobDescription"`
	ContextLabel   string `json:"contextLabel"`
}

// UpdateSessionRequest is a sparse patch; absent fields stay untouched.
// The document type is not patchable.
type UpdateSessionRequest struct {
	Title          *string            `json:"title"`
	JobDescription *string            `json:"jobDescription"`
	Background     *string            `json:"resumeText"`
	StylePrefs     *models.StylePrefs `json:"stylePrefs"`
}

func (a *API) ListSessions(c *gin.Context) {
	userID := c.GetString("userID")
	sessions, activeID := a.Sessions.List(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"sessions": sessions, "activeSessionId": activeID})
}

func (a *API) CreateSession(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	kind, ok := models.ParseKind(req.Type)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown document type"})
		return
	}

	sess := a.Sessions.Create(c.Request.Context(), userID, kind, req.Title, req.JobDescription, req.ContextLabel)
	c.JSON(http.StatusOK, sess)
}

func (a *API) UpdateSession(c *gin.Context) {
	userID := c.GetString("userID")
	sessionID := c.Param("id")

	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	a.Sessions.Update(c.Request.Context(), userID, sessionID, session.Patch{
		Title:          req.Title,
		JobDescription: req.JobDescription,
		Background:     req.Background,
		StylePrefs:     req.StylePrefs,
	})

	sess, ok := a.Sessions.Get(c.Request.Context(), userID, sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (a *API) DeleteSession(c *gin.Context) {
	userID := c.GetString("userID")
	a.Sessions.Delete(c.Request.Context(), userID, c.Param("id"))

	_, activeID := a.Sessions.List(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"activeSessionId": activeID})
}

func (a *API) ActivateSession(c *gin.Context) {
	userID := c.GetString("userID")
	if !a.Sessions.SetActive(c.Request.Context(), userID, c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activeSessionId": c.Param("id")})
}

// UploadBackground attaches a pasted or uploaded background document to the
// session and records the exchange in the conversation, mirroring the
// client-side file picker behavior.
func (a *API) UploadBackground(c *gin.Context) {
	userID := c.GetString("userID")
	sessionID := c.Param("id")

	var req struct {
		Filename string `json:"filename"`
		Text     string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if _, ok := a.Sessions.Get(c.Request.Context(), userID, sessionID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	text := truncateText(req.Text, 2000)
	a.Sessions.Update(c.Request.Context(), userID, sessionID, session.Patch{Background: &text})
	a.Sessions.AppendMessage(c.Request.Context(), userID, sessionID, models.RoleUser, "Uploaded document: "+req.Filename)
	a.Sessions.AppendMessage(c.Request.Context(), userID, sessionID, models.RoleAssistant,
		"Received \""+req.Filename+"\". What job are we tailoring this for?")

	sess, _ := a.Sessions.Get(c.Request.Context(), userID, sessionID)
	c.JSON(http.StatusOK, sess)
}

// truncateText caps the stored text at limit bytes without splitting a rune.
func truncateText(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
