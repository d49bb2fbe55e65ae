package handler

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"zysculpt/internal/document"
	"zysculpt/internal/models"
	"zysculpt/internal/session"

	"github.com/gin-gonic/gin"
)

// FinalizeSession turns the session's accumulated context into one complete
// document and stores it on the session. The session is left untouched when
// generation fails.
func (a *API) FinalizeSession(c *gin.Context) {
	userID := c.GetString("userID")
	sessionID := c.Param("id")

	sess, ok := a.Sessions.Get(c.Request.Context(), userID, sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	if !sess.Type.Finalizable() {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s sessions do not produce a document", sess.Type)})
		return
	}

	profile := a.Profiles.Get(userID)

	background := sess.Background
	if background == "" {
		background = profile.BaseResumeText
	}
	var transcript strings.Builder
	for _, m := range sess.Messages {
		transcript.WriteString(m.Content)
		transcript.WriteString("\n")
	}
	combined := fmt.Sprintf("Background: %s\nChat Context: %s", background, transcript.String())

	target := sess.JobDescription
	if target == "" {
		target = defaultTarget(sess.Type)
	}

	doc, err := a.Gateway.Finalize(c.Request.Context(), sess.Type, target, combined, profile)
	if err != nil {
		respondGenerationError(c, err)
		return
	}

	a.Sessions.Update(c.Request.Context(), userID, sessionID, session.Patch{FinalDocument: &doc})
	c.JSON(http.StatusOK, gin.H{"finalResume": doc})
}

func defaultTarget(kind models.DocumentKind) string {
	switch kind {
	case models.KindResume:
		return "Professional Resume"
	case models.KindCoverLetter:
		return "Professional Opportunity"
	case models.KindResignationLetter:
		return "Standard Resignation"
	case models.KindCareerPlan:
		return ""
	}
	return ""
}

func stylePrefs(sess models.Session) models.StylePrefs {
	if sess.StylePrefs != nil {
		return *sess.StylePrefs
	}
	return models.StylePrefs{}
}

// ExportDocx streams the finalized document as a .docx download.
func (a *API) ExportDocx(c *gin.Context) {
	userID := c.GetString("userID")

	sess, ok := a.Sessions.Get(c.Request.Context(), userID, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	if sess.FinalDocument == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Session has no finalized document"})
		return
	}

	filename := strings.ReplaceAll(strings.ToLower(sess.Title), " ", "-") + ".docx"
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	if err := document.WriteDocx(c.Writer, *sess.FinalDocument, stylePrefs(sess)); err != nil {
		// Headers are already on the wire; all we can do is log.
		log.Printf("ExportDocx(): %v", err)
	}
}

// ExportHTML returns the print-ready page used for print-to-PDF.
func (a *API) ExportHTML(c *gin.Context) {
	userID := c.GetString("userID")

	sess, ok := a.Sessions.Get(c.Request.Context(), userID, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	if sess.FinalDocument == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Session has no finalized document"})
		return
	}

	page := document.RenderHTML(*sess.FinalDocument, stylePrefs(sess))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
