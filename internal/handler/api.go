// Package handler exposes the HTTP and WebSocket surface.
package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"zysculpt/internal/llm"
	"zysculpt/internal/models"
	"zysculpt/internal/planner"
	"zysculpt/internal/profile"
	"zysculpt/internal/session"

	"github.com/gin-gonic/gin"
)

// UserStore is the account seam; backed by sqlite, or by the in-memory
// fallback in local-only mode.
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) (string, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
}

type API struct {
	Sessions *session.Store
	Profiles *profile.Store
	Gateway  *llm.Gateway
	Speech   *llm.SpeechClient // nil when speech synthesis is not configured
	Tracker  *planner.Tracker
	Users    UserStore
}

type ErrorResponse struct {
	Error       string `json:"error"`
	Remediation string `json:"remediation,omitempty"`
}

// respondGenerationError maps the gateway taxonomy onto HTTP statuses. A
// configuration failure tells the user how to fix it; a provider failure is
// surfaced inline so the user can retry the same action manually.
func respondGenerationError(c *gin.Context, err error) {
	var cfgErr *llm.ConfigurationError
	if errors.As(err, &cfgErr) {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:       cfgErr.Error(),
			Remediation: "Set GEMINI_API_KEY and restart the server.",
		})
		return
	}
	var provErr *llm.ProviderError
	if errors.As(err, &provErr) {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "The assistant could not be reached. Please try again."})
		return
	}
	log.Printf("respondGenerationError(): %v", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Unexpected error."})
}

// generationMessage is the websocket-frame counterpart of
// respondGenerationError.
func generationMessage(err error) string {
	var cfgErr *llm.ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr.Error() + " Set GEMINI_API_KEY and restart the server."
	}
	return "The assistant could not be reached. Please try again."
}
