package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SpeechRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

// Synthesize reads a message aloud. Falls back to the profile's voice when
// the request does not pick one.
func (a *API) Synthesize(c *gin.Context) {
	if a.Speech == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:       "Speech synthesis is not configured.",
			Remediation: "Set GOOGLE_APPLICATION_CREDENTIALS and restart the server.",
		})
		return
	}

	var req SpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	voice := req.Voice
	if voice == "" {
		voice = a.Profiles.Get(c.GetString("userID")).Voice
	}

	audio, err := a.Speech.Synthesize(c.Request.Context(), req.Text, voice)
	if err != nil {
		log.Printf("Synthesize(): %v", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Speech synthesis failed. Please try again."})
		return
	}
	c.Data(http.StatusOK, "audio/mpeg", audio)
}
