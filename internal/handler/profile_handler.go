package handler

import (
	"net/http"

	"zysculpt/internal/models"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the caller's profile, seeding it from the mirror on
// first access.
func (a *API) GetProfile(c *gin.Context) {
	userID := c.GetString("userID")
	prof := a.Profiles.SignIn(c.Request.Context(), userID, models.UserProfile{
		FullName: c.GetString("username"),
	})
	c.JSON(http.StatusOK, prof)
}

type UpdateProfileRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (a *API) UpdateProfile(c *gin.Context) {
	userID := c.GetString("userID")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	prof, err := a.Profiles.UpdateField(c.Request.Context(), userID, req.Field, req.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prof)
}
