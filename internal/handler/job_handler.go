package handler

import (
	"net/http"
	"strconv"

	"zysculpt/internal/jobs"
	"zysculpt/internal/models"

	"github.com/gin-gonic/gin"
)

func (a *API) ListJobs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"jobs": jobs.All()})
}

// ApplyToJob seeds a resume session from a listing. The listing's company
// becomes the context label the welcome message references.
func (a *API) ApplyToJob(c *gin.Context) {
	userID := c.GetString("userID")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}
	listing, ok := jobs.Find(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	title := listing.Title + " @ " + listing.Company
	sess := a.Sessions.Create(c.Request.Context(), userID, models.KindResume, title, listing.Description(), listing.Company)
	c.JSON(http.StatusOK, sess)
}
