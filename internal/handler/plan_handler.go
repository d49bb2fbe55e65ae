package handler

import (
	"net/http"
	"time"

	"zysculpt/internal/planner"

	"github.com/gin-gonic/gin"
)

type GeneratePlanRequest struct {
	Goal       string `json:"goal"`
	DailyHours int    `json:"dailyHours"`
}

// GeneratePlan builds a fresh multi-day plan for the session's goal,
// replacing any prior plan. A non-empty goal in the request renames the
// session first so the plan and the session stay in agreement.
func (a *API) GeneratePlan(c *gin.Context) {
	userID := c.GetString("userID")
	sessionID := c.Param("id")

	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if _, ok := a.Sessions.Get(c.Request.Context(), userID, sessionID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	if req.Goal != "" {
		a.Sessions.Rename(c.Request.Context(), userID, sessionID, req.Goal)
	}

	goal, err := a.Tracker.GeneratePlan(c.Request.Context(), userID, sessionID, req.DailyHours)
	if err != nil {
		respondGenerationError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (a *API) ToggleTask(c *gin.Context) {
	userID := c.GetString("userID")
	sessionID := c.Param("id")

	if err := a.Tracker.ToggleTask(c.Request.Context(), userID, sessionID, c.Param("taskId")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	sess, _ := a.Sessions.Get(c.Request.Context(), userID, sessionID)
	c.JSON(http.StatusOK, sess.CareerGoal)
}

type LogWinRequest struct {
	Date string `json:"date"`
	Win  string `json:"win"`
}

func (a *API) LogDailyWin(c *gin.Context) {
	userID := c.GetString("userID")
	sessionID := c.Param("id")

	var req LogWinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := a.Tracker.LogDailyWin(c.Request.Context(), userID, sessionID, req.Date, req.Win); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, _ := a.Sessions.Get(c.Request.Context(), userID, sessionID)
	c.JSON(http.StatusOK, sess.CareerGoal)
}

// TasksForDate resolves the scheduled tasks for one calendar date, for the
// calendar view. Defaults to today when no date is given.
func (a *API) TasksForDate(c *gin.Context) {
	userID := c.GetString("userID")

	sess, ok := a.Sessions.Get(c.Request.Context(), userID, c.Param("id"))
	if !ok || sess.CareerGoal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session has no plan"})
		return
	}

	date := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	tasks := planner.TasksForDate(*sess.CareerGoal, date)
	c.JSON(http.StatusOK, gin.H{
		"day":   planner.DayNumber(sess.CareerGoal.StartDate, date),
		"tasks": tasks,
	})
}
