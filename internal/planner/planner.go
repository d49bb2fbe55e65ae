// Package planner turns a career goal into day-indexed tasks and records
// daily free-text progress.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"zysculpt/internal/llm"
	"zysculpt/internal/models"
	"zysculpt/internal/session"
)

// PlanSource is the slice of the generation gateway the tracker needs.
type PlanSource interface {
	PlanGoal(ctx context.Context, goal string, dailyHours int) ([]llm.PlanItem, error)
}

type Tracker struct {
	sessions *session.Store
	source   PlanSource
}

func NewTracker(sessions *session.Store, source PlanSource) *Tracker {
	return &Tracker{sessions: sessions, source: source}
}

// GeneratePlan replaces the session's plan wholesale with a freshly generated
// one. A structured response that fails to parse degrades to an empty plan;
// configuration and provider failures propagate so the UI can show them.
func (t *Tracker) GeneratePlan(ctx context.Context, userID, sessionID string, dailyHours int) (models.CareerGoal, error) {
	sess, ok := t.sessions.Get(ctx, userID, sessionID)
	if !ok {
		return models.CareerGoal{}, fmt.Errorf("GeneratePlan(): no session %s", sessionID)
	}
	if dailyHours <= 0 {
		dailyHours = 2
	}

	items, err := t.source.PlanGoal(ctx, sess.Title, dailyHours)
	if err != nil {
		var parseErr *llm.ParseError
		if !errors.As(err, &parseErr) {
			return models.CareerGoal{}, err
		}
		log.Printf("Tracker.GeneratePlan(): %v, falling back to empty plan", err)
		items = nil
	}

	tasks := make([]models.ScheduledTask, 0, len(items))
	for i, item := range items {
		tasks = append(tasks, models.ScheduledTask{
			ID:        fmt.Sprintf("task-%d", i),
			DayNumber: item.Day,
			Task:      item.Task,
		})
	}

	goal := models.CareerGoal{
		MainGoal:       sess.Title,
		StartDate:      time.Now().UTC(),
		ScheduledTasks: tasks,
		Logs:           priorLogs(sess),
	}
	t.sessions.Update(ctx, userID, sessionID, session.Patch{CareerGoal: &goal})
	return goal, nil
}

// priorLogs keeps daily logs across plan regeneration; they are keyed by
// absolute dates and independent of the generated plan.
func priorLogs(sess models.Session) []models.DailyLog {
	if sess.CareerGoal == nil {
		return nil
	}
	return sess.CareerGoal.Logs
}

// ToggleTask flips one task's completed flag, nothing else.
func (t *Tracker) ToggleTask(ctx context.Context, userID, sessionID, taskID string) error {
	sess, ok := t.sessions.Get(ctx, userID, sessionID)
	if !ok || sess.CareerGoal == nil {
		return fmt.Errorf("ToggleTask(): no plan on session %s", sessionID)
	}

	goal := *sess.CareerGoal
	found := false
	for i := range goal.ScheduledTasks {
		if goal.ScheduledTasks[i].ID == taskID {
			goal.ScheduledTasks[i].Completed = !goal.ScheduledTasks[i].Completed
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("ToggleTask(): no task %s on session %s", taskID, sessionID)
	}
	t.sessions.Update(ctx, userID, sessionID, session.Patch{CareerGoal: &goal})
	return nil
}

// LogDailyWin upserts the note for a calendar date, replacing any prior entry
// for that same date.
func (t *Tracker) LogDailyWin(ctx context.Context, userID, sessionID, dateKey, win string) error {
	if _, err := time.Parse("2006-01-02", dateKey); err != nil {
		return fmt.Errorf("LogDailyWin(): bad date key %q: %w", dateKey, err)
	}
	sess, ok := t.sessions.Get(ctx, userID, sessionID)
	if !ok {
		return fmt.Errorf("LogDailyWin(): no session %s", sessionID)
	}

	var goal models.CareerGoal
	if sess.CareerGoal != nil {
		goal = *sess.CareerGoal
	} else {
		goal = models.CareerGoal{MainGoal: sess.Title, StartDate: time.Now().UTC()}
	}

	kept := goal.Logs[:0:0]
	for _, l := range goal.Logs {
		if l.Date != dateKey {
			kept = append(kept, l)
		}
	}
	goal.Logs = append(kept, models.DailyLog{Date: dateKey, Win: win, Completed: true})
	t.sessions.Update(ctx, userID, sessionID, session.Patch{CareerGoal: &goal})
	return nil
}

// DayNumber maps a calendar date to a 1-based plan day. Both instants are
// normalized to UTC midnight first, so the mapping is stable across timezone
// and daylight-saving boundaries. Dates before the start return 0.
func DayNumber(startDate, date time.Time) int {
	start := midnightUTC(startDate)
	day := midnightUTC(date)
	if day.Before(start) {
		return 0
	}
	return int(day.Sub(start).Hours()/24) + 1
}

// TasksForDate resolves the scheduled tasks for a calendar date. Dates outside
// the generated range simply match nothing.
func TasksForDate(goal models.CareerGoal, date time.Time) []models.ScheduledTask {
	dayNumber := DayNumber(goal.StartDate, date)
	if dayNumber == 0 {
		return nil
	}
	var out []models.ScheduledTask
	for _, task := range goal.ScheduledTasks {
		if task.DayNumber == dayNumber {
			out = append(out, task)
		}
	}
	return out
}

func midnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
