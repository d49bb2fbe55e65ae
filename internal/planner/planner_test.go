package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"zysculpt/internal/llm"
	"zysculpt/internal/models"
	"zysculpt/internal/session"
)

type fakeSource struct {
	items []llm.PlanItem
	err   error
}

func (f *fakeSource) PlanGoal(ctx context.Context, goal string, dailyHours int) ([]llm.PlanItem, error) {
	return f.items, f.err
}

func newPlanSession(t *testing.T, store *session.Store) models.Session {
	t.Helper()
	return store.Create(context.Background(), "u1", models.KindCareerPlan, "Become a staff engineer", "", "")
}

func TestDayNumber(t *testing.T) {
	start := time.Date(2026, 3, 10, 23, 45, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"same calendar day", time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC), 1},
		{"five days later", time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC), 6},
		{"day before start", time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC), 0},
		{"non-UTC same instant", time.Date(2026, 3, 10, 18, 0, 0, 0, time.FixedZone("EST", -5*3600)), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayNumber(start, tt.date); got != tt.want {
				t.Errorf("DayNumber = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGeneratePlanOverwrites(t *testing.T) {
	store := session.NewStore(nil)
	src := &fakeSource{items: []llm.PlanItem{{Day: 1, Task: "old first"}, {Day: 2, Task: "old second"}}}
	tracker := NewTracker(store, src)
	sess := newPlanSession(t, store)
	ctx := context.Background()

	if _, err := tracker.GeneratePlan(ctx, "u1", sess.ID, 2); err != nil {
		t.Fatal(err)
	}

	src.items = []llm.PlanItem{{Day: 1, Task: "new first"}}
	goal, err := tracker.GeneratePlan(ctx, "u1", sess.ID, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(goal.ScheduledTasks) != 1 {
		t.Fatalf("expected only second call's tasks, got %d", len(goal.ScheduledTasks))
	}
	if goal.ScheduledTasks[0].Task != "new first" {
		t.Errorf("task = %q", goal.ScheduledTasks[0].Task)
	}
}

func TestGeneratePlanKeepsLogs(t *testing.T) {
	store := session.NewStore(nil)
	src := &fakeSource{items: []llm.PlanItem{{Day: 1, Task: "t"}}}
	tracker := NewTracker(store, src)
	sess := newPlanSession(t, store)
	ctx := context.Background()

	if _, err := tracker.GeneratePlan(ctx, "u1", sess.ID, 2); err != nil {
		t.Fatal(err)
	}
	if err := tracker.LogDailyWin(ctx, "u1", sess.ID, "2026-09-01", "shipped it"); err != nil {
		t.Fatal(err)
	}

	goal, err := tracker.GeneratePlan(ctx, "u1", sess.ID, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(goal.Logs) != 1 || goal.Logs[0].Win != "shipped it" {
		t.Errorf("logs lost across regeneration: %+v", goal.Logs)
	}
}

func TestGeneratePlanParseFailureDegradesToEmpty(t *testing.T) {
	store := session.NewStore(nil)
	src := &fakeSource{err: &llm.ParseError{Op: "PlanGoal", Err: errors.New("bad json")}}
	tracker := NewTracker(store, src)
	sess := newPlanSession(t, store)

	goal, err := tracker.GeneratePlan(context.Background(), "u1", sess.ID, 2)
	if err != nil {
		t.Fatalf("parse failure should degrade, got %v", err)
	}
	if len(goal.ScheduledTasks) != 0 {
		t.Errorf("expected empty plan, got %d tasks", len(goal.ScheduledTasks))
	}
}

func TestGeneratePlanPropagatesConfigurationError(t *testing.T) {
	store := session.NewStore(nil)
	src := &fakeSource{err: &llm.ConfigurationError{Feature: "plan generation"}}
	tracker := NewTracker(store, src)
	sess := newPlanSession(t, store)

	_, err := tracker.GeneratePlan(context.Background(), "u1", sess.ID, 2)
	var cfgErr *llm.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("want ConfigurationError, got %v", err)
	}

	got, _ := store.Get(context.Background(), "u1", sess.ID)
	if got.CareerGoal != nil {
		t.Error("failed generation should not touch the session")
	}
}

func TestToggleTask(t *testing.T) {
	store := session.NewStore(nil)
	src := &fakeSource{items: []llm.PlanItem{{Day: 1, Task: "t"}}}
	tracker := NewTracker(store, src)
	sess := newPlanSession(t, store)
	ctx := context.Background()

	goal, err := tracker.GeneratePlan(ctx, "u1", sess.ID, 2)
	if err != nil {
		t.Fatal(err)
	}
	taskID := goal.ScheduledTasks[0].ID

	if err := tracker.ToggleTask(ctx, "u1", sess.ID, taskID); err != nil {
		t.Fatal(err)
	}
	got, _ := store.Get(ctx, "u1", sess.ID)
	if !got.CareerGoal.ScheduledTasks[0].Completed {
		t.Error("toggle did not mark the task completed")
	}

	if err := tracker.ToggleTask(ctx, "u1", sess.ID, "no-such-task"); err == nil {
		t.Error("unknown task id should error")
	}
}

func TestLogDailyWinUpserts(t *testing.T) {
	store := session.NewStore(nil)
	tracker := NewTracker(store, &fakeSource{})
	sess := newPlanSession(t, store)
	ctx := context.Background()

	if err := tracker.LogDailyWin(ctx, "u1", sess.ID, "2026-09-01", "first draft"); err != nil {
		t.Fatal(err)
	}
	if err := tracker.LogDailyWin(ctx, "u1", sess.ID, "2026-09-01", "final draft"); err != nil {
		t.Fatal(err)
	}

	got, _ := store.Get(ctx, "u1", sess.ID)
	if len(got.CareerGoal.Logs) != 1 {
		t.Fatalf("expected one log for the date, got %d", len(got.CareerGoal.Logs))
	}
	if got.CareerGoal.Logs[0].Win != "final draft" {
		t.Errorf("win = %q, want the later entry", got.CareerGoal.Logs[0].Win)
	}

	if err := tracker.LogDailyWin(ctx, "u1", sess.ID, "not-a-date", "x"); err == nil {
		t.Error("malformed date key should error")
	}
}

func TestTasksForDate(t *testing.T) {
	goal := models.CareerGoal{
		StartDate: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
		ScheduledTasks: []models.ScheduledTask{
			{ID: "task-0", DayNumber: 1, Task: "a"},
			{ID: "task-1", DayNumber: 2, Task: "b"},
			{ID: "task-2", DayNumber: 2, Task: "c"},
		},
	}

	got := TasksForDate(goal, time.Date(2026, 9, 2, 23, 0, 0, 0, time.UTC))
	if len(got) != 2 {
		t.Fatalf("day 2 tasks = %d, want 2", len(got))
	}

	if got := TasksForDate(goal, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)); got != nil {
		t.Errorf("date before start should match nothing, got %+v", got)
	}
}
