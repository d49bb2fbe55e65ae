package models

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn in a session's conversation. The assistant message that
// receives a stream starts empty and is grown in place by id as chunks arrive.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// StylePrefs are per-session cosmetic choices consumed only by the
// render/export layer. They never influence generation.
type StylePrefs struct {
	Font         string `json:"font"`         // sans | serif | mono | arial | times
	ListStyle    string `json:"listStyle"`    // disc | circle | square | star
	HeadingColor string `json:"headingColor"` // hex without '#'
}

// ScheduledTask is one day-indexed action item of a generated plan.
// DayNumber is relative to the owning goal's StartDate, day 1 = start day.
type ScheduledTask struct {
	ID        string `json:"id"`
	DayNumber int    `json:"dayNumber"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

// DailyLog is a free-text progress note keyed by absolute calendar date.
// It may exist for dates that have no scheduled task at all.
type DailyLog struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Win       string `json:"win"`
	Completed bool   `json:"completed"`
}

type CareerGoal struct {
	MainGoal       string          `json:"mainGoal"`
	StartDate      time.Time       `json:"startDate"`
	ScheduledTasks []ScheduledTask `json:"scheduledTasks"`
	Logs           []DailyLog      `json:"logs"`
}

// Session is one document-building or goal-tracking thread.
// FinalDocument is nil until a finalize call completes; partial streamed text
// lives only in the in-flight assistant message, never here.
type Session struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Type           DocumentKind `json:"type"`
	Messages       []Message    `json:"messages"`
	JobDescription string       `json:"jobDescription,omitempty"`
	Background     string       `json:"resumeText,omitempty"`
	FinalDocument  *string      `json:"finalResume"`
	StylePrefs     *StylePrefs  `json:"stylePrefs,omitempty"`
	CareerGoal     *CareerGoal  `json:"careerGoalData,omitempty"`
	LastUpdated    time.Time    `json:"lastUpdated"`
}

// Clone returns a copy whose slices and pointers are detached from the
// original, so callers cannot reach back into store-owned state.
func (s Session) Clone() Session {
	out := s
	if s.Messages != nil {
		out.Messages = make([]Message, len(s.Messages))
		copy(out.Messages, s.Messages)
	}
	if s.FinalDocument != nil {
		v := *s.FinalDocument
		out.FinalDocument = &v
	}
	if s.StylePrefs != nil {
		v := *s.StylePrefs
		out.StylePrefs = &v
	}
	if s.CareerGoal != nil {
		g := *s.CareerGoal
		if g.ScheduledTasks != nil {
			g.ScheduledTasks = make([]ScheduledTask, len(s.CareerGoal.ScheduledTasks))
			copy(g.ScheduledTasks, s.CareerGoal.ScheduledTasks)
		}
		if g.Logs != nil {
			g.Logs = make([]DailyLog, len(s.CareerGoal.Logs))
			copy(g.Logs, s.CareerGoal.Logs)
		}
		out.CareerGoal = &g
	}
	return out
}
