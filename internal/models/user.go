package models

// Authenticated account.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// UserProfile is the single per-user record edited in settings and injected
// verbatim into finalize prompts.
type UserProfile struct {
	FullName          string `json:"fullName"`
	Title             string `json:"title"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Location          string `json:"location"`
	LinkedIn          string `json:"linkedIn"`
	BaseResumeText    string `json:"baseResumeText"`
	DailyAvailability int    `json:"dailyAvailability"` // hours per day for roadmap planning
	Voice             string `json:"voice,omitempty"`   // speech-synthesis voice selector
}
