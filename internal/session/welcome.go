package session

import (
	"fmt"

	"zysculpt/internal/models"
)

func defaultTitle(kind models.DocumentKind) string {
	switch kind {
	case models.KindResume:
		return "New Resume"
	case models.KindCoverLetter:
		return "New Cover Letter"
	case models.KindResignationLetter:
		return "New Resignation Letter"
	case models.KindCareerPlan:
		return "Career Roadmap"
	}
	return "New Session"
}

// welcomeMessage is the seed assistant turn. A non-empty contextLabel marks a
// session created from a job listing and is echoed back so the user sees what
// was imported.
func welcomeMessage(kind models.DocumentKind, contextLabel string) string {
	var body string
	switch kind {
	case models.KindResume:
		body = "Welcome! I'm your resume architect. Paste a job description or tell me about your background, and we'll sculpt a resume that gets interviews."
	case models.KindCoverLetter:
		body = "Hi! I write cover letters that actually get read. Who are we writing to, and what role is it for?"
	case models.KindResignationLetter:
		body = "Let's make this exit a clean one. Tell me your notice period, last working day, and anything you want acknowledged."
	case models.KindCareerPlan:
		body = "What career goal are we chasing? Tell me where you want to be, and I'll help you map the road there day by day."
	default:
		body = "How can I help with your career documents today?"
	}
	if contextLabel != "" {
		return fmt.Sprintf("I've imported the job details from **%s**. %s", contextLabel, body)
	}
	return body
}
