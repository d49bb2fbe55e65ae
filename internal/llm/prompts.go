package llm

import (
	"fmt"
	"strings"

	"zysculpt/internal/models"
)

// persona keeps the per-kind assistant identity in one exhaustive switch, so
// adding a document kind is a compile-visible change rather than a scattered
// string comparison.
func persona(kind models.DocumentKind) string {
	switch kind {
	case models.KindResume:
		return "ATS resume architect"
	case models.KindCoverLetter:
		return "persuasive cover letter writer"
	case models.KindResignationLetter:
		return "professional resignation consultant"
	case models.KindCareerPlan:
		return "career strategist and daily-accountability coach"
	}
	return "professional career assistant"
}

// PromptContext carries the session state a conversation call needs.
type PromptContext struct {
	Kind           models.DocumentKind
	JobDescription string
	Background     string
	Profile        models.UserProfile
}

func systemInstruction(pc PromptContext) string {
	jd := pc.JobDescription
	if jd == "" {
		jd = "Not yet provided."
	}
	bg := pc.Background
	if bg == "" {
		bg = pc.Profile.BaseResumeText
	}
	if bg == "" {
		bg = "Not yet provided."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are Zysculpt AI, a world-class %s.\n", persona(pc.Kind))
	fmt.Fprintf(&b, "Your goal is to help the user build a high-impact, professional %s.\n\n", pc.Kind.Label())
	b.WriteString("CRITICAL INSTRUCTIONS:\n")
	fmt.Fprintf(&b, "1. Context - Target Info: %s\n", jd)
	fmt.Fprintf(&b, "2. Context - User Background: %s\n", bg)
	b.WriteString("3. Ask clear, focused questions one or two at a time.\n")
	b.WriteString("4. Maintain a professional, expert, and encouraging tone.\n")
	b.WriteString("5. When ready, offer to \"generate\" the final document.\n")
	if pc.Kind == models.KindResignationLetter {
		b.WriteString("Focus on professionalism, gratitude (if applicable), and clear exit details like notice period.\n")
	}
	if name := pc.Profile.FullName; name != "" {
		fmt.Fprintf(&b, "The user's name is %s.\n", name)
	}
	return b.String()
}

// contactBlock renders only the profile fields that exist, as literal values.
// Finalize prompts embed it so generated documents carry real contact data
// instead of templated stand-ins.
func contactBlock(profile models.UserProfile) string {
	fields := []struct{ label, value string }{
		{"Full name", profile.FullName},
		{"Professional title", profile.Title},
		{"Email", profile.Email},
		{"Phone", profile.Phone},
		{"Location", profile.Location},
		{"LinkedIn", profile.LinkedIn},
	}
	var b strings.Builder
	for _, f := range fields {
		if f.value != "" {
			fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "CANDIDATE CONTACT DETAILS (use these verbatim, never invent placeholders for data given here):\n" + b.String()
}

// finalizePrompt builds the single-shot instruction that produces the complete
// artifact. The response must be the document and nothing else.
func finalizePrompt(kind models.DocumentKind, target, background string, profile models.UserProfile) string {
	contact := contactBlock(profile)
	switch kind {
	case models.KindResume:
		return fmt.Sprintf(`As an ATS expert, take the following Job Description and User Experience data and generate a perfect resume in Markdown format.

JOB DESCRIPTION:
%s

USER DATA/EXPERIENCE:
%s

%s
INSTRUCTIONS:
- Use clear headings: Professional Summary, Work Experience, Skills, Education.
- Optimize for specific keywords from the Job Description.
- Output ONLY the resume in Markdown. No commentary before or after.`, target, background, contact)

	case models.KindCoverLetter:
		return fmt.Sprintf(`As a professional recruiter, write a compelling, tailored cover letter based on the Job Description and User Background.

JOB DESCRIPTION:
%s

USER BACKGROUND:
%s

%s
INSTRUCTIONS:
- Use a professional business letter format.
- Make it sound natural and enthusiastic, not robotic.
- Explicitly link the user's top achievements to the specific needs of the job.
- Output ONLY the cover letter in Markdown. No commentary before or after.`, target, background, contact)

	case models.KindResignationLetter:
		return fmt.Sprintf(`As a professional consultant, write a polite and firm resignation letter based on the provided details.

EXIT DETAILS (notice period, reason, etc):
%s

USER BACKGROUND:
%s

%s
INSTRUCTIONS:
- Use professional business letter format.
- Ensure a positive tone to maintain bridges.
- Include the current date, manager name placeholder, and signature.
- Output ONLY the letter in Markdown. No commentary before or after.`, target, background, contact)
	}
	return ""
}

func planPrompt(goal string, dailyHours int) string {
	return fmt.Sprintf(`You are a career strategist. Build a 30-day action plan for the goal below.

GOAL: %s
AVAILABLE TIME: %d hours per day

Return a JSON array of objects with integer "day" (1 to 30) and string "task".
Each task must fit the daily available time. Return only valid JSON.`, goal, dailyHours)
}
