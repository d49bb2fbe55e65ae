package models

// DocumentKind tags a session with the artifact it produces. The tag is fixed
// at session creation and never changes afterwards.
type DocumentKind string

const (
	KindResume            DocumentKind = "resume"
	KindCoverLetter       DocumentKind = "cover-letter"
	KindResignationLetter DocumentKind = "resignation-letter"
	KindCareerPlan        DocumentKind = "career-copilot"
)

// ParseKind validates a wire-level kind string.
func ParseKind(s string) (DocumentKind, bool) {
	switch DocumentKind(s) {
	case KindResume, KindCoverLetter, KindResignationLetter, KindCareerPlan:
		return DocumentKind(s), true
	}
	return "", false
}

// Label is the human-readable form used inside prompts ("cover letter").
func (k DocumentKind) Label() string {
	switch k {
	case KindResume:
		return "resume"
	case KindCoverLetter:
		return "cover letter"
	case KindResignationLetter:
		return "resignation letter"
	case KindCareerPlan:
		return "career roadmap"
	}
	return string(k)
}

// Finalizable reports whether the kind produces a downloadable document.
// Career roadmap sessions track goals instead.
func (k DocumentKind) Finalizable() bool {
	return k == KindResume || k == KindCoverLetter || k == KindResignationLetter
}
