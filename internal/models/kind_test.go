package models

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  DocumentKind
		ok    bool
	}{
		{"resume", KindResume, true},
		{"cover-letter", KindCoverLetter, true},
		{"resignation-letter", KindResignationLetter, true},
		{"career-copilot", KindCareerPlan, true},
		{"Resume", "", false},
		{"", "", false},
		{"poem", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseKind(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseKind(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFinalizable(t *testing.T) {
	if KindCareerPlan.Finalizable() {
		t.Error("career-copilot sessions do not produce a document")
	}
	for _, k := range []DocumentKind{KindResume, KindCoverLetter, KindResignationLetter} {
		if !k.Finalizable() {
			t.Errorf("%s should finalize", k)
		}
	}
}

func TestLabel(t *testing.T) {
	if got := KindCoverLetter.Label(); got != "cover letter" {
		t.Errorf("Label() = %q", got)
	}
}
