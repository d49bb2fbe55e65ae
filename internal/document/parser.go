// Package document turns a finalized markdown-like document into the two
// export targets. Both targets consume the same parsed block sequence, so the
// printed page and the word-processor file can never diverge in structure.
package document

import (
	"regexp"
	"strings"
)

type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockBullet
	BlockBlank
)

// Span is one inline fragment. A non-empty Link makes it a hyperlink whose
// label is Text; Bold and Link are mutually exclusive because bold wins when
// the markers collide.
type Span struct {
	Text string
	Bold bool
	Link string
}

type Block struct {
	Kind  BlockKind
	Level int // heading level 1-4
	Spans []Span
}

// bold alternative listed first so it takes precedence over a link match
var inlineRe = regexp.MustCompile(`\*\*(.*?)\*\*|\[([^\]]+)\]\(([^)]+)\)`)

// Parse splits a document into blocks by leading line marker. Blank lines are
// kept as spacing blocks, not dropped.
func Parse(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			blocks = append(blocks, Block{Kind: BlockBlank})
		case strings.HasPrefix(trimmed, "#### "):
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 4, Spans: parseSpans(trimmed[5:])})
		case strings.HasPrefix(trimmed, "### "):
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 3, Spans: parseSpans(trimmed[4:])})
		case strings.HasPrefix(trimmed, "## "):
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 2, Spans: parseSpans(trimmed[3:])})
		case strings.HasPrefix(trimmed, "# "):
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 1, Spans: parseSpans(trimmed[2:])})
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			blocks = append(blocks, Block{Kind: BlockBullet, Spans: parseSpans(trimmed[2:])})
		default:
			blocks = append(blocks, Block{Kind: BlockParagraph, Spans: parseSpans(line)})
		}
	}
	return blocks
}

func parseSpans(text string) []Span {
	var spans []Span
	last := 0
	for _, m := range inlineRe.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			spans = append(spans, Span{Text: text[last:m[0]]})
		}
		if m[2] >= 0 { // **bold**
			spans = append(spans, Span{Text: text[m[2]:m[3]], Bold: true})
		} else { // [label](url)
			spans = append(spans, Span{Text: text[m[4]:m[5]], Link: text[m[6]:m[7]]})
		}
		last = m[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:]})
	}
	return spans
}

// Glyph maps a list-style preference to the bullet character both export
// targets render.
func Glyph(listStyle string) string {
	switch listStyle {
	case "circle":
		return "○"
	case "square":
		return "■"
	case "star":
		return "★"
	}
	return "•"
}
