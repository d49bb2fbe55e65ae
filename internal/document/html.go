package document

import (
	"fmt"
	"html"
	"strings"

	"zysculpt/internal/models"
)

var fontStacks = map[string]string{
	"sans":  `"Inter", "Helvetica Neue", sans-serif`,
	"serif": `"Garamond", "Georgia", serif`,
	"mono":  `"Roboto Mono", monospace`,
	"arial": `Arial, sans-serif`,
	"times": `"Times New Roman", serif`,
}

// RenderHTML produces the print-ready page for the PDF export path. It is a
// pure function of the document text and style preferences.
func RenderHTML(text string, prefs models.StylePrefs) string {
	font, ok := fontStacks[prefs.Font]
	if !ok {
		font = fontStacks["sans"]
	}
	headingColor := prefs.HeadingColor
	if headingColor == "" {
		headingColor = "000000"
	}
	glyph := Glyph(prefs.ListStyle)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	fmt.Fprintf(&b, "body { font-family: %s; color: #111; max-width: 48rem; margin: 2rem auto; line-height: 1.5; }\n", font)
	fmt.Fprintf(&b, "h1, h2, h3, h4 { color: #%s; }\n", html.EscapeString(headingColor))
	b.WriteString("h1 { text-align: center; text-transform: uppercase; border-bottom: 2px solid currentColor; padding-bottom: .5rem; }\n")
	b.WriteString("h2 { border-bottom: 1px solid #ddd; padding-bottom: .25rem; }\n")
	b.WriteString(".bullet { display: flex; gap: .5rem; margin-left: 1rem; }\n")
	b.WriteString(".spacer { height: .5rem; }\n")
	b.WriteString("a { color: #4338ca; }\n")
	b.WriteString("@media print { body { margin: 0; } }\n")
	b.WriteString("</style>\n</head>\n<body>\n")

	for _, block := range Parse(text) {
		switch block.Kind {
		case BlockBlank:
			b.WriteString("<div class=\"spacer\"></div>\n")
		case BlockHeading:
			fmt.Fprintf(&b, "<h%d>%s</h%d>\n", block.Level, renderSpans(block.Spans), block.Level)
		case BlockBullet:
			fmt.Fprintf(&b, "<div class=\"bullet\"><span>%s</span><span>%s</span></div>\n",
				glyph, renderSpans(block.Spans))
		default:
			fmt.Fprintf(&b, "<p>%s</p>\n", renderSpans(block.Spans))
		}
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func renderSpans(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		switch {
		case s.Bold:
			fmt.Fprintf(&b, "<strong>%s</strong>", html.EscapeString(s.Text))
		case s.Link != "":
			fmt.Fprintf(&b, `<a href="%s">%s</a>`, html.EscapeString(s.Link), html.EscapeString(s.Text))
		default:
			b.WriteString(html.EscapeString(s.Text))
		}
	}
	return b.String()
}
