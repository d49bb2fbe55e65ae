package document

import (
	"io"

	"zysculpt/internal/models"

	"github.com/fumiama/go-docx"
)

// heading run sizes in half-points, level 1 through 4
var headingSizes = [5]string{"", "40", "32", "28", "24"}

// WriteDocx serializes the document as a .docx file. It applies the same
// parsed block sequence as the HTML target, only the final styling differs.
func WriteDocx(w io.Writer, text string, prefs models.StylePrefs) error {
	headingColor := prefs.HeadingColor
	if headingColor == "" {
		headingColor = "000000"
	}
	glyph := Glyph(prefs.ListStyle)

	file := docx.New().WithDefaultTheme()
	for _, block := range Parse(text) {
		para := file.AddParagraph()
		switch block.Kind {
		case BlockBlank:
			// empty paragraph keeps the vertical spacing
		case BlockHeading:
			if block.Level == 1 {
				para.Justification("center")
			}
			for _, s := range block.Spans {
				para.AddText(s.Text).Size(headingSizes[block.Level]).Bold().Color(headingColor)
			}
		case BlockBullet:
			para.AddText(glyph + " ")
			addSpans(para, block.Spans)
		default:
			addSpans(para, block.Spans)
		}
	}

	_, err := file.WriteTo(w)
	return err
}

func addSpans(para *docx.Paragraph, spans []Span) {
	for _, s := range spans {
		switch {
		case s.Bold:
			para.AddText(s.Text).Bold()
		case s.Link != "":
			para.AddLink(s.Text, s.Link)
		default:
			para.AddText(s.Text)
		}
	}
}
