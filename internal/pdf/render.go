package pdf

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Layout constants, in points. Letter pages with one-inch margins.
const (
	pageMargin       = 72
	lineHeight       = 14
	paragraphSpacing = 14.4 // 0.2 inch between paragraphs
	bodyFontSize     = 11
)

// boldPattern matches markdown bold spans non-greedily so multiple spans on
// one line each get their own tag pair.
var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// Renderer writes agreement text to paginated PDF files.
//
// The generated text uses two lightweight markup conventions: blank lines
// separate paragraphs, and **bold** marks emphasis. Both are translated to
// the PDF writer's basic HTML vocabulary before layout.
type Renderer struct{}

// RenderFile lays out text and writes the document to filename.
func (Renderer) RenderFile(text, filename string) error {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.AddPage()
	doc.SetFont("Helvetica", "", bodyFontSize)

	html := doc.HTMLBasicNew()
	for _, para := range strings.Split(text, "\n\n") {
		html.Write(lineHeight, translateMarkup(para))
		doc.Ln(lineHeight)
		doc.Ln(paragraphSpacing)
	}

	if err := doc.OutputFileAndClose(filename); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}

// translateMarkup converts one paragraph's markdown-ish conventions into
// the HTML subset fpdf's basic writer understands: **text** becomes
// <b>text</b> and single newlines become explicit line breaks.
func translateMarkup(para string) string {
	para = boldPattern.ReplaceAllString(para, "<b>$1</b>")
	return strings.ReplaceAll(para, "\n", "<br>")
}
