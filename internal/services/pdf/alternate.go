// alternate.go is the second extraction path, backed by rsc.io/pdf.
//
// The library emits one text item per glyph and skips space glyphs
// entirely, so word breaks have to be rebuilt from item geometry: a
// horizontal gap after the previous glyph becomes a space, a baseline
// change becomes a newline. Pages are joined with a blank line. On
// well-formed input the output matches Extract.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	rpdf "rsc.io/pdf"

	"github.com/prepwise/exam-prep-api/internal/apperr"
)

// wordGapFraction is the horizontal gap, as a fraction of the font size,
// beyond which two adjacent glyphs on the same baseline are treated as
// separate words. Kerning gaps sit well below it; a typical space glyph
// advances the pen by about a quarter of the font size.
const wordGapFraction = 0.15

// ExtractAlternate extracts text using the rsc.io/pdf engine.
//
// The library panics on some malformed inputs instead of returning an
// error, so the parse is wrapped in a recover.
func ExtractAlternate(data []byte) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = apperr.Wrap(apperr.Extraction, "failed to parse PDF",
				fmt.Errorf("parser panic: %v", r))
		}
	}()

	reader, err := rpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, apperr.Wrap(apperr.Extraction, "failed to open PDF", err)
	}

	pageCount := reader.NumPage()

	var fullText strings.Builder
	for pageNumber := 1; pageNumber <= pageCount; pageNumber++ {
		page := reader.Page(pageNumber)
		if page.V.IsNull() {
			continue
		}

		if pageNumber > 1 {
			fullText.WriteString("\n\n")
		}

		var prev rpdf.Text
		for _, item := range page.Content().Text {
			fullText.WriteString(glyphSeparator(prev, item))
			fullText.WriteString(item.S)
			prev = item
		}
	}

	if pageCount < 1 {
		pageCount = 1
	}

	return &Result{
		Text:  strings.TrimSpace(fullText.String()),
		Pages: pageCount,
	}, nil
}

// glyphSeparator returns the text to insert between two consecutive
// glyph items: nothing within a word, a space across a word gap, a
// newline when the baseline moves.
func glyphSeparator(prev, cur rpdf.Text) string {
	if prev.S == "" {
		return ""
	}
	if cur.Y != prev.Y {
		return "\n"
	}
	if cur.X-(prev.X+prev.W) > wordGapFraction*prev.FontSize {
		return " "
	}
	return ""
}
