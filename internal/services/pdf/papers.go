// papers.go folds multiple past-paper documents into one combined text.
//
// The combined text is what the question predictor receives, so delimiter
// order must be deterministic relative to upload order. We take the whole
// ordered list at once and do a pure join — no shared accumulator that
// concurrent upload completions could race on.
package pdf

import "strings"

// PaperDocument is one uploaded past-paper file's extracted text,
// tagged with its originating filename.
type PaperDocument struct {
	Filename string
	Text     string
}

// JoinPapers combines extracted texts in list order. Each document is
// demarcated by a delimiter line carrying its filename:
//
//	--- A.pdf ---
//
//	Q1
//
//	--- B.pdf ---
//
//	Q2
func JoinPapers(docs []PaperDocument) string {
	if len(docs) == 0 {
		return ""
	}

	sections := make([]string, 0, len(docs))
	for _, doc := range docs {
		sections = append(sections, "--- "+doc.Filename+" ---\n\n"+doc.Text)
	}
	return strings.Join(sections, "\n\n")
}
