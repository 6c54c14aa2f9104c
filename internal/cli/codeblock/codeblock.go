package codeblock

import (
	"os"
	"strings"

	"lcsubmit/internal/cli/editor"
	pkgerrors "lcsubmit/pkg/errors"
)

// Sentinel markers bounding the submitted code region.
const (
	StartMarker = "// @lc code=start"
	EndMarker   = "// @lc code=end"
)

// FindStart walks upward from line (inclusive) and returns the first line
// containing the start marker, or -1.
func FindStart(doc *editor.Document, line int) int {
	if line >= doc.LineCount() {
		line = doc.LineCount() - 1
	}
	for ; line >= 0; line-- {
		if strings.Contains(doc.LineAt(line), StartMarker) {
			return line
		}
	}
	return -1
}

// FindEnd walks downward from line (inclusive) and returns the first line
// containing the end marker, or LineCount when there is none.
func FindEnd(doc *editor.Document, line int) int {
	if line < 0 {
		line = 0
	}
	for ; line < doc.LineCount(); line++ {
		if strings.Contains(doc.LineAt(line), EndMarker) {
			return line
		}
	}
	return doc.LineCount()
}

// DefaultCursor returns the first line holding the start marker, or 0.
func DefaultCursor(doc *editor.Document) int {
	for i := 0; i < doc.LineCount(); i++ {
		if strings.Contains(doc.LineAt(i), StartMarker) {
			return i
		}
	}
	return 0
}

// Range is the inclusive line range of a code block.
type Range struct {
	Start int
	End   int
}

// Locate finds the code block around the editor's cursor.
func Locate(ed *editor.Editor) (Range, error) {
	if ed == nil {
		return Range{}, pkgerrors.New(pkgerrors.NoActiveDocument)
	}
	doc := ed.Document()
	r := Range{
		Start: FindStart(doc, ed.Cursor()),
		End:   FindEnd(doc, ed.Cursor()),
	}
	if r.Start < 0 {
		return r, pkgerrors.New(pkgerrors.StartMarkerMissing)
	}
	if r.Start >= r.End {
		return r, pkgerrors.New(pkgerrors.CodeRangeNotFound).
			WithDetail("start", r.Start).
			WithDetail("end", r.End)
	}
	return r, nil
}

// Content builds the code file body: the document's second line as a
// comment, then lines [Start, End] verbatim.
func Content(doc *editor.Document, r Range) string {
	return "// " + doc.LineAt(1) + "\n" + doc.Text(r.Start, r.End+1)
}

// Copy extracts the code block around the cursor and overwrites codeFile
// with it. It returns codeFile. Nothing is written on failure.
func Copy(ed *editor.Editor, codeFile string) (string, error) {
	if ed == nil {
		return "", pkgerrors.New(pkgerrors.NoActiveDocument)
	}
	codeFile = strings.TrimSpace(codeFile)
	if codeFile == "" {
		return "", pkgerrors.New(pkgerrors.CodeFileNotConfigured)
	}
	r, err := Locate(ed)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(codeFile, []byte(Content(ed.Document(), r)), 0o644); err != nil {
		return "", pkgerrors.Wrapf(err, pkgerrors.FileWriteFailed, "write code file failed: %v", err).
			WithDetail("path", codeFile)
	}
	return codeFile, nil
}

// InsertResult re-locates the start marker from the cursor and inserts
// result right after it, one platform-terminated line per "\n"-separated
// line of result. An empty result is a no-op.
func InsertResult(ed *editor.Editor, result string) error {
	if result == "" {
		return nil
	}
	if ed == nil {
		return pkgerrors.New(pkgerrors.NoActiveDocument)
	}
	start := FindStart(ed.Document(), ed.Cursor())
	if start < 0 {
		return pkgerrors.New(pkgerrors.StartMarkerMissing)
	}
	ed.Document().InsertLines(start+1, strings.Split(result, "\n"), editor.PlatformEOL)
	return nil
}
