package editor

import (
	"strings"
)

// Document is an ordered, mutable sequence of text lines. Each line keeps
// its own terminator so that rendering returns the text byte for byte. A
// text ending in a newline has a final empty line, as in most editors.
type Document struct {
	lines []string
}

// NewDocument splits text into lines.
func NewDocument(text string) *Document {
	doc := &Document{}
	for {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			doc.lines = append(doc.lines, text)
			return doc
		}
		doc.lines = append(doc.lines, text[:i+1])
		text = text[i+1:]
	}
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// LineAt returns the text of line i without its terminator, or "" when i is
// out of range.
func (d *Document) LineAt(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return strings.TrimSuffix(strings.TrimSuffix(d.lines[i], "\n"), "\r")
}

// Text returns lines [start, end) including their terminators, clamped to
// the document.
func (d *Document) Text(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(d.lines) {
		end = len(d.lines)
	}
	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(d.lines[i])
	}
	return b.String()
}

// InsertLines inserts lines before line at, each terminated with eol.
// Inserting past the last line terminates it first and appends.
func (d *Document) InsertLines(at int, lines []string, eol string) {
	if len(lines) == 0 {
		return
	}
	if at < 0 {
		at = 0
	}
	if at >= len(d.lines) {
		at = len(d.lines)
		if last := d.lines[at-1]; !strings.HasSuffix(last, "\n") {
			d.lines[at-1] = last + eol
		}
	}

	inserted := make([]string, len(lines))
	for i, line := range lines {
		inserted[i] = line + eol
	}

	updated := make([]string, 0, len(d.lines)+len(inserted))
	updated = append(updated, d.lines[:at]...)
	updated = append(updated, inserted...)
	updated = append(updated, d.lines[at:]...)
	d.lines = updated
}

// String renders the whole document.
func (d *Document) String() string {
	return d.Text(0, len(d.lines))
}
