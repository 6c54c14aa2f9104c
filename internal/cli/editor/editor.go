package editor

import (
	"fmt"
	"os"
	"runtime"
)

// PlatformEOL is the line terminator of the host platform.
var PlatformEOL = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

// Editor is an open solution file: its document, its path on disk and the
// cursor line (zero-based).
type Editor struct {
	path   string
	doc    *Document
	cursor int
	mode   os.FileMode
}

// Open loads the file at path with the cursor clamped to the document.
func Open(path string, cursor int) (*Editor, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat document failed: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("document path is a directory: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document failed: %w", err)
	}
	return New(path, NewDocument(string(data)), cursor, info.Mode().Perm()), nil
}

// New wraps an in-memory document.
func New(path string, doc *Document, cursor int, mode os.FileMode) *Editor {
	e := &Editor{path: path, doc: doc, mode: mode}
	e.SetCursor(cursor)
	return e
}

func (e *Editor) Path() string {
	return e.path
}

func (e *Editor) Document() *Document {
	return e.doc
}

func (e *Editor) Cursor() int {
	return e.cursor
}

// SetCursor moves the cursor, clamped to [0, LineCount-1].
func (e *Editor) SetCursor(line int) {
	if line >= e.doc.LineCount() {
		line = e.doc.LineCount() - 1
	}
	if line < 0 {
		line = 0
	}
	e.cursor = line
}

// Save writes the document back to its path.
func (e *Editor) Save() error {
	mode := e.mode
	if mode == 0 {
		mode = 0o644
	}
	if err := os.WriteFile(e.path, []byte(e.doc.String()), mode); err != nil {
		return fmt.Errorf("write document failed: %w", err)
	}
	return nil
}
