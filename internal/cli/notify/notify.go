package notify

import (
	"fmt"
	"io"
	"strings"

	pkgerrors "lcsubmit/pkg/errors"

	"github.com/fatih/color"
)

// Notifier prints user-visible messages. Results go to out, everything
// else to errOut.
type Notifier struct {
	out    io.Writer
	errOut io.Writer
}

var (
	infoHeader  = color.New(color.Bold, color.FgGreen)
	warnHeader  = color.New(color.Bold, color.FgYellow)
	errorHeader = color.New(color.Bold, color.FgRed)
	detail      = color.New(color.FgCyan, color.Bold)
)

func New(out, errOut io.Writer) *Notifier {
	return &Notifier{out: out, errOut: errOut}
}

func (n *Notifier) Info(format string, args ...interface{}) {
	n.line(infoHeader, "info", fmt.Sprintf(format, args...))
}

func (n *Notifier) Warn(format string, args ...interface{}) {
	n.line(warnHeader, "warning", fmt.Sprintf(format, args...))
}

func (n *Notifier) Error(format string, args ...interface{}) {
	n.line(errorHeader, "error", fmt.Sprintf(format, args...))
}

// Report prints err with the severity of its code.
func (n *Notifier) Report(err error) {
	if err == nil {
		return
	}
	e := pkgerrors.GetError(err)
	if e.Code.Severity() == pkgerrors.SeverityWarning {
		n.Warn("%s", e.Error())
		return
	}
	n.Error("%s", e.Error())
}

// ShowSubmission prints a judge result that was not accepted.
func (n *Notifier) ShowSubmission(message string) {
	var buf strings.Builder
	buf.WriteString(errorHeader.Sprint("submission not accepted"))
	buf.WriteString("\n")
	for _, line := range strings.Split(strings.TrimRight(message, "\n"), "\n") {
		buf.WriteString(detail.Sprint("  | "))
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	_, _ = fmt.Fprint(n.out, buf.String())
}

// Print writes plain output, e.g. a formatted summary.
func (n *Notifier) Print(text string) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, _ = fmt.Fprint(n.out, text)
}

func (n *Notifier) line(header *color.Color, label, msg string) {
	_, _ = fmt.Fprintf(n.errOut, "%s: %s\n", header.Sprint(label), msg)
}
