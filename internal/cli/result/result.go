package result

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultLanguage is printed in the summary when no language is known.
const DefaultLanguage = "cpp"

var (
	casesPassedRe       = regexp.MustCompile(`(\d+)/(\d+) cases passed`)
	runtimePercentileRe = regexp.MustCompile(`Your runtime beats (\d+\.\d+) %`)
	memoryPercentileRe  = regexp.MustCompile(`Your memory usage beats (\d+\.\d+) %`)
	runtimeMsRe         = regexp.MustCompile(`(\d+) ms`)
	memoryMBRe          = regexp.MustCompile(`\((\d+\.\d+) MB\)`)
)

// Fields are the values pulled out of a judge result. Unmatched fields are
// empty.
type Fields struct {
	CasesPassed       string
	TotalCases        string
	RuntimeMs         string
	RuntimePercentile string
	MemoryMB          string
	MemoryPercentile  string
}

// Accepted reports whether the judge accepted the submission.
func Accepted(message string) bool {
	return strings.Contains(message, "Accepted")
}

// Parse applies each expression independently to message.
func Parse(message string) Fields {
	var f Fields
	if m := casesPassedRe.FindStringSubmatch(message); m != nil {
		f.CasesPassed, f.TotalCases = m[1], m[2]
	}
	f.RuntimePercentile = firstGroup(runtimePercentileRe, message)
	f.MemoryPercentile = firstGroup(memoryPercentileRe, message)
	f.RuntimeMs = firstGroup(runtimeMsRe, message)
	f.MemoryMB = firstGroup(memoryMBRe, message)
	return f
}

func firstGroup(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

// Format renders the four-line summary comment dated with the UTC day of
// now. An empty lang falls back to DefaultLanguage.
func Format(f Fields, now time.Time, lang string) string {
	if lang == "" {
		lang = DefaultLanguage
	}
	lines := []string{
		fmt.Sprintf("// %s submission", now.UTC().Format("2006-01-02")),
		fmt.Sprintf("// %s/%s cases passed", f.CasesPassed, f.TotalCases),
		fmt.Sprintf("// Runtime: %s ms, faster than %s%% of %s online submissions.", f.RuntimeMs, f.RuntimePercentile, lang),
		fmt.Sprintf("// Memory Usage: %s MB, less than %s%% of %s online submissions.", f.MemoryMB, f.MemoryPercentile, lang),
	}
	return strings.Join(lines, "\n")
}

// Summarize parses message and formats it.
func Summarize(message string, now time.Time, lang string) string {
	return Format(Parse(message), now, lang)
}
