package codeblock

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
)

var headerRe = regexp.MustCompile(`@lc app=([\w.-]+) id=(\d+) lang=([\w-]+)`)

// Header is the problem metadata line written by the judge's problem
// templates, e.g. " * @lc app=leetcode id=1 lang=cpp".
type Header struct {
	App       string
	ProblemID string
	Lang      string
}

// ParseHeader extracts the header from a single line.
func ParseHeader(line string) (Header, bool) {
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return Header{}, false
	}
	return Header{App: m[1], ProblemID: m[2], Lang: m[3]}, true
}

// ReadHeader scans the file at path and returns the first header found.
func ReadHeader(path string) (Header, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, false, fmt.Errorf("open code file failed: %w", err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if h, ok := ParseHeader(scanner.Text()); ok {
			return h, true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return Header{}, false, fmt.Errorf("scan code file failed: %w", err)
	}
	return Header{}, false, nil
}
