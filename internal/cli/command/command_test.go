package command

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"lcsubmit/internal/cli/state"
	"lcsubmit/internal/testutil"

	"github.com/fatih/color"
)

type env struct {
	dir      string
	config   string
	solution string
	codeFile string
	state    string
}

func newEnv(t *testing.T, submitCommand string) *env {
	t.Helper()
	color.NoColor = true
	dir := t.TempDir()
	e := &env{
		dir:      dir,
		codeFile: filepath.Join(dir, "code.cpp"),
		state:    filepath.Join(dir, "state", "state.json"),
	}
	e.solution = testutil.WriteFile(t, dir, "1.two-sum.cpp", testutil.Solution)
	e.config = testutil.WriteFile(t, dir, "config.yaml", fmt.Sprintf(`filePath:
  default:
    codefile: %q
submit:
  command: %q
  statePath: %q
log:
  output: %q
`, e.codeFile, submitCommand, e.state, filepath.Join(dir, "lcsubmit.log")))
	return e
}

func (e *env) run(args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := Execute(context.Background(), append(args, "--config", e.config), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestExtractWritesCodeFile(t *testing.T) {
	e := newEnv(t, "leetcode submit {file}")

	code, out, errOut := e.run("extract", e.solution, "--line", "10")
	testutil.AssertEqual(t, code, 0)
	testutil.AssertEqual(t, errOut, "")
	testutil.AssertEqual(t, strings.TrimSpace(out), e.codeFile)
	testutil.AssertTrue(t, strings.HasPrefix(testutil.ReadFile(t, e.codeFile), "//  * @lc app=leetcode id=1 lang=cpp\n// @lc code=start\n"), "code file header")
}

func TestExtractCodeFileFlagOverridesConfig(t *testing.T) {
	e := newEnv(t, "leetcode submit {file}")
	override := filepath.Join(e.dir, "other.cpp")

	code, _, _ := e.run("extract", e.solution, "--codefile", override)
	testutil.AssertEqual(t, code, 0)
	testutil.AssertNotExist(t, e.codeFile)
	testutil.AssertTrue(t, strings.HasSuffix(testutil.ReadFile(t, override), "// @lc code=end\n"), "override written")
}

func TestExtractErrors(t *testing.T) {
	e := newEnv(t, "leetcode submit {file}")

	code, _, errOut := e.run("extract", e.solution, "--line", "2")
	testutil.AssertEqual(t, code, 5)
	testutil.AssertEqual(t, errOut, "error: Please add '// @lc code=start' in your solution file.\n")
	testutil.AssertNotExist(t, e.codeFile)

	code, _, errOut = e.run("extract", filepath.Join(e.dir, "missing.cpp"))
	testutil.AssertEqual(t, code, 5)
	testutil.AssertTrue(t, strings.Contains(errOut, "Please open a solution file first."), errOut)
}

func TestFormatPrintsSummary(t *testing.T) {
	e := newEnv(t, "leetcode submit {file}")
	resultFile := testutil.WriteFile(t, e.dir, "result.txt", testutil.AcceptedResult)

	code, out, _ := e.run("format", resultFile)
	testutil.AssertEqual(t, code, 0)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	testutil.AssertEqual(t, len(lines), 4)
	testutil.AssertEqual(t, lines[1], "// 57/57 cases passed")
	testutil.AssertEqual(t, lines[2], "// Runtime: 8 ms, faster than 91.35% of cpp online submissions.")
}

func TestSubmitAnnotatesSolution(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires cat")
	}
	dir := t.TempDir()
	resultFile := testutil.WriteFile(t, dir, "result.txt", testutil.AcceptedResult)
	e := newEnv(t, "cat "+resultFile)

	code, _, errOut := e.run("submit", e.solution)
	testutil.AssertEqual(t, code, 0)
	testutil.AssertTrue(t, strings.Contains(errOut, "info: Accepted"), errOut)
	testutil.AssertTrue(t, strings.Contains(testutil.ReadFile(t, e.solution), "// 57/57 cases passed"), "solution annotated")
}

func TestSubmitHTTPRequiresSignIn(t *testing.T) {
	e := newEnv(t, "leetcode submit {file}")

	code, _, errOut := e.run("submit", e.solution, "--backend", "http")
	testutil.AssertEqual(t, code, 4)
	testutil.AssertEqual(t, errOut, "error: Please sign in first.\n")
	testutil.AssertNotExist(t, e.codeFile)
}

func TestSubmitUnknownBackend(t *testing.T) {
	e := newEnv(t, "leetcode submit {file}")

	code, _, _ := e.run("submit", e.solution, "--backend", "fax")
	testutil.AssertEqual(t, code, 3)
}

func TestLoginLogout(t *testing.T) {
	e := newEnv(t, "leetcode submit {file}")

	code, _, _ := e.run("login")
	testutil.AssertEqual(t, code, 2)

	code, _, _ = e.run("login", "--token", "tok", "--user", "alice", "--ttl", "1h")
	testutil.AssertEqual(t, code, 0)
	session, err := state.Load(e.state)
	if err != nil {
		t.Fatalf("load session failed: %v", err)
	}
	testutil.AssertEqual(t, session.AccessToken, "tok")
	testutil.AssertEqual(t, session.Username, "alice")
	testutil.AssertTrue(t, session.ExpiresAt != nil, "ttl should set an expiry")

	code, _, _ = e.run("logout")
	testutil.AssertEqual(t, code, 0)
	testutil.AssertNotExist(t, e.state)
}

func TestInitWritesDefaultConfig(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	path := filepath.Join(dir, "lcsubmit", "config.yaml")
	codeFile := filepath.Join(dir, "code.cpp")
	var out, errOut bytes.Buffer

	code := Execute(context.Background(), []string{"init", "--config", path, "--codefile", codeFile}, &out, &errOut)
	testutil.AssertEqual(t, code, 0)
	testutil.AssertTrue(t, strings.Contains(testutil.ReadFile(t, path), "backend: command"), "default backend written")

	code = Execute(context.Background(), []string{"init", "--config", path}, &out, &errOut)
	testutil.AssertEqual(t, code, 2)

	code = Execute(context.Background(), []string{"extract", "--config", path, "--line", "8",
		testutil.WriteFile(t, dir, "1.two-sum.cpp", testutil.Solution)}, &out, &errOut)
	testutil.AssertEqual(t, code, 0)
	testutil.AssertTrue(t, strings.HasSuffix(testutil.ReadFile(t, codeFile), "// @lc code=end\n"), "init codefile used by extract")
}
