package tracker

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// The README.md examples are tested: a ```bash block running pst followed by
// a ```console block holding its expected output.

// Command holds a command and its expected output.
type Command struct {
	Cmd      string
	Expected string
}

// buildPst builds the pst command in 'tmp' and returns the path to the executable.
func buildPst(t *testing.T, tmp string) string {
	t.Helper()

	output := filepath.Join(tmp, "pst")
	buildCmd := exec.Command("go", "build", "-o", output, "./pst/")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build pst command: %v\n%s", err, out)
	}
	return output
}

// parseReadme extracts the commands and their expected outputs from README.md.
func parseReadme(t *testing.T) []Command {
	t.Helper()

	content, err := os.ReadFile("README.md")
	if err != nil {
		t.Fatalf("failed to read README.md: %v", err)
	}

	re := regexp.MustCompile("(?m)```bash\\n(pst.*?)\\n```\\n\\n```console\\n((.|\\n)*?)```")
	var commands []Command
	for _, match := range re.FindAllStringSubmatch(string(content), -1) {
		commands = append(commands, Command{Cmd: match[1], Expected: match[2]})
	}
	return commands
}

// trimLines removes trailing spaces on every line, editors do not keep them in README.md.
func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.Join(lines, "\n")
}

func TestReadme(t *testing.T) {
	commands := parseReadme(t)
	if len(commands) == 0 {
		t.Fatal("no testable command found in README.md")
	}

	tmp := t.TempDir()
	pstPath := buildPst(t, tmp)

	for _, cmd := range commands {
		args := strings.Fields(cmd.Cmd)
		t.Log("Running command:", pstPath, args)
		command := exec.Command(pstPath, args[1:]...)
		command.Dir = tmp
		command.Env = append(os.Environ(), "PST_CURRENCY=USD", "PST_LOG_LEVEL=disabled")
		output, err := command.CombinedOutput()
		if err != nil {
			t.Fatalf("failed to run command: %v, output: \n%s", err, output)
		}

		if got := trimLines(string(output)); got != cmd.Expected {
			t.Errorf("%s: expected output:\n%q\nbut got:\n%q", cmd.Cmd, cmd.Expected, got)
		}
	}
}
