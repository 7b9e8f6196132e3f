//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentx-labs/cmdlayer/internal/commands"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // CMDLAYER_HOME, holds .claude/commands
	DataDir    string // CMDLAYER_DATA, holds the plugin store
	ProjectDir string // a mock project directory
	PluginsDir string // parent of plugin directories
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so every cmdlayer operation is sandboxed. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		DataDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
		PluginsDir: t.TempDir(),
	}

	t.Setenv("CMDLAYER_HOME", env.HomeDir)
	t.Setenv("CMDLAYER_DATA", env.DataDir)
	t.Setenv("CMDLAYER_SOURCES", "")
	t.Setenv("CMDLAYER_SOURCES_DB", "")

	return env
}

// writeCommand writes a command document under root at rel (e.g. "git/commit.md").
func writeCommand(t *testing.T, root, rel, description, body string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	content := body
	if description != "" {
		content = "---\ndescription: " + description + "\n---\n" + body
	}
	writeFile(t, path, content)
	return path
}

// projectCommands returns <project>/.claude/commands.
func (e *testEnv) projectCommands() string { return commands.ProjectRoot(e.ProjectDir) }

// userCommands returns <home>/.claude/commands.
func (e *testEnv) userCommands() string { return commands.UserRoot(e.HomeDir) }

// plugin creates a plugin directory and returns its path and commands root.
func (e *testEnv) plugin(t *testing.T, name string) (dir, root string) {
	t.Helper()
	dir = filepath.Join(e.PluginsDir, name)
	root = commands.PluginRoot(dir)
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatalf("creating plugin %s: %v", name, err)
	}
	return dir, root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertContains(t *testing.T, got, substr string) {
	t.Helper()
	if !strings.Contains(got, substr) {
		t.Errorf("expected output to contain %q, got:\n%s", substr, got)
	}
}
