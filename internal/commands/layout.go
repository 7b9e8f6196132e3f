package commands

import "path/filepath"

// Directory names that make up a commands root.
const (
	ClaudeDir   = ".claude"
	CommandsDir = "commands"
)

// Root is one directory scanned for command documents.
type Root struct {
	Dir    string
	Source Source
	// Plugin names the plugin source for SourceCustom roots.
	Plugin string
}

// ProjectRoot returns <project>/.claude/commands.
func ProjectRoot(projectPath string) string {
	return filepath.Join(projectPath, ClaudeDir, CommandsDir)
}

// UserRoot returns <home>/.claude/commands.
func UserRoot(homeDir string) string {
	return filepath.Join(homeDir, ClaudeDir, CommandsDir)
}

// PluginRoot returns <plugin>/commands.
func PluginRoot(pluginPath string) string {
	return filepath.Join(pluginPath, CommandsDir)
}

// absPath makes p absolute, keeping it unchanged if that fails.
func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
