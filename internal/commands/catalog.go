package commands

import (
	"context"

	"github.com/agentx-labs/cmdlayer/internal/logging"
	"github.com/agentx-labs/cmdlayer/internal/sources"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// PluginRegistry lists enabled plugin directories, highest precedence first.
type PluginRegistry interface {
	EnabledPluginSources(ctx context.Context) ([]sources.PluginSource, error)
}

// Options configures a Catalog.
type Options struct {
	// HomeDir holds .claude/commands for user-scope commands. Empty skips
	// the user scope.
	HomeDir string
	// Registry supplies plugin directories. Nil means none.
	Registry PluginRegistry
	Logger   *log.Logger
}

// Catalog merges commands from every scope.
type Catalog struct {
	homeDir  string
	registry PluginRegistry
	scanner  *Scanner
	logger   *log.Logger
}

// New returns a Catalog.
func New(opts Options) *Catalog {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Catalog{
		homeDir:  opts.HomeDir,
		registry: opts.Registry,
		scanner:  NewScanner(logger),
		logger:   logger,
	}
}

// Roots returns the directories List scans, in precedence order: the
// project root (when projectPath is set), the user root, then one root per
// enabled plugin source. A registry failure is logged and yields no plugin
// roots.
func (c *Catalog) Roots(ctx context.Context, projectPath string) []Root {
	var roots []Root

	if projectPath != "" {
		roots = append(roots, Root{Dir: ProjectRoot(absPath(projectPath)), Source: SourceProject})
	}
	if c.homeDir != "" {
		roots = append(roots, Root{Dir: UserRoot(c.homeDir), Source: SourceUser})
	}

	if c.registry == nil {
		return roots
	}
	plugins, err := c.registry.EnabledPluginSources(ctx)
	if err != nil {
		c.logger.Warn("listing plugin sources", "err", err)
		return roots
	}
	for _, p := range plugins {
		roots = append(roots, Root{Dir: PluginRoot(absPath(p.Path)), Source: SourceCustom, Plugin: p.Name})
	}
	return roots
}

// List scans every root concurrently and merges the results. When two
// roots produce the same name, the record from the earlier root wins, so
// project shadows user and user shadows plugins. List never fails; it
// returns an empty slice when nothing is found.
func (c *Catalog) List(ctx context.Context, projectPath string) []Record {
	roots := c.Roots(ctx, projectPath)

	// Each goroutine owns one slot; order comes from the slots, not from
	// completion.
	results := make([][]Record, len(roots))
	var g errgroup.Group
	for i, r := range roots {
		g.Go(func() error {
			results[i] = c.scanner.Scan(ctx, r.Dir, r.Source)
			return nil
		})
	}
	_ = g.Wait()

	return merge(results)
}

// merge flattens groups in order and keeps the first record for each name.
func merge(groups [][]Record) []Record {
	seen := make(map[string]bool)
	merged := []Record{}
	for _, group := range groups {
		for _, rec := range group {
			if seen[rec.Name] {
				continue
			}
			seen[rec.Name] = true
			merged = append(merged, rec)
		}
	}
	return merged
}
