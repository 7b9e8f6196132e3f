package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/cmdlayer/internal/frontmatter"
	"github.com/agentx-labs/cmdlayer/internal/logging"
	"github.com/charmbracelet/log"
)

// Scanner walks one commands root.
type Scanner struct {
	logger *log.Logger
}

// NewScanner returns a Scanner that reports skipped entries to logger.
// A nil logger discards them.
func NewScanner(logger *log.Logger) *Scanner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Scanner{logger: logger}
}

// Scan walks root recursively and returns one record per command document,
// tagged with source. A missing root yields no records. Failures on single
// entries are logged and the entry is skipped; Scan never fails as a whole.
func (s *Scanner) Scan(ctx context.Context, root string, source Source) []Record {
	return s.scanDir(ctx, root, source, "")
}

// scanDir returns the records under dir. Each call owns its result slice.
func (s *Scanner) scanDir(ctx context.Context, dir string, source Source, prefix string) []Record {
	if ctx.Err() != nil {
		return nil
	}

	// ReadDir returns the entries read before an error, so a failing
	// directory still contributes what it could list.
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		s.logger.Warn("reading commands directory", "dir", dir, "err", err)
	}

	var records []Record
	for _, entry := range entries {
		name := entry.Name()
		if !ValidEntryName(name) {
			s.logger.Warn("skipping invalid entry name", "dir", dir, "name", name)
			continue
		}

		path := filepath.Join(dir, name)
		isDir, isFile := s.entryKind(entry, path)

		switch {
		case isDir:
			records = append(records, s.scanDir(ctx, path, source, joinName(prefix, name))...)

		case isFile && strings.HasSuffix(name, DocumentSuffix):
			base := strings.TrimSuffix(name, DocumentSuffix)
			if base == "" {
				s.logger.Warn("skipping command without a name", "path", path)
				continue
			}
			rec, err := readRecord(path, source, joinName(prefix, base))
			if err != nil {
				s.logger.Warn("skipping command", "path", path, "err", err)
				continue
			}
			records = append(records, rec)
		}
	}

	return records
}

// entryKind classifies an entry. Symlinks to files are followed; symlinks
// to directories are not, which keeps link cycles out of the walk.
func (s *Scanner) entryKind(entry fs.DirEntry, path string) (isDir, isFile bool) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), entry.Type().IsRegular()
	}
	info, err := os.Stat(path)
	if err != nil {
		s.logger.Warn("skipping broken link", "path", path, "err", err)
		return false, false
	}
	if info.IsDir() {
		s.logger.Debug("not following directory link", "path", path)
		return false, false
	}
	return false, info.Mode().IsRegular()
}

// readRecord reads one command document.
func readRecord(path string, source Source, name string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("reading command %s: %w", path, err)
	}

	doc := frontmatter.Parse(string(data))
	description, argumentHint := frontmatter.Fields(doc.Metadata)

	return Record{
		Name:         name,
		Description:  description,
		ArgumentHint: argumentHint,
		Source:       source,
		Path:         absPath(path),
	}, nil
}

// joinName appends a segment to a namespace prefix.
func joinName(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + NamespaceSeparator + segment
}
