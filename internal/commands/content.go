package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/agentx-labs/cmdlayer/internal/frontmatter"
)

// Content returns the body of the command document at path with its
// metadata block removed and surrounding whitespace trimmed.
//
// A path containing ".." fails with ErrPathTraversal. Any other failure is
// logged and yields an empty body with a nil error.
func (c *Catalog) Content(path string) (string, error) {
	if err := checkContentPath(path); err != nil {
		return "", fmt.Errorf("%w: %s", err, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		c.logger.Warn("reading command content", "path", path, "err", err)
		return "", nil
	}

	return strings.TrimSpace(frontmatter.Parse(string(data)).Body), nil
}
