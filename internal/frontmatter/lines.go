package frontmatter

import "strings"

// decodeLines is the recovery decoder for blocks YAML rejects. It reads
// "key: value" pairs, "- item" sequences under the open key, and folds any
// other line into the open key's value, or into its last item once it has
// items. It never returns an error.
func decodeLines(block string) (map[string]any, error) {
	meta := map[string]any{}

	var (
		key   string
		value string
		items []any
	)
	flush := func() {
		if key == "" {
			return
		}
		if items != nil {
			meta[key] = items
		} else {
			meta[key] = value
		}
		key, value, items = "", "", nil
	}

	for _, raw := range strings.Split(block, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Sequence items win over pairs so "- https://host" stays an item.
		if key != "" && strings.HasPrefix(line, "-") {
			items = append(items, strings.TrimSpace(line[1:]))
			continue
		}

		if k, v, ok := splitPair(line); ok {
			flush()
			key, value = k, v
			continue
		}

		switch {
		case key == "":
		case items != nil:
			// Once a key holds items, plain lines continue the last one.
			last := len(items) - 1
			items[last] = strings.TrimSpace(items[last].(string) + " " + line)
		default:
			value = strings.TrimSpace(value + " " + line)
		}
	}
	flush()

	return meta, nil
}

// splitPair splits on the first colon. The colon must not be the first
// character. A trailing colon opens a key with an empty value so block
// sequences can follow it.
func splitPair(line string) (key, value string, ok bool) {
	i := strings.Index(line, ":")
	if i <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:i])
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(line[i+1:]), true
}
