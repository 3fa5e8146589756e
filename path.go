package configfile

import (
	"fmt"
	"strings"
)

// splitPath parses a dot-delimited path into its segments.
func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path is empty", ErrInvalidPath)
	}

	segments := strings.Split(path, ".")
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, path)
		}
	}
	return segments, nil
}

// locate walks the document following each segment exactly and returns
// the addressed node. A node may be a scalar, a sequence, or a whole
// submapping (when the path addresses a section).
func locate(doc map[string]any, segments []string) (any, error) {
	var current any = doc
	for i, segment := range segments {
		node, isMap := current.(map[string]any)
		if !isMap {
			return nil, fmt.Errorf("%w: %q", ErrMissingKey, strings.Join(segments[:i+1], "."))
		}

		value, exists := node[segment]
		if !exists {
			return nil, fmt.Errorf("%w: %q", ErrMissingKey, strings.Join(segments[:i+1], "."))
		}
		current = value
	}
	return current, nil
}

// searchWild looks for a bare key or section name at any depth of the
// document, returning the first match found.
func searchWild(doc map[string]any, key string) (any, bool) {
	if value, exists := doc[key]; exists {
		return value, true
	}

	for _, value := range doc {
		if sub, isMap := value.(map[string]any); isMap {
			if found, ok := searchWild(sub, key); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// upsert sets the final segment to value, creating intermediate mappings
// for any segment that does not yet exist. An intermediate segment
// holding a non-mapping value is replaced by a mapping.
func upsert(doc map[string]any, segments []string, value any) {
	current := doc
	for _, segment := range segments[:len(segments)-1] {
		next, exists := current[segment]
		nextMap, isMap := next.(map[string]any)
		if !exists || !isMap {
			nextMap = make(map[string]any)
			current[segment] = nextMap
		}
		current = nextMap
	}
	current[segments[len(segments)-1]] = value
}

// remove deletes the entry addressed by segments and reports whether a
// deletion occurred. The document is left unchanged when nothing matched.
func remove(doc map[string]any, segments []string) bool {
	current := doc
	for _, segment := range segments[:len(segments)-1] {
		next, isMap := current[segment].(map[string]any)
		if !isMap {
			return false
		}
		current = next
	}

	last := segments[len(segments)-1]
	if _, exists := current[last]; !exists {
		return false
	}
	delete(current, last)
	return true
}
