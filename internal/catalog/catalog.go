// Package catalog loads the static feature catalog: a nested mapping from
// beauty category to sub-option down to a concrete parameter (hex color code
// or style code) consumed by the try-on services.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

type Catalog struct {
	root map[string]any
}

func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening catalog: %w", err)
	}
	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("error parsing catalog: %w", err)
	}
	return &Catalog{root: root}, nil
}

// node walks the nested maps along path. Keys are matched case-insensitively;
// a miss is an error, never a silent default.
func (c *Catalog) node(path ...string) (map[string]any, error) {
	cur := c.root
	for _, key := range path {
		next, ok := cur[strings.ToLower(key)]
		if !ok {
			return nil, fmt.Errorf("catalog: no entry %q under path %v", key, path)
		}
		sub, ok := next.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("catalog: entry %q under path %v is a leaf, not a group", key, path)
		}
		cur = sub
	}
	return cur, nil
}

// Options lists the keys of the sub-map addressed by path, sorted
// alphabetically so menus are stable between runs.
func (c *Catalog) Options(path ...string) ([]string, error) {
	sub, err := c.node(path...)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(sub))
	for k := range sub {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Resolve follows path to a leaf parameter string.
func (c *Catalog) Resolve(path ...string) (string, error) {
	if len(path) == 0 {
		return "", fmt.Errorf("catalog: empty path")
	}
	sub, err := c.node(path[:len(path)-1]...)
	if err != nil {
		return "", err
	}
	leafKey := strings.ToLower(path[len(path)-1])
	leaf, ok := sub[leafKey]
	if !ok {
		return "", fmt.Errorf("catalog: no entry %q under path %v", leafKey, path)
	}
	val, ok := leaf.(string)
	if !ok {
		return "", fmt.Errorf("catalog: entry %q under path %v is a group, not a leaf", leafKey, path)
	}
	return val, nil
}
