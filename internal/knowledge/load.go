package knowledge

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Load builds a Base from the YAML files matched by the given glob
// patterns (doublestar syntax, so "kb/**/*.yml" works). Files are read in
// sorted path order and their facilities concatenated. With no patterns
// the built-in directory is returned.
func Load(patterns []string) (*Base, error) {
	if len(patterns) == 0 {
		return Default(), nil
	}

	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(filepath.FromSlash(pattern))
		if err != nil {
			return nil, fmt.Errorf("bad knowledge pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no knowledge files match %v", patterns)
	}
	sort.Strings(paths)

	var facilities []Facility
	for _, p := range paths {
		fs, err := readFile(p)
		if err != nil {
			return nil, err
		}
		facilities = append(facilities, fs...)
	}

	b, err := New(facilities)
	if err != nil {
		return nil, fmt.Errorf("loading knowledge: %w", err)
	}
	return b, nil
}

func readFile(path string) ([]Facility, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge file %s: %w", path, err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing knowledge file %s: %w", path, err)
	}
	return f.Facilities, nil
}

// Save writes facilities to path in the format Load reads.
func Save(path string, facilities []Facility) error {
	data, err := yaml.Marshal(file{Facilities: facilities})
	if err != nil {
		return fmt.Errorf("marshalling knowledge: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing knowledge to %s: %w", path, err)
	}
	return nil
}
