// Package catalog resolves the set of input documents for a merge run:
// which files participate, what category and title each one carries, and
// the navigation menu built from them.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoInputs is returned when discovery finds nothing to merge and no
// explicit input list was given.
var ErrNoInputs = errors.New("no input files found")

// SupportedExtensions lists source formats docnav can merge.
var SupportedExtensions = map[string]bool{
	".docx":     true,
	".md":       true,
	".markdown": true,
	".txt":      true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Source is one input document slated for merging. Immutable once resolved.
type Source struct {
	Path     string
	Category string
	Title    string
	Bookmark string
}

// Categorize splits a filename's stem on the first occurrence of sep.
// Text before the separator becomes the category; the remainder becomes
// the title. Without a separator the category is empty and the whole stem
// is the title. An empty remainder falls back to the full stem.
func Categorize(filename, sep string) (category, title string) {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if sep != "" {
		if i := strings.Index(stem, sep); i >= 0 {
			category = strings.TrimSpace(stem[:i])
			title = strings.TrimSpace(stem[i+len(sep):])
			if title == "" {
				title = strings.TrimSpace(stem)
			}
			return category, title
		}
	}
	return "", strings.TrimSpace(stem)
}

// Discover resolves the input file list. An explicit list wins as given;
// otherwise dir is scanned for supported files, skipping Word lock files
// and the output file, sorted by case-folded base name.
func Discover(dir string, explicit []string, output string) ([]string, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	outName := filepath.Base(output)
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, "~$") {
			continue
		}
		if !IsSupportedExtension(name) {
			continue
		}
		if output != "" && name == outName {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}

	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(filepath.Base(files[i])) < strings.ToLower(filepath.Base(files[j]))
	})

	if len(files) == 0 {
		return nil, ErrNoInputs
	}
	return files, nil
}

// Resolve builds the Source list for a set of paths, categorizing each
// filename and assigning bookmark IDs in order. Bookmarks are sequential
// so identical inputs always produce an identical structure.
func Resolve(paths []string, sep string) []Source {
	sources := make([]Source, 0, len(paths))
	for i, p := range paths {
		category, title := Categorize(p, sep)
		sources = append(sources, Source{
			Path:     p,
			Category: category,
			Title:    title,
			Bookmark: fmt.Sprintf("doc_%d", i+1),
		})
	}
	return sources
}
