package compose

import (
	"path/filepath"
	"strings"

	"github.com/dgallion1/docnav/internal/catalog"
	"github.com/dgallion1/docnav/internal/convert"
	"github.com/dgallion1/docnav/internal/inspect"
)

// IsDocx reports whether a path is a native .docx source.
func IsDocx(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".docx")
}

// Merge validates every source and composes them in order. Validation runs
// first so a broken input aborts before any composition work starts; the
// returned composer has not been written anywhere yet.
func Merge(sources []catalog.Source, opts Options) (*Composer, error) {
	for _, src := range sources {
		if IsDocx(src.Path) {
			if _, err := inspect.File(src.Path); err != nil {
				return nil, err
			}
		}
	}

	menu := catalog.BuildMenu(sources, opts.MenuTitle)
	c, err := New(menu, opts)
	if err != nil {
		return nil, err
	}

	for _, src := range sources {
		if IsDocx(src.Path) {
			if err := c.AppendDocx(src); err != nil {
				return nil, err
			}
			continue
		}
		secs, err := convert.File(src.Path, opts.Convert)
		if err != nil {
			return nil, err
		}
		if err := c.AppendSections(src, secs); err != nil {
			return nil, err
		}
	}
	return c, nil
}
