package catalog

// MenuBookmark is the anchor name of the menu heading; every section's
// back-link points at it.
const MenuBookmark = "menu"

// Entry is one menu line pointing at a merged section.
type Entry struct {
	Category string
	Title    string
	Bookmark string
}

// Group holds the menu entries of one category, in discovery order.
type Group struct {
	Category string
	Entries  []Entry
}

// Menu is the navigation block inserted at the head of the output.
type Menu struct {
	Title  string
	Groups []Group
}

// BuildMenu groups sources by category. Categories appear in first-seen
// order; within a category, entries keep discovery order.
func BuildMenu(sources []Source, title string) Menu {
	m := Menu{Title: title}
	index := make(map[string]int)
	for _, src := range sources {
		g, ok := index[src.Category]
		if !ok {
			g = len(m.Groups)
			index[src.Category] = g
			m.Groups = append(m.Groups, Group{Category: src.Category})
		}
		m.Groups[g].Entries = append(m.Groups[g].Entries, Entry{
			Category: src.Category,
			Title:    src.Title,
			Bookmark: src.Bookmark,
		})
	}
	return m
}

// Entries flattens the menu back into a single ordered list.
func (m Menu) Entries() []Entry {
	var out []Entry
	for _, g := range m.Groups {
		out = append(out, g.Entries...)
	}
	return out
}
