package catalog

import "fmt"

type Language struct {
	Name string `json:"name"`
	Hint string `json:"hint"`
}

type Category struct {
	Name      string     `json:"name"`
	Languages []Language `json:"languages"`
}

// Pair is a pre-curated complementary pairing of two catalog languages. The
// pair is unordered: a suggestion lookup matches either member.
type Pair struct {
	First       string `json:"first"`
	Second      string `json:"second"`
	Description string `json:"description"`
}

// Suggestion is the partner half of a pair, as returned by SuggestedPairs.
type Suggestion struct {
	Partner     string `json:"partner"`
	Description string `json:"description"`
}

// Catalog holds the selectable root languages and their complementary
// pairings. It is immutable after New, so one instance is shared freely.
type Catalog struct {
	categories []Category
	pairs      []Pair
	byName     map[string]string // language name -> category name
}

// New validates the tables: a language may appear in only one category, and
// every pair must reference two catalog languages.
func New(categories []Category, pairs []Pair) (*Catalog, error) {
	byName := make(map[string]string)
	for _, cat := range categories {
		for _, lang := range cat.Languages {
			if prev, ok := byName[lang.Name]; ok {
				return nil, fmt.Errorf("language %q appears in both %q and %q", lang.Name, prev, cat.Name)
			}
			byName[lang.Name] = cat.Name
		}
	}
	for _, p := range pairs {
		for _, member := range []string{p.First, p.Second} {
			if _, ok := byName[member]; !ok {
				return nil, fmt.Errorf("pair (%s, %s) references unknown language %q", p.First, p.Second, member)
			}
		}
	}
	return &Catalog{categories: categories, pairs: pairs, byName: byName}, nil
}

func (c *Catalog) Categories() []Category { return c.categories }

// Languages flattens all categories into one list, preserving category order
// then in-category order. Construction guarantees no duplicates.
func (c *Catalog) Languages() []Language {
	var all []Language
	for _, cat := range c.categories {
		all = append(all, cat.Languages...)
	}
	return all
}

func (c *Catalog) Contains(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// SuggestedPairs returns every compatibility entry containing name, with the
// other member and its description, in table order. An unknown language yields
// an empty slice, not an error.
func (c *Catalog) SuggestedPairs(name string) []Suggestion {
	suggestions := []Suggestion{}
	for _, p := range c.pairs {
		switch name {
		case p.First:
			suggestions = append(suggestions, Suggestion{Partner: p.Second, Description: p.Description})
		case p.Second:
			suggestions = append(suggestions, Suggestion{Partner: p.First, Description: p.Description})
		}
	}
	return suggestions
}
