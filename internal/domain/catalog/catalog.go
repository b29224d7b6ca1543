// Package catalog defines the ordered, immutable table of formula snippets.
package catalog

import (
	"github.com/cockroachdb/errors"
	"github.com/tesso57/latexpad/internal/domain/fault"
)

// Category is a named, ordered group of snippets.
type Category struct {
	Label    string
	Snippets []string
}

// Catalog holds categories in display order. It is never mutated after Build.
type Catalog struct {
	categories []Category
}

// Build pairs labels with snippet groups positionally.
func Build(labels []string, groups [][]string) (*Catalog, error) {
	if len(labels) == 0 || len(groups) == 0 {
		return nil, errors.WithHint(
			fault.Configuration("catalog needs at least one category (labels: %d, groups: %d)", len(labels), len(groups)),
			"supply one label per snippet group",
		)
	}
	if len(labels) != len(groups) {
		return nil, errors.WithHint(
			fault.Configuration("label count %d does not match snippet group count %d", len(labels), len(groups)),
			"supply one label per snippet group",
		)
	}

	categories := make([]Category, len(labels))
	for i, label := range labels {
		categories[i] = Category{
			Label:    label,
			Snippets: append([]string(nil), groups[i]...),
		}
	}
	return new(Catalog{categories: categories}), nil
}

// Default builds the reference catalog with the given labels.
func Default(labels []string) (*Catalog, error) {
	return Build(labels, DefaultGroups())
}

// DefaultGroups returns a copy of the reference snippet groups in catalog order.
func DefaultGroups() [][]string {
	groups := [][]string{
		relationSymbols,
		arrowSymbols,
		miscSymbols,
		delimiterSymbols,
		greekSymbols,
		functionSymbols,
		matrixSymbols,
		alphabetSymbols,
	}
	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = append([]string(nil), g...)
	}
	return out
}

// DefaultLabels returns the English labels of the reference catalog.
func DefaultLabels() []string {
	return []string{
		"Relation Symbols",
		"Arrow Symbols",
		"Miscellaneous Symbols",
		"Delimiters and Accents",
		"Greek Alphabet",
		"Functions",
		"Matrices & Systems",
		"Math Alphabets and Text",
	}
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// Category returns the category at index i.
func (c *Catalog) Category(i int) (Category, error) {
	if i < 0 || i >= len(c.categories) {
		return Category{}, fault.Range("category index %d outside [0, %d)", i, len(c.categories))
	}
	return clone(c.categories[i]), nil
}

// Categories returns a copy of every category.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = clone(cat)
	}
	return out
}

// Labels returns the category labels in order.
func (c *Catalog) Labels() []string {
	out := make([]string, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cat.Label
	}
	return out
}

// Snippet returns snippet j of category i.
func (c *Catalog) Snippet(i, j int) (string, error) {
	if i < 0 || i >= len(c.categories) {
		return "", fault.Range("category index %d outside [0, %d)", i, len(c.categories))
	}
	snippets := c.categories[i].Snippets
	if j < 0 || j >= len(snippets) {
		return "", fault.Range("snippet index %d outside [0, %d) in %q", j, len(snippets), c.categories[i].Label)
	}
	return snippets[j], nil
}

// Find returns the first position of snippet in catalog order.
func (c *Catalog) Find(snippet string) (category, position int, ok bool) {
	for i, cat := range c.categories {
		for j, s := range cat.Snippets {
			if s == snippet {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}

func clone(cat Category) Category {
	return Category{Label: cat.Label, Snippets: append([]string(nil), cat.Snippets...)}
}
