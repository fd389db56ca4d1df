package skill

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"
)

type Category string

const (
	CategoryDevelopment Category = "development"
	CategoryDesign      Category = "design"
	CategoryMarketing   Category = "marketing"
	CategoryManagement  Category = "management"
	CategoryOther       Category = "other"
)

var ErrInvalidTaxonomy = errors.New("invalid skill taxonomy")

type CategoryKeywords struct {
	Category Category `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// Taxonomy is an ordered list of categories with their keywords. Order is
// significant: the first category with a matching keyword wins.
type Taxonomy struct {
	entries []CategoryKeywords
}

func NewTaxonomy(entries []CategoryKeywords) (Taxonomy, error) {
	if len(entries) == 0 {
		return Taxonomy{}, fmt.Errorf("%w: no categories", ErrInvalidTaxonomy)
	}

	seen := make(map[Category]struct{}, len(entries))
	out := make([]CategoryKeywords, 0, len(entries))
	for i, e := range entries {
		name := Category(strings.ToLower(strings.TrimSpace(string(e.Category))))
		if name == "" {
			return Taxonomy{}, fmt.Errorf("%w: entry %d has no category", ErrInvalidTaxonomy, i)
		}
		if name == CategoryOther {
			return Taxonomy{}, fmt.Errorf("%w: %q is reserved", ErrInvalidTaxonomy, CategoryOther)
		}
		if _, ok := seen[name]; ok {
			return Taxonomy{}, fmt.Errorf("%w: duplicate category %q", ErrInvalidTaxonomy, name)
		}
		seen[name] = struct{}{}

		kws := make([]string, 0, len(e.Keywords))
		for _, k := range e.Keywords {
			k = strings.ToLower(strings.TrimSpace(k))
			if k == "" {
				continue
			}
			kws = append(kws, k)
		}
		if len(kws) == 0 {
			return Taxonomy{}, fmt.Errorf("%w: category %q has no keywords", ErrInvalidTaxonomy, name)
		}
		out = append(out, CategoryKeywords{Category: name, Keywords: kws})
	}
	return Taxonomy{entries: out}, nil
}

// DefaultTaxonomy returns the built-in keyword lists used for UI grouping.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{entries: []CategoryKeywords{
		{Category: CategoryDevelopment, Keywords: []string{
			"javascript", "react", "node", "python", "java", "typescript", "php",
			"ruby", "c#", "c++", "go", "rust", "swift", "kotlin",
		}},
		{Category: CategoryDesign, Keywords: []string{
			"ui", "ux", "graphic design", "photoshop", "illustrator", "figma",
			"sketch", "indesign", "animation",
		}},
		{Category: CategoryMarketing, Keywords: []string{
			"seo", "social media", "content", "email", "analytics", "copywriting", "advertising",
		}},
		{Category: CategoryManagement, Keywords: []string{
			"project management", "leadership", "agile", "scrum", "product management", "team lead",
		}},
	}}
}

type taxonomyFile struct {
	Categories []CategoryKeywords `yaml:"categories"`
}

// ParseTaxonomy reads a YAML document of the form
//
//	categories:
//	  - category: development
//	    keywords: [go, rust]
func ParseTaxonomy(b []byte) (Taxonomy, error) {
	var f taxonomyFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Taxonomy{}, fmt.Errorf("%w: %v", ErrInvalidTaxonomy, err)
	}
	return NewTaxonomy(f.Categories)
}

// LoadTaxonomy returns DefaultTaxonomy when path is empty.
func LoadTaxonomy(path string) (Taxonomy, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultTaxonomy(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Taxonomy{}, fmt.Errorf("read skill taxonomy: %w", err)
	}
	return ParseTaxonomy(b)
}

// Categories lists the configured category names in priority order, followed by other.
func (t Taxonomy) Categories() []Category {
	out := make([]Category, 0, len(t.entries)+1)
	for _, e := range t.entries {
		out = append(out, e.Category)
	}
	return append(out, CategoryOther)
}
