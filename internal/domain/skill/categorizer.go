package skill

import "strings"

type Categorizer struct {
	taxonomy Taxonomy
}

func NewCategorizer(t Taxonomy) *Categorizer {
	return &Categorizer{taxonomy: t}
}

// Categorize matches by substring containment in both directions, so "c" falls
// into development through "c++" and "c#".
func (c *Categorizer) Categorize(label string) Category {
	if c == nil {
		return CategoryOther
	}
	l := strings.ToLower(label)
	for _, e := range c.taxonomy.entries {
		for _, k := range e.Keywords {
			if strings.Contains(l, k) || strings.Contains(k, l) {
				return e.Category
			}
		}
	}
	return CategoryOther
}

type Labeled struct {
	Name     string
	Category Category
}

func (c *Categorizer) Label(skills []string) []Labeled {
	out := make([]Labeled, 0, len(skills))
	for _, s := range skills {
		out = append(out, Labeled{Name: s, Category: c.Categorize(s)})
	}
	return out
}
