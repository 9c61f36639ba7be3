package docs

import (
	"fmt"
	"strings"
)

// Topic holds a single documentation article.
type Topic struct {
	Name    string // short slug used as CLI argument
	Title   string
	Summary string // one-line description for topic listing
	Content string // plain text, no ANSI
}

// All returns every topic in display order.
func All() []Topic {
	return topics
}

// Get looks up a topic by name or by an unambiguous prefix of its name.
func Get(name string) (Topic, error) {
	var matches []Topic
	for _, t := range topics {
		if t.Name == name {
			return t, nil
		}
		if name != "" && strings.HasPrefix(t.Name, name) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return Topic{}, fmt.Errorf("unknown topic %q; run 'snapdown docs' to list available topics", name)
	default:
		names := make([]string, len(matches))
		for i, t := range matches {
			names[i] = t.Name
		}
		return Topic{}, fmt.Errorf("topic %q is ambiguous: %s", name, strings.Join(names, ", "))
	}
}
