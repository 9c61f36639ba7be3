package docs

import (
	"strings"
	"testing"

	"github.com/jorge-barreto/snapdown"
	"github.com/jorge-barreto/snapdown/internal/directive"
	"github.com/jorge-barreto/snapdown/internal/runner"
)

func TestAll_ReturnsTopics(t *testing.T) {
	topics := All()
	if len(topics) == 0 {
		t.Fatal("All() returned no topics")
	}
	if topics[0].Name != "quickstart" {
		t.Errorf("first topic = %q, want %q", topics[0].Name, "quickstart")
	}
}

func TestAll_NoDuplicateNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, topic := range All() {
		if seen[topic.Name] {
			t.Errorf("duplicate topic name: %q", topic.Name)
		}
		seen[topic.Name] = true
	}
}

func TestAll_AllFieldsPopulated(t *testing.T) {
	for _, topic := range All() {
		if topic.Name == "" {
			t.Error("topic has empty Name")
		}
		if topic.Title == "" {
			t.Errorf("topic %q has empty Title", topic.Name)
		}
		if topic.Summary == "" {
			t.Errorf("topic %q has empty Summary", topic.Name)
		}
		if topic.Content == "" {
			t.Errorf("topic %q has empty Content", topic.Name)
		}
	}
}

func TestGet_Found(t *testing.T) {
	topic, err := Get("quickstart")
	if err != nil {
		t.Fatalf("Get(quickstart) error: %v", err)
	}
	if topic.Name != "quickstart" {
		t.Errorf("Name = %q, want %q", topic.Name, "quickstart")
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := Get("nonexistent")
	if err == nil {
		t.Fatal("Get(nonexistent) should return error")
	}
}

func TestDirectivesTopic_CoversEveryDirective(t *testing.T) {
	topic, err := Get("directives")
	if err != nil {
		t.Fatal(err)
	}
	usage, err := directive.Usage(&snapdown.Arguments[runner.Directives]{})
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(strings.TrimSpace(usage), "\n") {
		name := strings.Fields(line)[0]
		if !strings.Contains(topic.Content, name) {
			t.Errorf("directives topic does not document %s", name)
		}
	}
}

func TestGet_Prefix(t *testing.T) {
	topic, err := Get("dir")
	if err != nil {
		t.Fatal(err)
	}
	if topic.Name != "directives" {
		t.Errorf("Name = %q, want %q", topic.Name, "directives")
	}
}

func TestGet_AmbiguousPrefix(t *testing.T) {
	all := All()
	seen := make(map[string][]string)
	for _, topic := range all {
		seen[topic.Name[:1]] = append(seen[topic.Name[:1]], topic.Name)
	}
	for prefix, names := range seen {
		if len(names) < 2 {
			continue
		}
		if _, err := Get(prefix); err == nil || !strings.Contains(err.Error(), "ambiguous") {
			t.Errorf("Get(%q) should be ambiguous between %v, got %v", prefix, names, err)
		}
		return
	}
	t.Skip("no two topics share a first letter")
}
