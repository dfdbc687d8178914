package docs

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestGetTopic(t *testing.T) {
	content, err := GetTopic("accounts")
	if err != nil {
		t.Fatalf("GetTopic(accounts) error = %v", err)
	}
	if !strings.Contains(content, "# Accounts") {
		t.Errorf("unexpected topic content: %q", content)
	}

	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic(nope) want an error")
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"accounts", "projects"} {
		found := false
		for _, topic := range topics {
			if topic == want {
				found = true
			}
			if topic == "readme" {
				t.Error("readme must not be listed as a topic")
			}
		}
		if !found {
			t.Errorf("topic %q missing from %v", want, topics)
		}
	}
}

// TestTopicsStartWithHeading parses every topic as markdown and checks it
// opens with a level-1 heading, so the rendered output always has a title.
func TestTopicsStartWithHeading(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	topics = append(topics, "readme")

	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			first := root.FirstChild()
			heading, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("first block is %T, want a heading", first)
			}
			if heading.Level != 1 {
				t.Errorf("first heading level = %d, want 1", heading.Level)
			}
		})
	}
}
