package help

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ziadkadry99/campusbot/internal/knowledge"
	"github.com/ziadkadry99/campusbot/internal/responder"
)

func TestMarkdownListsFacilities(t *testing.T) {
	md := Markdown(responder.MustNew(nil))

	if !strings.HasPrefix(md, "# Campus Assistant Help\n") {
		t.Errorf("expected title heading, got %q", md[:40])
	}
	for _, want := range []string{
		"| library | - |",
		"| coffee shop | coffee shop, coffee bar |",
		"9:00 AM to 6:00 PM",
		"Open 24/7",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestMarkdownListsExamplesPerCategory(t *testing.T) {
	md := Markdown(responder.MustNew(nil))

	for _, want := range []string{"### Greetings", "- howdy", "### Feeling tired", "- i'm tired", "### Saying thanks"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
	if !strings.Contains(md, "```bash\ncurl") {
		t.Error("expected fenced API example")
	}
}

func TestMarkdownCustomKnowledge(t *testing.T) {
	kb, err := knowledge.New([]knowledge.Facility{{
		Key:       "pool",
		Name:      "swimming pool",
		Location:  "the Aquatic Center | lower level",
		Responses: []string{"The swimming pool is in the Aquatic Center."},
	}})
	if err != nil {
		t.Fatal(err)
	}
	md := Markdown(responder.MustNew(kb))

	if !strings.Contains(md, `| swimming pool | - | the Aquatic Center \| lower level | - |`) {
		t.Errorf("expected escaped facility row, got:\n%s", md)
	}
	if strings.Contains(md, "| library |") {
		t.Error("built-in facilities listed for a custom knowledge base")
	}
}

func TestGroupRules(t *testing.T) {
	rules := []responder.IntentRule{
		{Category: responder.CategoryGreeting, Phrases: []string{"hi"}},
		{Category: responder.CategoryGratitude, Phrases: []string{"thanks"}},
		{Category: responder.CategoryGreeting, Phrases: []string{"yo"}},
	}
	groups := groupRules(rules)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].category != responder.CategoryGreeting || len(groups[0].examples) != 2 {
		t.Errorf("unexpected first group: %+v", groups[0])
	}
	if groups[1].category != responder.CategoryGratitude {
		t.Errorf("unexpected second group: %+v", groups[1])
	}
}

func TestTitle(t *testing.T) {
	if got := title(responder.CategoryStatus); got != "Checking in" {
		t.Errorf("title(status) = %q", got)
	}
	if got := title("study_tips"); got != "study tips" {
		t.Errorf("title(study_tips) = %q", got)
	}
}

func TestRenderHTML(t *testing.T) {
	page, err := RenderHTML("# Title Here\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n```go\nfunc main() {}\n```\n")
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	html := string(page)

	if !strings.Contains(html, "<title>Title Here</title>") {
		t.Error("expected title from first heading")
	}
	if !strings.Contains(html, "<table>") {
		t.Error("expected GFM table")
	}
	if !strings.Contains(html, `id="title-here"`) {
		t.Error("expected auto heading id")
	}
	if !strings.Contains(html, "<pre") || !strings.Contains(html, "func") {
		t.Error("expected highlighted code block")
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"# Hello\nbody", "Hello"},
		{"intro\n# Later\n", "Later"},
		{"## Not a title\n", "Help"},
		{"", "Help"},
	}
	for _, tt := range tests {
		if got := extractTitle(tt.in); got != tt.want {
			t.Errorf("extractTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHandler(t *testing.T) {
	h, err := Handler(responder.MustNew(nil))
	if err != nil {
		t.Fatalf("Handler: %v", err)
	}

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/help", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("expected text/html, got %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Campus Assistant Help") || !strings.Contains(body, "coffee shop") {
		t.Error("help page missing expected content")
	}
}
