// Package help builds the user-facing help document from the live
// knowledge base and intent table, as Markdown for the terminal and as
// HTML for GET /help.
package help

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/ziadkadry99/campusbot/internal/responder"
)

// maxExamples caps the example phrasings listed per category.
const maxExamples = 6

var categoryTitles = map[responder.Category]string{
	responder.CategoryGreeting:          "Greetings",
	responder.CategoryGreetingMorning:   "Good morning",
	responder.CategoryGreetingAfternoon: "Good afternoon",
	responder.CategoryGreetingEvening:   "Good evening",
	responder.CategoryStatus:            "Checking in",
	responder.CategorySentimentPositive: "Feeling good",
	responder.CategorySentimentFatigue:  "Feeling tired",
	responder.CategorySentimentNegative: "Feeling down",
	responder.CategoryGratitude:         "Saying thanks",
}

// Markdown returns the help document for resp.
func Markdown(resp *responder.Responder) string {
	var b strings.Builder

	b.WriteString("# Campus Assistant Help\n\n")
	b.WriteString("Ask about campus facilities in plain English. ")
	b.WriteString("The assistant answers where a facility is, when it opens and closes, ")
	b.WriteString("and responds to greetings and small talk.\n\n")

	b.WriteString("## Facilities\n\n")
	b.WriteString("| Facility | Also known as | Location | Hours |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, f := range resp.Knowledge().Facilities() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			cell(f.DisplayName()), cell(strings.Join(f.Aliases, ", ")), cell(f.Location), cell(f.Hours))
	}
	b.WriteString("\n")

	b.WriteString("## Asking about a facility\n\n")
	b.WriteString("- *Where is the library?* gives the location.\n")
	b.WriteString("- *When does the gym open?* or *When does the coffee shop close?* gives the opening hours.\n")
	b.WriteString("- Mentioning a facility anywhere, as in *Tell me about parking*, gives general information.\n\n")

	b.WriteString("## Other things you can say\n\n")
	for _, g := range groupRules(resp.Rules()) {
		fmt.Fprintf(&b, "### %s\n\n", title(g.category))
		examples := g.examples
		if len(examples) > maxExamples {
			examples = examples[:maxExamples]
		}
		for _, ex := range examples {
			fmt.Fprintf(&b, "- %s\n", ex)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Ending a conversation\n\n")
	b.WriteString("In `campusbot chat` and the web chat, say *bye*, *goodbye* or *quit* to finish.\n\n")

	b.WriteString("## HTTP API\n\n")
	b.WriteString("Ask a single question:\n\n")
	b.WriteString("```bash\ncurl -s -X POST http://localhost:8080/api/respond \\\n  -H 'Content-Type: application/json' \\\n  -d '{\"utterance\": \"where is the library?\"}'\n```\n\n")
	b.WriteString("The reply names the matched category and, for facility answers, the facility key:\n\n")
	b.WriteString("```json\n{\n  \"id\": \"7f0c6d1e-3b7a-4c55-9d0e-2a1f4b8c9e10\",\n  \"reply\": \"The library is located in Building A...\",\n  \"category\": \"facility_location\",\n  \"facility\": \"library\"\n}\n```\n\n")
	b.WriteString("Chat over a WebSocket at `/ws/chat`:\n\n")
	b.WriteString("```json\n{\"type\": \"start\", \"user_name\": \"Sam\"}\n{\"type\": \"message\", \"content\": \"when does the gym close?\"}\n```\n")

	return b.String()
}

type ruleGroup struct {
	category responder.Category
	examples []string
}

// groupRules merges rules by category, keeping first-appearance order.
func groupRules(rules []responder.IntentRule) []ruleGroup {
	var groups []ruleGroup
	index := map[responder.Category]int{}
	for _, r := range rules {
		i, ok := index[r.Category]
		if !ok {
			i = len(groups)
			index[r.Category] = i
			groups = append(groups, ruleGroup{category: r.Category})
		}
		groups[i].examples = append(groups[i].examples, r.Examples()...)
	}
	return groups
}

func title(c responder.Category) string {
	if t, ok := categoryTitles[c]; ok {
		return t
	}
	return strings.ReplaceAll(string(c), "_", " ")
}

func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}

// newMarkdown returns the goldmark converter used for help pages.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
}

// RenderHTML converts Markdown to a standalone HTML page.
func RenderHTML(markdown string) ([]byte, error) {
	var body bytes.Buffer
	if err := newMarkdown().Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}

	var page bytes.Buffer
	err := pageTemplate.Execute(&page, struct {
		Title   string
		Content template.HTML
	}{
		Title:   extractTitle(markdown),
		Content: template.HTML(body.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return page.Bytes(), nil
}

// extractTitle returns the text of the first level-one heading.
func extractTitle(markdown string) string {
	for _, line := range strings.Split(markdown, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return "Help"
}

// Handler serves the rendered help page. The page is built once, up front,
// since the responder is immutable.
func Handler(resp *responder.Responder) (http.HandlerFunc, error) {
	page, err := RenderHTML(Markdown(resp))
	if err != nil {
		return nil, err
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}, nil
}
