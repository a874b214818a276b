package responder

import (
	"fmt"
	"regexp"
	"strings"
)

// Category labels the intent a reply was chosen for.
type Category string

const (
	CategoryFacilityLocation  Category = "facility_location"
	CategoryFacilityHours     Category = "facility_hours"
	CategoryFacilityKeyword   Category = "facility_keyword"
	CategoryGreeting          Category = "greeting"
	CategoryGreetingMorning   Category = "greeting_morning"
	CategoryGreetingAfternoon Category = "greeting_afternoon"
	CategoryGreetingEvening   Category = "greeting_evening"
	CategoryStatus            Category = "status"
	CategorySentimentPositive Category = "sentiment_positive"
	CategorySentimentFatigue  Category = "sentiment_fatigue"
	CategorySentimentNegative Category = "sentiment_negative"
	CategoryGratitude         Category = "gratitude"
	CategoryFallback          Category = "fallback"
)

// IntentRule maps a set of trigger phrases, or a raw pattern, to a pool of
// interchangeable replies. Phrases are matched as whole words; Pattern is
// used verbatim and takes precedence when both are set.
type IntentRule struct {
	Category  Category `json:"category"`
	Phrases   []string `json:"phrases,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
	Responses []string `json:"responses"`
}

// Examples returns phrases that trigger the rule, for help output.
func (r IntentRule) Examples() []string {
	return append([]string(nil), r.Phrases...)
}

// wordStart and wordEnd guard a phrase so it only matches as a whole word.
// RE2's \b only knows ASCII word characters, which would let "hié" count
// as "hi" followed by a boundary.
const (
	wordStart = `(?:^|[^\p{L}\p{N}_])`
	wordEnd   = `(?:$|[^\p{L}\p{N}_])`
)

// sentimentSubject matches "i'm", "i am" and "im", optionally followed by
// an intensifier, so "i'm so tired" reads like "i'm tired".
const sentimentSubject = wordStart + `(?:i'm|i am|im)\s+(?:(?:so|really|very|super|pretty|quite|feeling|kinda|a bit)\s+)?`

// defaultRules is the generic intent table, evaluated top to bottom after
// the facility lookups. The first rule that matches wins.
var defaultRules = []IntentRule{
	{
		Category: CategoryGreeting,
		Phrases:  []string{"hi", "hello", "hey", "howdy"},
		Responses: []string{
			"Hi there! How can I help you today?",
			"Hello! Nice to meet you!",
			"Hey! How are you doing?",
			"Hi! What can I do for you today?",
		},
	},
	{
		Category: CategoryGreetingMorning,
		Phrases:  []string{"good morning"},
		Responses: []string{
			"Good morning! Hope you're having a great start to your day!",
			"Good morning! What can I help you with?",
			"Morning! How are you today?",
		},
	},
	{
		Category: CategoryGreetingAfternoon,
		Phrases:  []string{"good afternoon"},
		Responses: []string{
			"Good afternoon! How can I assist you?",
			"Good afternoon! What brings you here today?",
			"Afternoon! How can I help?",
		},
	},
	{
		Category: CategoryGreetingEvening,
		Phrases:  []string{"good evening"},
		Responses: []string{
			"Good evening! How may I assist you?",
			"Good evening! What can I do for you?",
			"Evening! How can I help?",
		},
	},
	{
		Category: CategoryStatus,
		Phrases:  []string{"how are you", "how you doing", "how's it going", "what's up"},
		Responses: []string{
			"I'm doing great, thanks for asking! How about you?",
			"I'm excellent! How are you doing today?",
			"All good here! How's your day going?",
			"I'm wonderful! How about yourself?",
		},
	},
	{
		Category: CategorySentimentPositive,
		Phrases:  []string{"i'm good", "i'm great", "i'm excellent", "doing good", "doing great"},
		Pattern:  sentimentSubject + `(?:good|great|excellent)` + wordEnd + `|` + wordStart + `doing\s+(?:good|great)` + wordEnd,
		Responses: []string{
			"That's wonderful to hear! What can I help you with?",
			"I'm glad you're doing well! How can I assist you today?",
			"That's great! What brings you here today?",
		},
	},
	{
		Category: CategorySentimentFatigue,
		Phrases:  []string{"i'm tired", "i'm exhausted", "i'm sleepy"},
		Pattern:  sentimentSubject + `(?:tired|exhausted|sleepy)` + wordEnd,
		Responses: []string{
			"I hope you can get some rest soon! Meanwhile, how can I help you?",
			"Make sure to take care of yourself! What do you need assistance with?",
			"Remember to take breaks when needed! What can I help you with?",
		},
	},
	{
		Category: CategorySentimentNegative,
		Phrases:  []string{"i'm sad", "i'm upset", "i'm unhappy"},
		Pattern:  sentimentSubject + `(?:sad|upset|unhappy)` + wordEnd,
		Responses: []string{
			"I'm sorry to hear that. Is there anything I can do to help?",
			"I hope things get better soon. How can I assist you today?",
			"That must be difficult. What can I do to help?",
		},
	},
	{
		Category: CategoryGratitude,
		Phrases:  []string{"thanks", "thank you", "thx", "tysm"},
		Responses: []string{
			"You're welcome! Is there anything else you'd like to know?",
			"My pleasure! Let me know if you need anything else.",
			"Happy to help! What else can I do for you?",
			"Anytime! Don't hesitate to ask if you need more help.",
		},
	},
}

// DefaultFallback is the pool used when no rule matches.
var DefaultFallback = []string{
	"I'm not quite sure about that. Could you please rephrase your question?",
	"Interesting! Could you tell me more about what you're looking for?",
	"I want to help, but I'm not sure I understood. Could you explain a bit more?",
	"Hmm, I'm not quite following. Could you try asking that in a different way?",
	"I'm here to help! Could you provide more details about what you need?",
}

// AgentNames are the names a session assistant may be given at random.
var AgentNames = []string{"Alex", "Charlie", "Jordan", "Taylor", "Casey"}

// DefaultRules returns a copy of the built-in generic intent table.
func DefaultRules() []IntentRule {
	return cloneRules(defaultRules)
}

func cloneRules(rules []IntentRule) []IntentRule {
	out := make([]IntentRule, len(rules))
	for i, r := range rules {
		r.Phrases = append([]string(nil), r.Phrases...)
		r.Responses = append([]string(nil), r.Responses...)
		out[i] = r
	}
	return out
}

// compiledRule is an IntentRule with its matcher built.
type compiledRule struct {
	rule IntentRule
	re   *regexp.Regexp
}

func compileRule(r IntentRule) (compiledRule, error) {
	if len(r.Responses) == 0 {
		return compiledRule{}, fmt.Errorf("rule %q has no responses", r.Category)
	}
	if err := checkPool(r.Responses); err != nil {
		return compiledRule{}, fmt.Errorf("rule %q: %w", r.Category, err)
	}
	expr := r.Pattern
	if expr == "" {
		if len(r.Phrases) == 0 {
			return compiledRule{}, fmt.Errorf("rule %q has neither phrases nor a pattern", r.Category)
		}
		for _, p := range r.Phrases {
			if strings.TrimSpace(p) == "" {
				return compiledRule{}, fmt.Errorf("rule %q has an empty phrase", r.Category)
			}
		}
		expr = phrasePattern(r.Phrases)
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return compiledRule{}, fmt.Errorf("rule %q: compiling pattern: %w", r.Category, err)
	}
	return compiledRule{rule: r, re: re}, nil
}

// phrasePattern builds a whole-word alternation from literal phrases.
// Spaces inside a phrase match any run of whitespace.
func phrasePattern(phrases []string) string {
	alts := make([]string, 0, len(phrases))
	for _, p := range phrases {
		words := strings.Fields(strings.ToLower(p))
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		alts = append(alts, strings.Join(words, `\s+`))
	}
	return wordStart + `(?:` + strings.Join(alts, "|") + `)` + wordEnd
}

func checkPool(pool []string) error {
	for i, s := range pool {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("response %d is empty", i)
		}
	}
	return nil
}
